package hashing

// FNV-1a 32-bit parameters.
const (
	fnvOffsetBasis = 0x811C9DC5
	fnvPrime       = 0x01000193
)

// FNV32 computes the FNV-1a 32-bit hash of data: XOR each byte into the
// state, then multiply by the FNV prime. FNV32(nil) is the offset basis.
func FNV32(data []byte) uint32 {
	h := uint32(fnvOffsetBasis)
	for _, b := range data {
		h ^= uint32(b)
		h *= fnvPrime
	}
	return h
}
