// Package hashing provides the checksum and digest functions used by the
// frame format: table-driven CRC-32, FNV-1a 32, and SHA-256.
//
// CRC32 and FNV32 are integrity checks, not cryptographic hashes. Their
// constants are frozen by the wire format, so both are implemented here
// rather than referenced through an abstraction that could drift.
package hashing

// Reflected CRC-32 polynomial (IEEE 802.3).
const crcPoly = 0xEDB88320

var crcTable = makeCRCTable()

// makeCRCTable builds the 256-entry lookup table for the reflected
// polynomial. One entry per possible byte value.
func makeCRCTable() [256]uint32 {
	var table [256]uint32
	for i := 0; i < 256; i++ {
		c := uint32(i)
		for j := 0; j < 8; j++ {
			if c&1 == 1 {
				c = (c >> 1) ^ crcPoly
			} else {
				c >>= 1
			}
		}
		table[i] = c
	}
	return table
}

// CRC32 computes the reflected CRC-32 of data: init 0xFFFFFFFF, one table
// lookup per byte, final XOR 0xFFFFFFFF. CRC32(nil) is 0.
func CRC32(data []byte) uint32 {
	crc := uint32(0xFFFFFFFF)
	for _, b := range data {
		crc = crcTable[byte(crc)^b] ^ (crc >> 8)
	}
	return crc ^ 0xFFFFFFFF
}
