// Package chunker splits byte strings into fixed-size pieces for
// transports with a small maximum message size, and reassembles them by
// concatenation. The chunker does no validation of completeness or order;
// the transport is responsible for in-order delivery.
package chunker

// Chunk size bounds. Transports that cannot carry even 32 bytes per
// message are not worth supporting.
const (
	DefaultChunkSize = 255
	MinChunkSize     = 32
)

// Split cuts data into consecutive chunks of at most maxBytes each.
// maxBytes values below the floor are raised to MinChunkSize; zero or
// negative selects DefaultChunkSize. Chunks alias the input slice; callers
// that mutate data must copy first. Empty input yields no chunks.
func Split(data []byte, maxBytes int) [][]byte {
	if maxBytes <= 0 {
		maxBytes = DefaultChunkSize
	}
	if maxBytes < MinChunkSize {
		maxBytes = MinChunkSize
	}
	if len(data) == 0 {
		return nil
	}

	chunks := make([][]byte, 0, (len(data)+maxBytes-1)/maxBytes)
	for start := 0; start < len(data); start += maxBytes {
		end := start + maxBytes
		if end > len(data) {
			end = len(data)
		}
		chunks = append(chunks, data[start:end])
	}
	return chunks
}

// Reassemble concatenates chunks in the given order.
func Reassemble(chunks [][]byte) []byte {
	size := 0
	for _, c := range chunks {
		size += len(c)
	}
	out := make([]byte, 0, size)
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}
