package stream

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyborg/wirepack/pkg/codec"
	"github.com/nyborg/wirepack/pkg/frame"
	"github.com/nyborg/wirepack/pkg/hashing"
)

// TestUpdateGranularityEquivalence feeds the same sub-threshold input
// byte-by-byte and in one shot; both sessions must emit identical output
// that decodes back to the input.
func TestUpdateGranularityEquivalence(t *testing.T) {
	input := bytes.Repeat([]byte("equivalence under any update slicing "), 40)
	require.Less(t, len(input), DefaultChunkThreshold)

	oneShot := NewSession("lzss", Options{})
	require.NoError(t, oneShot.Update(input))
	blobA, err := oneShot.Final()
	require.NoError(t, err)

	byteWise := NewSession("lzss", Options{})
	for i := range input {
		require.NoError(t, byteWise.Update(input[i:i+1]))
	}
	blobB, err := byteWise.Final()
	require.NoError(t, err)

	assert.Equal(t, blobA, blobB, "update granularity changed the output")

	decoded, err := Decompress(blobA, frame.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, input, decoded)
}

func TestRoundTripAllCodecs(t *testing.T) {
	input := bytes.Repeat([]byte("stream me "), 100)

	for _, name := range codec.Names() {
		t.Run(name, func(t *testing.T) {
			s := NewSession(name, Options{})
			require.NoError(t, s.Update(input))
			blob, err := s.Final()
			require.NoError(t, err)

			decoded, err := Decompress(blob, frame.DefaultOptions())
			require.NoError(t, err)
			assert.Equal(t, input, decoded)
		})
	}
}

func TestThresholdFlush(t *testing.T) {
	s := NewSession("rle", Options{ChunkThreshold: 64})

	// 200 bytes in one update crosses the threshold immediately: one
	// flush during Update, one (empty-remainder) flush at Final.
	input := bytes.Repeat([]byte{0xAA}, 200)
	require.NoError(t, s.Update(input))

	stats := s.Stats()
	assert.Equal(t, 1, stats.Frames, "threshold crossing should have flushed")
	assert.Equal(t, 0, stats.Buffered)
	assert.Equal(t, 200, stats.TotalIn)

	blob, err := s.Final()
	require.NoError(t, err)

	stats = s.Stats()
	assert.Equal(t, 2, stats.Frames, "final flushes the remainder even when empty")
	assert.True(t, stats.Finalized)
	assert.NotEmpty(t, blob)

	// The blob is a concatenation of well-formed frames.
	h, payload, err := frame.ParseHeader(blob)
	require.NoError(t, err)
	assert.Equal(t, uint32(200), h.OriginalLength)
	assert.GreaterOrEqual(t, len(payload), h.PayloadLength)
}

func TestRunningChecksum(t *testing.T) {
	s := NewSession("none", Options{})

	require.NoError(t, s.Update([]byte("abc")))
	assert.Equal(t, hashing.CRC32([]byte("abc")), s.Stats().RunningCRC32)

	require.NoError(t, s.Update([]byte("def")))
	assert.Equal(t, hashing.CRC32([]byte("abcdef")), s.Stats().RunningCRC32,
		"running checksum covers the whole unflushed buffer")
}

func TestEmptySession(t *testing.T) {
	s := NewSession("lzss", Options{})

	_, err := s.Final()
	assert.ErrorIs(t, err, codec.ErrEmptyInput, "a zero-byte stream yields no output")

	err = s.Update(nil)
	assert.ErrorIs(t, err, codec.ErrEmptyInput)
}

func TestUpdateAfterFinal(t *testing.T) {
	s := NewSession("rle", Options{})
	require.NoError(t, s.Update([]byte("data")))

	first, err := s.Final()
	require.NoError(t, err)

	err = s.Update([]byte("more"))
	assert.ErrorIs(t, err, ErrSessionFinalized)

	// The session stays frozen on its original output.
	second, err := s.Final()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestUnknownCodecSurfacesAtFlush(t *testing.T) {
	s := NewSession("zstd", Options{})
	require.NoError(t, s.Update([]byte("doomed")))

	_, err := s.Final()
	assert.ErrorIs(t, err, codec.ErrUnknownCodec)
}
