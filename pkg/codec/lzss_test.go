package codec

import (
	"bytes"
	"math/rand"
	"testing"
)

// TestLZSSLiteralFlag walks the token stream for "AAAA", an input sitting
// exactly at the ambiguous point: a MinMatch-length match at distance 1
// would encode with a zero high byte and masquerade as a literal. The
// encoder must pick tokens whose flag bytes stay unambiguous and that
// decode back exactly.
func TestLZSSLiteralFlag(t *testing.T) {
	c := newLZSS(DefaultOptions())

	input := []byte("AAAA")
	compressed, err := c.Compress(input)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if len(compressed)%2 != 0 {
		t.Fatalf("token stream has odd length %d", len(compressed))
	}

	// Reconstruct by walking tokens with the documented flag rule.
	var rebuilt []byte
	for i := 0; i < len(compressed); i += 2 {
		if compressed[i] == 0x00 {
			rebuilt = append(rebuilt, compressed[i+1])
			continue
		}
		code := uint16(compressed[i])<<8 | uint16(compressed[i+1])
		length := int(code>>12) + DefaultMinMatch
		dist := int(code&0xFFF) + 1
		start := len(rebuilt) - dist
		if start < 0 {
			t.Fatalf("token %d references before start of output", i/2)
		}
		for j := 0; j < length; j++ {
			rebuilt = append(rebuilt, rebuilt[start+j])
		}
	}

	if !bytes.Equal(rebuilt, input) {
		t.Fatalf("token walk of %q rebuilt %q", input, rebuilt)
	}
}

func TestLZSSCompressesRepetition(t *testing.T) {
	c := newLZSS(DefaultOptions())
	input := bytes.Repeat([]byte("a long repeating phrase that should match well. "), 100)

	compressed, err := c.Compress(input)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if len(compressed) >= len(input) {
		t.Errorf("repetitive input did not shrink: %d -> %d", len(input), len(compressed))
	}

	decoded, err := c.Decompress(compressed)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(decoded, input) {
		t.Error("round trip mismatch on repetitive input")
	}
}

func TestLZSSOverlappingCopy(t *testing.T) {
	c := newLZSS(DefaultOptions())

	// Hand-built stream: literal 'a', literal 'b', then a match of
	// length 8 at distance 2, which must self-referentially extend the
	// output: "ab" -> "ab" + "abababab".
	code := uint16(8-DefaultMinMatch)<<12 | uint16(2-1)
	stream := []byte{0x00, 'a', 0x00, 'b', byte(code >> 8), byte(code)}

	decoded, err := c.Decompress(stream)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if want := []byte("ababababab"); !bytes.Equal(decoded, want) {
		t.Errorf("decoded %q, want %q", decoded, want)
	}
}

func TestLZSSInvalidBackReference(t *testing.T) {
	c := newLZSS(DefaultOptions())

	// Match token pointing 16 bytes back with empty output.
	code := uint16(1)<<12 | uint16(16-1)
	stream := []byte{byte(code >> 8), byte(code)}

	decoded, err := c.Decompress(stream)
	if !IsPartial(err) {
		t.Fatalf("Decompress = %v, want PartialDataError", err)
	}
	if len(decoded) != 0 {
		t.Errorf("recovered %d bytes, want 0", len(decoded))
	}
}

func TestLZSSTruncatedToken(t *testing.T) {
	c := newLZSS(DefaultOptions())

	stream := []byte{0x00, 'a', 0x00} // dangling flag byte

	decoded, err := c.Decompress(stream)
	if !IsPartial(err) {
		t.Fatalf("Decompress = %v, want PartialDataError", err)
	}
	if want := []byte("a"); !bytes.Equal(decoded, want) {
		t.Errorf("recovered %q, want %q", decoded, want)
	}
}

func TestLZSSCustomTuning(t *testing.T) {
	opts := DefaultOptions()
	opts.Window = 64
	opts.HashLimit = 2
	c := newLZSS(opts)

	rng := rand.New(rand.NewSource(7))
	input := make([]byte, 5000)
	for i := range input {
		input[i] = byte('a' + rng.Intn(4)) // small alphabet, many matches
	}

	compressed, err := c.Compress(input)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	decoded, err := c.Decompress(compressed)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(decoded, input) {
		t.Error("round trip mismatch with narrow window tuning")
	}
}

// TestLZSSBucketPruning pushes enough positions through a tiny alphabet to
// cross several prune intervals and checks the output still decodes.
func TestLZSSBucketPruning(t *testing.T) {
	c := newLZSS(DefaultOptions())

	input := bytes.Repeat([]byte{0x11, 0x22}, 40000) // 80 KB, two-byte period
	compressed, err := c.Compress(input)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	decoded, err := c.Decompress(compressed)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(decoded, input) {
		t.Error("round trip mismatch across prune intervals")
	}
}

func BenchmarkLZSSCompress(b *testing.B) {
	c := newLZSS(DefaultOptions())
	data := bytes.Repeat([]byte("benchmarking the sliding window matcher "), 1024)
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		if _, err := c.Compress(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLZSSDecompress(b *testing.B) {
	c := newLZSS(DefaultOptions())
	data := bytes.Repeat([]byte("benchmarking the sliding window matcher "), 1024)
	compressed, err := c.Compress(data)
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Decompress(compressed); err != nil {
			b.Fatal(err)
		}
	}
}
