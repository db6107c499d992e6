package frame

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/nyborg/wirepack/pkg/codec"
	"github.com/nyborg/wirepack/pkg/hashing"
)

// Header holds the parsed fields of a frame envelope.
type Header struct {
	Legacy         bool     // frame used the "AC1" format
	TextSafe       bool     // frame arrived Base64-wrapped
	Version        uint8    // 1 for legacy frames
	Codec          codec.ID // payload codec identifier
	OriginalLength uint32   // uncompressed payload length
	OriginalCRC32  uint32   // CRC-32 of the uncompressed payload
	PayloadLength  int      // compressed payload length
}

// Encode compresses src and wraps it in a current-format frame. Empty
// input is rejected; callers that legitimately frame an empty buffer (the
// stream layer's final flush) use Build.
func Encode(src []byte, opts Options) ([]byte, error) {
	if len(src) == 0 {
		return nil, codec.ErrEmptyInput
	}
	return Build(src, opts)
}

// Build assembles a frame for src without the non-empty guard of Encode.
func Build(src []byte, opts Options) ([]byte, error) {
	opts = opts.withDefaults()
	start := time.Now()

	c, err := codec.New(opts.Codec, opts.codecOptions())
	if err != nil {
		return nil, err
	}

	opts.Scheduler.YieldIfLarge(len(src))

	var payload []byte
	if len(src) > 0 {
		payload, err = c.Compress(src)
		if err != nil {
			opts.Metrics.RecordOperation("compress", c.Name(), err, false, time.Since(start))
			return nil, fmt.Errorf("frame: compress: %w", err)
		}
	}

	out := make([]byte, headerSize, headerSize+len(payload))
	copy(out[0:3], Magic)
	out[3] = Version
	out[4] = byte(c.ID())
	binary.LittleEndian.PutUint32(out[5:9], uint32(len(src)))
	binary.LittleEndian.PutUint32(out[9:13], hashing.CRC32(src))
	out = append(out, payload...)

	if opts.TextSafe {
		wrapped := make([]byte, 0, len(MagicText)+base64.StdEncoding.EncodedLen(len(out)))
		wrapped = append(wrapped, MagicText...)
		wrapped = append(wrapped, Base64Encode(out)...)
		out = wrapped
	}

	elapsed := time.Since(start)
	opts.Metrics.RecordOperation("compress", c.Name(), nil, false, elapsed)
	opts.Metrics.ObserveRatio(c.Name(), len(src), len(payload))
	opts.Metrics.AddBytes("compress", len(src), len(out))
	opts.Logger.Debug("frame encoded",
		"tag", "frame",
		"codec", c.Name(),
		"original", len(src),
		"frame", len(out),
		"text_safe", opts.TextSafe,
		"elapsed", elapsed)

	return out, nil
}

// ParseHeader unwraps an optional Base64 layer, validates magic and
// version, and returns the header together with the compressed payload.
// It never decompresses, so it is safe to run on untrusted input cheaply.
func ParseHeader(blob []byte) (Header, []byte, error) {
	if len(blob) >= 4 {
		prefix := string(blob[:4])
		if prefix == MagicText || prefix == MagicTextLegacy {
			inner, err := Base64Decode(string(blob[4:]))
			if err != nil {
				return Header{}, nil, fmt.Errorf("frame: base64 unwrap: %w", err)
			}
			h, payload, err := parseRaw(inner)
			if err != nil {
				return Header{}, nil, err
			}
			h.TextSafe = true
			return h, payload, nil
		}
	}
	return parseRaw(blob)
}

func parseRaw(blob []byte) (Header, []byte, error) {
	if len(blob) < 3 {
		return Header{}, nil, ErrBadMagic
	}

	var h Header
	switch string(blob[:3]) {
	case Magic:
		if len(blob) < headerSize {
			return Header{}, nil, ErrTruncatedHeader
		}
		h.Version = blob[3]
		if h.Version > MaxVersion {
			return Header{}, nil, fmt.Errorf("%w: frame version %d, newest understood is %d",
				ErrUnsupportedVersion, h.Version, MaxVersion)
		}
		h.Codec = codec.ID(blob[4])
		h.OriginalLength = binary.LittleEndian.Uint32(blob[5:9])
		h.OriginalCRC32 = binary.LittleEndian.Uint32(blob[9:13])
		h.PayloadLength = len(blob) - headerSize
		return h, blob[headerSize:], nil

	case MagicLegacy:
		if len(blob) < headerSizeLegacy {
			return Header{}, nil, ErrTruncatedHeader
		}
		h.Legacy = true
		h.Version = 1
		h.Codec = codec.ID(blob[3])
		h.OriginalLength = binary.LittleEndian.Uint32(blob[4:8])
		h.OriginalCRC32 = binary.LittleEndian.Uint32(blob[8:12])
		h.PayloadLength = len(blob) - headerSizeLegacy
		return h, blob[headerSizeLegacy:], nil

	default:
		return Header{}, nil, ErrBadMagic
	}
}

// Decode parses a frame, decompresses its payload, and verifies the
// declared length and checksum. Framing failures are terminal; corruption
// inside the payload returns the best-effort bytes together with a
// *codec.PartialDataError.
func Decode(blob []byte, opts Options) ([]byte, error) {
	opts = opts.withDefaults()
	start := time.Now()

	if len(blob) == 0 {
		return nil, codec.ErrEmptyInput
	}

	h, payload, err := ParseHeader(blob)
	if err != nil {
		return nil, err
	}

	c, err := codec.FromID(h.Codec, opts.codecOptions())
	if err != nil {
		return nil, err
	}

	opts.Scheduler.YieldIfLarge(len(payload))

	var decoded []byte
	var partial *codec.PartialDataError
	if len(payload) > 0 {
		decoded, err = c.Decompress(payload)
		if err != nil && !errors.As(err, &partial) {
			opts.Metrics.RecordOperation("decompress", c.Name(), err, false, time.Since(start))
			return nil, fmt.Errorf("frame: decompress: %w", err)
		}
	}

	if partial == nil && len(decoded) != int(h.OriginalLength) {
		partial = &codec.PartialDataError{Reason: fmt.Sprintf(
			"length mismatch: decoded %d bytes, header says %d", len(decoded), h.OriginalLength)}
	}
	if partial == nil && hashing.CRC32(decoded) != h.OriginalCRC32 {
		partial = &codec.PartialDataError{Reason: "checksum mismatch"}
	}

	elapsed := time.Since(start)
	opts.Metrics.RecordOperation("decompress", c.Name(), nil, partial != nil, elapsed)
	opts.Metrics.AddBytes("decompress", len(blob), len(decoded))

	if partial != nil {
		opts.Logger.Warn("frame decoded with degraded payload",
			"tag", "frame",
			"codec", c.Name(),
			"reason", partial.Reason,
			"recovered", len(decoded))
		return decoded, partial
	}

	opts.Logger.Debug("frame decoded",
		"tag", "frame",
		"codec", c.Name(),
		"original", len(decoded),
		"legacy", h.Legacy,
		"elapsed", elapsed)
	return decoded, nil
}

// Base64Encode transcodes data with the standard alphabet and '=' padding.
func Base64Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// Base64Decode reverses Base64Encode.
func Base64Decode(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}
