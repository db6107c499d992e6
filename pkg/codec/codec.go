package codec

import "fmt"

// ID is the single-byte codec identifier carried in frame headers.
type ID uint8

// Wire codec identifiers. The space is closed; Zstd is reserved and never
// valid.
const (
	None ID = 0
	RLE  ID = 1
	LZSS ID = 2
	Zstd ID = 3
)

func (id ID) String() string {
	switch id {
	case None:
		return "none"
	case RLE:
		return "rle"
	case LZSS:
		return "lzss"
	case Zstd:
		return "zstd"
	default:
		return fmt.Sprintf("codec(%d)", uint8(id))
	}
}

// Codec compresses and decompresses frame payloads.
type Codec interface {
	// ID returns the wire identifier.
	ID() ID
	// Name returns the codec's registry name.
	Name() string
	// Compress encodes src. Empty input returns ErrEmptyInput.
	Compress(src []byte) ([]byte, error)
	// Decompress decodes src. Recoverable corruption returns the bytes
	// reconstructed so far together with a *PartialDataError.
	Decompress(src []byte) ([]byte, error)
}

// New returns the codec registered under name, configured with opts.
// Unknown names, including the reserved "zstd", fail with ErrUnknownCodec.
func New(name string, opts Options) (Codec, error) {
	switch name {
	case "none":
		return newNone(opts), nil
	case "rle":
		return newRLE(opts), nil
	case "lzss":
		return newLZSS(opts), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
}

// FromID returns the codec for a wire identifier, configured with opts.
func FromID(id ID, opts Options) (Codec, error) {
	switch id {
	case None:
		return newNone(opts), nil
	case RLE:
		return newRLE(opts), nil
	case LZSS:
		return newLZSS(opts), nil
	default:
		return nil, fmt.Errorf("%w: id %d", ErrUnknownCodec, uint8(id))
	}
}

// Names lists the registered codec names in wire-id order.
func Names() []string {
	return []string{"none", "rle", "lzss"}
}
