package frame

// Frame format constants.
const (
	Magic           = "AC2"  // current format, version byte follows
	MagicLegacy     = "AC1"  // legacy format, implicit version 1
	MagicText       = "AC2B" // Base64-wrapped current frame
	MagicTextLegacy = "AC1B" // Base64-wrapped legacy frame

	Version    = 2 // version written by Encode
	MaxVersion = 2 // newest version Decode understands

	headerSize       = 13 // magic(3) + version(1) + codec(1) + len(4) + crc(4)
	headerSizeLegacy = 12 // magic(3) + codec(1) + len(4) + crc(4)
)
