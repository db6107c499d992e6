// Package frame implements the versioned binary envelope that carries a
// compressed payload across a message channel.
//
// # Frame format
//
// The current format (version 2) is:
//
//	"AC2" | version(1) | codecID(1) | originalLen(4 LE) | originalCRC32(4 LE) | payload
//
// Fields:
//   - version: format version, currently 2; decode rejects anything newer
//   - codecID: wire identifier of the payload codec (see package codec)
//   - originalLen: byte length of the uncompressed payload (little-endian)
//   - originalCRC32: CRC-32 of the uncompressed payload (little-endian)
//   - payload: codec-specific compressed bytes, everything after the header
//
// The legacy format (version 1) has no version byte and a 1-byte-shorter
// header:
//
//	"AC1" | codecID(1) | originalLen(4 LE) | originalCRC32(4 LE) | payload
//
// Legacy frames decode exactly like current frames with an implicit
// version of 1; they are never produced by Encode.
//
// # Text-safe wrapper
//
// Channels that mangle raw bytes can carry a Base64 form instead:
//
//	"AC2B" | Base64(current frame)
//	"AC1B" | Base64(legacy frame)
//
// Decode detects the wrapper by its 4-byte prefix before looking at the
// raw magic, so the shared "AC2"/"AC1" prefix is unambiguous.
//
// # Integrity
//
// Decode validates magic, version, and codec id as terminal errors. After
// decompression it checks the declared length and CRC-32; a mismatch
// downgrades the result to a *codec.PartialDataError with the decoded
// bytes still returned, so callers can choose to use degraded data.
package frame
