// Package codec implements the payload compressors used inside wirepack
// frames: a pass-through codec, run-length encoding, and an LZSS
// sliding-window compressor.
//
// # Contract
//
// Every codec exposes Compress and Decompress over byte slices. Empty input
// is reported with ErrEmptyInput rather than producing an empty token
// stream. Decompress never discards data on recoverable corruption: when a
// token stream is truncated or a back-reference points before the start of
// the output, the bytes reconstructed so far are returned together with a
// *PartialDataError describing what went wrong. Callers decide whether
// degraded data is acceptable.
//
// # Identifiers
//
// Codecs are identified on the wire by a single byte:
//
//	0  none   pass-through
//	1  rle    run-length encoding
//	2  lzss   sliding-window dictionary
//	3  zstd   reserved, never valid
//
// The id space is closed: unknown ids and the reserved zstd id fail with
// ErrUnknownCodec at both compress and decompress time.
//
// # Cooperative yielding
//
// Inputs larger than LargeInputThreshold trigger a single cooperative yield
// through the configured Scheduler before processing, so a long compression
// does not monopolize a shared run loop. Yielding has no observable effect
// beyond latency.
package codec
