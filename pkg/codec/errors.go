package codec

import "errors"

// Package errors. Terminal conditions are sentinel values; recoverable
// decode corruption is reported through *PartialDataError so the decoded
// bytes can travel with it.
var (
	ErrEmptyInput   = errors.New("codec: empty input")
	ErrUnknownCodec = errors.New("codec: unknown codec")
)

// PartialDataError reports that decompression hit truncated or malformed
// input but reconstructed a usable prefix. The decoded bytes are returned
// alongside the error; callers should treat them as degraded.
type PartialDataError struct {
	Reason string
}

func (e *PartialDataError) Error() string {
	return "codec: partial data recovered: " + e.Reason
}

// IsPartial reports whether err is a partial-data condition.
func IsPartial(err error) bool {
	var p *PartialDataError
	return errors.As(err, &p)
}
