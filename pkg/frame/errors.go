package frame

import "errors"

// Terminal framing errors. None of these carry partial data: a frame that
// fails these checks was never decoded.
var (
	ErrBadMagic           = errors.New("frame: bad magic")
	ErrTruncatedHeader    = errors.New("frame: truncated header")
	ErrUnsupportedVersion = errors.New("frame: unsupported version")
)
