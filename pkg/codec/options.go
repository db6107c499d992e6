package codec

import (
	"io"
	"log/slog"
)

// LZSS tuning defaults. MinMatch and MaxMatch are part of the token
// encoding: both sides of the wire must agree on them.
const (
	DefaultWindow    = 4096
	DefaultMinMatch  = 3
	DefaultMaxMatch  = 18
	DefaultHashLimit = 12
)

// Options configures a codec instance. The zero value is usable; missing
// fields are filled from the defaults above. Options are immutable per
// call: codecs never mutate them and keep no state between calls.
type Options struct {
	// Window is the maximum backward distance for LZSS matches,
	// capped at 4096 by the 12-bit distance field.
	Window int
	// MinMatch is the shortest back-reference worth encoding.
	MinMatch int
	// MaxMatch is the longest back-reference; capped at MinMatch+15 by
	// the 4-bit length field.
	MaxMatch int
	// HashLimit bounds the candidate positions retained per 2-byte
	// prefix during match search.
	HashLimit int
	// Scheduler receives cooperative yields for large inputs.
	Scheduler Scheduler
	// Logger receives best-effort diagnostics. Logging never fails an
	// operation.
	Logger *slog.Logger
}

// DefaultOptions returns the standard tuning with a Go-runtime scheduler.
func DefaultOptions() Options {
	return Options{
		Window:    DefaultWindow,
		MinMatch:  DefaultMinMatch,
		MaxMatch:  DefaultMaxMatch,
		HashLimit: DefaultHashLimit,
		Scheduler: GoScheduler{},
	}
}

// normalize fills zero fields and clamps values the token format cannot
// represent.
func (o Options) normalize() Options {
	if o.Window <= 0 {
		o.Window = DefaultWindow
	}
	if o.Window > DefaultWindow {
		o.Window = DefaultWindow
	}
	if o.MinMatch <= 0 {
		o.MinMatch = DefaultMinMatch
	}
	if o.MinMatch < 2 {
		o.MinMatch = 2
	}
	if o.MaxMatch <= 0 {
		o.MaxMatch = o.MinMatch + 15
	}
	if o.MaxMatch > o.MinMatch+15 {
		o.MaxMatch = o.MinMatch + 15
	}
	if o.MaxMatch < o.MinMatch {
		o.MaxMatch = o.MinMatch
	}
	if o.HashLimit <= 0 {
		o.HashLimit = DefaultHashLimit
	}
	if o.Scheduler == nil {
		o.Scheduler = GoScheduler{}
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}
