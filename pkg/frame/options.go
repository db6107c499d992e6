package frame

import (
	"io"
	"log/slog"

	"github.com/nyborg/wirepack/pkg/codec"
	"github.com/nyborg/wirepack/pkg/metrics"
)

// Options configures one Encode or Decode call. Options are immutable per
// call; there are no process-wide defaults to mutate.
type Options struct {
	// Codec selects the payload compressor by name. Default "lzss".
	Codec string

	// LZSS tuning, passed through to the codec layer. MinMatch and
	// MaxMatch change the token encoding, so both ends must agree;
	// Window and HashLimit only affect ratio and cost.
	Window    int
	MinMatch  int
	MaxMatch  int
	HashLimit int

	// TextSafe wraps the frame in Base64 with a distinct magic prefix
	// for channels that mangle raw bytes.
	TextSafe bool

	// Scheduler receives cooperative yields for large inputs.
	Scheduler codec.Scheduler

	// Logger receives best-effort diagnostics; logging never fails an
	// operation.
	Logger *slog.Logger

	// Metrics, when non-nil, records operation counts, durations, and
	// compression ratios. The frame layer works identically without it.
	Metrics *metrics.Metrics
}

// DefaultOptions returns the standard configuration: LZSS with default
// tuning, raw binary output.
func DefaultOptions() Options {
	return Options{
		Codec:     "lzss",
		Scheduler: codec.GoScheduler{},
	}
}

func (o Options) withDefaults() Options {
	if o.Codec == "" {
		o.Codec = "lzss"
	}
	if o.Scheduler == nil {
		o.Scheduler = codec.GoScheduler{}
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

func (o Options) codecOptions() codec.Options {
	return codec.Options{
		Window:    o.Window,
		MinMatch:  o.MinMatch,
		MaxMatch:  o.MaxMatch,
		HashLimit: o.HashLimit,
		Scheduler: o.Scheduler,
		Logger:    o.Logger,
	}
}
