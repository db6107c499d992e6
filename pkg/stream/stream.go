// Package stream provides incremental compression sessions. A Session
// accumulates input across Update calls and flushes the buffer into a
// complete frame whenever it crosses the chunk threshold; Final flushes
// the remainder and returns the concatenation of every frame produced.
//
// The decode side is deliberately asymmetric: Decompress recovers the
// first frame found at the start of a blob and does not loop over
// subsequent frames. Callers whose sessions stay under the chunk threshold
// get exact round trips; multi-frame blobs decode degraded.
package stream

import (
	"errors"
	"io"
	"log/slog"

	"github.com/segmentio/ksuid"

	"github.com/nyborg/wirepack/pkg/codec"
	"github.com/nyborg/wirepack/pkg/frame"
	"github.com/nyborg/wirepack/pkg/hashing"
)

// DefaultChunkThreshold is the buffer size that triggers an automatic
// flush during Update.
const DefaultChunkThreshold = 64 * 1024

// ErrSessionFinalized is returned by Update once Final has run.
var ErrSessionFinalized = errors.New("stream: session already finalized")

// Options configures a Session.
type Options struct {
	// Frame carries the codec selection and tuning used for every
	// flushed frame.
	Frame frame.Options
	// ChunkThreshold is the buffer size that triggers a flush.
	// Default 64 KiB.
	ChunkThreshold int
	// Logger receives session diagnostics keyed by session id.
	Logger *slog.Logger
}

// Session accumulates bytes and flushes them into frames. Sessions are not
// safe for concurrent use; one logical producer feeds one session.
type Session struct {
	id        ksuid.KSUID
	opts      Options
	buf       []byte
	frames    [][]byte
	totalIn   int
	crc       uint32
	finalized bool
}

// Stats is a snapshot of a session's counters.
type Stats struct {
	SessionID    string
	Frames       int
	TotalIn      int
	Buffered     int
	RunningCRC32 uint32
	Finalized    bool
}

// NewSession opens a session compressing with the named codec. An empty
// codec name keeps whatever opts.Frame carries (default "lzss").
func NewSession(codecName string, opts Options) *Session {
	if codecName != "" {
		opts.Frame.Codec = codecName
	}
	if opts.ChunkThreshold <= 0 {
		opts.ChunkThreshold = DefaultChunkThreshold
	}
	if opts.Frame.Scheduler == nil {
		opts.Frame.Scheduler = codec.GoScheduler{}
	}
	if opts.Logger == nil {
		if opts.Frame.Logger != nil {
			opts.Logger = opts.Frame.Logger
		} else {
			opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		}
	}

	s := &Session{id: ksuid.New(), opts: opts}
	s.opts.Logger.Debug("stream session opened",
		"tag", "stream",
		"session", s.id.String(),
		"codec", opts.Frame.Codec,
		"chunk_threshold", opts.ChunkThreshold)
	return s
}

// Update appends p to the session buffer, recomputes the running checksum
// over the unflushed buffer, and flushes a frame when the buffer reaches
// the chunk threshold.
func (s *Session) Update(p []byte) error {
	if s.finalized {
		return ErrSessionFinalized
	}
	if len(p) == 0 {
		return codec.ErrEmptyInput
	}

	s.opts.Frame.Scheduler.YieldIfLarge(len(p))

	s.buf = append(s.buf, p...)
	s.totalIn += len(p)
	s.crc = hashing.CRC32(s.buf)

	if len(s.buf) >= s.opts.ChunkThreshold {
		return s.flush()
	}
	return nil
}

// flush frames the current buffer, appends it to the session output, and
// resets the buffer.
func (s *Session) flush() error {
	framed, err := frame.Build(s.buf, s.opts.Frame)
	if err != nil {
		return err
	}
	s.frames = append(s.frames, framed)

	s.opts.Logger.Debug("stream chunk flushed",
		"tag", "stream",
		"session", s.id.String(),
		"frame", len(s.frames),
		"buffered", len(s.buf),
		"framed", len(framed))

	s.buf = s.buf[:0]
	s.crc = 0
	return nil
}

// Final flushes whatever remains in the buffer, even an empty remainder
// for a non-empty session, and returns the concatenation of all frames
// produced over the session's lifetime. A session that never received data
// reports ErrEmptyInput. Repeated calls return the same bytes.
func (s *Session) Final() ([]byte, error) {
	if s.totalIn == 0 {
		return nil, codec.ErrEmptyInput
	}

	if !s.finalized {
		if err := s.flush(); err != nil {
			return nil, err
		}
		s.finalized = true
	}

	size := 0
	for _, f := range s.frames {
		size += len(f)
	}
	out := make([]byte, 0, size)
	for _, f := range s.frames {
		out = append(out, f...)
	}

	s.opts.Logger.Debug("stream session finalized",
		"tag", "stream",
		"session", s.id.String(),
		"frames", len(s.frames),
		"total_in", s.totalIn,
		"total_out", len(out))
	return out, nil
}

// Stats returns a snapshot of the session counters.
func (s *Session) Stats() Stats {
	return Stats{
		SessionID:    s.id.String(),
		Frames:       len(s.frames),
		TotalIn:      s.totalIn,
		Buffered:     len(s.buf),
		RunningCRC32: s.crc,
		Finalized:    s.finalized,
	}
}

// Decompress decodes the first frame at the start of blob. It does not
// loop over subsequent frames: a blob produced by a session that flushed
// more than once decodes degraded. Sessions that stayed under the chunk
// threshold round-trip exactly.
func Decompress(blob []byte, opts frame.Options) ([]byte, error) {
	return frame.Decode(blob, opts)
}
