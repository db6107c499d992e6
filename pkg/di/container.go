// Package di provides dependency injection container
package di

import (
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nyborg/wirepack/pkg/codec"
	"github.com/nyborg/wirepack/pkg/config"
	"github.com/nyborg/wirepack/pkg/frame"
	"github.com/nyborg/wirepack/pkg/metrics"
)

// Container holds all the dependencies for the application
type Container struct {
	config   *config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *metrics.Metrics
}

// NewContainer creates a new dependency injection container from a
// configuration. Logging goes to stderr so command output on stdout stays
// pipeable. Each container carries its own metrics registry, so containers
// can be created freely without duplicate-registration panics.
func NewContainer(cfg *config.Config) *Container {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	registry := prometheus.NewRegistry()
	return &Container{
		config:   cfg,
		logger:   newLogger(os.Stderr, cfg.Logging.Level),
		registry: registry,
		metrics:  metrics.NewWith(registry),
	}
}

// GetConfig returns the active configuration
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetLogger returns the application logger
func (c *Container) GetLogger() *slog.Logger {
	return c.logger
}

// GetMetrics returns the metrics recorder
func (c *Container) GetMetrics() *metrics.Metrics {
	return c.metrics
}

// GetRegistry returns the container's metrics registry, for hosts that
// want to expose or gather the instruments.
func (c *Container) GetRegistry() *prometheus.Registry {
	return c.registry
}

// SetLogger allows overriding the logger (for testing)
func (c *Container) SetLogger(logger *slog.Logger) {
	c.logger = logger
}

// SetMetrics allows overriding the metrics recorder (for testing)
func (c *Container) SetMetrics(m *metrics.Metrics) {
	c.metrics = m
}

// FrameOptions builds frame options from the container's configuration.
func (c *Container) FrameOptions() frame.Options {
	opts := frame.DefaultOptions()
	opts.Codec = c.config.DefaultCodec
	opts.TextSafe = c.config.TextSafe
	opts.Window = c.config.LZSS.Window
	opts.MinMatch = c.config.LZSS.MinMatch
	opts.MaxMatch = c.config.LZSS.MaxMatch
	opts.HashLimit = c.config.LZSS.HashLimit
	opts.Scheduler = codec.GoScheduler{}
	opts.Logger = c.logger
	opts.Metrics = c.metrics
	return opts
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
