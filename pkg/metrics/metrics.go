// Package metrics exposes Prometheus counters for codec operations. The
// collector is an optional collaborator: every recording method is nil-safe,
// so the frame and stream layers behave identically when no metrics are
// wired.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusPartial = "partial"
	statusError   = "error"
)

// Metrics holds the Prometheus instruments for the codec layer.
type Metrics struct {
	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	compressionRatio  *prometheus.HistogramVec
	bytesInTotal      *prometheus.CounterVec
	bytesOutTotal     *prometheus.CounterVec
}

// New creates and registers metrics on the default registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith creates metrics registered on r. Tests pass a fresh registry to
// avoid duplicate-registration panics.
func NewWith(r prometheus.Registerer) *Metrics {
	factory := promauto.With(r)

	return &Metrics{
		operationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wirepack_operations_total",
				Help: "Total codec operations by outcome",
			},
			[]string{"operation", "codec", "status"},
		),
		operationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wirepack_operation_duration_seconds",
				Help:    "Codec operation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "codec"},
		),
		compressionRatio: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wirepack_compression_ratio",
				Help:    "Compressed size divided by original size",
				Buckets: []float64{0.1, 0.25, 0.5, 0.75, 1.0, 1.5, 2.0},
			},
			[]string{"codec"},
		),
		bytesInTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wirepack_bytes_in_total",
				Help: "Bytes handed to codec operations",
			},
			[]string{"operation"},
		),
		bytesOutTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wirepack_bytes_out_total",
				Help: "Bytes produced by codec operations",
			},
			[]string{"operation"},
		),
	}
}

// RecordOperation records one compress/decompress call.
func (m *Metrics) RecordOperation(operation, codec string, err error, partial bool, duration time.Duration) {
	if m == nil {
		return
	}
	status := statusSuccess
	switch {
	case partial:
		status = statusPartial
	case err != nil:
		status = statusError
	}
	m.operationsTotal.WithLabelValues(operation, codec, status).Inc()
	m.operationDuration.WithLabelValues(operation, codec).Observe(duration.Seconds())
}

// ObserveRatio records the compressed/original size ratio for one call.
func (m *Metrics) ObserveRatio(codec string, originalSize, compressedSize int) {
	if m == nil || originalSize == 0 {
		return
	}
	m.compressionRatio.WithLabelValues(codec).Observe(
		float64(compressedSize) / float64(originalSize))
}

// AddBytes records throughput for one call.
func (m *Metrics) AddBytes(operation string, in, out int) {
	if m == nil {
		return
	}
	m.bytesInTotal.WithLabelValues(operation).Add(float64(in))
	m.bytesOutTotal.WithLabelValues(operation).Add(float64(out))
}
