package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordOperation(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWith(reg)

	m.RecordOperation("compress", "lzss", nil, false, 5*time.Millisecond)
	m.RecordOperation("decompress", "lzss", nil, true, time.Millisecond)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["wirepack_operations_total"])
	assert.True(t, names["wirepack_operation_duration_seconds"])

	count := testutil.ToFloat64(
		m.operationsTotal.WithLabelValues("compress", "lzss", "success"))
	assert.Equal(t, 1.0, count)

	partial := testutil.ToFloat64(
		m.operationsTotal.WithLabelValues("decompress", "lzss", "partial"))
	assert.Equal(t, 1.0, partial)
}

func TestBytesAndRatio(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWith(reg)

	m.AddBytes("compress", 1000, 300)
	m.ObserveRatio("lzss", 1000, 300)

	assert.Equal(t, 1000.0, testutil.ToFloat64(m.bytesInTotal.WithLabelValues("compress")))
	assert.Equal(t, 300.0, testutil.ToFloat64(m.bytesOutTotal.WithLabelValues("compress")))
}

// TestNilReceiver checks the optional-collaborator contract: a nil Metrics
// must be safe everywhere.
func TestNilReceiver(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordOperation("compress", "rle", nil, false, time.Second)
		m.ObserveRatio("rle", 100, 50)
		m.AddBytes("compress", 100, 50)
	})
}
