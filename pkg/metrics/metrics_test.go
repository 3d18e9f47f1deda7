package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Registers(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New("directory", reg)

	m.ObserveQuery("search_index.select", time.Now(), nil)
	m.ObserveQuery("search_index.select", time.Now(), errors.New("boom"))
	m.IncContact("relayed")
	m.IncSearchDegraded()
	m.IncCache("specialties", true)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DatabaseOperations.WithLabelValues("search_index.select", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DatabaseOperations.WithLabelValues("search_index.select", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SearchDegraded))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("specialties", "hit")))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestNilMetrics_IsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveQuery("x", time.Now(), nil)
		m.IncContact("logged")
		m.IncSearchDegraded()
		m.IncCache("x", false)
	})
}
