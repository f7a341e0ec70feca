package metrics

import (
	"strings"
	"testing"

	"github.com/henderiw/collatzsearch/pkg/collatz"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMetrics(t *testing.T) *SearchMetrics {
	t.Helper()
	return NewSearchMetrics(prometheus.NewRegistry())
}

func TestSearchMetrics_Searcher(t *testing.T) {
	m := newTestMetrics(t)
	s := collatz.New(5, collatz.WithObserver(m), collatz.WithReportInterval(2))

	for s.Base() < 6 {
		_, err := s.Step()
		require.NoError(t, err)
	}

	// Four steps: checkpoints before steps 0 and 2.
	assert.Equal(t, float64(2), testutil.ToFloat64(m.Checkpoints))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.Steps))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ValidatedIntervals))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.BasesProven))
	assert.Equal(t, float64(5), testutil.ToFloat64(m.LastProvenBase))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.CyclesFound))
}

func TestSearchMetrics_CycleFound(t *testing.T) {
	m := newTestMetrics(t)

	m.CycleFound(2)

	if val := testutil.ToFloat64(m.CyclesFound); val != 1 {
		t.Errorf("CyclesFound = %f, want 1", val)
	}
}

func TestSearchMetrics_Registered(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewSearchMetrics(reg)
	m.Proven(41, 124)

	want := `
# HELP collatz_search_bases_proven_total Total bases shown to reach a validated value
# TYPE collatz_search_bases_proven_total counter
collatz_search_bases_proven_total 1
`
	err := testutil.GatherAndCompare(reg, strings.NewReader(want), "collatz_search_bases_proven_total")
	assert.NoError(t, err)

	// A second set of metrics on the same registry collides.
	assert.Panics(t, func() { NewSearchMetrics(reg) })
}
