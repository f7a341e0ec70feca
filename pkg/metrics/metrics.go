package metrics

import (
	"github.com/henderiw/collatzsearch/pkg/intervalset"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "collatz"
	searchSubsystem  = "search"
)

// SearchMetrics exports the progress of a collatz.Searcher. It satisfies
// collatz.Observer.
type SearchMetrics struct {
	// Checkpoints counts checkpoints reported by the searcher.
	Checkpoints prometheus.Counter

	// Steps is the step counter at the last checkpoint.
	Steps prometheus.Gauge

	// ValidatedIntervals is the number of intervals in the validated set
	// at the last checkpoint.
	ValidatedIntervals prometheus.Gauge

	// BasesProven counts bases shown to reach a validated value.
	BasesProven prometheus.Counter

	// LastProvenBase is the most recently proven base.
	LastProvenBase prometheus.Gauge

	// CyclesFound counts detected non-trivial cycles. Anything but zero is
	// a counterexample.
	CyclesFound prometheus.Counter
}

// NewSearchMetrics creates the metrics and registers them with reg.
func NewSearchMetrics(reg prometheus.Registerer) *SearchMetrics {
	f := promauto.With(reg)
	return &SearchMetrics{
		Checkpoints: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: searchSubsystem,
			Name:      "checkpoints_total",
			Help:      "Total checkpoints reported by the searcher",
		}),
		Steps: f.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: searchSubsystem,
			Name:      "steps",
			Help:      "Collatz steps taken as of the last checkpoint",
		}),
		ValidatedIntervals: f.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: searchSubsystem,
			Name:      "validated_intervals",
			Help:      "Intervals in the validated set as of the last checkpoint",
		}),
		BasesProven: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: searchSubsystem,
			Name:      "bases_proven_total",
			Help:      "Total bases shown to reach a validated value",
		}),
		LastProvenBase: f.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: searchSubsystem,
			Name:      "last_proven_base",
			Help:      "Most recently proven base",
		}),
		CyclesFound: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: searchSubsystem,
			Name:      "cycles_found_total",
			Help:      "Total non-trivial cycles detected",
		}),
	}
}

func (m *SearchMetrics) Checkpoint(step uint64, validated []intervalset.Interval[uint64]) {
	m.Checkpoints.Inc()
	m.Steps.Set(float64(step))
	m.ValidatedIntervals.Set(float64(len(validated)))
}

func (m *SearchMetrics) Proven(base, _ uint64) {
	m.BasesProven.Inc()
	m.LastProvenBase.Set(float64(base))
}

func (m *SearchMetrics) CycleFound(uint64) {
	m.CyclesFound.Inc()
}
