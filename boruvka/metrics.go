package boruvka

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the Prometheus collectors updated by CalcMST.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	runs          prometheus.Counter
	rounds        prometheus.Counter
	merges        prometheus.Counter
	roundDuration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// Registration fails if collectors with the same names already exist in reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "boruvka",
			Name:      "runs_total",
			Help:      "The total number of completed spanning forest computations.",
		}),
		rounds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "boruvka",
			Name:      "rounds_total",
			Help:      "The total number of Borůvka rounds executed, including the final round without merges.",
		}),
		merges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "boruvka",
			Name:      "merges_total",
			Help:      "The total number of edges accepted into a spanning forest.",
		}),
		roundDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "boruvka",
			Name:      "round_duration_seconds",
			Help:      "The latency distribution of a single Borůvka round.",
			// lowest bucket start of upper bound 0.0001 sec (0.1 ms) with factor 4
			// highest bucket start of 0.0001 sec * 4^9 == 26.2144 sec
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
	for _, c := range []prometheus.Collector{m.runs, m.rounds, m.merges, m.roundDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) observeRound(merged int, took time.Duration) {
	if m == nil {
		return
	}
	m.rounds.Inc()
	m.merges.Add(float64(merged))
	m.roundDuration.Observe(took.Seconds())
}

func (m *Metrics) observeRun() {
	if m == nil {
		return
	}
	m.runs.Inc()
}
