package ranking

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metric names.
const (
	MetricRankCallsTotal       = "joby_rank_calls_total"
	MetricCandidatesScored     = "joby_rank_candidates_scored_total"
	MetricCandidatesKept       = "joby_rank_candidates_kept_total"
	MetricCandidateScoreValues = "joby_rank_candidate_score"
)

// Metrics records ranking activity in Prometheus collectors.
// It implements Observer and is safe for concurrent use.
type Metrics struct {
	calls  prometheus.Counter
	scored prometheus.Counter
	kept   prometheus.Counter
	scores prometheus.Histogram
}

// NewMetrics creates the collectors. They are not registered; call Register.
func NewMetrics() *Metrics {
	return &Metrics{
		calls: prometheus.NewCounter(prometheus.CounterOpts{
			Name: MetricRankCallsTotal,
			Help: "Total number of ranking calls",
		}),
		scored: prometheus.NewCounter(prometheus.CounterOpts{
			Name: MetricCandidatesScored,
			Help: "Total number of candidates scored",
		}),
		kept: prometheus.NewCounter(prometheus.CounterOpts{
			Name: MetricCandidatesKept,
			Help: "Total number of candidates returned after threshold and limit",
		}),
		scores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    MetricCandidateScoreValues,
			Help:    "Distribution of candidate match scores",
			Buckets: prometheus.LinearBuckets(10, 10, 10),
		}),
	}
}

// Register registers all collectors with reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.calls, m.scored, m.kept, m.scores} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// ObserveRank implements Observer.
func (m *Metrics) ObserveRank(scored int, kept int, scores []int) {
	if m == nil {
		return
	}
	m.calls.Inc()
	m.scored.Add(float64(scored))
	m.kept.Add(float64(kept))
	for _, s := range scores {
		m.scores.Observe(float64(s))
	}
}
