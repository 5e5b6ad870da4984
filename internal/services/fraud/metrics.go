package fraud

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsCollector receives engine outcomes. Implementations must be
// safe for concurrent use and must not block.
type MetricsCollector interface {
	RecordScore(scores RiskScore)
	RecordDecision(decision Decision)
	RecordRejected(reason string)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordScore(RiskScore)   {}
func (n *NoopMetricsCollector) RecordDecision(Decision) {}
func (n *NoopMetricsCollector) RecordRejected(string)   {}

// PrometheusCollector exports engine outcomes as Prometheus metrics.
type PrometheusCollector struct {
	scores    prometheus.Histogram
	decisions *prometheus.CounterVec
	rejected  *prometheus.CounterVec
}

// NewPrometheusCollector registers the engine metrics on reg, or on the
// default registerer when reg is nil.
func NewPrometheusCollector(reg prometheus.Registerer) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusCollector{
		scores: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pulsepay",
			Subsystem: "fraud",
			Name:      "risk_score",
			Help:      "Final fraud risk score per scored transaction.",
			Buckets:   prometheus.LinearBuckets(0.05, 0.05, 19),
		}),
		decisions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pulsepay",
			Subsystem: "fraud",
			Name:      "decisions_total",
			Help:      "Scoring decisions by outcome.",
		}, []string{"decision"}),
		rejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pulsepay",
			Subsystem: "fraud",
			Name:      "rejected_total",
			Help:      "Transactions rejected before scoring, by reason.",
		}, []string{"reason"}),
	}
}

func (c *PrometheusCollector) RecordScore(scores RiskScore) {
	c.scores.Observe(scores.FraudRiskScore)
}

func (c *PrometheusCollector) RecordDecision(decision Decision) {
	c.decisions.WithLabelValues(string(decision)).Inc()
}

func (c *PrometheusCollector) RecordRejected(reason string) {
	c.rejected.WithLabelValues(reason).Inc()
}
