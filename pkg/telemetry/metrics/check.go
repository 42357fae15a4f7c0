package metrics

import (
	"time"

	"mercator-hq/ganymede/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// CheckMetrics tracks metrics for content safety checks.
//
// Metrics:
//   - ganymede_checks_total: Total check count by component and outcome
//   - ganymede_check_duration_seconds: Check duration histogram by component
//   - ganymede_violations_total: Detected violations by type
//   - ganymede_content_score: Moderation score distribution (0-100)
//   - ganymede_suspicion_score: Profile suspicion score distribution (0-1)
type CheckMetrics struct {
	// Total check count
	checksTotal *prometheus.CounterVec

	// Check duration histogram
	checkDuration *prometheus.HistogramVec

	// Violation counts by type
	violationsTotal *prometheus.CounterVec

	// Moderation score distribution
	contentScore prometheus.Histogram

	// Suspicion score distribution
	suspicionScore prometheus.Histogram
}

// NewCheckMetrics creates and registers check metrics with the provided registry.
func NewCheckMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *CheckMetrics {
	cm := &CheckMetrics{
		checksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "checks_total",
				Help:      "Total number of content safety checks performed",
			},
			[]string{"component", "outcome"},
		),

		checkDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Name:      "check_duration_seconds",
				Help:      "Duration of content safety checks in seconds",
				// Checks are CPU-bound; sub-millisecond is the common case.
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
			},
			[]string{"component"},
		),

		violationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "violations_total",
				Help:      "Total number of content violations detected by type",
			},
			[]string{"type"},
		),

		contentScore: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Name:      "content_score",
				Help:      "Distribution of moderation scores (100 is clean)",
				Buckets:   []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
			},
		),

		suspicionScore: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Name:      "suspicion_score",
				Help:      "Distribution of profile suspicion scores (0 is clean)",
				Buckets:   prometheus.LinearBuckets(0, 0.1, 11),
			},
		),
	}

	registry.MustRegister(
		cm.checksTotal,
		cm.checkDuration,
		cm.violationsTotal,
		cm.contentScore,
		cm.suspicionScore,
	)

	return cm
}

// RecordCheck records one completed check.
func (cm *CheckMetrics) RecordCheck(component, outcome string, duration time.Duration) {
	cm.checksTotal.WithLabelValues(component, outcome).Inc()
	cm.checkDuration.WithLabelValues(component).Observe(duration.Seconds())
}

// RecordViolation records one detected violation by type.
func (cm *CheckMetrics) RecordViolation(violationType string) {
	cm.violationsTotal.WithLabelValues(violationType).Inc()
}

// ObserveContentScore records a moderation score.
func (cm *CheckMetrics) ObserveContentScore(score int) {
	cm.contentScore.Observe(float64(score))
}

// ObserveSuspicionScore records a profile suspicion score.
func (cm *CheckMetrics) ObserveSuspicionScore(score float64) {
	cm.suspicionScore.Observe(score)
}
