package metrics

import (
	"mercator-hq/ganymede/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// Reload outcome label values.
const (
	ReloadSuccess = "success"
	ReloadError   = "error"
)

// WordlistMetrics tracks metrics for wordlist overlay reloads.
//
// Metrics:
//   - ganymede_wordlist_reloads_total: Reload attempts by outcome
type WordlistMetrics struct {
	reloadsTotal *prometheus.CounterVec
}

// NewWordlistMetrics creates and registers wordlist metrics with the
// provided registry.
func NewWordlistMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *WordlistMetrics {
	wm := &WordlistMetrics{
		reloadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "wordlist_reloads_total",
				Help:      "Total number of wordlist overlay reload attempts by outcome",
			},
			[]string{"outcome"},
		),
	}

	registry.MustRegister(wm.reloadsTotal)

	return wm
}

// RecordReload records one reload attempt.
func (wm *WordlistMetrics) RecordReload(outcome string) {
	wm.reloadsTotal.WithLabelValues(outcome).Inc()
}
