package metrics

import (
	"time"

	"mercator-hq/ganymede/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// Component label values for check metrics.
const (
	ComponentSanitizer = "sanitizer"
	ComponentModerator = "moderator"
	ComponentAnalyzer  = "analyzer"
)

// Outcome label values for check metrics.
const (
	OutcomeClean   = "clean"
	OutcomeFlagged = "flagged"
)

// Collector is the main orchestrator for all Prometheus metrics in Ganymede.
// It manages metric registration and provides a unified interface for
// recording metrics across the pipeline components.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	// Check metrics (per-component counts, durations, scores)
	checkMetrics *CheckMetrics

	// Wordlist metrics (overlay reload outcomes)
	wordlistMetrics *WordlistMetrics
}

// NewCollector creates a new metrics collector with the specified
// configuration and Prometheus registry. If registry is nil, a fresh
// registry is created.
//
// Example:
//
//	cfg := &config.MetricsConfig{
//		Enabled:   true,
//		Namespace: "ganymede",
//	}
//	collector := metrics.NewCollector(cfg, nil)
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	if cfg.Namespace == "" {
		cfg.Namespace = "ganymede"
	}

	return &Collector{
		config:          cfg,
		registry:        registry,
		checkMetrics:    NewCheckMetrics(cfg, registry),
		wordlistMetrics: NewWordlistMetrics(cfg, registry),
	}
}

// RecordCheck records one completed check.
//
// Parameters:
//   - component: pipeline component name ("sanitizer", "moderator", "analyzer")
//   - outcome: check outcome ("clean", "flagged")
//   - duration: time the check took
func (c *Collector) RecordCheck(component, outcome string, duration time.Duration) {
	if !c.config.Enabled {
		return
	}

	c.checkMetrics.RecordCheck(component, outcome, duration)
}

// RecordViolation records one detected content violation by type
// (e.g. "profanity", "spam", "personal_info").
func (c *Collector) RecordViolation(violationType string) {
	if !c.config.Enabled {
		return
	}

	c.checkMetrics.RecordViolation(violationType)
}

// ObserveContentScore records a moderation score on the 0-100 scale.
func (c *Collector) ObserveContentScore(score int) {
	if !c.config.Enabled {
		return
	}

	c.checkMetrics.ObserveContentScore(score)
}

// ObserveSuspicionScore records a profile suspicion score in [0,1].
func (c *Collector) ObserveSuspicionScore(score float64) {
	if !c.config.Enabled {
		return
	}

	c.checkMetrics.ObserveSuspicionScore(score)
}

// RecordWordlistReload records one overlay reload attempt with its outcome
// ("success", "error").
func (c *Collector) RecordWordlistReload(outcome string) {
	if !c.config.Enabled {
		return
	}

	c.wordlistMetrics.RecordReload(outcome)
}

// Registry returns the Prometheus registry used by this collector.
// This can be used to create an HTTP handler for the /metrics endpoint:
//
//	http.Handle("/metrics", promhttp.HandlerFor(
//		collector.Registry(),
//		promhttp.HandlerOpts{},
//	))
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
