// Package metrics provides Prometheus metrics collection for Ganymede.
//
// # Overview
//
// The metrics package implements Prometheus metrics for monitoring the
// content safety pipeline: check volumes and latencies per component,
// detected violations by type, score distributions, and wordlist overlay
// reloads.
//
// # Metrics
//
//   - ganymede_checks_total{component,outcome}: checks performed
//   - ganymede_check_duration_seconds{component}: check latency histogram
//   - ganymede_violations_total{type}: violations detected
//   - ganymede_content_score: moderation score distribution (0-100)
//   - ganymede_suspicion_score: suspicion score distribution (0-1)
//   - ganymede_wordlist_reloads_total{outcome}: overlay reload attempts
//
// # Usage
//
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
//
//	start := time.Now()
//	violations := moderator.Violations(text)
//	outcome := metrics.OutcomeClean
//	if len(violations) > 0 {
//	    outcome = metrics.OutcomeFlagged
//	}
//	collector.RecordCheck(metrics.ComponentModerator, outcome, time.Since(start))
//
//	http.Handle("/metrics", collector.Handler())
//
// # Cardinality
//
// All label values are drawn from small fixed sets (three components, two
// outcomes, five violation types), so cardinality stays bounded without a
// limiter.
package metrics
