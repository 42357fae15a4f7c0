// Package telemetry provides observability for Ganymede.
//
// # Overview
//
// The telemetry package implements structured logging, Prometheus metrics,
// and health check endpoints. It provides visibility into the content safety
// pipeline while keeping per-check overhead small.
//
// # Components
//
//   - logging: structured logging with PII redaction
//   - metrics: Prometheus metrics collection
//   - health: liveness, readiness, and version endpoints
//
// # Usage
//
//	logger, err := logging.New(logging.Config{
//	    Level:     cfg.Telemetry.Logging.Level,
//	    Format:    cfg.Telemetry.Logging.Format,
//	    RedactPII: cfg.Telemetry.Logging.RedactPII,
//	})
//
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
//	collector.RecordCheck(metrics.ComponentModerator, metrics.OutcomeFlagged, elapsed)
//
//	checker := health.New(5 * time.Second)
//	health.Register(mux, checker, version, commit, buildTime)
//
// # PII Protection
//
// The logging redactor shares its taxonomy with the content moderator's
// personal-information detection: emails, phone numbers, and street
// addresses are scrubbed from log fields before they are written.
package telemetry
