// Package pipeline composes the sanitizer, moderator, and fake profile
// analyzer into a single processing facade.
//
// # Overview
//
// The Processor is the entry point used by the HTTP server and the CLI. It
// wires the three content safety components together with structured logging
// and Prometheus metrics, so callers get observability without touching the
// component packages directly:
//
//   - Sanitize strips attack vectors from raw text.
//   - CheckText sanitizes and then moderates a piece of user content.
//   - CheckName validates a display name.
//   - CheckProfile and CheckBehavior score profiles and activity snapshots.
//
// The WordlistReloader keeps the moderator's term overlay in sync with a
// YAML file on disk, via filesystem notifications, a cron schedule, or both.
//
// # Usage
//
//	cfg := config.NewDefaultConfig()
//	proc, err := pipeline.NewProcessor(cfg, logger, collector)
//	if err != nil {
//		return err
//	}
//	result := proc.CheckText(ctx, userMessage)
//	if !result.Appropriate {
//		reject(result.Violations)
//	}
package pipeline
