// Package server provides the HTTP server for the content safety pipeline.
//
// This package ties together the pipeline processor, the wordlist reloader,
// and the telemetry endpoints, and manages server lifecycle including start,
// graceful shutdown, and OS signal handling.
//
// # Basic Usage
//
//	cfg, err := config.LoadConfigWithEnvOverrides("config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	logger, err := logging.New(logging.Config{
//	    Level:     cfg.Telemetry.Logging.Level,
//	    Format:    cfg.Telemetry.Logging.Format,
//	    RedactPII: cfg.Telemetry.Logging.RedactPII,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
//	srv, err := server.NewServer(cfg, logger, collector, server.BuildInfo{Version: "dev"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := srv.Start(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
//
// # Routes
//
//   - POST /v1/sanitize - Sanitize text at a chosen level
//   - POST /v1/moderate - Moderate a piece of text
//   - POST /v1/moderate/name - Validate a display name
//   - POST /v1/profile/analyze - Score a profile for fake-profile signals
//   - POST /v1/profile/behavior - Score an activity snapshot
//   - GET /healthz - Liveness probe
//   - GET /readyz - Readiness probe (checks wordlist availability)
//   - GET /version - Build information
//   - GET /metrics - Prometheus metrics (when enabled)
//
// # Middleware Chain
//
// Requests pass through the following middleware (outermost to innermost):
//  1. Recovery: converts panics into 500 responses
//  2. Logging: one structured log line per request
//  3. RequestID: correlation IDs in context and headers
//  4. CORS: Cross-Origin Resource Sharing headers
//  5. BodyLimit: caps request body size
//  6. Timeout: per-request deadline
//
// # Graceful Shutdown
//
// Start blocks until the context is cancelled or SIGTERM/SIGINT arrives,
// then drains in-flight requests within the configured shutdown timeout and
// stops the wordlist reloader.
package server
