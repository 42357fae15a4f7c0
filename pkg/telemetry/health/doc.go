// Package health provides health check endpoints for Ganymede.
//
// # Overview
//
// The health package implements liveness and readiness probes for Kubernetes
// and other orchestration systems, along with a version information endpoint.
// Component checks are registered by name; readiness aggregates them.
//
// # Endpoints
//
//   - /healthz: liveness probe, indicates the process is running
//   - /readyz: readiness probe, indicates the pipeline can serve traffic
//   - /version: build information (version, commit, build time)
//
// # Usage
//
//	checker := health.New(5 * time.Second)
//
//	// Register component checks
//	checker.RegisterCheck("wordlist", func(ctx context.Context) error {
//	    _, err := os.Stat(overlayPath)
//	    return err
//	})
//
//	mux := http.NewServeMux()
//	health.Register(mux, checker, version, commit, buildTime)
//
// Readiness returns 503 when any registered check fails; liveness always
// returns 200 while the process can answer at all.
package health
