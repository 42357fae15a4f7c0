package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"mercator-hq/ganymede/pkg/config"
	"mercator-hq/ganymede/pkg/pipeline"
	"mercator-hq/ganymede/pkg/server/handlers"
	"mercator-hq/ganymede/pkg/server/middleware"
	"mercator-hq/ganymede/pkg/telemetry/health"
	"mercator-hq/ganymede/pkg/telemetry/logging"
	"mercator-hq/ganymede/pkg/telemetry/metrics"
)

// BuildInfo identifies the running binary on the version endpoint.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildTime string
}

// Server is the HTTP facade over the content safety pipeline.
type Server struct {
	config    *config.Config
	processor *pipeline.Processor
	reloader  *pipeline.WordlistReloader
	logger    *logging.Logger
	collector *metrics.Collector
	checker   *health.Checker
	buildInfo BuildInfo

	httpServer   *http.Server
	shutdownChan chan struct{}
	shutdownOnce sync.Once
	mu           sync.RWMutex
	isRunning    bool
}

// NewServer creates a server from the given configuration. It builds the
// processing pipeline, the wordlist reloader, and the health checker, but
// opens no sockets until Start.
func NewServer(cfg *config.Config, logger *logging.Logger, collector *metrics.Collector, info BuildInfo) (*Server, error) {
	processor, err := pipeline.NewProcessor(cfg, logger, collector)
	if err != nil {
		return nil, fmt.Errorf("failed to create processor: %w", err)
	}

	var reloader *pipeline.WordlistReloader
	if cfg.Moderation.WordlistPath != "" {
		reloader = pipeline.NewWordlistReloader(&cfg.Moderation, processor.Moderator(), logger, collector)
	}

	checker := health.New(0)
	if cfg.Moderation.WordlistPath != "" {
		path := cfg.Moderation.WordlistPath
		checker.RegisterCheck("wordlist", func(ctx context.Context) error {
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("wordlist overlay unavailable: %w", err)
			}
			return nil
		})
	}

	return &Server{
		config:       cfg,
		processor:    processor,
		reloader:     reloader,
		logger:       logger.With("component", "server"),
		collector:    collector,
		checker:      checker,
		buildInfo:    info,
		shutdownChan: make(chan struct{}, 1),
	}, nil
}

// Start starts the reloader and the HTTP server, then blocks until the
// context is cancelled, a termination signal arrives, or the listener
// fails.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return fmt.Errorf("server is already running")
	}
	s.isRunning = true
	s.mu.Unlock()

	if s.reloader != nil {
		if err := s.reloader.Start(ctx); err != nil {
			return fmt.Errorf("failed to start wordlist reloader: %w", err)
		}
	}

	s.httpServer = &http.Server{
		Addr:           s.config.Server.ListenAddress,
		Handler:        s.Handler(),
		ReadTimeout:    s.config.Server.ReadTimeout,
		WriteTimeout:   s.config.Server.WriteTimeout,
		IdleTimeout:    s.config.Server.IdleTimeout,
		MaxHeaderBytes: s.config.Server.MaxHeaderBytes,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", "address", s.config.Server.ListenAddress)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-ctx.Done():
		s.logger.Info("context cancelled, initiating shutdown")
		return s.Shutdown(context.Background())
	case sig := <-sigChan:
		s.logger.Info("received shutdown signal", "signal", sig.String())
		return s.Shutdown(context.Background())
	case err := <-errChan:
		_ = s.Shutdown(context.Background())
		return err
	case <-s.shutdownChan:
		return s.Shutdown(context.Background())
	}
}

// RequestShutdown asks a blocked Start call to shut down. Safe to call from
// another goroutine.
func (s *Server) RequestShutdown() {
	select {
	case s.shutdownChan <- struct{}{}:
	default:
	}
}

// Shutdown drains in-flight requests within the configured shutdown timeout
// and stops the wordlist reloader.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.mu.Lock()
		if !s.isRunning {
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		s.logger.Info("initiating graceful shutdown",
			"timeout", s.config.Server.ShutdownTimeout.String())

		shutdownCtx, cancel := context.WithTimeout(ctx, s.config.Server.ShutdownTimeout)
		defer cancel()

		if s.httpServer != nil {
			if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
				s.logger.Error("error during server shutdown", "error", err)
				shutdownErr = fmt.Errorf("server shutdown error: %w", err)
			}
		}

		if s.reloader != nil {
			s.reloader.Stop()
		}

		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()

		s.logger.Info("server stopped")
	})

	return shutdownErr
}

// IsRunning reports whether the server is accepting requests.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// Handler returns the fully assembled HTTP handler, including routes and
// the middleware chain. Exposed for tests and embedding.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/v1/sanitize", handlers.NewSanitizeHandler(s.processor))
	mux.Handle("/v1/moderate", handlers.NewModerateHandler(s.processor))
	mux.Handle("/v1/moderate/name", handlers.NewNameHandler(s.processor))
	mux.Handle("/v1/profile/analyze", handlers.NewProfileHandler(s.processor))
	mux.Handle("/v1/profile/behavior", handlers.NewBehaviorHandler(s.processor))

	health.Register(mux, s.checker, s.buildInfo.Version, s.buildInfo.Commit, s.buildInfo.BuildTime)

	if s.config.Telemetry.Metrics.Enabled {
		mux.Handle(s.config.Telemetry.Metrics.Path, s.collector.Handler())
	}

	var handler http.Handler = mux
	handler = middleware.Timeout(s.config.Server.RequestTimeout)(handler)
	handler = middleware.BodyLimit(s.config.Server.MaxBodyBytes)(handler)
	handler = middleware.CORS(&s.config.Server.CORS)(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Logging(s.logger)(handler)
	handler = middleware.Recovery(s.logger)(handler)

	return handler
}

// Processor exposes the underlying pipeline processor.
func (s *Server) Processor() *pipeline.Processor {
	return s.processor
}
