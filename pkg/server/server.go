package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/toolver/toolver/pkg/defaults"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Server wraps http.Server with middleware, health endpoints, and
// lifecycle management.
type Server struct {
	config      *Config
	httpServer  *http.Server
	rateLimiter *rate.Limiter

	mu    sync.RWMutex
	ready bool
}

// New creates a server from the supplied options.
// Unset options fall back to the defaults from NewConfig.
func New(opts ...Option) *Server {
	cfg := parseConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Handlers == nil {
		cfg.Handlers = make(map[string]http.HandlerFunc)
	}

	s := &Server{
		config:      cfg,
		rateLimiter: rate.NewLimiter(cfg.RateLimit, cfg.RateLimitBurst),
	}

	// Default discovery handler, unless the caller registered its own root.
	if _, ok := cfg.Handlers["/"]; !ok {
		cfg.Handlers["/"] = s.handleRoot
	}

	mux := http.NewServeMux()
	s.setupRoutes(mux)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Address, cfg.Port),
		Handler:           mux,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: defaults.ServerReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	return s
}

// Start runs the server until the context is canceled or the listener fails.
// The server reports ready as soon as the listener is up.
func (s *Server) Start(ctx context.Context) error {
	s.setReady(true)

	slog.Info("starting server",
		slog.String("name", s.config.Name),
		slog.String("version", s.config.Version),
		slog.String("address", s.httpServer.Addr),
	)

	errChan := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("server listen error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	case err := <-errChan:
		s.setReady(false)
		return err
	}
}

// Shutdown gracefully stops the server, waiting up to ShutdownTimeout
// for in-flight requests to drain. The readiness probe starts failing
// immediately so load balancers stop routing new traffic.
func (s *Server) Shutdown(ctx context.Context) error {
	s.setReady(false)

	slog.Info("shutting down server",
		slog.Duration("timeout", s.config.ShutdownTimeout),
	)

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}

// Run starts the server and blocks until a termination signal arrives
// or the parent context is canceled.
func (s *Server) Run(ctx context.Context) error {
	slog.Info("server config",
		slog.String("name", s.config.Name),
		slog.String("version", s.config.Version),
		slog.String("address", s.httpServer.Addr),
		slog.Any("rateLimit", s.config.RateLimit),
		slog.Int("rateLimitBurst", s.config.RateLimitBurst),
		slog.Int("maxBulkVersions", s.config.MaxBulkVersions),
		slog.Duration("readTimeout", s.config.ReadTimeout),
		slog.Duration("writeTimeout", s.config.WriteTimeout),
		slog.Duration("idleTimeout", s.config.IdleTimeout),
		slog.Duration("shutdownTimeout", s.config.ShutdownTimeout),
	)

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(sigCtx)
	g.Go(func() error {
		return s.Start(gctx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// setReady flips the readiness state reported by the /ready endpoint.
func (s *Server) setReady(ready bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = ready
}

// isReady reports whether the server accepts traffic.
func (s *Server) isReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}
