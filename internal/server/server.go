// AngelaMos | 2026
// server.go

package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/bookhaven/internal/config"
	"github.com/carterperez-dev/bookhaven/internal/core"
	"github.com/carterperez-dev/bookhaven/internal/health"
	"github.com/carterperez-dev/bookhaven/internal/middleware"
)

type Config struct {
	ServerConfig  config.ServerConfig
	HealthHandler *health.Handler
	Logger        *slog.Logger
}

type Server struct {
	router  *chi.Mux
	httpSrv *http.Server
	health  *health.Handler
	logger  *slog.Logger
}

func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	router := chi.NewRouter()
	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		core.NotFound(w, "route")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		core.JSONError(w, core.NewAppError(
			nil,
			"method not allowed",
			http.StatusMethodNotAllowed,
			"METHOD_NOT_ALLOWED",
		))
	})

	return &Server{
		router: router,
		httpSrv: &http.Server{
			Addr:              cfg.ServerConfig.Address(),
			Handler:           router,
			ReadTimeout:       cfg.ServerConfig.ReadTimeout,
			ReadHeaderTimeout: 10 * time.Second,
			WriteTimeout:      cfg.ServerConfig.WriteTimeout,
			IdleTimeout:       cfg.ServerConfig.IdleTimeout,
		},
		health: cfg.HealthHandler,
		logger: logger,
	}
}

func (s *Server) Router() *chi.Mux {
	return s.router
}

// StackConfig selects the global middleware. Nil recorder or limiter
// leaves that stage out.
type StackConfig struct {
	Logger      *slog.Logger
	Metrics     middleware.RequestRecorder
	RateLimiter *middleware.RateLimiter
	CORS        config.CORSConfig
	Production  bool
}

// UseStack installs the global middleware. It must run before any route
// is registered.
func (s *Server) UseStack(sc StackConfig) {
	logger := sc.Logger
	if logger == nil {
		logger = s.logger
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Tracing)
	s.router.Use(middleware.Logger(logger))
	if sc.Metrics != nil {
		s.router.Use(middleware.Metrics(sc.Metrics))
	}
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.SecurityHeaders(sc.Production))
	s.router.Use(middleware.CORS(sc.CORS))
	if sc.RateLimiter != nil {
		s.router.Use(sc.RateLimiter.Handler)
	}
}

func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpSrv.Addr)

	err := s.httpSrv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}
	return nil
}

// Shutdown fails readiness, waits drainDelay for load balancers to notice,
// then stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context, drainDelay time.Duration) error {
	if s.health != nil {
		s.health.SetShutdown(true)
	}

	s.logger.Info("draining connections", "delay", drainDelay.String())

	select {
	case <-time.After(drainDelay):
	case <-ctx.Done():
	}

	if err := s.httpSrv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	s.logger.Info("http server stopped")
	return nil
}
