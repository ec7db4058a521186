// Package server exposes scorecard evaluation over HTTP.
//
// The service is stateless: every request carries the garment and the body
// measurements it needs.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"github.com/dotcommander/fitcheck/internal/config"
	"github.com/dotcommander/fitcheck/internal/cue"
	"github.com/dotcommander/fitcheck/internal/logging"
	"github.com/dotcommander/fitcheck/internal/metrics"
	"github.com/dotcommander/fitcheck/internal/scorecard"
)

// ScorecardIDHeader carries a fresh identifier for each evaluation response.
const ScorecardIDHeader = "X-Scorecard-ID"

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// Options configures a Server. Nil fields get defaults.
type Options struct {
	Config    config.ServerConfig
	Evaluator *scorecard.Evaluator
	Validator *cue.Validator
	Metrics   *metrics.Metrics
	Logger    logging.Logger
}

// Server is the HTTP front end for scorecard evaluation.
type Server struct {
	cfg       config.ServerConfig
	evaluator *scorecard.Evaluator
	validator *cue.Validator
	metrics   *metrics.Metrics
	logger    logging.Logger
	router    chi.Router
	newID     func() string
}

// New builds a Server and its routes.
func New(opts Options) (*Server, error) {
	s := &Server{
		cfg:       opts.Config,
		evaluator: opts.Evaluator,
		validator: opts.Validator,
		metrics:   opts.Metrics,
		logger:    opts.Logger,
		newID:     func() string { return uuid.New().String() },
	}
	if s.evaluator == nil {
		s.evaluator = scorecard.New(scorecard.Options{})
	}
	if s.validator == nil {
		s.validator = cue.NewValidator()
		if err := s.validator.LoadSchemas(); err != nil {
			return nil, fmt.Errorf("loading schemas: %w", err)
		}
	}
	if s.metrics == nil {
		s.metrics = metrics.New()
	}
	if s.logger == nil {
		s.logger = logging.NewNoOpLogger()
	}
	if len(s.cfg.AllowedOrigins) == 0 {
		s.cfg.AllowedOrigins = []string{"*"}
	}

	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, s.observe, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{ScorecardIDHeader},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/scorecards", s.handleScorecard)
		r.Post("/scorecards/all", s.handleScorecardAll)
		r.Get("/measurements", s.handleMeasurements)
		r.Get("/measurements/{key}", s.handleMeasurement)
	})
	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// observe logs and counts every request once the handler returns.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		elapsed := time.Since(start)
		s.metrics.ObserveRequest(r.Method, route, strconv.Itoa(status), elapsed)

		fields := map[string]interface{}{
			"method":     r.Method,
			"route":      route,
			"status":     status,
			"bytes":      ww.BytesWritten(),
			"durationMs": elapsed.Milliseconds(),
			"requestId":  middleware.GetReqID(r.Context()),
		}
		if status >= http.StatusInternalServerError {
			s.logger.Error("request failed", fields)
		} else {
			s.logger.Debug("request", fields)
		}
	})
}

// ListenAndServe serves on the configured address until ctx is cancelled,
// then shuts down gracefully within the configured timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("listening", map[string]interface{}{"addr": s.cfg.Addr})
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	s.logger.Info("shutting down", map[string]interface{}{"timeout": timeout.String()})
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
