// Package server exposes the match odds engine over a small HTTP API with
// health endpoints, Prometheus metrics, request rate limiting and a TTL
// response cache.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/yourusername/match-odds/internal/config"
	"github.com/yourusername/match-odds/internal/logger"
	"github.com/yourusername/match-odds/internal/metrics"
)

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp,omitempty"`
	Version   string `json:"version,omitempty"`
}

// Server serves the analysis API.
type Server struct {
	cfg            *config.Config
	log            *logrus.Logger
	analysisLogger *logger.AnalysisLogger
	version        string
	server         *http.Server
	limiter        *rate.Limiter
	cache          *AnalysisCache
}

// NewServer creates the API server from validated configuration.
func NewServer(cfg *config.Config, log *logrus.Logger, version string) *Server {
	return &Server{
		cfg:            cfg,
		log:            log,
		analysisLogger: logger.NewAnalysisLogger(log),
		version:        version,
		limiter:        rate.NewLimiter(rate.Limit(cfg.Server.RateLimitPerSecond), cfg.Server.RateLimitBurst),
		cache:          NewAnalysisCache(cfg.CacheTTL(), cfg.Server.CacheMaxEntries),
	}
}

// Start starts the API server in the background and shuts it down when the
// context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/live", s.handleLive)
	mux.Handle("/api/v1/analyze", s.rateLimit(http.HandlerFunc(s.handleAnalyze)))
	if s.cfg.Metrics.Enabled {
		mux.Handle(s.cfg.Metrics.Path, metrics.Handler())
	}

	s.server = &http.Server{
		Addr:         s.cfg.ListenAddress(),
		Handler:      mux,
		ReadTimeout:  s.cfg.ReadTimeout(),
		WriteTimeout: s.cfg.WriteTimeout(),
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		s.log.WithFields(logrus.Fields{
			"addr":    s.server.Addr,
			"service": s.cfg.App.Name,
		}).Info("Analysis API server starting")

		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.WithError(err).Error("Analysis API server error")
		}
	}()

	go func() {
		<-ctx.Done()
		if err := s.Shutdown(); err != nil {
			s.log.WithError(err).Error("Analysis API server shutdown error")
		}
	}()

	return nil
}

// Shutdown gracefully shuts down the API server.
func (s *Server) Shutdown() error {
	if s.server == nil {
		return nil
	}

	s.log.Info("Analysis API server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout())
	defer cancel()

	return s.server.Shutdown(ctx)
}

// rateLimit rejects requests beyond the configured request rate.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			metrics.RecordRateLimited()
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// handleHealth handles the /health endpoint - basic liveness check.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "ok",
		Service:   s.cfg.App.Name,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   s.version,
	}
	writeJSON(w, http.StatusOK, response)
}

// handleLive handles the /live endpoint - kubernetes liveness probe.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Service: s.cfg.App.Name})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// ErrorResponse is the JSON body returned for every rejected request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
