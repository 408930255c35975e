// Package server exposes the workbench core over a small JSON HTTP API: one
// endpoint to parse an uploaded résumé and a family of matching endpoints.
// All handlers are stateless; candidates and jobs travel in the request
// body.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/recruitment-workbench/internal/engine"
	"github.com/jonathan/recruitment-workbench/internal/parser"
)

// Server is the HTTP front end over the parser and matching engine.
type Server struct {
	httpServer *http.Server
	parser     *parser.Parser
	engine     *engine.Engine
	log        *zap.Logger
}

// Config holds server configuration.
type Config struct {
	Port   int
	Parser *parser.Parser
	Logger *zap.Logger
}

// New creates a server. A nil parser gets the default vocabulary; a nil
// logger is replaced by a no-op one.
func New(cfg Config) *Server {
	p := cfg.Parser
	if p == nil {
		p = parser.New()
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{
		parser: p,
		engine: engine.New(),
		log:    log,
	}
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("POST /api/v1/resumes/parse", s.handleParseResume)
	mux.HandleFunc("POST /api/v1/match", s.handleMatch)
	mux.HandleFunc("POST /api/v1/match/top", s.handleTopK)
	mux.HandleFunc("POST /api/v1/match/threshold", s.handleAboveThreshold)
	mux.HandleFunc("POST /api/v1/match/suitable", s.handleSuitableJobs)
	mux.HandleFunc("POST /api/v1/match/stats", s.handleStats)
	return s.logRequests(mux)
}

// Run serves until the context is canceled or a termination signal arrives,
// then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		s.log.Info("server listening", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}

// Handler exposes the routed handler for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, format string, args ...any) {
	writeJSON(w, status, errorResponse{Error: fmt.Sprintf(format, args...)})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
