// Package api exposes the analysis pipeline over HTTP.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/docsift/docsift/internal/core/domain"
	"github.com/docsift/docsift/internal/core/ports/driving"
)

// Config holds the HTTP server configuration.
type Config struct {
	// APIKey guards the /api routes when non-empty. An empty key
	// leaves the API open, for local use.
	APIKey string
}

// AnalyzerFactory builds an analyzer for one request's settings.
type AnalyzerFactory func(settings domain.AnalysisSettings) (driving.Analyzer, error)

// Server is the HTTP API server for docsift.
type Server struct {
	router      chi.Router
	newAnalyzer AnalyzerFactory
	settings    func() domain.AnalysisSettings
	history     driving.HistoryService
	cfg         Config
}

// NewServer creates and configures the HTTP server. The settings
// function supplies the base settings each analysis request starts
// from. History may be nil; the report routes then return 404.
func NewServer(cfg Config, newAnalyzer AnalyzerFactory, settings func() domain.AnalysisSettings, history driving.HistoryService) *Server {
	s := &Server{
		newAnalyzer: newAnalyzer,
		settings:    settings,
		history:     history,
		cfg:         cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger())

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey))
		}

		r.Post("/api/analyze", s.handleAnalyze)
		r.Get("/api/reports", s.handleListReports)
		r.Get("/api/reports/{id}", s.handleGetReport)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
