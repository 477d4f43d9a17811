package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/docsift/docsift/internal/core/domain"
)

// reportSummary is the list entry for stored runs.
type reportSummary struct {
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	Persona       string    `json:"persona"`
	Task          string    `json:"task"`
	DocumentCount int       `json:"document_count"`
}

// handleAnalyze runs the pipeline for the posted task.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if s.newAnalyzer == nil {
		jsonError(w, "analyzer not configured", http.StatusServiceUnavailable)
		return
	}

	var task domain.Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		jsonError(w, "invalid task JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	analyzer, err := s.newAnalyzer(s.settings())
	if err != nil {
		jsonError(w, "failed to configure analyzer: "+err.Error(), http.StatusInternalServerError)
		return
	}

	result, err := analyzer.Analyze(r.Context(), task)
	if err != nil {
		jsonError(w, err.Error(), analysisStatus(err))
		return
	}

	writeJSON(w, http.StatusOK, result.Report)
}

// analysisStatus maps pipeline errors onto HTTP status codes.
func analysisStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNoSections):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrEmbeddingUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// handleListReports lists stored runs, newest first.
func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		jsonError(w, "history not enabled", http.StatusNotFound)
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			jsonError(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	records, err := s.history.List(r.Context(), limit)
	if err != nil {
		jsonError(w, "failed to list reports: "+err.Error(), http.StatusInternalServerError)
		return
	}

	summaries := make([]reportSummary, 0, len(records))
	for _, rec := range records {
		summaries = append(summaries, reportSummary{
			ID:            rec.ID,
			CreatedAt:     rec.CreatedAt,
			Persona:       rec.Persona,
			Task:          rec.Task,
			DocumentCount: rec.DocumentCount,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"reports": summaries})
}

// handleGetReport returns one stored report.
func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		jsonError(w, "history not enabled", http.StatusNotFound)
		return
	}

	id := chi.URLParam(r, "id")
	record, err := s.history.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			jsonError(w, "report not found: "+id, http.StatusNotFound)
		case errors.Is(err, domain.ErrInvalidInput):
			jsonError(w, "invalid report id", http.StatusBadRequest)
		default:
			jsonError(w, "failed to get report: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, record.Report)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
