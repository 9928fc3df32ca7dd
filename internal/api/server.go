package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"causalbench/adapters/export"
	"causalbench/domain/core"
	"causalbench/internal/analysis"
	"causalbench/internal/errors"
	"causalbench/ports"
)

// Server exposes persisted grid-search runs over HTTP.
type Server struct {
	router *chi.Mux
	runs   ports.RunRepository
}

// NewServer wires the routes.
func NewServer(runs ports.RunRepository) *Server {
	s := &Server{
		router: chi.NewRouter(),
		runs:   runs,
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/runs", s.handleListRuns)
		r.Get("/runs/{runID}", s.handleGetRun)
		r.Get("/runs/{runID}/trials", s.handleGetTrials)
		r.Get("/runs/{runID}/report", s.handleGetReport)
	})

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	records, err := s.runs.ListRuns(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, records)
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	runID := core.RunID(chi.URLParam(r, "runID"))
	rec, err := s.runs.GetRun(r.Context(), runID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, rec)
}

func (s *Server) handleGetTrials(w http.ResponseWriter, r *http.Request) {
	runID := core.RunID(chi.URLParam(r, "runID"))
	trials, err := s.runs.GetTrials(r.Context(), runID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, trials)
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	runID := core.RunID(chi.URLParam(r, "runID"))
	rec, err := s.runs.GetRun(r.Context(), runID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	trials, err := s.runs.GetTrials(r.Context(), runID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	rep := &analysis.Report{
		Algorithm:   rec.Algorithm,
		Dataset:     rec.Dataset,
		ParamNames:  rec.ParamNames,
		MetricNames: rec.MetricNames,
		Trials:      trials,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(export.RenderHTML(rep))
}

func (s *Server) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.HasCode(err, errors.CodeNotFound) {
		status = http.StatusNotFound
	}
	http.Error(w, err.Error(), status)
}
