package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/deckgen/deckgen/internal/deck"
	"github.com/deckgen/deckgen/internal/enhance"
	"github.com/deckgen/deckgen/internal/pattern"
	"github.com/deckgen/deckgen/internal/publish"
	"github.com/deckgen/deckgen/internal/render"
	"github.com/deckgen/deckgen/internal/segment"
	"github.com/deckgen/deckgen/internal/styletext"
)

// maxRequestBytes bounds the request body for all deck endpoints.
const maxRequestBytes = 10 << 20

type deckRequest struct {
	Text    string `json:"text"`
	Source  string `json:"source,omitempty"`
	Title   string `json:"title,omitempty"`
	Theme   string `json:"theme,omitempty"`
	Context string `json:"context,omitempty"`
}

type deckResponse struct {
	Title      string                 `json:"title"`
	Slides     []deck.EnhancedSlide   `json:"slides"`
	Validation *deck.ValidationReport `json:"validation"`
}

// decodeDeckRequest reads and sanity-checks the shared request shape.
func (s *Server) decodeDeckRequest(w http.ResponseWriter, r *http.Request) (*deckRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)

	var req deckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}
	if req.Text == "" {
		jsonError(w, "text is required", http.StatusBadRequest)
		return nil, false
	}
	switch req.Source {
	case "", string(segment.SourcePlain), string(segment.SourceMarkup):
	default:
		jsonError(w, fmt.Sprintf("unknown source %q", req.Source), http.StatusBadRequest)
		return nil, false
	}
	return &req, true
}

// buildDeck runs the full pipeline for one request.
func (s *Server) buildDeck(req *deckRequest) (string, []deck.EnhancedSlide) {
	kind := segment.SourcePlain
	if req.Source == string(segment.SourceMarkup) {
		kind = segment.SourceMarkup
	}

	basic := segment.Segment(req.Text, kind, s.cfg.SegmentConfig())
	slides := enhance.Enhance(basic, enhance.Options{
		Concurrency: s.cfg.EnhanceConcurrency,
		Context:     req.Context,
	})

	title := req.Title
	if title == "" && len(slides) > 0 {
		title = styletext.Strip(slides[0].Title)
	}
	return title, slides
}

func (s *Server) handleCreateDeck(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeDeckRequest(w, r)
	if !ok {
		return
	}

	title, slides := s.buildDeck(req)
	report := pattern.Validate(slides)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(deckResponse{
		Title:      title,
		Slides:     slides,
		Validation: &report,
	})
}

func (s *Server) handleRenderDeck(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeDeckRequest(w, r)
	if !ok {
		return
	}

	theme := req.Theme
	if theme == "" {
		theme = s.cfg.DefaultTheme
	}

	title, slides := s.buildDeck(req)
	page, err := render.HTML(slides, render.Options{Title: title, Theme: theme})
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(page))
}

func (s *Server) handlePublish(w http.ResponseWriter, r *http.Request) {
	if s.orchestrator == nil {
		jsonError(w, "publishing is not configured", http.StatusServiceUnavailable)
		return
	}

	req, ok := s.decodeDeckRequest(w, r)
	if !ok {
		return
	}

	title, slides := s.buildDeck(req)
	if len(slides) == 0 {
		jsonError(w, "document produced no slides", http.StatusUnprocessableEntity)
		return
	}
	if report := pattern.Validate(slides); !report.Valid {
		jsonError(w, "deck failed validation: "+report.Errors[0], http.StatusUnprocessableEntity)
		return
	}

	job := publish.NewJob(title, slides)
	if err := s.orchestrator.Submit(job); err != nil {
		jsonError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]any{
		"job_id":   job.ID,
		"status":   job.Status,
		"poll_url": fmt.Sprintf("/api/publish/%s/status", job.ID),
	})
}

func (s *Server) handlePublishStatus(w http.ResponseWriter, r *http.Request) {
	if s.orchestrator == nil {
		jsonError(w, "publishing is not configured", http.StatusServiceUnavailable)
		return
	}

	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(job.Snapshot())
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
