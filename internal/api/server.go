// Package api exposes the deck pipeline over HTTP: synchronous deck
// building and rendering, plus asynchronous publishing with job polling.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/deckgen/deckgen/internal/config"
	"github.com/deckgen/deckgen/internal/publish"
)

// Server is the HTTP API server for deckgen.
type Server struct {
	router       chi.Router
	orchestrator *publish.Orchestrator
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server. The orchestrator may be
// nil when publishing is not configured; the publish endpoints then report
// the feature as unavailable.
func NewServer(orch *publish.Orchestrator, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orchestrator: orch,
		log:          log,
		cfg:          cfg,
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
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey, s.log))

		r.Post("/api/decks", s.handleCreateDeck)
		r.Post("/api/decks/html", s.handleRenderDeck)
		r.Post("/api/publish", s.handlePublish)
		r.Get("/api/publish/{jobID}/status", s.handlePublishStatus)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
