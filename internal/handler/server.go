// Package handler implements the HTTP handlers for the search form server.
// All handlers are methods on Server. Methods are split into files by concern
// (health.go, search.go) but share the same Server struct so they can reach
// its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/staysearch/internal/domain"
)

// SearchServicer defines the search operations the handlers depend on.
// Defining the interface here, in the consumer package, lets handler tests
// inject a mock without the page or the validator.
type SearchServicer interface {
	ListingsURL(ctx context.Context, q domain.SearchQuery) string
	Window(ctx context.Context, checkin, checkout string) (domain.DateWindow, error)
	RenderPage(ctx context.Context, q domain.SearchQuery) ([]byte, error)
}

// Server holds the dependencies shared by every handler.
type Server struct {
	search SearchServicer
	log    *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil logger means slog.Default().
func NewServer(search SearchServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{search: search, log: log}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil)
}

// Handler registers every route of s on a fresh chi router.
// main.go mounts the result under its middleware stack.
func Handler(s *Server) http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Get("/", s.GetSearchPage)
	r.Post("/search", s.PostSearch)
	r.Route("/api/search", func(r chi.Router) {
		r.Get("/url", s.GetSearchURL)
		r.Get("/constraints", s.GetSearchConstraints)
	})
	return r
}
