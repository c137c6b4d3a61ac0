package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// maxBodyBytes caps request bodies; datasets arrive inline as JSON.
const maxBodyBytes = 64 << 20

type Server struct {
	router chi.Router
	server *http.Server
}

func New(addr string) *Server {
	r := NewRouter()
	return &Server{
		router: r,
		server: &http.Server{
			Addr:         addr,
			Handler:      r,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
	}
}

func NewRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	r.Get("/healthz", Health)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/resample/{strategy}", Resample)
		r.Post("/plan/{strategy}", Plan)
		r.Post("/metrics", Metrics)
		r.Post("/specificity", Specificity)
	})
	return r
}

func (s *Server) Addr() string {
	return s.server.Addr
}

func (s *Server) Run() error {
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
