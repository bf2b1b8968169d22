package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/rs/cors"
)

// Server exposes the read API over HTTP.
type Server struct {
	addr       string
	handlers   *Handlers
	logger     *slog.Logger
	httpServer *http.Server
}

func NewServer(addr string, handlers *Handlers, logger *slog.Logger) *Server {
	return &Server{
		addr:     addr,
		handlers: handlers,
		logger:   logger.With("component", "web"),
	}
}

func (s *Server) Start() error {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})

	s.httpServer = &http.Server{
		Addr:         s.addr,
		Handler:      c.Handler(s.handlers.router()),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("http server listening", "addr", s.addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
