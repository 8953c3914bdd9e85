package web

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"weekwatch/internal/config"
)

// NewRouter builds the HTTP API router.
func NewRouter(cfg *config.Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/status", handleStatus)
		r.Get("/schedules", handleSchedules)
		r.Get("/schedules/{name}", handleSchedule)
		r.Get("/schedules/{name}/match", handleScheduleMatch)
	})

	return r
}

// StartServer runs the HTTP API on the configured listen address. It
// blocks until stop is closed, then shuts the server down gracefully.
func StartServer(cfg *config.Config, stop <-chan struct{}) {
	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: NewRouter(cfg),
	}

	go func() {
		<-stop
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Warn("HTTP server shutdown failed", "error", err)
		}
	}()

	log.Printf("HTTP API listening on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("HTTP API server error: %v", err)
	}
}
