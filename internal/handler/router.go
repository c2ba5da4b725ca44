package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dangerclosesec/logsim/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter builds the HTTP routes of the check API
func NewRouter(checkHandler *CheckHandler, logger *slog.Logger, timeout time.Duration) http.Handler {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Timeout(timeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.With(chimw.AllowContentType("application/json")).Post("/check", checkHandler.Check)

		r.Route("/runs", func(r chi.Router) {
			r.Get("/", checkHandler.ListRuns)
			r.Get("/{id}", checkHandler.GetRun)
		})
	})

	return r
}
