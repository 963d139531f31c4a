/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. RequestID:  Unique ID per request for tracing
  2. Logger:     Request logging
  3. Recoverer:  Panic recovery (500 instead of crash)
  4. CORS:       Cross-origin requests for a browser front end

ROUTE GROUPS:
  /api/staff/*          Views, hiring and mutations
  /api/roster           YAML roster import
  /healthz              Liveness probe

SECURITY NOTE:
  No authentication middleware. All endpoints are public.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured. Requests
// from allowedOrigins pass CORS checks.
func NewRouter(h *Handler, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/staff", func(r chi.Router) {
			r.Get("/", h.Summary)
			r.Get("/search", h.Search)
			r.Get("/export", h.ExportText)
			r.Post("/export", h.ExportFile)
			r.Post("/full-time", h.CreateFullTime)
			r.Post("/part-time", h.CreatePartTime)
			r.Get("/{index}", h.GetByIndex)

			r.Route("/vacancy/{number}", func(r chi.Router) {
				r.Get("/", h.GetByVacancy)
				r.Put("/salary", h.SetSalary)
				r.Put("/weekly-hours", h.SetWeeklyHours)
				r.Put("/shift", h.SetShift)
				r.Post("/terminate", h.Terminate)
			})
		})

		r.Post("/roster", h.ImportRoster)
	})

	return r
}
