/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. RequestID:      Unique ID per request for tracing
  2. RealIP:         Client address from X-Forwarded-For / X-Real-IP
  3. RequestLogger:  Structured request logging (middleware.go)
  4. Recoverer:      Panic recovery (500 instead of crash)
  5. CORS:           Cross-origin requests for the frontend

ROUTE GROUPS:
  /healthz              Liveness probe
  /api/salary/*         Period conversion
  /api/uk-tax/*         UK take-home pay
  /api/scenarios/*      Preset calculations

SECURITY NOTE:
  No authentication middleware. All endpoints are public and stateless.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"

	"github.com/warp/salary-engine/config"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, log *slog.Logger, c config.CORS) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: c.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{"status": "ok"})
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/salary/convert", h.ConvertSalary)

		r.Route("/uk-tax", func(r chi.Router) {
			r.Post("/calculate", h.CalculateUKTax)
			r.Post("/batch", h.CalculateUKTaxBatch)
		})

		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.ListScenarios)
			r.Get("/{id}", h.RunScenario)
		})
	})

	return r
}
