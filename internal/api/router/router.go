// Package router wires the portal's HTTP surface onto chi.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/wellport-health/patient-portal-api/internal/http/handlers"
	httpmiddleware "github.com/wellport-health/patient-portal-api/internal/http/middleware"
	"github.com/wellport-health/patient-portal-api/pkg/logging"
)

// Config holds router configuration.
type Config struct {
	Logger             *logging.Logger
	Scheduling         *handlers.SchedulingHandler
	Pricing            *handlers.PricingHandler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
}

// New creates a chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", handlers.HealthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	if cfg.Scheduling != nil {
		r.Route("/scheduling", func(r chi.Router) {
			r.Get("/resources", cfg.Scheduling.ListResources)
			r.Post("/availability", cfg.Scheduling.GetAvailability)
		})
	}

	if cfg.Pricing != nil {
		r.Route("/pricing", func(r chi.Router) {
			r.Post("/quote", cfg.Pricing.Quote)
		})
	}

	return r
}
