package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/chouette-app/chouette-backend/internal/http/handlers"
	httpmiddleware "github.com/chouette-app/chouette-backend/internal/http/middleware"
	"github.com/chouette-app/chouette-backend/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	RefineHandler      *handlers.RefineHandler
	HealthHandler      *handlers.HealthHandler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string

	// Per-IP rate limiting. Zero disables it.
	RateLimitPerMinute int
	RateLimitBurst     int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
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
	if cfg.RateLimitPerMinute > 0 {
		r.Use(httpmiddleware.RateLimit(cfg.RateLimitPerMinute, cfg.RateLimitBurst))
	}

	// Public endpoints
	r.Group(func(public chi.Router) {
		if cfg.HealthHandler != nil {
			public.Get("/health", cfg.HealthHandler.Check)
		}
		if cfg.MetricsHandler != nil {
			public.Handle("/metrics", cfg.MetricsHandler)
		}
	})

	// Suggestion refinement API
	if cfg.RefineHandler != nil {
		r.Route("/api/suggestions", func(api chi.Router) {
			api.Post("/refine", cfg.RefineHandler.Refine)
			api.Get("/history", cfg.RefineHandler.History)
		})
	}

	return r
}
