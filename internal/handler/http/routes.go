package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.metrics != nil {
		router.Use(h.withMetrics)
	}
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{"Location", traceIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// probes, reachable over plain http
	router.Group(func(r chi.Router) {
		r.Get("/healthz", h.health)
		if h.metrics != nil {
			r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(h.metrics.registry, promhttp.HandlerOpts{}))
		}
	})

	router.Group(func(r chi.Router) {
		if h.httpsRedirect {
			r.Use(h.withHTTPSRedirect)
		}

		r.Get("/version", h.getServerVersion)

		// specials catalog, every route requires a bearer token
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/", h.listSpecials)
			r.Post("/", h.createSpecial)
			r.Get("/{id}", h.getSpecial)
			r.Put("/{id}", h.updateSpecial)
			r.Delete("/{id}", h.deleteSpecial)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
