package http

import (
	"time"

	"github.com/MKhiriev/pizza-specials/internal/config"
	"github.com/MKhiriev/pizza-specials/internal/logger"
	"github.com/MKhiriev/pizza-specials/internal/service"
)

type Handler struct {
	services *service.Services

	readScope  string
	writeScope string

	allowedOrigins []string
	httpsRedirect  bool
	requestTimeout time.Duration

	// metrics is nil when the /metrics endpoint is disabled.
	metrics *httpMetrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	h := &Handler{
		services:       services,
		readScope:      cfg.App.ReadScope,
		writeScope:     cfg.App.WriteScope,
		allowedOrigins: cfg.Server.AllowedOrigins,
		httpsRedirect:  cfg.Server.HTTPSRedirect,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}

	if !cfg.Server.DisableMetrics {
		h.metrics = newHTTPMetrics(services.SpecialsService)
	}

	logger.Info().
		Bool("metrics", h.metrics != nil).
		Bool("https_redirect", h.httpsRedirect).
		Msg("http handler created")
	return h
}
