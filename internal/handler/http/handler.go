package http

import (
	"github.com/MKhiriev/hbnb-api/internal/config"
	"github.com/MKhiriev/hbnb-api/internal/logger"
	"github.com/MKhiriev/hbnb-api/internal/registry"
	"github.com/MKhiriev/hbnb-api/models"
	"golang.org/x/time/rate"
)

// Handler serves a frozen mount table over HTTP.
type Handler struct {
	table     *registry.MountTable
	profile   string
	buildInfo models.AppBuildInfo
	settings  config.Server

	// limiter is nil when rate limiting is disabled.
	limiter *rate.Limiter
	metrics *metrics

	logger *logger.Logger
}

// NewHandler returns a handler for table. profile is reported by the version
// endpoint only.
func NewHandler(table *registry.MountTable, profile string, settings config.Server, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	h := &Handler{
		table:     table,
		profile:   profile,
		buildInfo: buildInfo,
		settings:  settings,
		metrics:   newMetrics(table),
		logger:    logger,
	}
	if settings.RateLimit.RPS > 0 {
		h.limiter = rate.NewLimiter(rate.Limit(settings.RateLimit.RPS), settings.RateLimit.Burst)
	}

	logger.Info().
		Int("namespaces", table.Len()).
		Bool("rate_limit", h.limiter != nil).
		Dur("request_timeout", settings.RequestTimeout).
		Msg("http handler created")
	return h
}
