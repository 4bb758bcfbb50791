// Package handler builds the transport handlers of an assembled application.
package handler

import (
	"github.com/MKhiriev/hbnb-api/internal/app"
	"github.com/MKhiriev/hbnb-api/internal/config"
	"github.com/MKhiriev/hbnb-api/internal/handler/http"
	"github.com/MKhiriev/hbnb-api/internal/logger"
	"github.com/MKhiriev/hbnb-api/models"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates a handler for every transport enabled in cfg. The
// application must already be assembled.
func NewHandlers(application *app.Application, cfg config.Server, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if application == nil {
		return nil, errNoApplication
	}

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(application.Table(), application.Profile().Name, cfg, buildInfo, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
