package http

import (
	"net/http"

	"github.com/MKhiriev/hbnb-api/internal/app"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router: one chi sub-router per mounted namespace plus the
// documentation, version and metrics routes.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	if h.limiter != nil {
		router.Use(h.withRateLimit)
	}
	if h.settings.RequestTimeout > 0 {
		router.Use(h.withTimeout)
	}
	router.Use(withGZip)

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	// service routes
	router.Group(func(r chi.Router) {
		r.Get(app.PathSwaggerJSON, h.getSwaggerJSON)
		r.Get(app.PathSwaggerYAML, h.getSwaggerYAML)
		r.Get(app.PathVersion, h.getServerVersion)
		r.Method(http.MethodGet, app.PathMetrics, h.metrics.handler())
	})

	// mounted namespaces
	for _, e := range h.table.Mounts() {
		sub := chi.NewRouter()
		sub.NotFound(h.notFound)
		sub.MethodNotAllowed(h.methodNotAllowed)
		for _, b := range e.Namespace.Bindings {
			sub.Method(b.Method, b.Path, b.Handler)
		}
		router.Mount(e.Prefix, sub)

		h.logger.Debug().
			Str("namespace", e.Namespace.Name).
			Str("prefix", e.Prefix).
			Int("bindings", len(e.Namespace.Bindings)).
			Msg("namespace mounted")
	}

	return router
}
