package http

import (
	"net/http"

	"github.com/MKhiriev/hbnb-api/internal/logger"
	"github.com/MKhiriev/hbnb-api/internal/utils"
	"github.com/MKhiriev/hbnb-api/models"
)

// writeError answers with the JSON error body mapped from err.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError && status != http.StatusNotImplemented {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("path", r.URL.Path).Int("status", status).Msg("request rejected")
	}

	body := models.ErrorResponse{
		Error:   messageFromError(err),
		Status:  status,
		TraceID: traceIDFromContext(r.Context()),
	}
	if _, wErr := utils.WriteJSON(w, body, status); wErr != nil {
		log.Error().Err(wErr).Msg("error writing error response")
	}
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrRouteNotFound)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrMethodNotAllowed)
}
