package http

import (
	"net/http"

	"github.com/MKhiriev/hbnb-api/internal/logger"
	"github.com/MKhiriev/hbnb-api/internal/utils"
)

// getSwaggerJSON serves the Swagger 2.0 document of the mount table.
func (h *Handler) getSwaggerJSON(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, h.table.Document(), http.StatusOK); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("error writing swagger.json")
	}
}

func (h *Handler) getSwaggerYAML(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteYAML(w, h.table.Document(), http.StatusOK); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("error writing swagger.yaml")
	}
}
