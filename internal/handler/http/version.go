package http

import (
	"net/http"

	"github.com/MKhiriev/hbnb-api/internal/logger"
	"github.com/MKhiriev/hbnb-api/internal/utils"
	"github.com/MKhiriev/hbnb-api/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	resp := models.VersionResponse{
		APIVersion:   h.table.Info().Version,
		Profile:      h.profile,
		BuildVersion: h.buildInfo.BuildVersion(),
		BuildDate:    h.buildInfo.BuildDate(),
		BuildCommit:  h.buildInfo.BuildCommit(),
	}

	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("error writing version response")
	}
}
