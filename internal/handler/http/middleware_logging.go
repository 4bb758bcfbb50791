package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/hbnb-api/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access log line per request. Server errors are
// logged at error level, everything else at info.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := wrapResponseWriter(w)

		next.ServeHTTP(lw, r)

		duration := time.Since(start)
		status := lw.statusCode()

		var event *zerolog.Event
		if status >= http.StatusInternalServerError && status != http.StatusNotImplemented {
			event = log.Error()
		} else {
			event = log.Info()
		}

		event.
			Str("uri", uri).
			Str("method", method).
			Str("namespace", h.namespaceOf(r.URL.Path)).
			Int("status", status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}

// namespaceOf names the mounted namespace owning path, or "-" for service
// routes and unmatched paths.
func (h *Handler) namespaceOf(path string) string {
	if h.table == nil {
		return "-"
	}
	if e, ok := h.table.Match(path); ok {
		return e.Namespace.Name
	}
	return "-"
}
