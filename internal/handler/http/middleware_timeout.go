package http

import (
	"context"
	"errors"
	"net/http"
)

// withTimeout cancels the request context after the configured timeout. A
// handler that returns on the cancelled context without having written a
// response is answered with a JSON 504.
func (h *Handler) withTimeout(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.settings.RequestTimeout)
		defer cancel()

		rw := wrapResponseWriter(w)
		next.ServeHTTP(rw, r.WithContext(ctx))

		if !rw.wroteHeader && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			writeError(rw, r, context.DeadlineExceeded)
		}
	})
}
