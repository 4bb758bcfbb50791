package http

import (
	"net/http"
	"strconv"
	"time"
)

// withRateLimit rejects requests with 429 once the shared token bucket is
// empty. Retry-After carries the whole seconds until the next token.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reservation := h.limiter.Reserve()
		if !reservation.OK() {
			writeError(w, r, ErrRateLimited)
			return
		}
		if delay := reservation.Delay(); delay > 0 {
			reservation.Cancel()
			w.Header().Set("Retry-After", strconv.Itoa(int((delay+time.Second-1)/time.Second)))
			writeError(w, r, ErrRateLimited)
			return
		}

		next.ServeHTTP(w, r)
	})
}
