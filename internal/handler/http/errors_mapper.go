package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/hbnb-api/internal/app"
)

var errorStatusMap = map[error]int{
	ErrNotImplemented:   http.StatusNotImplemented,
	ErrRouteNotFound:    http.StatusNotFound,
	ErrMethodNotAllowed: http.StatusMethodNotAllowed,
	ErrRateLimited:      http.StatusTooManyRequests,

	ErrInvalidContentEncoding: http.StatusBadRequest,

	context.DeadlineExceeded: http.StatusGatewayTimeout,
}

var errorMessageMap = map[error]string{
	ErrNotImplemented:   app.MsgNotImplemented,
	ErrRouteNotFound:    app.MsgResourceNotFound,
	ErrMethodNotAllowed: app.MsgMethodNotAllowed,
	ErrRateLimited:      app.MsgTooManyRequests,

	ErrInvalidContentEncoding: app.MsgInvalidContentEncoding,

	context.DeadlineExceeded: app.MsgRequestTimeout,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	return app.MsgInternalServerError
}
