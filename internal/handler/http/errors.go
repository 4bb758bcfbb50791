// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while serving a request. They are translated to
// HTTP status codes by [statusFromError] and to response messages by
// [messageFromError].
var (
	// ErrNotImplemented is returned by resource endpoints whose business
	// logic is provided by an external collaborator.
	ErrNotImplemented = errors.New("endpoint not implemented")

	// ErrRouteNotFound is returned when no route matches the request path.
	ErrRouteNotFound = errors.New("route not found")

	// ErrMethodNotAllowed is returned when the path is routed but the
	// request method is not bound for it.
	ErrMethodNotAllowed = errors.New("method not allowed")

	// ErrRateLimited is returned when the global token bucket is empty.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// ErrInvalidContentEncoding is returned when a request declares a gzip body
// that cannot be decoded.
var ErrInvalidContentEncoding = errors.New("invalid gzip request body")
