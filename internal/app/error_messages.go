// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

// Msg* constants are the human-readable strings written into JSON error
// bodies by the HTTP layer. Keeping them in one place keeps the wording
// consistent across handlers and middleware.
const (
	// MsgNotImplemented is returned by resource endpoints whose business
	// logic lives outside this service.
	MsgNotImplemented = "not implemented"

	// MsgResourceNotFound is returned when no route matches the request path.
	MsgResourceNotFound = "resource not found"

	// MsgMethodNotAllowed is returned when the path is routed but the
	// method is not bound for it.
	MsgMethodNotAllowed = "method not allowed"

	// MsgTooManyRequests is returned by the rate limiter.
	MsgTooManyRequests = "too many requests"

	MsgRequestTimeout = "request timed out"

	// MsgInvalidContentEncoding is returned when a gzip request body cannot
	// be decoded.
	MsgInvalidContentEncoding = "invalid gzip request body"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
