// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client-side view of a running HBnB API server.
//
// [ServerAdapter] hides the transport from callers such as smoke checks and
// end-to-end tests. Non-2xx answers are mapped to the sentinel values in
// errors.go, so callers can use [errors.Is] (e.g. [ErrNotImplemented] for 501)
// without inspecting status codes.
package adapter

import (
	"context"

	"github.com/MKhiriev/hbnb-api/internal/registry"
	"github.com/MKhiriev/hbnb-api/models"
)

// ServerAdapter defines transport-agnostic communication with an HBnB API
// server.
type ServerAdapter interface {
	// Version fetches build and profile information from GET /api/version.
	Version(ctx context.Context) (models.VersionResponse, error)

	// Document fetches the generated API description from GET /swagger.json.
	Document(ctx context.Context) (registry.Document, error)

	// Probe sends a bodiless request to path and returns the status code.
	// A non-2xx status is also reported as a mapped error whose message
	// carries the server's error text and trace ID.
	Probe(ctx context.Context, method, path string) (int, error)
}
