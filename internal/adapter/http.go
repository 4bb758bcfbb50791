package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/hbnb-api/internal/logger"
	"github.com/MKhiriev/hbnb-api/internal/registry"
	"github.com/MKhiriev/hbnb-api/internal/utils"
	"github.com/MKhiriev/hbnb-api/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter].
// address may omit the scheme, in which case http is assumed. A positive
// timeout replaces the client's default request timeout.
//
// Returns an error if address is empty or cannot be parsed as a URL with a
// host.
func NewHTTPServerAdapter(address string, timeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Version implements [ServerAdapter].
func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&version).
		Get("/api/version")
	if err != nil {
		h.logger.Error().Err(err).Str("op", "version").Msg("request failed")
		return models.VersionResponse{}, fmt.Errorf("version request failed: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}

// Document implements [ServerAdapter].
func (h *httpServerAdapter) Document(ctx context.Context) (registry.Document, error) {
	var doc registry.Document

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&doc).
		Get("/swagger.json")
	if err != nil {
		h.logger.Error().Err(err).Str("op", "document").Msg("request failed")
		return registry.Document{}, fmt.Errorf("document request failed: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return registry.Document{}, err
	}

	return doc, nil
}

// Probe implements [ServerAdapter].
func (h *httpServerAdapter) Probe(ctx context.Context, method, path string) (int, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Execute(method, path)
	if err != nil {
		h.logger.Error().Err(err).Str("op", "probe").Msg("request failed")
		return 0, fmt.Errorf("%s %s failed: %w", method, path, err)
	}

	h.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Msg("probe answered")

	return resp.StatusCode(), mapHTTPError(resp)
}
