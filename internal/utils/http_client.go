package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultClientTimeout = 10 * time.Second

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
//	client := utils.NewHTTPClient("http://localhost:5000")
//	resp, err := client.R().Get("/api/v1/users")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent client for the API served at
// baseURL. Requests accept JSON and time out after ten seconds.
func NewHTTPClient(baseURL string) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(defaultClientTimeout).
		SetHeader("Accept", ContentTypeJSON)

	return &HTTPClient{Client: client}
}
