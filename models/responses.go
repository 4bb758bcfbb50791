package models

// ErrorResponse is the JSON body of every error answered by the HTTP layer.
type ErrorResponse struct {
	// Error is a short human-readable message, e.g. "resource not found".
	Error string `json:"error"`

	// Status repeats the HTTP status code so clients reading a logged body
	// do not need the response line.
	Status int `json:"status"`

	// TraceID correlates the response with server logs.
	TraceID string `json:"trace_id,omitempty"`
}

// VersionResponse is returned by GET /api/version.
type VersionResponse struct {
	// APIVersion is the version of the public API (e.g. "1.0").
	APIVersion string `json:"api_version"`

	// Profile is the configuration profile the server was assembled with.
	Profile string `json:"profile"`

	BuildVersion string `json:"build_version"`
	BuildDate    string `json:"build_date"`
	BuildCommit  string `json:"build_commit"`
}
