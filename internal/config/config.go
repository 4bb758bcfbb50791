// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level process configuration of the hbnb-api
// server. It is populated by merging defaults, environment variables,
// command-line flags and an optional config file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the configuration
	// profile to resolve and the API version string.
	App App `envPrefix:"APP_"`

	// Server holds network address, timeout and rate limit settings for the
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// ConfigFilePath is the optional path to a JSON, YAML or TOML config
	// file. When non-empty, the file is parsed and merged on top of the
	// values already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Profile is the name of the configuration profile resolved at assembly
	// time (e.g. "default", "testing", "production").
	// Env: APP_PROFILE
	Profile string `env:"PROFILE"`

	// Version is the version string of the running API, exposed via the
	// /api/version endpoint and the API documentation.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:5000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it. Zero disables the timeout.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown of in-flight requests.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// RateLimit configures the global request rate limiter.
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`
}

// RateLimit configures a token bucket shared by all inbound requests.
// A zero RPS disables rate limiting.
type RateLimit struct {
	// RPS is the sustained number of requests per second.
	// Env: SERVER_RATE_LIMIT_RPS
	RPS float64 `env:"RPS"`

	// Burst is the bucket size.
	// Env: SERVER_RATE_LIMIT_BURST
	Burst int `env:"BURST"`
}

// Defaults applied before any other configuration source.
const (
	DefaultProfile         = "default"
	DefaultVersion         = "1.0"
	DefaultHTTPAddress     = "localhost:5000"
	DefaultShutdownTimeout = 10 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Profile: DefaultProfile,
			Version: DefaultVersion,
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the process configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. Config file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withFile().
		build()
}
