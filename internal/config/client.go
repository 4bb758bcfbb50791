package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// ClientConfig configures the smoke-check client.
type ClientConfig struct {
	// ServerAddress is the base address of the API, with or without scheme.
	// Env: CLIENT_SERVER_ADDRESS
	ServerAddress string `env:"SERVER_ADDRESS"`

	// RequestTimeout bounds every single request.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Concurrency is the number of probes in flight.
	// Env: CLIENT_CONCURRENCY
	Concurrency int `env:"CONCURRENCY"`
}

type clientEnv struct {
	Client ClientConfig `envPrefix:"CLIENT_"`
}

const (
	DefaultClientRequestTimeout = 5 * time.Second
	DefaultClientConcurrency    = 4
)

var ErrInvalidClientConfigs = errors.New("invalid client configuration")

// GetClientConfig merges defaults, CLIENT_* environment variables and args
// (last wins for non-zero fields).
//
// Flags:
//
//	-a server address, e.g. localhost:5000
//	-timeout per-request timeout
//	-concurrency number of parallel probes
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg := &ClientConfig{
		ServerAddress:  DefaultHTTPAddress,
		RequestTimeout: DefaultClientRequestTimeout,
		Concurrency:    DefaultClientConcurrency,
	}

	var fromEnv clientEnv
	if err := parseEnv(&fromEnv); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("hbnb-client", flag.ContinueOnError)
	var fromFlags ClientConfig
	fs.StringVar(&fromFlags.ServerAddress, "a", "", "API address host:port")
	fs.DurationVar(&fromFlags.RequestTimeout, "timeout", 0, "Per-request timeout (e.g., 5s)")
	fs.IntVar(&fromFlags.Concurrency, "concurrency", 0, "Number of parallel probes")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing client flags: %w", err)
	}

	for _, src := range []*ClientConfig{&fromEnv.Client, &fromFlags} {
		if err := mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging client configs: %w", err)
		}
	}

	if cfg.RequestTimeout < 0 || cfg.Concurrency < 0 {
		return nil, fmt.Errorf("%w: timeout and concurrency must not be negative", ErrInvalidClientConfigs)
	}

	return cfg, nil
}
