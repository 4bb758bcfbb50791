package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// StructuredFileConfig is the on-disk shape of a config file. The same
// layout is accepted in JSON, YAML and TOML.
type StructuredFileConfig struct {
	App struct {
		Profile string `json:"profile" yaml:"profile" toml:"profile"`
		Version string `json:"version" yaml:"version" toml:"version"`
	} `json:"app,omitempty" yaml:"app,omitempty" toml:"app,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address" yaml:"http_address" toml:"http_address"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout" toml:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout" toml:"shutdown_timeout"`
		RateLimit       struct {
			RPS   float64 `json:"rps" yaml:"rps" toml:"rps"`
			Burst int     `json:"burst" yaml:"burst" toml:"burst"`
		} `json:"rate_limit,omitempty" yaml:"rate_limit,omitempty" toml:"rate_limit,omitempty"`
	} `json:"server,omitempty" yaml:"server,omitempty" toml:"server,omitempty"`
}

type decodeFunc func(data []byte, v any) error

var fileDecoders = map[string]decodeFunc{
	".json": json.Unmarshal,
	".yaml": func(data []byte, v any) error { return yaml.Unmarshal(data, v) },
	".yml":  func(data []byte, v any) error { return yaml.Unmarshal(data, v) },
	".toml": toml.Unmarshal,
}

// parseFile reads the config file at path and decodes it with the decoder
// selected by its extension.
func parseFile(path string) (*StructuredConfig, error) {
	ext := strings.ToLower(filepath.Ext(path))
	decode, ok := fileDecoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	if err := decode(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("error decoding %s configs: %w", strings.TrimPrefix(ext, "."), err)
	}

	return &StructuredConfig{
		App: App{
			Profile: fileCfg.App.Profile,
			Version: fileCfg.App.Version,
		},
		Server: Server{
			HTTPAddress:     fileCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(fileCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(fileCfg.Server.ShutdownTimeout),
			RateLimit: RateLimit{
				RPS:   fileCfg.Server.RateLimit.RPS,
				Burst: fileCfg.Server.RateLimit.Burst,
			},
		},
	}, nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in every supported file format.
type Duration time.Duration

// UnmarshalJSON accepts either a duration string or a number of nanoseconds.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

// UnmarshalYAML decodes a YAML scalar holding a duration string.
func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// UnmarshalText parses a duration string; used by the TOML decoder.
func (d *Duration) UnmarshalText(b []byte) error {
	tmp, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
