package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an empty profile name).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, missing HTTP address or negative timeouts).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrUnsupportedConfigFormat is returned when the config file extension
	// is not one of .json, .yaml, .yml or .toml.
	ErrUnsupportedConfigFormat = errors.New("unsupported config file format")
)

// ErrConfigNotFound is matched by every [*ConfigNotFoundError] via
// [errors.Is].
var ErrConfigNotFound = errors.New("configuration profile not found")

// ConfigNotFoundError is returned by [Resolver.Resolve] when the requested
// profile is not in the profile table.
type ConfigNotFoundError struct {
	// Name is the requested, unknown profile name.
	Name string
	// Valid lists the known profile names in sorted order.
	Valid []string
}

func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("configuration profile %q not found, valid profiles: %s",
		e.Name, strings.Join(e.Valid, ", "))
}

// Is reports whether target is [ErrConfigNotFound].
func (e *ConfigNotFoundError) Is(target error) bool {
	return target == ErrConfigNotFound
}
