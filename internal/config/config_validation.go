// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// process-level invariants before it is used at startup.
//
// Whether App.Profile names a known profile is checked later by [Resolver]
// during application assembly.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Profile == "" {
		return fmt.Errorf("%w: empty profile name", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	if cfg.Server.RateLimit.RPS < 0 || cfg.Server.RateLimit.Burst < 0 {
		return fmt.Errorf("%w: negative rate limit", ErrInvalidServerConfigs)
	}

	if cfg.Server.RateLimit.RPS > 0 && cfg.Server.RateLimit.Burst == 0 {
		return fmt.Errorf("%w: rate limit burst must be positive when rps is set", ErrInvalidServerConfigs)
	}

	return nil
}
