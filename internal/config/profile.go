// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Profile is a named configuration variant of the application (debug flag,
// secret material, storage DSN). Profiles are plain values: the resolver
// hands out copies, so a resolved Profile cannot be changed behind the
// back of the application that owns it.
//
// The env tags name the overrides read by [Resolver] with the
// [ProfileEnvPrefix] prefix, e.g. HBNB_SECRET_KEY.
type Profile struct {
	// Name is the profile name the value was resolved under.
	Name string `json:"name"`

	// Debug enables debug-level logging and verbose error output.
	Debug bool `env:"DEBUG" json:"debug"`

	// Testing marks the profile used by test harnesses.
	Testing bool `env:"TESTING" json:"testing"`

	// SecretKey is the application secret.
	SecretKey string `env:"SECRET_KEY" json:"-"`

	// DatabaseURI is the storage DSN handed to the persistence collaborator.
	DatabaseURI string `env:"DATABASE_URI" json:"database_uri"`
}

// ProfileEnvPrefix prefixes every environment override of a [Profile].
const ProfileEnvPrefix = "HBNB_"

// Known profile names.
const (
	ProfileDefault     = "default"
	ProfileDevelopment = "development"
	ProfileTesting     = "testing"
	ProfileProduction  = "production"
)

const defaultSecretKey = "default_secret_key"

// Profiles returns the static profile table. Every call builds a fresh map.
func Profiles() map[string]Profile {
	development := Profile{
		Debug:       true,
		SecretKey:   defaultSecretKey,
		DatabaseURI: "sqlite:///development.db",
	}

	return map[string]Profile{
		ProfileDefault:     development,
		ProfileDevelopment: development,
		ProfileTesting: {
			Debug:       true,
			Testing:     true,
			SecretKey:   defaultSecretKey,
			DatabaseURI: "sqlite:///:memory:",
		},
		ProfileProduction: {
			SecretKey:   defaultSecretKey,
			DatabaseURI: "sqlite:///production.db",
		},
	}
}
