package config

import (
	"fmt"
	"maps"
	"slices"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// Resolver turns a profile name into a concrete [Profile].
//
// Resolution layers non-empty environment overrides (HBNB_DEBUG,
// HBNB_TESTING, HBNB_SECRET_KEY, HBNB_DATABASE_URI) over the table entry.
// Boolean overrides can only switch a flag on.
type Resolver struct {
	profiles    map[string]Profile
	environment map[string]string
}

// ResolverOption customizes a [Resolver].
type ResolverOption func(*Resolver)

// WithProfiles replaces the static profile table.
func WithProfiles(profiles map[string]Profile) ResolverOption {
	return func(r *Resolver) {
		r.profiles = maps.Clone(profiles)
	}
}

// WithEnvironment makes the resolver read overrides from environment instead
// of the process environment.
func WithEnvironment(environment map[string]string) ResolverOption {
	return func(r *Resolver) {
		r.environment = maps.Clone(environment)
	}
}

// NewResolver returns a resolver over [Profiles] and the process environment.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{profiles: Profiles()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Names returns the known profile names in sorted order.
func (r *Resolver) Names() []string {
	return slices.Sorted(maps.Keys(r.profiles))
}

// Resolve returns the profile registered under name with environment
// overrides applied. An unknown name yields a [*ConfigNotFoundError].
func (r *Resolver) Resolve(name string) (Profile, error) {
	base, ok := r.profiles[name]
	if !ok {
		return Profile{}, &ConfigNotFoundError{Name: name, Valid: r.Names()}
	}

	var overrides Profile
	if err := env.ParseWithOptions(&overrides, env.Options{
		Prefix:      ProfileEnvPrefix,
		Environment: r.environment,
	}); err != nil {
		return Profile{}, fmt.Errorf("error getting %q profile overrides: %w", name, err)
	}

	resolved := base
	if err := mergo.Merge(&resolved, overrides, mergo.WithOverride); err != nil {
		return Profile{}, fmt.Errorf("error merging %q profile overrides: %w", name, err)
	}
	resolved.Name = name

	return resolved, nil
}
