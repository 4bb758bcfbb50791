package registry

import (
	"fmt"
	"sync"
)

// DefaultVersionPrefix is the base path of the public API v1.
const DefaultVersionPrefix = "/api/v1"

// Info describes the API as a whole for documentation.
type Info struct {
	Title       string
	Version     string
	Description string
}

// Registry collects namespaces until it is built. The zero value is not
// usable; create one with [NewRegistry].
type Registry struct {
	mu sync.Mutex

	info    Info
	entries []Entry
	owners  map[string]string // namespace name -> effective prefix

	// reserved paths are served outside the registry.
	reserved []string

	table *MountTable
}

// Option customizes a [Registry].
type Option func(*Registry)

// WithReserved marks paths served next to the mounted namespaces, such as
// documentation or health routes. A namespace whose effective prefix
// overlaps one of them fails with [*PathCollisionError].
func WithReserved(paths ...string) Option {
	return func(r *Registry) {
		for _, p := range paths {
			r.reserved = append(r.reserved, trimTrailingSlash(p))
		}
	}
}

// NewRegistry returns an empty, mutable registry.
func NewRegistry(info Info, opts ...Option) *Registry {
	r := &Registry{
		info:   info,
		owners: make(map[string]string),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Mount validates ns and records it under versionPrefix+ns.Path.
//
// Errors, checked in this order:
//   - [*RegistryFrozenError] once [Registry.Build] has been called;
//   - [ErrInvalidVersionPrefix] for an empty, "/" or relative prefix;
//   - [ErrInvalidNamespace] for a malformed namespace;
//   - [*DuplicateNamespaceError] when ns.Name is already mounted;
//   - [*PathCollisionError] when the effective prefix overlaps one
//     already mounted or a reserved path.
//
// A failed Mount leaves the registry unchanged.
func (r *Registry) Mount(ns Namespace, versionPrefix string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.table != nil {
		return &RegistryFrozenError{Namespace: ns.Name}
	}

	prefix := trimTrailingSlash(versionPrefix)
	if err := validatePath(prefix); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidVersionPrefix, err)
	}

	ns = ns.normalized()
	if err := ns.validate(); err != nil {
		return err
	}

	if owned, ok := r.owners[ns.Name]; ok {
		return &DuplicateNamespaceError{Name: ns.Name, Prefix: owned}
	}

	effective := prefix + ns.Path
	for _, e := range r.entries {
		if overlaps(e.Prefix, effective) {
			return &PathCollisionError{
				Prefix:      effective,
				Namespace:   ns.Name,
				OwnerPrefix: e.Prefix,
				Owner:       e.Namespace.Name,
			}
		}
	}

	for _, p := range r.reserved {
		if overlaps(p, effective) {
			return &PathCollisionError{
				Prefix:      effective,
				Namespace:   ns.Name,
				OwnerPrefix: p,
			}
		}
	}

	r.entries = append(r.entries, Entry{
		Prefix:        effective,
		VersionPrefix: prefix,
		Namespace:     ns,
	})
	r.owners[ns.Name] = effective

	return nil
}

// Build freezes the registry and returns its mount table. Later calls
// return the same table; later Mount calls fail with [*RegistryFrozenError].
func (r *Registry) Build() *MountTable {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.table == nil {
		r.table = newMountTable(r.info, r.entries)
	}
	return r.table
}
