package registry

import (
	"errors"
	"fmt"
)

// Sentinel errors. Typed errors below match their sentinel via [errors.Is].
var (
	// ErrInvalidVersionPrefix is returned when the version prefix is empty,
	// "/" or not an absolute path.
	ErrInvalidVersionPrefix = errors.New("invalid version prefix")

	// ErrInvalidNamespace is returned when a namespace has no name, a
	// malformed base path or a malformed binding.
	ErrInvalidNamespace = errors.New("invalid namespace")

	// ErrDuplicateBinding is returned when two bindings of one namespace
	// share the same method and path. It is always joined with
	// [ErrInvalidNamespace].
	ErrDuplicateBinding = errors.New("duplicate binding")

	// ErrDuplicateNamespace is matched by [*DuplicateNamespaceError].
	ErrDuplicateNamespace = errors.New("duplicate namespace")

	// ErrPathCollision is matched by [*PathCollisionError].
	ErrPathCollision = errors.New("path collision")

	// ErrRegistryFrozen is matched by [*RegistryFrozenError].
	ErrRegistryFrozen = errors.New("registry is frozen")
)

// DuplicateNamespaceError reports a namespace name that is already mounted.
type DuplicateNamespaceError struct {
	// Name is the repeated namespace name.
	Name string
	// Prefix is the effective prefix the first namespace was mounted at.
	Prefix string
}

func (e *DuplicateNamespaceError) Error() string {
	return fmt.Sprintf("namespace %q is already mounted at %q", e.Name, e.Prefix)
}

func (e *DuplicateNamespaceError) Is(target error) bool {
	return target == ErrDuplicateNamespace
}

// PathCollisionError reports an effective prefix that overlaps a prefix
// owned by a previously mounted namespace.
type PathCollisionError struct {
	// Prefix is the rejected effective prefix.
	Prefix string
	// Namespace is the name of the rejected namespace.
	Namespace string
	// OwnerPrefix is the effective prefix already mounted.
	OwnerPrefix string
	// Owner is the name of the namespace that owns OwnerPrefix. It is empty
	// when OwnerPrefix is a reserved path.
	Owner string
}

func (e *PathCollisionError) Error() string {
	if e.Owner == "" {
		return fmt.Sprintf("namespace %q at %q collides with reserved path %q",
			e.Namespace, e.Prefix, e.OwnerPrefix)
	}
	return fmt.Sprintf("namespace %q at %q collides with namespace %q at %q",
		e.Namespace, e.Prefix, e.Owner, e.OwnerPrefix)
}

func (e *PathCollisionError) Is(target error) bool {
	return target == ErrPathCollision
}

// RegistryFrozenError reports a mount attempted after [Registry.Build].
type RegistryFrozenError struct {
	// Namespace is the name of the namespace that was refused.
	Namespace string
}

func (e *RegistryFrozenError) Error() string {
	return fmt.Sprintf("cannot mount namespace %q: registry is frozen", e.Namespace)
}

func (e *RegistryFrozenError) Is(target error) bool {
	return target == ErrRegistryFrozen
}
