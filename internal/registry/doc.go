// Package registry mounts route namespaces under version-prefixed base paths.
//
// A [Registry] accepts [Namespace] values through [Registry.Mount] and
// validates each one eagerly: malformed namespaces, repeated names and
// overlapping effective prefixes are rejected at mount time, never at
// request time. [Registry.Build] freezes the registry and returns a
// read-only [MountTable] that is safe for concurrent use by request
// handlers.
package registry
