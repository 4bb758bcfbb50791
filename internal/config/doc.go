// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Two layers live here. Process configuration ([StructuredConfig]) is
// assembled from multiple sources in the following priority order (later
// sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. Config file (JSON, YAML or TOML)
//
// Configuration profiles ([Profile]) form a closed table keyed by name and
// are turned into concrete values by [Resolver.Resolve], which fails with
// [*ConfigNotFoundError] for unknown names.
package config
