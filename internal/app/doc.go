// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app assembles an HBnB API application from a configuration profile
// and an ordered list of namespace mounts.
//
// Assembly is all-or-nothing: the profile is resolved first, the namespaces
// are mounted in the given order and the registry is built only when every
// mount succeeded. Any failure is returned unchanged and no [Application] is
// produced, so callers never observe a half-built application.
//
// The package does not bind any network listener; the returned
// [Application] is handed to the transport layer by the caller.
package app
