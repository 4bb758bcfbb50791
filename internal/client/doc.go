// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the smoke-check client for a running HBnB API.
//
// The client reads the server's API description, probes every documented
// operation on a bounded worker pool and reports operations whose answer
// does not match a mounted, unimplemented resource (HTTP 501).
package client
