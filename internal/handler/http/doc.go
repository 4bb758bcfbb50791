// Package http implements the HTTP transport layer of the HBnB API.
//
// [Handler.Init] turns a frozen mount table into a chi router: every mounted
// namespace becomes a sub-router at its effective prefix, next to the
// Swagger document, version and Prometheus metrics routes. Cross-cutting
// concerns such as request tracing, access logging, metrics, rate limiting,
// request timeouts and response compression are handled here. Errors are
// answered with a JSON [models.ErrorResponse].
//
// [Namespaces] provides the users, amenities, places and reviews namespaces
// whose endpoints answer 501 Not Implemented.
package http
