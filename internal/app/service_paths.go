package app

// Paths served by the transport layer next to the mounted namespaces. The
// assembler reserves them, so no namespace can shadow them.
const (
	PathSwaggerJSON = "/swagger.json"
	PathSwaggerYAML = "/swagger.yaml"
	PathVersion     = "/api/version"
	PathMetrics     = "/metrics"
)

// ServicePaths lists the reserved service paths.
func ServicePaths() []string {
	return []string{PathSwaggerJSON, PathSwaggerYAML, PathVersion, PathMetrics}
}
