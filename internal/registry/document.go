package registry

import (
	"strings"
)

// Document is a Swagger 2.0 description of the mounted namespaces. Tags
// follow mount order; paths are keyed by their full route.
type Document struct {
	Swagger  string                          `json:"swagger" yaml:"swagger"`
	Info     DocumentInfo                    `json:"info" yaml:"info"`
	BasePath string                          `json:"basePath" yaml:"basePath"`
	Produces []string                        `json:"produces" yaml:"produces"`
	Tags     []Tag                           `json:"tags" yaml:"tags"`
	Paths    map[string]map[string]Operation `json:"paths" yaml:"paths"`
}

type DocumentInfo struct {
	Title       string `json:"title" yaml:"title"`
	Version     string `json:"version" yaml:"version"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type Tag struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type Operation struct {
	Tags        []string            `json:"tags" yaml:"tags"`
	Summary     string              `json:"summary,omitempty" yaml:"summary,omitempty"`
	OperationID string              `json:"operationId" yaml:"operationId"`
	Parameters  []Parameter         `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Responses   map[string]Response `json:"responses" yaml:"responses"`
}

type Parameter struct {
	Name     string `json:"name" yaml:"name"`
	In       string `json:"in" yaml:"in"`
	Required bool   `json:"required" yaml:"required"`
	Type     string `json:"type" yaml:"type"`
}

type Response struct {
	Description string `json:"description" yaml:"description"`
}

// Document renders the table as a Swagger 2.0 document.
func (t *MountTable) Document() Document {
	doc := Document{
		Swagger: "2.0",
		Info: DocumentInfo{
			Title:       t.info.Title,
			Version:     t.info.Version,
			Description: t.info.Description,
		},
		BasePath: "/",
		Produces: []string{"application/json"},
		Tags:     make([]Tag, 0, len(t.entries)),
		Paths:    make(map[string]map[string]Operation),
	}

	for _, e := range t.entries {
		ns := e.Namespace
		doc.Tags = append(doc.Tags, Tag{Name: ns.Name, Description: ns.Description})

		for _, b := range ns.Bindings {
			route, params := swaggerRoute(e.Prefix + b.Path)
			if doc.Paths[route] == nil {
				doc.Paths[route] = make(map[string]Operation)
			}
			doc.Paths[route][strings.ToLower(b.Method)] = Operation{
				Tags:        []string{ns.Name},
				Summary:     b.Summary,
				OperationID: operationID(b.Method, ns.Name, b.Path),
				Parameters:  params,
				Responses:   map[string]Response{"200": {Description: "Success"}},
			}
		}
	}

	return doc
}

// swaggerRoute strips chi regexp constraints ("{id:[0-9]+}" -> "{id}") and
// collects path parameters in order.
func swaggerRoute(pattern string) (string, []Parameter) {
	segments := strings.Split(pattern, "/")
	var params []Parameter
	for i, seg := range segments {
		name, ok := paramName(seg)
		if !ok {
			continue
		}
		segments[i] = "{" + name + "}"
		params = append(params, Parameter{Name: name, In: "path", Required: true, Type: "string"})
	}
	return strings.Join(segments, "/"), params
}

func paramName(segment string) (string, bool) {
	if !strings.HasPrefix(segment, "{") || !strings.HasSuffix(segment, "}") {
		return "", false
	}
	name := strings.TrimSuffix(strings.TrimPrefix(segment, "{"), "}")
	name, _, _ = strings.Cut(name, ":")
	return name, name != ""
}

// operationID builds ids like "get_users", "get_users_by_id".
func operationID(method, namespace, path string) string {
	parts := []string{strings.ToLower(method), namespace}
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			continue
		}
		if name, ok := paramName(seg); ok {
			parts = append(parts, "by", name)
			continue
		}
		parts = append(parts, seg)
	}
	return strings.Join(parts, "_")
}
