package http

import (
	"net/http"

	"github.com/MKhiriev/hbnb-api/internal/registry"
)

// notImplemented answers every resource endpoint. Business logic for users,
// amenities, places and reviews is provided elsewhere.
func notImplemented(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrNotImplemented)
}

// resource describes the CRUD surface of one HBnB resource.
type resource struct {
	name        string
	singular    string
	description string
	deletable   bool
}

var resources = []resource{
	{name: "users", singular: "user", description: "User operations"},
	{name: "amenities", singular: "amenity", description: "Amenity operations"},
	{name: "places", singular: "place", description: "Place operations"},
	{name: "reviews", singular: "review", description: "Review operations", deletable: true},
}

func (res resource) namespace() registry.Namespace {
	handler := http.HandlerFunc(notImplemented)

	bindings := []registry.Binding{
		{Method: http.MethodGet, Path: "/", Handler: handler, Summary: "Retrieve a list of all " + res.name},
		{Method: http.MethodPost, Path: "/", Handler: handler, Summary: "Register a new " + res.singular},
		{Method: http.MethodGet, Path: "/{id}", Handler: handler, Summary: "Get " + res.singular + " details by ID"},
		{Method: http.MethodPut, Path: "/{id}", Handler: handler, Summary: "Update " + res.singular + " information"},
	}
	if res.deletable {
		bindings = append(bindings, registry.Binding{
			Method: http.MethodDelete, Path: "/{id}", Handler: handler, Summary: "Delete a " + res.singular,
		})
	}

	return registry.Namespace{
		Name:        res.name,
		Path:        "/" + res.name,
		Description: res.description,
		Bindings:    bindings,
	}
}

// Namespaces returns the users, amenities, places and reviews namespaces in
// that order.
func Namespaces() []registry.Namespace {
	out := make([]registry.Namespace, 0, len(resources))
	for _, res := range resources {
		out = append(out, res.namespace())
	}
	return out
}
