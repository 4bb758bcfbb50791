package registry

import (
	"fmt"
	"net/http"
	"slices"
	"strings"
)

// Binding binds one handler to a method and a path inside a namespace.
// Path is a chi route pattern relative to the namespace base path, e.g. "/"
// or "/{id}".
type Binding struct {
	Method  string
	Path    string
	Handler http.Handler
	// Summary is a one-line description used by the API document.
	Summary string
}

// Namespace is a named group of bindings served under one base path.
type Namespace struct {
	// Name identifies the namespace and must be unique within a registry.
	Name string
	// Path is the base path fragment, e.g. "/users".
	Path string
	// Description is shown as the namespace tag in the API document.
	Description string
	// Bindings are registered in order.
	Bindings []Binding
}

var supportedMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// normalized returns a copy of ns with its base path cleaned, binding
// methods upper-cased and the bindings slice detached from the caller.
func (ns Namespace) normalized() Namespace {
	out := ns.clone()
	out.Path = trimTrailingSlash(ns.Path)
	for i := range out.Bindings {
		out.Bindings[i].Method = strings.ToUpper(out.Bindings[i].Method)
	}
	return out
}

// clone detaches the bindings slice.
func (ns Namespace) clone() Namespace {
	ns.Bindings = slices.Clone(ns.Bindings)
	return ns
}

// validate expects a normalized namespace.
func (ns Namespace) validate() error {
	if strings.TrimSpace(ns.Name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidNamespace)
	}
	if err := validatePath(ns.Path); err != nil {
		return fmt.Errorf("%w: namespace %q base path: %w", ErrInvalidNamespace, ns.Name, err)
	}

	seen := make(map[string]string, len(ns.Bindings))
	for _, b := range ns.Bindings {
		if !slices.Contains(supportedMethods, b.Method) {
			return fmt.Errorf("%w: namespace %q: unsupported method %q", ErrInvalidNamespace, ns.Name, b.Method)
		}
		if !strings.HasPrefix(b.Path, "/") {
			return fmt.Errorf("%w: namespace %q: binding path %q must start with /", ErrInvalidNamespace, ns.Name, b.Path)
		}
		if b.Handler == nil {
			return fmt.Errorf("%w: namespace %q: nil handler for %s %s", ErrInvalidNamespace, ns.Name, b.Method, b.Path)
		}

		key := b.Method + " " + routeShape(b.Path)
		if first, dup := seen[key]; dup {
			return fmt.Errorf("%w: %w: namespace %q: %s %s and %s %s",
				ErrInvalidNamespace, ErrDuplicateBinding, ns.Name, b.Method, first, b.Method, b.Path)
		}
		seen[key] = b.Path
	}

	return nil
}

// routeShape replaces every "{...}" parameter with "{}", so patterns that
// differ only in parameter names or constraints compare equal, as they do in
// the router.
func routeShape(pattern string) string {
	var b strings.Builder
	depth := 0
	for _, c := range pattern {
		switch {
		case c == '{':
			if depth == 0 {
				b.WriteString("{}")
			}
			depth++
		case c == '}' && depth > 0:
			depth--
		case depth == 0:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// validatePath checks a static absolute path with no trailing slash.
func validatePath(p string) error {
	switch {
	case p == "":
		return fmt.Errorf("empty path")
	case !strings.HasPrefix(p, "/"):
		return fmt.Errorf("path %q must start with /", p)
	case strings.Contains(p, "//"):
		return fmt.Errorf("path %q contains an empty segment", p)
	case strings.ContainsAny(p, "{}*"):
		return fmt.Errorf("path %q must not contain route parameters", p)
	}
	return nil
}

func trimTrailingSlash(p string) string {
	return strings.TrimRight(p, "/")
}

// overlaps reports whether one effective prefix equals the other or
// continues it with a path segment.
func overlaps(a, b string) bool {
	return a == b || strings.HasPrefix(a, b+"/") || strings.HasPrefix(b, a+"/")
}
