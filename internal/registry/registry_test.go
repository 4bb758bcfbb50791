package registry

import (
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

var noop = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func testNamespace(name, path string) Namespace {
	return Namespace{
		Name: name,
		Path: path,
		Bindings: []Binding{
			{Method: http.MethodGet, Path: "/", Handler: noop, Summary: "list"},
			{Method: http.MethodGet, Path: "/{id}", Handler: noop, Summary: "get"},
		},
	}
}

func testInfo() Info {
	return Info{Title: "HBnB API", Version: "1.0", Description: "HBnB Application API"}
}

// ── Mount ─────────────────────────────────────────────────────────────────────

// TestMount_FourNamespaces verifies the reference configuration.
func TestMount_FourNamespaces(t *testing.T) {
	r := NewRegistry(testInfo())

	for _, name := range []string{"users", "amenities", "places", "reviews"} {
		require.NoError(t, r.Mount(testNamespace(name, "/"+name), DefaultVersionPrefix))
	}

	table := r.Build()
	assert.Equal(t, 4, table.Len())
	assert.Equal(t, []string{
		"/api/v1/users",
		"/api/v1/amenities",
		"/api/v1/places",
		"/api/v1/reviews",
	}, table.Prefixes())

	for _, name := range []string{"users", "amenities", "places", "reviews"} {
		ns, ok := table.Lookup("/api/v1/" + name)
		require.True(t, ok, name)
		assert.Equal(t, name, ns.Name)
	}
}

// TestMount_DuplicateName verifies that a repeated name fails regardless of
// prefixes.
func TestMount_DuplicateName(t *testing.T) {
	tests := []struct {
		name          string
		first, second string
		firstPath     string
		secondPath    string
	}{
		{"same prefix", "/api/v1", "/api/v1", "/users", "/users"},
		{"different prefixes", "/api/v1", "/api/v2", "/users", "/users"},
		{"different base paths", "/api/v1", "/api/v1", "/users", "/people"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry(testInfo())
			require.NoError(t, r.Mount(testNamespace("users", tt.firstPath), tt.first))

			err := r.Mount(testNamespace("users", tt.secondPath), tt.second)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDuplicateNamespace)
			var dup *DuplicateNamespaceError
			require.True(t, errors.As(err, &dup))
			assert.Equal(t, "users", dup.Name)
			assert.Equal(t, tt.first+tt.firstPath, dup.Prefix)
		})
	}
}

// TestMount_PathCollision verifies overlap detection on effective prefixes.
func TestMount_PathCollision(t *testing.T) {
	tests := []struct {
		name        string
		aPrefix     string
		aPath       string
		bPrefix     string
		bPath       string
		wantCollide bool
	}{
		{"same path same prefix", "/api/v1", "/users", "/api/v1", "/users", true},
		{"same path different version", "/api/v1", "/users", "/api/v2", "/users", false},
		{"same effective prefix from different split", "/api", "/v1/users", "/api/v1", "/users", true},
		{"nested under existing", "/api/v1", "/users", "/api/v1", "/users/admin", true},
		{"existing nested under new", "/api/v1", "/users/admin", "/api/v1", "/users", true},
		{"shared string prefix only", "/api/v1", "/user", "/api/v1", "/users", false},
		{"trailing slash normalized", "/api/v1/", "/users/", "/api/v1", "/users", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry(testInfo())
			require.NoError(t, r.Mount(testNamespace("a", tt.aPath), tt.aPrefix))

			err := r.Mount(testNamespace("b", tt.bPath), tt.bPrefix)

			if !tt.wantCollide {
				require.NoError(t, err)
				assert.Equal(t, 2, r.Build().Len())
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrPathCollision)
			var collision *PathCollisionError
			require.True(t, errors.As(err, &collision))
			assert.Equal(t, "b", collision.Namespace)
			assert.Equal(t, "a", collision.Owner)
			assert.Equal(t, 1, r.Build().Len(), "failed mount must not be recorded")
		})
	}
}

// TestMount_DuplicateNameCheckedBeforeCollision verifies that a repeated name
// at a colliding path reports the duplicate name.
func TestMount_DuplicateNameCheckedBeforeCollision(t *testing.T) {
	r := NewRegistry(testInfo())
	require.NoError(t, r.Mount(testNamespace("users", "/users"), "/api/v1"))

	err := r.Mount(testNamespace("users", "/users"), "/api/v1")

	assert.ErrorIs(t, err, ErrDuplicateNamespace)
	assert.NotErrorIs(t, err, ErrPathCollision)
}

// TestMount_AfterBuild verifies that the registry is frozen by Build.
func TestMount_AfterBuild(t *testing.T) {
	tests := []struct {
		name string
		ns   Namespace
		pfx  string
	}{
		{"valid namespace", testNamespace("places", "/places"), "/api/v1"},
		{"already mounted name", testNamespace("users", "/users"), "/api/v1"},
		{"invalid namespace", Namespace{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry(testInfo())
			require.NoError(t, r.Mount(testNamespace("users", "/users"), "/api/v1"))
			table := r.Build()

			err := r.Mount(tt.ns, tt.pfx)

			assert.ErrorIs(t, err, ErrRegistryFrozen)
			var frozen *RegistryFrozenError
			require.True(t, errors.As(err, &frozen))
			assert.Equal(t, tt.ns.Name, frozen.Namespace)
			assert.Equal(t, 1, table.Len())
		})
	}
}

// TestMount_InvalidVersionPrefix verifies prefix validation.
func TestMount_InvalidVersionPrefix(t *testing.T) {
	for _, prefix := range []string{"", "/", "api/v1", "/api//v1", "/api/{version}"} {
		t.Run(prefix, func(t *testing.T) {
			r := NewRegistry(testInfo())
			err := r.Mount(testNamespace("users", "/users"), prefix)
			assert.ErrorIs(t, err, ErrInvalidVersionPrefix)
		})
	}
}

// TestMount_InvalidNamespace verifies eager namespace validation.
func TestMount_InvalidNamespace(t *testing.T) {
	tests := []struct {
		name    string
		ns      Namespace
		wantDup bool
	}{
		{name: "empty name", ns: Namespace{Path: "/users"}},
		{name: "empty path", ns: Namespace{Name: "users"}},
		{name: "root path", ns: Namespace{Name: "users", Path: "/"}},
		{name: "relative path", ns: Namespace{Name: "users", Path: "users"}},
		{name: "unsupported method", ns: Namespace{Name: "users", Path: "/users", Bindings: []Binding{
			{Method: "FETCH", Path: "/", Handler: noop},
		}}},
		{name: "relative binding path", ns: Namespace{Name: "users", Path: "/users", Bindings: []Binding{
			{Method: http.MethodGet, Path: "", Handler: noop},
		}}},
		{name: "nil handler", ns: Namespace{Name: "users", Path: "/users", Bindings: []Binding{
			{Method: http.MethodGet, Path: "/"},
		}}},
		{name: "duplicate binding", wantDup: true, ns: Namespace{Name: "users", Path: "/users", Bindings: []Binding{
			{Method: http.MethodGet, Path: "/{id}", Handler: noop},
			{Method: "get", Path: "/{id}", Handler: noop},
		}}},
		{name: "duplicate binding with renamed parameter", wantDup: true, ns: Namespace{Name: "users", Path: "/users", Bindings: []Binding{
			{Method: http.MethodGet, Path: "/{id}", Handler: noop},
			{Method: http.MethodGet, Path: "/{uid}", Handler: noop},
		}}},
		{name: "duplicate binding with constrained parameter", wantDup: true, ns: Namespace{Name: "users", Path: "/users", Bindings: []Binding{
			{Method: http.MethodGet, Path: "/{id}/places", Handler: noop},
			{Method: http.MethodGet, Path: "/{id:[0-9]{1,4}}/places", Handler: noop},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry(testInfo())

			err := r.Mount(tt.ns, DefaultVersionPrefix)

			assert.ErrorIs(t, err, ErrInvalidNamespace)
			if tt.wantDup {
				assert.ErrorIs(t, err, ErrDuplicateBinding)
			}
			assert.Zero(t, r.Build().Len())
		})
	}
}

// TestMount_SameBindingPathDifferentMethods verifies that (method, path) is
// the uniqueness key, not the path alone.
func TestMount_SameBindingPathDifferentMethods(t *testing.T) {
	r := NewRegistry(testInfo())
	ns := Namespace{Name: "reviews", Path: "/reviews", Bindings: []Binding{
		{Method: http.MethodGet, Path: "/{id}", Handler: noop},
		{Method: http.MethodPut, Path: "/{id}", Handler: noop},
		{Method: http.MethodDelete, Path: "/{id}", Handler: noop},
	}}

	require.NoError(t, r.Mount(ns, DefaultVersionPrefix))
}

func TestRouteShape(t *testing.T) {
	tests := map[string]string{
		"/":                      "/",
		"/{id}":                  "/{}",
		"/{uid}":                 "/{}",
		"/{id:[0-9]+}":           "/{}",
		"/{id:[0-9]{1,4}}/items": "/{}/items",
		"/{a}/{b}":               "/{}/{}",
		"/static":                "/static",
	}

	for pattern, want := range tests {
		assert.Equal(t, want, routeShape(pattern), pattern)
	}
}

// TestMount_CopiesBindings verifies that later changes to the caller's
// slice do not reach the table.
func TestMount_CopiesBindings(t *testing.T) {
	r := NewRegistry(testInfo())
	ns := testNamespace("users", "/users")
	require.NoError(t, r.Mount(ns, DefaultVersionPrefix))

	ns.Bindings[0].Path = "/mutated"

	got, ok := r.Build().Lookup("/api/v1/users")
	require.True(t, ok)
	assert.Equal(t, "/", got.Bindings[0].Path)
}

// ── Build ─────────────────────────────────────────────────────────────────────

// TestBuild_Idempotent verifies that Build returns the same table.
func TestBuild_Idempotent(t *testing.T) {
	r := NewRegistry(testInfo())
	require.NoError(t, r.Mount(testNamespace("users", "/users"), DefaultVersionPrefix))

	assert.Same(t, r.Build(), r.Build())
}

// TestBuild_Empty verifies that an empty registry builds an empty table.
func TestBuild_Empty(t *testing.T) {
	table := NewRegistry(testInfo()).Build()

	assert.Zero(t, table.Len())
	assert.Empty(t, table.Prefixes())
	assert.Equal(t, testInfo(), table.Info())
}

// TestMount_Concurrent verifies that concurrent mounts of distinct
// namespaces all land and nothing collides.
func TestMount_Concurrent(t *testing.T) {
	r := NewRegistry(testInfo())
	names := []string{"users", "amenities", "places", "reviews", "hosts", "bookings"}

	var wg sync.WaitGroup
	for _, name := range names {
		wg.Go(func() {
			assert.NoError(t, r.Mount(testNamespace(name, "/"+name), DefaultVersionPrefix))
		})
	}
	wg.Wait()

	assert.Equal(t, len(names), r.Build().Len())
}

// TestMount_ReservedPaths verifies that a namespace cannot shadow a path
// served next to the registry.
func TestMount_ReservedPaths(t *testing.T) {
	tests := []struct {
		name      string
		ns        Namespace
		prefix    string
		wantOwner string
	}{
		{name: "equal", ns: testNamespace("version", "/version"), prefix: "/api", wantOwner: "/api/version"},
		{name: "inside reserved", ns: testNamespace("metrics", "/internal"), prefix: "/metrics", wantOwner: "/metrics"},
		{name: "above reserved", ns: testNamespace("api", "/api"), prefix: "/root", wantOwner: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry(testInfo(), WithReserved("/api/version/", "/metrics", "/root/api/docs"))

			err := r.Mount(tt.ns, tt.prefix)

			if tt.wantOwner == "" {
				tt.wantOwner = "/root/api/docs"
			}
			assert.ErrorIs(t, err, ErrPathCollision)
			var collision *PathCollisionError
			require.True(t, errors.As(err, &collision))
			assert.Equal(t, tt.wantOwner, collision.OwnerPrefix)
			assert.Empty(t, collision.Owner)
			assert.Contains(t, err.Error(), "reserved path")
			assert.Zero(t, r.Build().Len())
		})
	}
}

func TestMount_ReservedPathsAllowSiblings(t *testing.T) {
	r := NewRegistry(testInfo(), WithReserved("/api/version", "/metrics"))

	require.NoError(t, r.Mount(testNamespace("users", "/users"), DefaultVersionPrefix))
	require.NoError(t, r.Mount(testNamespace("versions", "/versions"), "/api"))

	assert.Equal(t, []string{"/api/v1/users", "/api/versions"}, r.Build().Prefixes())
}
