package registry

import (
	"strings"
)

// Entry is one mounted namespace.
type Entry struct {
	// Prefix is the effective prefix: VersionPrefix + Namespace.Path.
	Prefix string
	// VersionPrefix is the normalized version prefix the namespace was
	// mounted under.
	VersionPrefix string
	Namespace     Namespace
}

// MountTable is the frozen result of [Registry.Build]. It has no mutating
// methods; every accessor returns copies, so it can be shared by concurrent
// request handlers without locking.
type MountTable struct {
	info     Info
	entries  []Entry
	byPrefix map[string]int
}

func newMountTable(info Info, entries []Entry) *MountTable {
	t := &MountTable{
		info:     info,
		entries:  make([]Entry, len(entries)),
		byPrefix: make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		e.Namespace = e.Namespace.clone()
		t.entries[i] = e
		t.byPrefix[e.Prefix] = i
	}
	return t
}

// Info returns the API description the registry was created with.
func (t *MountTable) Info() Info {
	return t.info
}

// Len returns the number of mounted namespaces.
func (t *MountTable) Len() int {
	return len(t.entries)
}

// Mounts returns the entries in mount order.
func (t *MountTable) Mounts() []Entry {
	out := make([]Entry, len(t.entries))
	for i, e := range t.entries {
		e.Namespace = e.Namespace.clone()
		out[i] = e
	}
	return out
}

// Prefixes returns the effective prefixes in mount order.
func (t *MountTable) Prefixes() []string {
	out := make([]string, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Prefix
	}
	return out
}

// Lookup returns the namespace mounted at exactly prefix.
func (t *MountTable) Lookup(prefix string) (Namespace, bool) {
	i, ok := t.byPrefix[trimTrailingSlash(prefix)]
	if !ok {
		return Namespace{}, false
	}
	return t.entries[i].Namespace.clone(), true
}

// Match returns the entry whose prefix owns the request path: the path is
// the prefix itself or continues it with "/". Mounted prefixes never
// overlap, so at most one entry matches.
func (t *MountTable) Match(path string) (Entry, bool) {
	for _, e := range t.entries {
		if path == e.Prefix || strings.HasPrefix(path, e.Prefix+"/") {
			e.Namespace = e.Namespace.clone()
			return e, true
		}
	}
	return Entry{}, false
}
