package app

import (
	"github.com/MKhiriev/hbnb-api/internal/config"
	"github.com/MKhiriev/hbnb-api/internal/logger"
	"github.com/MKhiriev/hbnb-api/internal/registry"
)

// DefaultInfo is the API description every assembled application carries.
var DefaultInfo = registry.Info{
	Title:       "HBnB API",
	Version:     "1.0",
	Description: "HBnB Application API",
}

// Mount pairs a namespace with the version prefix it is served under.
type Mount struct {
	Namespace     registry.Namespace
	VersionPrefix string
}

// DefaultMounts mounts every namespace under [registry.DefaultVersionPrefix],
// keeping the given order.
func DefaultMounts(namespaces ...registry.Namespace) []Mount {
	mounts := make([]Mount, 0, len(namespaces))
	for _, ns := range namespaces {
		mounts = append(mounts, Mount{Namespace: ns, VersionPrefix: registry.DefaultVersionPrefix})
	}
	return mounts
}

// Application is a fully assembled API: the resolved profile and the frozen
// mount table. It has no mutating methods.
type Application struct {
	profile config.Profile
	table   *registry.MountTable
}

func (a *Application) Profile() config.Profile {
	return a.profile
}

func (a *Application) Table() *registry.MountTable {
	return a.table
}

// Assembler builds applications from a resolver and a fresh registry per
// call. It holds no per-assembly state and is safe for concurrent use.
type Assembler struct {
	resolver    ProfileResolver
	newRegistry func(registry.Info) Mounter
	info        registry.Info

	logger *logger.Logger
}

// AssemblerOption customizes an [Assembler].
type AssemblerOption func(*Assembler)

// WithInfo replaces [DefaultInfo].
func WithInfo(info registry.Info) AssemblerOption {
	return func(a *Assembler) {
		a.info = info
	}
}

// WithRegistryFactory replaces the registry constructor. The factory is
// called once per Assemble.
func WithRegistryFactory(factory func(registry.Info) Mounter) AssemblerOption {
	return func(a *Assembler) {
		a.newRegistry = factory
	}
}

func NewAssembler(resolver ProfileResolver, log *logger.Logger, opts ...AssemblerOption) *Assembler {
	a := &Assembler{
		resolver: resolver,
		newRegistry: func(info registry.Info) Mounter {
			return registry.NewRegistry(info, registry.WithReserved(ServicePaths()...))
		},
		info:   DefaultInfo,
		logger: log,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble resolves profileName, mounts every entry of mounts in order and
// builds the registry.
//
// The first error, from the resolver or from a mount, is returned unchanged
// together with a nil *Application; later mounts are not attempted and the
// registry is never built.
func (a *Assembler) Assemble(profileName string, mounts []Mount) (*Application, error) {
	profile, err := a.resolver.Resolve(profileName)
	if err != nil {
		a.logger.Error().Err(err).Str("profile", profileName).Msg("error resolving configuration profile")
		return nil, err
	}

	reg := a.newRegistry(a.info)
	for _, m := range mounts {
		if err = reg.Mount(m.Namespace, m.VersionPrefix); err != nil {
			a.logger.Error().Err(err).
				Str("namespace", m.Namespace.Name).
				Str("version_prefix", m.VersionPrefix).
				Msg("error mounting namespace")
			return nil, err
		}
	}

	table := reg.Build()
	a.logger.Info().
		Str("profile", profile.Name).
		Strs("prefixes", table.Prefixes()).
		Msg("application assembled")

	return &Application{profile: profile, table: table}, nil
}

// Assemble uses the process environment and a silent logger.
func Assemble(profileName string, mounts []Mount) (*Application, error) {
	return NewAssembler(config.NewResolver(), logger.Nop()).Assemble(profileName, mounts)
}
