package app

import (
	"github.com/MKhiriev/hbnb-api/internal/config"
	"github.com/MKhiriev/hbnb-api/internal/registry"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/app_mock.go -package=mock

// ProfileResolver turns a profile name into a configuration profile.
// [*config.Resolver] is the production implementation.
type ProfileResolver interface {
	Resolve(name string) (config.Profile, error)
}

// Mounter collects namespaces and freezes them into a mount table.
// [*registry.Registry] is the production implementation.
type Mounter interface {
	Mount(ns registry.Namespace, versionPrefix string) error
	Build() *registry.MountTable
}
