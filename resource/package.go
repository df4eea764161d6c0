package resource

import (
	"github.com/hostspec/hostspec/backend"
	"github.com/hostspec/hostspec/dispatch"
	"github.com/hostspec/hostspec/provider/software"
)

// Package is a named software package, optionally pinned to a version,
// evaluated against a backend.
type Package struct {
	name     string
	version  string
	backend  backend.Backend
	provider software.Provider
}

// NewPackage builds a Package façade for name at version (empty means
// unspecified), to be evaluated via b using p.
func NewPackage(name, version string, b backend.Backend, p software.Provider) *Package {
	return &Package{name: name, version: version, backend: b, provider: p}
}

// IsInstalled reports whether the package is installed, at the pinned
// version when one was given.
func (pkg *Package) IsInstalled() (bool, error) {
	out, err := dispatch.Do(pkg.provider.IsInstalled(pkg.name, pkg.version), pkg.backend)
	if err != nil {
		return false, err
	}
	return out.ToBool()
}

// Version returns the pinned version directly when one was given,
// with no shell-out; otherwise it queries the installed version.
func (pkg *Package) Version() (string, error) {
	out, err := dispatch.Do(pkg.provider.Version(pkg.name, pkg.version), pkg.backend)
	if err != nil {
		return "", err
	}
	return out.ToText()
}

// Install installs the package, at the pinned version when one was given.
func (pkg *Package) Install() (bool, error) {
	out, err := dispatch.Do(pkg.provider.Install(pkg.name, pkg.version), pkg.backend)
	if err != nil {
		return false, err
	}
	return out.ToBool()
}

// Remove removes the package.
func (pkg *Package) Remove() (bool, error) {
	out, err := dispatch.Do(pkg.provider.Remove(pkg.name), pkg.backend)
	if err != nil {
		return false, err
	}
	return out.ToBool()
}
