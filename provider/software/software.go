// Package software provides the shell implementations of the package
// resource's operations: is_installed, version, install, remove. There
// is no inline provider for any distro — package managers are shelled
// out to on every platform this engine targets.
package software

import (
	"github.com/hostspec/hostspec/backend"
	"github.com/hostspec/hostspec/dispatch"
	"github.com/hostspec/hostspec/model"
)

// ShellProvider answers package operations by running commands
// through a backend.Backend. version is empty when unspecified.
type ShellProvider interface {
	IsInstalled(b backend.Backend, name, version string) (model.Output, error)
	Version(b backend.Backend, name, version string) (model.Output, error)
	Install(b backend.Backend, name, version string) (model.Output, error)
	Remove(b backend.Backend, name string) (model.Output, error)
}

// Provider wraps a ShellProvider. There is no platform where an inline
// package provider exists, so Provider's HandleFuncs always carry a
// nil Inline closure and dispatch goes straight to Shell.
type Provider struct {
	Shell ShellProvider
}

func (p Provider) IsInstalled(name, version string) dispatch.HandleFunc {
	return dispatch.HandleFunc{
		Shell: func(b backend.Backend) (model.Output, error) { return p.Shell.IsInstalled(b, name, version) },
	}
}

func (p Provider) Version(name, version string) dispatch.HandleFunc {
	return dispatch.HandleFunc{
		Shell: func(b backend.Backend) (model.Output, error) { return p.Shell.Version(b, name, version) },
	}
}

func (p Provider) Install(name, version string) dispatch.HandleFunc {
	return dispatch.HandleFunc{
		Shell: func(b backend.Backend) (model.Output, error) { return p.Shell.Install(b, name, version) },
	}
}

func (p Provider) Remove(name string) dispatch.HandleFunc {
	return dispatch.HandleFunc{
		Shell: func(b backend.Backend) (model.Output, error) { return p.Shell.Remove(b, name) },
	}
}
