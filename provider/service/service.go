// Package service provides the inline and shell implementations of the
// service resource's operations: is_running, is_enabled, enable,
// disable, start, stop, reload, restart.
package service

import (
	"github.com/hostspec/hostspec/backend"
	"github.com/hostspec/hostspec/dispatch"
	"github.com/hostspec/hostspec/model"
)

// InlineProvider answers service operations using local IPC (systemd
// talks D-Bus on the system bus; other init systems have no local IPC
// and so have no inline provider).
type InlineProvider interface {
	IsRunning(name string) (model.Output, error)
	IsEnabled(name string) (model.Output, error)
	Enable(name string) (model.Output, error)
	Disable(name string) (model.Output, error)
	Start(name string) (model.Output, error)
	Stop(name string) (model.Output, error)
	Reload(name string) (model.Output, error)
	Restart(name string) (model.Output, error)
}

// ShellProvider answers service operations by running commands through
// a backend.Backend.
type ShellProvider interface {
	IsRunning(b backend.Backend, name string) (model.Output, error)
	IsEnabled(b backend.Backend, name string) (model.Output, error)
	Enable(b backend.Backend, name string) (model.Output, error)
	Disable(b backend.Backend, name string) (model.Output, error)
	Start(b backend.Backend, name string) (model.Output, error)
	Stop(b backend.Backend, name string) (model.Output, error)
	Reload(b backend.Backend, name string) (model.Output, error)
	Restart(b backend.Backend, name string) (model.Output, error)
}

// Provider pairs an InlineProvider and a ShellProvider bound for a
// detected platform. Its methods build a dispatch.HandleFunc per
// operation call; Provider itself executes nothing.
type Provider struct {
	Inline InlineProvider
	Shell  ShellProvider
}

func (p Provider) IsRunning(name string) dispatch.HandleFunc {
	return dispatch.HandleFunc{
		Inline: func() (model.Output, error) { return p.Inline.IsRunning(name) },
		Shell:  func(b backend.Backend) (model.Output, error) { return p.Shell.IsRunning(b, name) },
	}
}

func (p Provider) IsEnabled(name string) dispatch.HandleFunc {
	return dispatch.HandleFunc{
		Inline: func() (model.Output, error) { return p.Inline.IsEnabled(name) },
		Shell:  func(b backend.Backend) (model.Output, error) { return p.Shell.IsEnabled(b, name) },
	}
}

func (p Provider) Enable(name string) dispatch.HandleFunc {
	return dispatch.HandleFunc{
		Inline: func() (model.Output, error) { return p.Inline.Enable(name) },
		Shell:  func(b backend.Backend) (model.Output, error) { return p.Shell.Enable(b, name) },
	}
}

func (p Provider) Disable(name string) dispatch.HandleFunc {
	return dispatch.HandleFunc{
		Inline: func() (model.Output, error) { return p.Inline.Disable(name) },
		Shell:  func(b backend.Backend) (model.Output, error) { return p.Shell.Disable(b, name) },
	}
}

func (p Provider) Start(name string) dispatch.HandleFunc {
	return dispatch.HandleFunc{
		Inline: func() (model.Output, error) { return p.Inline.Start(name) },
		Shell:  func(b backend.Backend) (model.Output, error) { return p.Shell.Start(b, name) },
	}
}

func (p Provider) Stop(name string) dispatch.HandleFunc {
	return dispatch.HandleFunc{
		Inline: func() (model.Output, error) { return p.Inline.Stop(name) },
		Shell:  func(b backend.Backend) (model.Output, error) { return p.Shell.Stop(b, name) },
	}
}

func (p Provider) Reload(name string) dispatch.HandleFunc {
	return dispatch.HandleFunc{
		Inline: func() (model.Output, error) { return p.Inline.Reload(name) },
		Shell:  func(b backend.Backend) (model.Output, error) { return p.Shell.Reload(b, name) },
	}
}

func (p Provider) Restart(name string) dispatch.HandleFunc {
	return dispatch.HandleFunc{
		Inline: func() (model.Output, error) { return p.Inline.Restart(name) },
		Shell:  func(b backend.Backend) (model.Output, error) { return p.Shell.Restart(b, name) },
	}
}
