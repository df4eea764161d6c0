// Package port provides the shell implementation of the port
// resource's single operation: is_listening.
package port

import (
	"github.com/hostspec/hostspec/backend"
	"github.com/hostspec/hostspec/dispatch"
	"github.com/hostspec/hostspec/model"
)

// ShellProvider answers whether a port is listening by running a
// command through a backend.Backend. There is no inline provider for
// any platform this engine targets.
type ShellProvider interface {
	IsListening(b backend.Backend, port uint16) (model.Output, error)
}

// Provider wraps a ShellProvider.
type Provider struct {
	Shell ShellProvider
}

func (p Provider) IsListening(port uint16) dispatch.HandleFunc {
	return dispatch.HandleFunc{
		Shell: func(b backend.Backend) (model.Output, error) { return p.Shell.IsListening(b, port) },
	}
}
