package service

import (
	"github.com/hostspec/hostspec/backend"
	"github.com/hostspec/hostspec/model"
)

// recordingBackend captures the exact composed command string of every
// Probe/Run call so a test can assert on it.
type recordingBackend struct {
	locus    backend.Locus
	commands []string
	succeed  bool
	stdout   string
}

func (r *recordingBackend) Locus() backend.Locus { return r.locus }

func (r *recordingBackend) Run(spec model.CommandSpec) (model.CommandResult, error) {
	r.commands = append(r.commands, spec.String())
	if !r.succeed {
		return model.CommandResult{}, &backend.CommandError{Code: 1}
	}
	return model.CommandResult{Stdout: r.stdout, Success: true}, nil
}

func (r *recordingBackend) Probe(spec model.CommandSpec) bool {
	r.commands = append(r.commands, spec.String())
	return r.succeed
}
