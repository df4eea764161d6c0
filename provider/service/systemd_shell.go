package service

import (
	"github.com/hostspec/hostspec/backend"
	"github.com/hostspec/hostspec/model"
)

// SystemdShell answers service operations via "systemctl"; the
// success bit of each invocation is the answer.
type SystemdShell struct{}

func (SystemdShell) run(b backend.Backend, verb, name string) (model.Output, error) {
	return model.OutputBool(b.Probe(model.Cmd("systemctl " + verb + " " + name))), nil
}

func (s SystemdShell) IsRunning(b backend.Backend, name string) (model.Output, error) {
	return s.run(b, "is-active", name)
}

func (s SystemdShell) IsEnabled(b backend.Backend, name string) (model.Output, error) {
	return s.run(b, "is-enabled", name)
}

func (s SystemdShell) Enable(b backend.Backend, name string) (model.Output, error) {
	return s.run(b, "enable", name)
}

func (s SystemdShell) Disable(b backend.Backend, name string) (model.Output, error) {
	return s.run(b, "disable", name)
}

func (s SystemdShell) Start(b backend.Backend, name string) (model.Output, error) {
	return s.run(b, "start", name)
}

func (s SystemdShell) Stop(b backend.Backend, name string) (model.Output, error) {
	return s.run(b, "stop", name)
}

func (s SystemdShell) Reload(b backend.Backend, name string) (model.Output, error) {
	return s.run(b, "reload", name)
}

func (s SystemdShell) Restart(b backend.Backend, name string) (model.Output, error) {
	return s.run(b, "restart", name)
}
