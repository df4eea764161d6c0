package service

import (
	"strings"

	"github.com/hostspec/hostspec/backend"
	"github.com/hostspec/hostspec/model"
)

// SysVInit answers service operations via "service" and "chkconfig",
// for RedHat-family distros older than 7.
type SysVInit struct{}

func (SysVInit) IsRunning(b backend.Backend, name string) (model.Output, error) {
	return model.OutputBool(b.Probe(model.Cmd("service " + name + " status"))), nil
}

func (SysVInit) IsEnabled(b backend.Backend, name string) (model.Output, error) {
	res, err := b.Run(model.Cmd("chkconfig --list " + name).Pipe("grep 3:on"))
	if err != nil {
		return model.OutputBool(false), nil
	}
	return model.OutputBool(strings.TrimSpace(res.Stdout) != ""), nil
}

func (SysVInit) Enable(b backend.Backend, name string) (model.Output, error) {
	return model.OutputBool(b.Probe(model.Cmd("chkconfig " + name + " on"))), nil
}

func (SysVInit) Disable(b backend.Backend, name string) (model.Output, error) {
	return model.OutputBool(b.Probe(model.Cmd("chkconfig " + name + " off"))), nil
}

func (SysVInit) Start(b backend.Backend, name string) (model.Output, error) {
	return model.OutputBool(b.Probe(model.Cmd("service " + name + " start"))), nil
}

func (SysVInit) Stop(b backend.Backend, name string) (model.Output, error) {
	return model.OutputBool(b.Probe(model.Cmd("service " + name + " stop"))), nil
}

func (SysVInit) Reload(b backend.Backend, name string) (model.Output, error) {
	return model.OutputBool(b.Probe(model.Cmd("service " + name + " reload"))), nil
}

func (SysVInit) Restart(b backend.Backend, name string) (model.Output, error) {
	return model.OutputBool(b.Probe(model.Cmd("service " + name + " restart"))), nil
}
