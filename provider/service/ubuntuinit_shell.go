package service

import (
	"strings"

	"github.com/hostspec/hostspec/backend"
	"github.com/hostspec/hostspec/model"
)

// UbuntuInit answers service operations via "service" and
// "update-rc.d", for Ubuntu releases older than 16.0 (upstart/SysV).
type UbuntuInit struct{}

// IsRunning must additionally inspect stdout for the literal substring
// "stop", since upstart's "service status" exits zero even when the
// service is stopped.
func (UbuntuInit) IsRunning(b backend.Backend, name string) (model.Output, error) {
	res, err := b.Run(model.Cmd("service " + name + " status"))
	if err != nil {
		return model.OutputBool(false), nil
	}
	return model.OutputBool(!strings.Contains(res.Stdout, "stop")), nil
}

func (UbuntuInit) IsEnabled(b backend.Backend, name string) (model.Output, error) {
	spec := model.Cmd("ls /etc/rc3.d/").
		Pipe("grep '^S.." + name + "$'").
		WithOr("grep '^\\s*start on' /etc/init/" + name + ".conf")
	return model.OutputBool(b.Probe(spec)), nil
}

func (UbuntuInit) Enable(b backend.Backend, name string) (model.Output, error) {
	return model.OutputBool(b.Probe(model.Cmd("update-rc.d " + name + " defaults"))), nil
}

func (UbuntuInit) Disable(b backend.Backend, name string) (model.Output, error) {
	return model.OutputBool(b.Probe(model.Cmd("update-rc.d -f " + name + " remove"))), nil
}

func (UbuntuInit) Start(b backend.Backend, name string) (model.Output, error) {
	return model.OutputBool(b.Probe(model.Cmd("service " + name + " start"))), nil
}

func (UbuntuInit) Stop(b backend.Backend, name string) (model.Output, error) {
	return model.OutputBool(b.Probe(model.Cmd("service " + name + " stop"))), nil
}

func (UbuntuInit) Reload(b backend.Backend, name string) (model.Output, error) {
	return model.OutputBool(b.Probe(model.Cmd("service " + name + " reload"))), nil
}

func (UbuntuInit) Restart(b backend.Backend, name string) (model.Output, error) {
	return model.OutputBool(b.Probe(model.Cmd("service " + name + " restart"))), nil
}
