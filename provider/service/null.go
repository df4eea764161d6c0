package service

import (
	"github.com/hostspec/hostspec/backend"
	"github.com/hostspec/hostspec/model"
)

const nullProviderName = "service.null"

func notSupported(op string) error {
	return &model.OperationNotSupportedHereError{Provider: nullProviderName, Operation: op}
}

// NullInline answers every operation with OperationNotSupportedHere.
// It is bound wherever a platform has no inline service provider
// (Darwin and every non-systemd distro), and on systemd distros when
// no *Systemd client is supplied to Bind.
type NullInline struct{}

func (NullInline) IsRunning(string) (model.Output, error) { return model.Output{}, notSupported("is_running") }
func (NullInline) IsEnabled(string) (model.Output, error) { return model.Output{}, notSupported("is_enabled") }
func (NullInline) Enable(string) (model.Output, error)    { return model.Output{}, notSupported("enable") }
func (NullInline) Disable(string) (model.Output, error)   { return model.Output{}, notSupported("disable") }
func (NullInline) Start(string) (model.Output, error)     { return model.Output{}, notSupported("start") }
func (NullInline) Stop(string) (model.Output, error)      { return model.Output{}, notSupported("stop") }
func (NullInline) Reload(string) (model.Output, error)    { return model.Output{}, notSupported("reload") }
func (NullInline) Restart(string) (model.Output, error)   { return model.Output{}, notSupported("restart") }

// NullShell answers every operation with OperationNotSupportedHere. It
// is bound wherever a platform has no shell service provider (Darwin).
type NullShell struct{}

func (NullShell) IsRunning(backend.Backend, string) (model.Output, error) {
	return model.Output{}, notSupported("is_running")
}
func (NullShell) IsEnabled(backend.Backend, string) (model.Output, error) {
	return model.Output{}, notSupported("is_enabled")
}
func (NullShell) Enable(backend.Backend, string) (model.Output, error) {
	return model.Output{}, notSupported("enable")
}
func (NullShell) Disable(backend.Backend, string) (model.Output, error) {
	return model.Output{}, notSupported("disable")
}
func (NullShell) Start(backend.Backend, string) (model.Output, error) {
	return model.Output{}, notSupported("start")
}
func (NullShell) Stop(backend.Backend, string) (model.Output, error) {
	return model.Output{}, notSupported("stop")
}
func (NullShell) Reload(backend.Backend, string) (model.Output, error) {
	return model.Output{}, notSupported("reload")
}
func (NullShell) Restart(backend.Backend, string) (model.Output, error) {
	return model.Output{}, notSupported("restart")
}
