package software

import (
	"github.com/hostspec/hostspec/backend"
	"github.com/hostspec/hostspec/model"
)

const nullProviderName = "software.null"

func notSupported(op string) error {
	return &model.OperationNotSupportedHereError{Provider: nullProviderName, Operation: op}
}

// NullShell answers every operation with OperationNotSupportedHere. It
// is bound on Darwin, which has no package manager in this engine's
// scope.
type NullShell struct{}

func (NullShell) IsInstalled(backend.Backend, string, string) (model.Output, error) {
	return model.Output{}, notSupported("is_installed")
}
func (NullShell) Version(backend.Backend, string, string) (model.Output, error) {
	return model.Output{}, notSupported("version")
}
func (NullShell) Install(backend.Backend, string, string) (model.Output, error) {
	return model.Output{}, notSupported("install")
}
func (NullShell) Remove(backend.Backend, string) (model.Output, error) {
	return model.Output{}, notSupported("remove")
}
