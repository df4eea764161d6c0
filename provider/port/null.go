package port

import (
	"github.com/hostspec/hostspec/backend"
	"github.com/hostspec/hostspec/model"
)

// NullShell answers OperationNotSupportedHere. It is bound on Darwin,
// which has no netstat-based port provider in this engine's scope.
type NullShell struct{}

func (NullShell) IsListening(backend.Backend, uint16) (model.Output, error) {
	return model.Output{}, &model.OperationNotSupportedHereError{Provider: "port.null", Operation: "is_listening"}
}
