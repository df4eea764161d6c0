package resource

import (
	"github.com/hostspec/hostspec/backend"
	"github.com/hostspec/hostspec/dispatch"
	"github.com/hostspec/hostspec/provider/port"
)

// Port is a TCP/UDP port number evaluated against a backend.
type Port struct {
	number   uint16
	backend  backend.Backend
	provider port.Provider
}

// NewPort builds a Port façade for number, to be evaluated via b using p.
func NewPort(number uint16, b backend.Backend, p port.Provider) *Port {
	return &Port{number: number, backend: b, provider: p}
}

// IsListening reports whether something is listening on the port.
func (p *Port) IsListening() (bool, error) {
	out, err := dispatch.Do(p.provider.IsListening(p.number), p.backend)
	if err != nil {
		return false, err
	}
	return out.ToBool()
}
