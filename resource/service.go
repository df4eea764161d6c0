package resource

import (
	"github.com/hostspec/hostspec/backend"
	"github.com/hostspec/hostspec/dispatch"
	"github.com/hostspec/hostspec/provider/service"
)

// Service is a named init-system unit evaluated against a backend.
type Service struct {
	name     string
	backend  backend.Backend
	provider service.Provider
}

// NewService builds a Service façade for name, to be evaluated via b using p.
func NewService(name string, b backend.Backend, p service.Provider) *Service {
	return &Service{name: name, backend: b, provider: p}
}

func (s *Service) bool(hf dispatch.HandleFunc) (bool, error) {
	out, err := dispatch.Do(hf, s.backend)
	if err != nil {
		return false, err
	}
	return out.ToBool()
}

// IsRunning reports whether the unit is currently active.
func (s *Service) IsRunning() (bool, error) { return s.bool(s.provider.IsRunning(s.name)) }

// IsEnabled reports whether the unit is enabled to start at boot.
func (s *Service) IsEnabled() (bool, error) { return s.bool(s.provider.IsEnabled(s.name)) }

// Enable marks the unit to start at boot without starting it now.
func (s *Service) Enable() (bool, error) { return s.bool(s.provider.Enable(s.name)) }

// Disable marks the unit to not start at boot without stopping it now.
func (s *Service) Disable() (bool, error) { return s.bool(s.provider.Disable(s.name)) }

// Start starts the unit.
func (s *Service) Start() (bool, error) { return s.bool(s.provider.Start(s.name)) }

// Stop stops the unit.
func (s *Service) Stop() (bool, error) { return s.bool(s.provider.Stop(s.name)) }

// Reload asks the unit to reload its configuration without restarting.
func (s *Service) Reload() (bool, error) { return s.bool(s.provider.Reload(s.name)) }

// Restart stops then starts the unit.
func (s *Service) Restart() (bool, error) { return s.bool(s.provider.Restart(s.name)) }
