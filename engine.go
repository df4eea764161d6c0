package hostspec

import (
	"github.com/hashicorp/go-hclog"
	"github.com/hostspec/hostspec/backend"
	"github.com/hostspec/hostspec/model"
	"github.com/hostspec/hostspec/platform"
	"github.com/hostspec/hostspec/provider"
	"github.com/hostspec/hostspec/provider/service"
	"github.com/hostspec/hostspec/resource"
	"github.com/pkg/errors"
)

// Engine binds a backend to a detected platform's provider set. It is
// the entry point for every resource query.
type Engine struct {
	backend   backend.Backend
	platform  platform.DetectedPlatform
	providers provider.ProviderSet
	logger    hclog.Logger
	systemd   *service.Systemd
}

// Option configures an Engine at construction time.
type Option func(*options)

type options struct {
	logger  hclog.Logger
	systemd *service.Systemd
}

// WithLogger sets the logger used for engine lifecycle events (platform
// detection in New). The default is a no-op logger.
func WithLogger(l hclog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithSystemd supplies an already-connected D-Bus systemd client for
// the engine to use as its inline service provider, when the detected
// platform calls for one. Without it, service inline queries fall
// straight through to the shell provider.
func WithSystemd(s *service.Systemd) Option {
	return func(o *options) { o.systemd = s }
}

// New detects the platform reachable through b and binds the provider
// set that matches it.
func New(b backend.Backend, opts ...Option) (*Engine, error) {
	o := &options{logger: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(o)
	}

	o.logger.Debug("detecting platform", "locus", b.Locus())
	dp, err := platform.Detect(b)
	if err != nil {
		return nil, errors.Wrap(err, "detect platform")
	}
	o.logger.Info("detected platform", "family", dp.Family.String(), "distro", dp.Distro.String(), "release", dp.Release)

	// Pass a nil interface, not a typed-nil *service.Systemd, so Bind
	// falls back to service.NullInline when no client was supplied.
	var sd service.InlineProvider
	if o.systemd != nil {
		sd = o.systemd
	}
	ps, err := provider.Bind(dp, sd)
	if err != nil {
		return nil, errors.Wrap(err, "bind providers")
	}

	return &Engine{
		backend:   b,
		platform:  dp,
		providers: ps,
		logger:    o.logger,
		systemd:   o.systemd,
	}, nil
}

// Platform returns the platform the engine detected at construction.
func (e *Engine) Platform() platform.DetectedPlatform { return e.platform }

// Close closes the systemd connection handed to the engine via
// WithSystemd, if any. It releases nothing else.
func (e *Engine) Close() {
	if e.systemd != nil {
		e.systemd.Close()
	}
}

// File returns a façade for querying the named path.
func (e *Engine) File(name string) *resource.File {
	return resource.NewFile(name, e.backend, e.providers.File)
}

// Service returns a façade for querying the named init-system unit.
func (e *Engine) Service(name string) *resource.Service {
	return resource.NewService(name, e.backend, e.providers.Service)
}

// Package returns a façade for querying the named software package, at
// an optional pinned version.
func (e *Engine) Package(name, version string) *resource.Package {
	return resource.NewPackage(name, version, e.backend, e.providers.Software)
}

// Port returns a façade for querying whether a port is listening.
func (e *Engine) Port(number uint16) *resource.Port {
	return resource.NewPort(number, e.backend, e.providers.Port)
}

// Whom re-exports the model package's permission-qualifier
// constructors so callers never need to import model directly.
var (
	WhomOwner  = model.WhomOwner
	WhomGroup  = model.WhomGroup
	WhomOthers = model.WhomOthers
	WhomUser   = model.WhomUser
)
