// Package provider binds a detected platform to the set of inline and
// shell providers used for every subsequent query. It is the only
// place that binding table is encoded.
package provider

import (
	"github.com/hostspec/hostspec/backend"
	"github.com/hostspec/hostspec/dispatch"
	"github.com/hostspec/hostspec/model"
	"github.com/hostspec/hostspec/platform"
	"github.com/hostspec/hostspec/provider/file"
	"github.com/hostspec/hostspec/provider/port"
	"github.com/hostspec/hostspec/provider/service"
	"github.com/hostspec/hostspec/provider/software"
)

// HandleFunc and Dispatch are re-exported from package dispatch so
// callers of package provider never need to import it directly.
type HandleFunc = dispatch.HandleFunc

// Dispatch applies the inline-then-shell-fallback dispatch rule.
func Dispatch(hf HandleFunc, b backend.Backend) (model.Output, error) {
	return dispatch.Do(hf, b)
}

// ProviderSet is the per-platform binding from resource kind to its
// (inline, shell) provider pair.
type ProviderSet struct {
	File     file.Provider
	Service  service.Provider
	Software software.Provider
	Port     port.Provider
}

// systemdConnector is satisfied by *service.Systemd; it is accepted as
// a parameter to Bind rather than constructed internally so local
// engines can share one D-Bus connection and tests can skip opening
// one at all.
type systemdConnector = service.InlineProvider

// Bind materializes a ProviderSet for p, following the binding table.
// systemd is the already-connected inline D-Bus provider to use when
// the platform calls for one; pass nil when none is available (e.g.
// non-local backends, or platforms whose service row has no inline
// column).
func Bind(p platform.DetectedPlatform, systemd systemdConnector) (ProviderSet, error) {
	switch p.Distro {
	case platform.DistroDarwin:
		return ProviderSet{
			File:     file.Provider{Inline: file.Posix{}, Shell: file.NewBsd()},
			Service:  service.Provider{Inline: service.NullInline{}, Shell: service.NullShell{}},
			Software: software.Provider{Shell: software.NullShell{}},
			Port:     port.Provider{Shell: port.NullShell{}},
		}, nil

	case platform.DistroUbuntu:
		atLeast16, err := ubuntuAtLeast16(p.Release)
		if err != nil {
			return ProviderSet{}, err
		}
		svc := service.Provider{Inline: service.NullInline{}, Shell: service.UbuntuInit{}}
		if atLeast16 {
			inline := systemd
			if inline == nil {
				inline = service.NullInline{}
			}
			svc = service.Provider{Inline: inline, Shell: service.SystemdShell{}}
		}
		return ProviderSet{
			File:     file.Provider{Inline: file.Posix{}, Shell: file.NewLinux()},
			Service:  svc,
			Software: software.Provider{Shell: software.Apt{}},
			Port:     port.Provider{Shell: port.Netstat{}},
		}, nil

	case platform.DistroRedHat:
		atLeast7, err := redHatAtLeast7(p.Release)
		if err != nil {
			return ProviderSet{}, err
		}
		svc := service.Provider{Inline: service.NullInline{}, Shell: service.SysVInit{}}
		if atLeast7 {
			inline := systemd
			if inline == nil {
				inline = service.NullInline{}
			}
			svc = service.Provider{Inline: inline, Shell: service.SystemdShell{}}
		}
		return ProviderSet{
			File:     file.Provider{Inline: file.Posix{}, Shell: file.NewLinux()},
			Service:  svc,
			Software: software.Provider{Shell: software.Yum{}},
			Port:     port.Provider{Shell: port.Netstat{}},
		}, nil

	default:
		return ProviderSet{}, &model.DetectError{Reason: "no provider binding for detected distro"}
	}
}

func ubuntuAtLeast16(release string) (bool, error) {
	return platform.UbuntuAtLeast(release, "16.0")
}

func redHatAtLeast7(release string) (bool, error) {
	return platform.RedHatAtLeast(release, "7")
}
