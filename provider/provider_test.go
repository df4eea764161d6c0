package provider

import (
	"testing"

	"github.com/hostspec/hostspec/platform"
	"github.com/hostspec/hostspec/provider/file"
	"github.com/hostspec/hostspec/provider/port"
	"github.com/hostspec/hostspec/provider/service"
	"github.com/hostspec/hostspec/provider/software"
)

func TestBindDarwin(t *testing.T) {
	ps, err := Bind(platform.DetectedPlatform{Distro: platform.DistroDarwin, Release: "21.0"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := ps.File.Shell.(file.Bsd); !ok {
		t.Errorf("File.Shell is %T, want file.Bsd", ps.File.Shell)
	}
	if _, ok := ps.Service.Shell.(service.NullShell); !ok {
		t.Errorf("Service.Shell is %T, want service.NullShell", ps.Service.Shell)
	}
	if _, ok := ps.Software.Shell.(software.NullShell); !ok {
		t.Errorf("Software.Shell is %T, want software.NullShell", ps.Software.Shell)
	}
	if _, ok := ps.Port.Shell.(port.NullShell); !ok {
		t.Errorf("Port.Shell is %T, want port.NullShell", ps.Port.Shell)
	}
}

func TestBindUbuntuModernUsesSystemd(t *testing.T) {
	ps, err := Bind(platform.DetectedPlatform{Distro: platform.DistroUbuntu, Release: "20.04"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := ps.Service.Shell.(service.SystemdShell); !ok {
		t.Errorf("Service.Shell is %T, want service.SystemdShell", ps.Service.Shell)
	}
	if _, ok := ps.Service.Inline.(service.NullInline); !ok {
		t.Errorf("Service.Inline is %T, want service.NullInline when no connector supplied", ps.Service.Inline)
	}
	if _, ok := ps.Software.Shell.(software.Apt); !ok {
		t.Errorf("Software.Shell is %T, want software.Apt", ps.Software.Shell)
	}
}

func TestBindUbuntuLegacyUsesUpstart(t *testing.T) {
	ps, err := Bind(platform.DetectedPlatform{Distro: platform.DistroUbuntu, Release: "14.04"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := ps.Service.Shell.(service.UbuntuInit); !ok {
		t.Errorf("Service.Shell is %T, want service.UbuntuInit", ps.Service.Shell)
	}
	if _, ok := ps.Service.Inline.(service.NullInline); !ok {
		t.Errorf("Service.Inline is %T, want service.NullInline for pre-systemd Ubuntu", ps.Service.Inline)
	}
}

func TestBindRedHatModernUsesSystemd(t *testing.T) {
	ps, err := Bind(platform.DetectedPlatform{Distro: platform.DistroRedHat, Release: "7.9.2009"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := ps.Service.Shell.(service.SystemdShell); !ok {
		t.Errorf("Service.Shell is %T, want service.SystemdShell", ps.Service.Shell)
	}
	if _, ok := ps.Software.Shell.(software.Yum); !ok {
		t.Errorf("Software.Shell is %T, want software.Yum", ps.Software.Shell)
	}
}

func TestBindRedHatLegacyUsesSysVInit(t *testing.T) {
	ps, err := Bind(platform.DetectedPlatform{Distro: platform.DistroRedHat, Release: "6.10"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := ps.Service.Shell.(service.SysVInit); !ok {
		t.Errorf("Service.Shell is %T, want service.SysVInit", ps.Service.Shell)
	}
}

func TestBindFileProviderIsPosixEverywhere(t *testing.T) {
	for _, dp := range []platform.DetectedPlatform{
		{Distro: platform.DistroDarwin, Release: "21.0"},
		{Distro: platform.DistroUbuntu, Release: "20.04"},
		{Distro: platform.DistroRedHat, Release: "7.9"},
	} {
		ps, err := Bind(dp, nil)
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := ps.File.Inline.(file.Posix); !ok {
			t.Errorf("%+v: File.Inline is %T, want file.Posix", dp, ps.File.Inline)
		}
	}
}
