package platform

import (
	"github.com/hostspec/hostspec/backend"
	"github.com/hostspec/hostspec/model"
)

// candidate is one (family, distro) entry in the ordered detection
// list. inline is nil-able only in spirit — it is always set here, but
// is skipped entirely for remote backends since it has no local
// syscall semantics on them.
type candidate struct {
	family Family
	distro Distro
	inline func() (release string, ok bool, err error)
	shell  func(b backend.Backend) (release string, ok bool)
}

// orderedCandidates lists BSD before Linux, and within Linux lists
// Ubuntu before RedHat: /etc/lsb-release is distinctive, whereas
// certain RHEL derivatives ship a generic lsb-release too.
func orderedCandidates() []candidate {
	return []candidate{
		{family: FamilyBSD, distro: DistroDarwin, inline: darwinInline, shell: darwinShell},
		{family: FamilyLinux, distro: DistroUbuntu, inline: ubuntuInline, shell: ubuntuShell},
		{family: FamilyLinux, distro: DistroRedHat, inline: redHatInline, shell: redHatShell},
	}
}

// Detect runs the ordered candidate list against b: inline probe
// first, shell probe second, for local backends; shell probe only for
// remote backends, since inline probes have no meaning there. The
// first candidate to match wins.
func Detect(b backend.Backend) (DetectedPlatform, error) {
	for _, c := range orderedCandidates() {
		if b.Locus() == backend.LocusLocal {
			release, ok, err := c.inline()
			if err != nil {
				return DetectedPlatform{}, err
			}
			if ok {
				return DetectedPlatform{Family: c.family, Distro: c.distro, Release: release}, nil
			}
		}

		if release, ok := c.shell(b); ok {
			return DetectedPlatform{Family: c.family, Distro: c.distro, Release: release}, nil
		}
	}

	return DetectedPlatform{}, &model.DetectError{}
}
