// Package platform identifies the target operating system so the
// right set of command-line tools and init-system conventions can be
// selected. Detection runs an ordered list of candidate distros,
// trying each one's inline probe (a local syscall or file read) before
// its shell probe (a command run through a backend.Backend), and stops
// at the first match.
package platform

// Family is the broad OS family a Distro belongs to.
type Family int

// Recognized families.
const (
	FamilyLinux Family = iota
	FamilyBSD
)

func (f Family) String() string {
	switch f {
	case FamilyLinux:
		return "linux"
	case FamilyBSD:
		return "bsd"
	default:
		return "unknown"
	}
}

// Distro is a specific, detected operating system distribution.
type Distro int

// Recognized distributions.
const (
	DistroDarwin Distro = iota
	DistroUbuntu
	DistroRedHat
)

func (d Distro) String() string {
	switch d {
	case DistroDarwin:
		return "darwin"
	case DistroUbuntu:
		return "ubuntu"
	case DistroRedHat:
		return "redhat"
	default:
		return "unknown"
	}
}

// DetectedPlatform is the immutable result of detection: which distro
// was found, in which family, and at which release.
type DetectedPlatform struct {
	Family  Family
	Distro  Distro
	Release string
}
