package platform

import (
	"strconv"
	"strings"

	"github.com/coreos/go-semver/semver"
)

// RedHatAtLeast reports whether release is >= want for RedHat-family
// version gating, e.g. RedHatAtLeast("7.9", "7") == true. Bare major
// versions are zero-padded to a full SemVer before comparison so "7" <
// "7.9" < "8" holds under real SemVer ordering rather than hand-rolled
// numeric splitting.
func RedHatAtLeast(release, want string) (bool, error) {
	rv, err := parseRedHatVersion(release)
	if err != nil {
		return false, err
	}
	wv, err := parseRedHatVersion(want)
	if err != nil {
		return false, err
	}
	return !rv.LessThan(*wv), nil
}

func parseRedHatVersion(v string) (*semver.Version, error) {
	parts := strings.Split(v, ".")
	for len(parts) < 3 {
		parts = append(parts, "0")
	}
	return semver.NewVersion(strings.Join(parts[:3], "."))
}

// UbuntuAtLeast reports whether release is >= want for Ubuntu version
// gating, e.g. UbuntuAtLeast("20.04", "16.0") == true. Ubuntu releases
// are YY.MM, which already sort correctly as a float once trimmed.
func UbuntuAtLeast(release, want string) (bool, error) {
	rv, err := strconv.ParseFloat(strings.TrimSpace(release), 64)
	if err != nil {
		return false, err
	}
	wv, err := strconv.ParseFloat(strings.TrimSpace(want), 64)
	if err != nil {
		return false, err
	}
	return rv >= wv, nil
}
