package platform

import (
	"os"
	"strings"

	"github.com/hostspec/hostspec/backend"
	"github.com/hostspec/hostspec/model"
)

const ubuntuLSBRelease = "/etc/lsb-release"

// ubuntuInline reads /etc/lsb-release and matches if the first line is
// "DISTRIB_ID=Ubuntu"; release comes from the second line's
// "DISTRIB_RELEASE=" value, always trimmed before the caller parses it
// numerically.
func ubuntuInline() (release string, ok bool, err error) {
	data, err := os.ReadFile(ubuntuLSBRelease)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return parseLSBRelease(string(data))
}

func parseLSBRelease(contents string) (release string, ok bool, err error) {
	lines := strings.SplitN(contents, "\n", 3)
	if len(lines) < 2 {
		return "", false, nil
	}
	id := strings.TrimPrefix(strings.TrimSpace(lines[0]), "DISTRIB_ID=")
	if id == strings.TrimSpace(lines[0]) || strings.TrimSpace(id) != "Ubuntu" {
		return "", false, nil
	}
	value := strings.TrimPrefix(strings.TrimSpace(lines[1]), "DISTRIB_RELEASE=")
	if value == strings.TrimSpace(lines[1]) {
		return "", false, nil
	}
	return strings.TrimSpace(value), true, nil
}

// ubuntuShell runs "lsb_release -is" and "lsb_release -rs" to the same
// effect as the inline probe, for backends with no local filesystem.
func ubuntuShell(b backend.Backend) (release string, ok bool) {
	idRes, err := b.Run(model.Cmd("lsb_release -is"))
	if err != nil || strings.TrimSpace(idRes.Stdout) != "Ubuntu" {
		return "", false
	}
	relRes, err := b.Run(model.Cmd("lsb_release -rs"))
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(relRes.Stdout), true
}
