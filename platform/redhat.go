package platform

import (
	"os"
	"strings"

	"github.com/hostspec/hostspec/backend"
	"github.com/hostspec/hostspec/model"
)

const redHatRelease = "/etc/redhat-release"

// redHatInline reads /etc/redhat-release and splits on spaces. The
// distro name is the first token; the release number is the token
// following the literal word "release", falling back to the third
// token when that word is absent. Ambiguous input simply fails to
// match, surfacing DetectError from the caller.
func redHatInline() (release string, ok bool, err error) {
	data, err := os.ReadFile(redHatRelease)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return parseRedHatRelease(string(data))
}

func parseRedHatRelease(contents string) (release string, ok bool, err error) {
	fields := strings.Fields(contents)
	if len(fields) == 0 {
		return "", false, nil
	}

	for i, f := range fields {
		if f == "release" && i+1 < len(fields) {
			return fields[i+1], true, nil
		}
	}
	if len(fields) >= 3 {
		return fields[2], true, nil
	}
	return "", false, nil
}

// redHatShell runs "cat /etc/redhat-release" for backends with no
// local filesystem, parsing it the same way as the inline probe.
func redHatShell(b backend.Backend) (release string, ok bool) {
	res, err := b.Run(model.Cmd("cat " + redHatRelease))
	if err != nil {
		return "", false
	}
	release, ok, err = parseRedHatRelease(res.Stdout)
	if err != nil {
		return "", false
	}
	return release, ok
}
