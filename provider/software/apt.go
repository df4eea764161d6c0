package software

import (
	"fmt"
	"strings"

	"github.com/hostspec/hostspec/backend"
	"github.com/hostspec/hostspec/model"
)

// Apt answers package operations via dpkg-query and apt-get, for
// Ubuntu and other Debian-derived distros.
type Apt struct{}

// IsInstalled mirrors the exact two shapes the package providers are
// contracted to issue: "${Status}" alone when no version is given,
// "${Status} ${Version}" piped through grep -E when one is (e.g.
// "vim", "2:8.2.*" issues
// "dpkg-query -f '${Status} ${Version}' -W vim | grep -E '^(install|hold) ok installed 2:8.2.*$'").
func (Apt) IsInstalled(b backend.Backend, name, version string) (model.Output, error) {
	if version == "" {
		spec := model.Cmd(fmt.Sprintf("dpkg-query -f '${Status}' -W %s", name)).
			Pipe(`grep -E '^(install|hold) ok installed$'`)
		return model.OutputBool(b.Probe(spec)), nil
	}

	spec := model.Cmd(fmt.Sprintf("dpkg-query -f '${Status} ${Version}' -W %s", name)).
		Pipe(fmt.Sprintf(`grep -E '^(install|hold) ok installed %s$'`, version))
	return model.OutputBool(b.Probe(spec)), nil
}

// Version returns the pinned version directly when the caller gave
// one, with no shell-out; otherwise it queries dpkg for the installed
// version.
func (Apt) Version(b backend.Backend, name, version string) (model.Output, error) {
	if version != "" {
		return model.OutputText(version), nil
	}
	res, err := b.Run(model.Cmd(fmt.Sprintf("dpkg-query -f '${Version}' -W %s", name)))
	if err != nil {
		return model.Output{}, err
	}
	return model.OutputText(strings.TrimSpace(res.Stdout)), nil
}

func (Apt) Install(b backend.Backend, name, version string) (model.Output, error) {
	target := name
	if version != "" {
		target = fmt.Sprintf("%s=%s", name, version)
	}
	spec := model.Cmd(fmt.Sprintf(
		"DEBIAN_FRONTEND=noninteractive apt-get -y -o Dpkg::Options::=--force-confold -o Dpkg::Options::=--force-confdef install %s",
		target,
	))
	return model.OutputBool(b.Probe(spec)), nil
}

func (Apt) Remove(b backend.Backend, name string) (model.Output, error) {
	spec := model.Cmd(fmt.Sprintf("DEBIAN_FRONTEND=noninteractive apt-get -y remove %s", name))
	return model.OutputBool(b.Probe(spec)), nil
}
