package software

import (
	"fmt"
	"strings"

	"github.com/hostspec/hostspec/backend"
	"github.com/hostspec/hostspec/model"
)

// Yum answers package operations via rpm and yum, for RedHat and its
// derivatives.
type Yum struct{}

func (Yum) IsInstalled(b backend.Backend, name, version string) (model.Output, error) {
	if version == "" {
		return model.OutputBool(b.Probe(model.Cmd(fmt.Sprintf("rpm -q %s", name)))), nil
	}
	spec := model.Cmd(fmt.Sprintf("rpm -q %s", name)).
		Pipe(fmt.Sprintf("grep -w -- %s-%s", name, version))
	return model.OutputBool(b.Probe(spec)), nil
}

// Version returns the pinned version directly when the caller gave
// one, with no shell-out; otherwise it queries rpm for the installed
// version.
func (Yum) Version(b backend.Backend, name, version string) (model.Output, error) {
	if version != "" {
		return model.OutputText(version), nil
	}
	res, err := b.Run(model.Cmd(fmt.Sprintf(`rpm -q --qf '%%{VERSION}-%%{RELEASE}' %s`, name)))
	if err != nil {
		return model.Output{}, err
	}
	return model.OutputText(strings.TrimSpace(res.Stdout)), nil
}

func (Yum) Install(b backend.Backend, name, version string) (model.Output, error) {
	target := name
	if version != "" {
		target = fmt.Sprintf("%s-%s", name, version)
	}
	return model.OutputBool(b.Probe(model.Cmd(fmt.Sprintf("yum -y install %s", target)))), nil
}

func (Yum) Remove(b backend.Backend, name string) (model.Output, error) {
	return model.OutputBool(b.Probe(model.Cmd(fmt.Sprintf("yum -y remove %s", name)))), nil
}
