package software

import (
	"testing"

	"github.com/hostspec/hostspec/backend"
	"github.com/hostspec/hostspec/model"
)

// recordingBackend captures the exact composed command string of every
// Probe/Run call so a test can assert on it.
type recordingBackend struct {
	locus    backend.Locus
	commands []string
	succeed  bool
}

func (r *recordingBackend) Locus() backend.Locus { return r.locus }

func (r *recordingBackend) Run(spec model.CommandSpec) (model.CommandResult, error) {
	r.commands = append(r.commands, spec.String())
	if !r.succeed {
		return model.CommandResult{}, &backend.CommandError{Code: 1}
	}
	return model.CommandResult{Stdout: "", Success: true}, nil
}

func (r *recordingBackend) Probe(spec model.CommandSpec) bool {
	r.commands = append(r.commands, spec.String())
	return r.succeed
}

func TestAptIsInstalledWithVersionIssuesExactCommand(t *testing.T) {
	b := &recordingBackend{locus: backend.LocusRemote, succeed: true}

	_, err := Apt{}.IsInstalled(b, "vim", "2:8.2.*")
	if err != nil {
		t.Fatal(err)
	}

	want := `dpkg-query -f '${Status} ${Version}' -W vim | grep -E '^(install|hold) ok installed 2:8.2.*$'`
	if len(b.commands) != 1 || b.commands[0] != want {
		t.Errorf("commands = %v, want [%q]", b.commands, want)
	}
}

func TestAptIsInstalledWithoutVersion(t *testing.T) {
	b := &recordingBackend{locus: backend.LocusRemote, succeed: true}

	out, err := Apt{}.IsInstalled(b, "vim", "")
	if err != nil {
		t.Fatal(err)
	}
	v, _ := out.ToBool()
	if !v {
		t.Error("expected true when the backend reports success")
	}

	want := `dpkg-query -f '${Status}' -W vim | grep -E '^(install|hold) ok installed$'`
	if len(b.commands) != 1 || b.commands[0] != want {
		t.Errorf("commands = %v, want [%q]", b.commands, want)
	}
}

func TestAptInstallPinsVersion(t *testing.T) {
	b := &recordingBackend{locus: backend.LocusRemote, succeed: true}

	_, err := Apt{}.Install(b, "vim", "2:8.2.*")
	if err != nil {
		t.Fatal(err)
	}

	want := "DEBIAN_FRONTEND=noninteractive apt-get -y -o Dpkg::Options::=--force-confold -o Dpkg::Options::=--force-confdef install vim=2:8.2.*"
	if len(b.commands) != 1 || b.commands[0] != want {
		t.Errorf("commands = %v, want [%q]", b.commands, want)
	}
}

func TestAptVersionPinnedSkipsShellOut(t *testing.T) {
	b := &recordingBackend{locus: backend.LocusRemote, succeed: true}

	out, err := Apt{}.Version(b, "vim", "2:8.2.*")
	if err != nil {
		t.Fatal(err)
	}
	if len(b.commands) != 0 {
		t.Errorf("commands = %v, want none for a pinned version", b.commands)
	}
	text, _ := out.ToText()
	if text != "2:8.2.*" {
		t.Errorf("Version = %q, want the pinned version", text)
	}
}

func TestAptVersionUnpinnedQueriesDpkg(t *testing.T) {
	b := &recordingBackend{locus: backend.LocusRemote, succeed: true}

	_, err := Apt{}.Version(b, "vim", "")
	if err != nil {
		t.Fatal(err)
	}

	want := `dpkg-query -f '${Version}' -W vim`
	if len(b.commands) != 1 || b.commands[0] != want {
		t.Errorf("commands = %v, want [%q]", b.commands, want)
	}
}

func TestAptRemove(t *testing.T) {
	b := &recordingBackend{locus: backend.LocusRemote, succeed: true}

	_, err := Apt{}.Remove(b, "vim")
	if err != nil {
		t.Fatal(err)
	}

	want := "DEBIAN_FRONTEND=noninteractive apt-get -y remove vim"
	if len(b.commands) != 1 || b.commands[0] != want {
		t.Errorf("commands = %v, want [%q]", b.commands, want)
	}
}
