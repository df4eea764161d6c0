package port

import (
	"testing"

	"github.com/hostspec/hostspec/backend"
	"github.com/hostspec/hostspec/model"
)

type recordingBackend struct {
	locus    backend.Locus
	commands []string
	succeed  bool
}

func (r *recordingBackend) Locus() backend.Locus { return r.locus }

func (r *recordingBackend) Run(spec model.CommandSpec) (model.CommandResult, error) {
	r.commands = append(r.commands, spec.String())
	return model.CommandResult{}, nil
}

func (r *recordingBackend) Probe(spec model.CommandSpec) bool {
	r.commands = append(r.commands, spec.String())
	return r.succeed
}

func TestNetstatIsListeningCommand(t *testing.T) {
	b := &recordingBackend{locus: backend.LocusRemote, succeed: true}

	out, err := Netstat{}.IsListening(b, 443)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := out.ToBool(); !v {
		t.Error("expected true when the backend reports success")
	}

	want := "netstat -tunl | grep -- :443"
	if len(b.commands) != 1 || b.commands[0] != want {
		t.Errorf("commands = %v, want [%q]", b.commands, want)
	}
}

func TestNetstatIsNotListening(t *testing.T) {
	b := &recordingBackend{locus: backend.LocusRemote, succeed: false}

	out, err := Netstat{}.IsListening(b, 9999)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := out.ToBool(); v {
		t.Error("expected false when the backend reports failure")
	}
}
