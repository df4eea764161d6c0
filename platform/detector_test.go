package platform

import (
	"testing"

	"github.com/hostspec/hostspec/backend"
	"github.com/hostspec/hostspec/model"
)

// fakeBackend answers Run/Probe from a fixed table of command -> result,
// standing in for a real remote shell without needing one.
type fakeBackend struct {
	locus   backend.Locus
	results map[string]model.CommandResult
}

func (f *fakeBackend) Locus() backend.Locus { return f.locus }

func (f *fakeBackend) Run(spec model.CommandSpec) (model.CommandResult, error) {
	res, ok := f.results[spec.String()]
	if !ok {
		return model.CommandResult{}, &backend.CommandError{Code: 127, Stderr: "no such command"}
	}
	if !res.Success {
		return model.CommandResult{}, &backend.CommandError{Code: res.ExitCode, Stderr: res.Stderr}
	}
	return res, nil
}

func (f *fakeBackend) Probe(spec model.CommandSpec) bool {
	res, ok := f.results[spec.String()]
	return ok && res.Success
}

func TestDetectRemoteUbuntu(t *testing.T) {
	b := &fakeBackend{
		locus: backend.LocusRemote,
		results: map[string]model.CommandResult{
			"uname -sr":        {Stdout: "Linux 5.4.0", Success: true, ExitCode: 0},
			"lsb_release -is":  {Stdout: "Ubuntu", Success: true, ExitCode: 0},
			"lsb_release -rs":  {Stdout: "20.04", Success: true, ExitCode: 0},
		},
	}

	dp, err := Detect(b)
	if err != nil {
		t.Fatal(err)
	}
	if dp.Distro != DistroUbuntu || dp.Release != "20.04" {
		t.Errorf("detected %+v, want Ubuntu/20.04", dp)
	}
}

func TestDetectRemoteRedHat(t *testing.T) {
	b := &fakeBackend{
		locus: backend.LocusRemote,
		results: map[string]model.CommandResult{
			"uname -sr":                    {Success: false, ExitCode: 1},
			"lsb_release -is":              {Success: false, ExitCode: 127},
			"cat /etc/redhat-release":      {Stdout: "CentOS Linux release 7.9.2009 (Core)", Success: true, ExitCode: 0},
		},
	}

	dp, err := Detect(b)
	if err != nil {
		t.Fatal(err)
	}
	if dp.Distro != DistroRedHat || dp.Release != "7.9.2009" {
		t.Errorf("detected %+v, want RedHat/7.9.2009", dp)
	}
}

func TestDetectNoMatchReturnsDetectError(t *testing.T) {
	b := &fakeBackend{locus: backend.LocusRemote, results: map[string]model.CommandResult{}}

	_, err := Detect(b)
	if err == nil {
		t.Fatal("expected an error when no candidate matches")
	}
	if _, ok := err.(*model.DetectError); !ok {
		t.Errorf("err is %T, want *model.DetectError", err)
	}
}
