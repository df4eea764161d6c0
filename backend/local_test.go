package backend

import (
	"testing"

	"github.com/hostspec/hostspec/model"
)

func TestLocalRunSuccess(t *testing.T) {
	l := NewLocal()
	res, err := l.Run(model.Cmd("echo hello"))
	if err != nil {
		t.Fatal(err)
	}
	if res.Stdout != "hello" {
		t.Errorf("Stdout = %q, want %q", res.Stdout, "hello")
	}
	if !res.Success || res.ExitCode != 0 {
		t.Errorf("expected success with exit code 0, got %+v", res)
	}
}

func TestLocalRunNonZeroExitIsCommandError(t *testing.T) {
	l := NewLocal()
	_, err := l.Run(model.Cmd("exit 3"))
	if err == nil {
		t.Fatal("expected an error")
	}
	cmdErr, ok := err.(*CommandError)
	if !ok {
		t.Fatalf("err is %T, want *CommandError", err)
	}
	if cmdErr.Code != 3 {
		t.Errorf("Code = %d, want 3", cmdErr.Code)
	}
}

func TestLocalProbe(t *testing.T) {
	l := NewLocal()
	if !l.Probe(model.Cmd("true")) {
		t.Error("expected Probe true for \"true\"")
	}
	if l.Probe(model.Cmd("false")) {
		t.Error("expected Probe false for \"false\"")
	}
}

func TestLocalPipeComposition(t *testing.T) {
	l := NewLocal()
	res, err := l.Run(model.Cmd("echo hello world").Pipe("grep world"))
	if err != nil {
		t.Fatal(err)
	}
	if res.Stdout != "hello world" {
		t.Errorf("Stdout = %q, want %q", res.Stdout, "hello world")
	}
}

func TestLocalLocus(t *testing.T) {
	l := NewLocal()
	if l.Locus() != LocusLocal {
		t.Errorf("Locus() = %v, want LocusLocal", l.Locus())
	}
}
