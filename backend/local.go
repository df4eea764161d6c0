package backend

import (
	"bytes"
	"os/exec"

	"github.com/hostspec/hostspec/model"
	"github.com/pkg/errors"
)

// Local runs commands by spawning "sh -c <composed command>" on the
// machine the calling process is running on.
type Local struct{}

// NewLocal returns a Local backend. It has no configuration: the
// process's own shell and PATH are used as-is.
func NewLocal() *Local { return &Local{} }

// Locus always reports LocusLocal.
func (l *Local) Locus() Locus { return LocusLocal }

// Run spawns "sh -c" with the composed command and returns the trimmed
// result. A non-zero exit becomes a *CommandError; a spawn failure
// becomes an *IOError.
func (l *Local) Run(spec model.CommandSpec) (model.CommandResult, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.Command("sh", "-c", spec.String())
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	out := string(bytes.TrimSpace(stdout.Bytes()))
	errOut := string(bytes.TrimSpace(stderr.Bytes()))

	if runErr == nil {
		return model.CommandResult{Stdout: out, Stderr: errOut, ExitCode: 0, Success: true}, nil
	}

	exitErr, ok := runErr.(*exec.ExitError)
	if !ok {
		return model.CommandResult{}, &IOError{Cause: errors.Wrap(runErr, "spawn sh -c")}
	}

	code := int32(exitErr.ExitCode())
	return model.CommandResult{}, &CommandError{Code: code, Stderr: errOut}
}

// Probe runs spec and reports only whether it exited zero.
func (l *Local) Probe(spec model.CommandSpec) bool {
	cmd := exec.Command("sh", "-c", spec.String())
	return cmd.Run() == nil
}
