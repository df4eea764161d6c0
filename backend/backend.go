// Package backend abstracts the single capability the rest of hostspec
// needs from a target: run an opaque shell command and report the
// outcome. Local spawns a process; SSH opens a channel over an
// authenticated session. Both share the same Backend interface so the
// dispatch plane never has to know which one it is holding.
package backend

import (
	"fmt"

	"github.com/hostspec/hostspec/model"
)

// Backend executes a model.CommandSpec and reports the outcome.
type Backend interface {
	// Run executes spec and returns its result only on exit code zero.
	// A non-zero exit yields a *CommandError; I/O or transport failure
	// yields *IOError or *TransportError.
	Run(spec model.CommandSpec) (model.CommandResult, error)

	// Probe runs spec and returns its success bit, never erroring on a
	// non-zero exit code. It is the convenience form shell providers
	// use when they only care whether a command succeeded, not about
	// capturing stdout.
	Probe(spec model.CommandSpec) bool

	// Locus reports whether this backend executes locally or remotely.
	// The dispatcher uses it to decide whether an inline provider may
	// even be attempted.
	Locus() Locus
}

// Locus identifies where a Backend executes commands.
type Locus int

const (
	// LocusLocal means the backend runs commands on this process's
	// host, so inline (syscall-based) providers are valid.
	LocusLocal Locus = iota
	// LocusRemote means the backend runs commands on a remote host
	// over a channel; inline providers have no meaning there.
	LocusRemote
)

func (l Locus) String() string {
	switch l {
	case LocusLocal:
		return "local"
	case LocusRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// CommandError reports a command that ran but exited non-zero.
type CommandError struct {
	Code   int32
	Stderr string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command exited %d: %s", e.Code, e.Stderr)
}

// IOError reports a local process spawn or I/O failure.
type IOError struct {
	Cause error
}

func (e *IOError) Error() string { return fmt.Sprintf("io error: %v", e.Cause) }
func (e *IOError) Unwrap() error { return e.Cause }

// TransportError reports an SSH channel or connection failure,
// including a channel closed by a cancelled context.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string { return fmt.Sprintf("transport error: %v", e.Cause) }
func (e *TransportError) Unwrap() error { return e.Cause }
