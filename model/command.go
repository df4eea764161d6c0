// Package model holds the small, dependency-free data types shared by
// every layer of hostspec: the command/result pair a Backend exchanges,
// the tagged Output union operation providers return, the Whom
// permission qualifier, and the sentinel error types the dispatcher and
// callers pattern-match on. Keeping them free of imports on backend,
// platform, or provider avoids import cycles between those packages.
package model

import "strings"

// CommandSpec is an immutable shell command: a base string, optional
// pipe-appended stages, and an optional OR-fallback stage. It is built
// per call and discarded after execution.
type CommandSpec struct {
	Base  string
	Pipes []string
	Or    string
}

// Cmd builds a CommandSpec with no pipe or fallback stages.
func Cmd(base string) CommandSpec {
	return CommandSpec{Base: base}
}

// Pipe appends a pipe stage and returns the updated spec.
func (c CommandSpec) Pipe(stage string) CommandSpec {
	c.Pipes = append(append([]string{}, c.Pipes...), stage)
	return c
}

// WithOr sets the OR-fallback stage and returns the updated spec.
func (c CommandSpec) WithOr(stage string) CommandSpec {
	c.Or = stage
	return c
}

// String composes the fields into the literal shell command: the base
// and pipe stages joined by " | ", optionally OR-ed with the fallback
// stage via " || ".
func (c CommandSpec) String() string {
	stages := append([]string{c.Base}, c.Pipes...)
	composed := strings.Join(stages, " | ")
	if c.Or != "" {
		composed = composed + " || " + c.Or
	}
	return composed
}

// CommandResult is the trimmed outcome of running a CommandSpec.
// Success holds iff ExitCode == 0.
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int32
	Success  bool
}
