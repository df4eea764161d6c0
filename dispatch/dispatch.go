// Package dispatch holds the single routing rule the rest of hostspec
// builds on: given a HandleFunc's inline and shell closures and a
// backend, decide which one answers the call. It is kept separate from
// package provider so that the per-resource provider packages (file,
// service, software, port) can depend on it without creating an import
// cycle back through provider's ProviderSet.
package dispatch

import (
	"github.com/hostspec/hostspec/backend"
	"github.com/hostspec/hostspec/model"
)

// HandleFunc pairs one inline closure and one shell closure for a
// single operation call, closing over the target identifier and any
// parameters. It is built fresh per call and is not reused.
type HandleFunc struct {
	// Inline answers the call using local syscalls. Nil when the
	// provider that built this HandleFunc has no inline implementation
	// for the platform at hand.
	Inline func() (model.Output, error)
	// Shell answers the call by running a command through b.
	Shell func(b backend.Backend) (model.Output, error)
}

// Do applies the dispatch rule: on a local backend, try Inline first;
// an *model.OperationNotSupportedHereError from Inline falls back to
// Shell, and any other error or success propagates unchanged. On a
// remote backend, Inline is never attempted — it has no meaning there
// — and Shell runs directly.
func Do(hf HandleFunc, b backend.Backend) (model.Output, error) {
	if b.Locus() == backend.LocusLocal && hf.Inline != nil {
		out, err := hf.Inline()
		if err == nil {
			return out, nil
		}
		if _, notHere := err.(*model.OperationNotSupportedHereError); notHere {
			return hf.Shell(b)
		}
		return model.Output{}, err
	}
	return hf.Shell(b)
}
