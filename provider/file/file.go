// Package file provides the inline and shell implementations of the
// file resource's operations: mode, size, type predicates, ownership,
// symlink target, contents, checksums, and readable/writable-by-whom
// checks.
package file

import (
	"github.com/hostspec/hostspec/backend"
	"github.com/hostspec/hostspec/dispatch"
	"github.com/hostspec/hostspec/model"
)

// InlineProvider answers file operations using local syscalls.
type InlineProvider interface {
	Mode(name string) (model.Output, error)
	Size(name string) (model.Output, error)
	IsFile(name string) (model.Output, error)
	Exist(name string) (model.Output, error)
	IsDirectory(name string) (model.Output, error)
	IsBlockDevice(name string) (model.Output, error)
	IsCharacterDevice(name string) (model.Output, error)
	IsPipe(name string) (model.Output, error)
	IsSocket(name string) (model.Output, error)
	IsSymlink(name string) (model.Output, error)
	Contents(name string) (model.Output, error)
	Owner(name string) (model.Output, error)
	Group(name string) (model.Output, error)
	LinkedTo(name string) (model.Output, error)
	IsReadable(name string, whom *model.Whom) (model.Output, error)
	IsWritable(name string, whom *model.Whom) (model.Output, error)
	MD5Sum(name string) (model.Output, error)
	SHA256Sum(name string) (model.Output, error)
}

// ShellProvider answers file operations by running commands through a
// backend.Backend.
type ShellProvider interface {
	Mode(b backend.Backend, name string) (model.Output, error)
	Size(b backend.Backend, name string) (model.Output, error)
	IsFile(b backend.Backend, name string) (model.Output, error)
	Exist(b backend.Backend, name string) (model.Output, error)
	IsDirectory(b backend.Backend, name string) (model.Output, error)
	IsBlockDevice(b backend.Backend, name string) (model.Output, error)
	IsCharacterDevice(b backend.Backend, name string) (model.Output, error)
	IsPipe(b backend.Backend, name string) (model.Output, error)
	IsSocket(b backend.Backend, name string) (model.Output, error)
	IsSymlink(b backend.Backend, name string) (model.Output, error)
	Contents(b backend.Backend, name string) (model.Output, error)
	Owner(b backend.Backend, name string) (model.Output, error)
	Group(b backend.Backend, name string) (model.Output, error)
	LinkedTo(b backend.Backend, name string) (model.Output, error)
	IsReadable(b backend.Backend, name string, whom *model.Whom) (model.Output, error)
	IsWritable(b backend.Backend, name string, whom *model.Whom) (model.Output, error)
	MD5Sum(b backend.Backend, name string) (model.Output, error)
	SHA256Sum(b backend.Backend, name string) (model.Output, error)
}

// Provider pairs an InlineProvider and a ShellProvider bound for a
// detected platform. Its methods build a dispatch.HandleFunc per
// operation call; Provider itself executes nothing.
type Provider struct {
	Inline InlineProvider
	Shell  ShellProvider
}

func (p Provider) Mode(name string) dispatch.HandleFunc {
	return dispatch.HandleFunc{
		Inline: func() (model.Output, error) { return p.Inline.Mode(name) },
		Shell:  func(b backend.Backend) (model.Output, error) { return p.Shell.Mode(b, name) },
	}
}

func (p Provider) Size(name string) dispatch.HandleFunc {
	return dispatch.HandleFunc{
		Inline: func() (model.Output, error) { return p.Inline.Size(name) },
		Shell:  func(b backend.Backend) (model.Output, error) { return p.Shell.Size(b, name) },
	}
}

func (p Provider) IsFile(name string) dispatch.HandleFunc {
	return dispatch.HandleFunc{
		Inline: func() (model.Output, error) { return p.Inline.IsFile(name) },
		Shell:  func(b backend.Backend) (model.Output, error) { return p.Shell.IsFile(b, name) },
	}
}

func (p Provider) Exist(name string) dispatch.HandleFunc {
	return dispatch.HandleFunc{
		Inline: func() (model.Output, error) { return p.Inline.Exist(name) },
		Shell:  func(b backend.Backend) (model.Output, error) { return p.Shell.Exist(b, name) },
	}
}

func (p Provider) IsDirectory(name string) dispatch.HandleFunc {
	return dispatch.HandleFunc{
		Inline: func() (model.Output, error) { return p.Inline.IsDirectory(name) },
		Shell:  func(b backend.Backend) (model.Output, error) { return p.Shell.IsDirectory(b, name) },
	}
}

func (p Provider) IsBlockDevice(name string) dispatch.HandleFunc {
	return dispatch.HandleFunc{
		Inline: func() (model.Output, error) { return p.Inline.IsBlockDevice(name) },
		Shell:  func(b backend.Backend) (model.Output, error) { return p.Shell.IsBlockDevice(b, name) },
	}
}

func (p Provider) IsCharacterDevice(name string) dispatch.HandleFunc {
	return dispatch.HandleFunc{
		Inline: func() (model.Output, error) { return p.Inline.IsCharacterDevice(name) },
		Shell:  func(b backend.Backend) (model.Output, error) { return p.Shell.IsCharacterDevice(b, name) },
	}
}

func (p Provider) IsPipe(name string) dispatch.HandleFunc {
	return dispatch.HandleFunc{
		Inline: func() (model.Output, error) { return p.Inline.IsPipe(name) },
		Shell:  func(b backend.Backend) (model.Output, error) { return p.Shell.IsPipe(b, name) },
	}
}

func (p Provider) IsSocket(name string) dispatch.HandleFunc {
	return dispatch.HandleFunc{
		Inline: func() (model.Output, error) { return p.Inline.IsSocket(name) },
		Shell:  func(b backend.Backend) (model.Output, error) { return p.Shell.IsSocket(b, name) },
	}
}

func (p Provider) IsSymlink(name string) dispatch.HandleFunc {
	return dispatch.HandleFunc{
		Inline: func() (model.Output, error) { return p.Inline.IsSymlink(name) },
		Shell:  func(b backend.Backend) (model.Output, error) { return p.Shell.IsSymlink(b, name) },
	}
}

func (p Provider) Contents(name string) dispatch.HandleFunc {
	return dispatch.HandleFunc{
		Inline: func() (model.Output, error) { return p.Inline.Contents(name) },
		Shell:  func(b backend.Backend) (model.Output, error) { return p.Shell.Contents(b, name) },
	}
}

func (p Provider) Owner(name string) dispatch.HandleFunc {
	return dispatch.HandleFunc{
		Inline: func() (model.Output, error) { return p.Inline.Owner(name) },
		Shell:  func(b backend.Backend) (model.Output, error) { return p.Shell.Owner(b, name) },
	}
}

func (p Provider) Group(name string) dispatch.HandleFunc {
	return dispatch.HandleFunc{
		Inline: func() (model.Output, error) { return p.Inline.Group(name) },
		Shell:  func(b backend.Backend) (model.Output, error) { return p.Shell.Group(b, name) },
	}
}

func (p Provider) LinkedTo(name string) dispatch.HandleFunc {
	return dispatch.HandleFunc{
		Inline: func() (model.Output, error) { return p.Inline.LinkedTo(name) },
		Shell:  func(b backend.Backend) (model.Output, error) { return p.Shell.LinkedTo(b, name) },
	}
}

func (p Provider) IsReadable(name string, whom *model.Whom) dispatch.HandleFunc {
	return dispatch.HandleFunc{
		Inline: func() (model.Output, error) { return p.Inline.IsReadable(name, whom) },
		Shell:  func(b backend.Backend) (model.Output, error) { return p.Shell.IsReadable(b, name, whom) },
	}
}

func (p Provider) IsWritable(name string, whom *model.Whom) dispatch.HandleFunc {
	return dispatch.HandleFunc{
		Inline: func() (model.Output, error) { return p.Inline.IsWritable(name, whom) },
		Shell:  func(b backend.Backend) (model.Output, error) { return p.Shell.IsWritable(b, name, whom) },
	}
}

func (p Provider) MD5Sum(name string) dispatch.HandleFunc {
	return dispatch.HandleFunc{
		Inline: func() (model.Output, error) { return p.Inline.MD5Sum(name) },
		Shell:  func(b backend.Backend) (model.Output, error) { return p.Shell.MD5Sum(b, name) },
	}
}

func (p Provider) SHA256Sum(name string) dispatch.HandleFunc {
	return dispatch.HandleFunc{
		Inline: func() (model.Output, error) { return p.Inline.SHA256Sum(name) },
		Shell:  func(b backend.Backend) (model.Output, error) { return p.Shell.SHA256Sum(b, name) },
	}
}
