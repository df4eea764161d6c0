// Package resource exposes typed façades over the dispatch plane:
// File, Service, Package, and Port. Each method issues exactly one
// dispatch.Do call and coerces the resulting model.Output to the type
// a caller actually wants, so nothing outside this package ever
// touches model.Output directly.
package resource

import (
	"github.com/hostspec/hostspec/backend"
	"github.com/hostspec/hostspec/dispatch"
	"github.com/hostspec/hostspec/model"
	"github.com/hostspec/hostspec/provider/file"
)

// File is a named path evaluated against a backend.
type File struct {
	name     string
	backend  backend.Backend
	provider file.Provider
}

// NewFile builds a File façade for name, to be evaluated via b using p.
func NewFile(name string, b backend.Backend, p file.Provider) *File {
	return &File{name: name, backend: b, provider: p}
}

func (f *File) run(hf dispatch.HandleFunc) (model.Output, error) {
	return dispatch.Do(hf, f.backend)
}

// Mode returns the file's low 12 permission bits.
func (f *File) Mode() (uint32, error) {
	out, err := f.run(f.provider.Mode(f.name))
	if err != nil {
		return 0, err
	}
	return out.ToU32()
}

// Size returns the file's size in bytes.
func (f *File) Size() (int64, error) {
	out, err := f.run(f.provider.Size(f.name))
	if err != nil {
		return 0, err
	}
	return out.ToI64()
}

// IsFile reports whether the path exists and is a regular file.
func (f *File) IsFile() (bool, error) {
	out, err := f.run(f.provider.IsFile(f.name))
	if err != nil {
		return false, err
	}
	return out.ToBool()
}

// Exist reports whether the path exists at all.
func (f *File) Exist() (bool, error) {
	out, err := f.run(f.provider.Exist(f.name))
	if err != nil {
		return false, err
	}
	return out.ToBool()
}

// IsDirectory reports whether the path exists and is a directory.
func (f *File) IsDirectory() (bool, error) {
	out, err := f.run(f.provider.IsDirectory(f.name))
	if err != nil {
		return false, err
	}
	return out.ToBool()
}

// IsBlockDevice reports whether the path exists and is a block device.
func (f *File) IsBlockDevice() (bool, error) {
	out, err := f.run(f.provider.IsBlockDevice(f.name))
	if err != nil {
		return false, err
	}
	return out.ToBool()
}

// IsCharacterDevice reports whether the path exists and is a character device.
func (f *File) IsCharacterDevice() (bool, error) {
	out, err := f.run(f.provider.IsCharacterDevice(f.name))
	if err != nil {
		return false, err
	}
	return out.ToBool()
}

// IsPipe reports whether the path exists and is a named pipe.
func (f *File) IsPipe() (bool, error) {
	out, err := f.run(f.provider.IsPipe(f.name))
	if err != nil {
		return false, err
	}
	return out.ToBool()
}

// IsSocket reports whether the path exists and is a socket.
func (f *File) IsSocket() (bool, error) {
	out, err := f.run(f.provider.IsSocket(f.name))
	if err != nil {
		return false, err
	}
	return out.ToBool()
}

// IsSymlink reports whether the path exists and is a symbolic link.
func (f *File) IsSymlink() (bool, error) {
	out, err := f.run(f.provider.IsSymlink(f.name))
	if err != nil {
		return false, err
	}
	return out.ToBool()
}

// Contents returns the file's full contents as text.
func (f *File) Contents() (string, error) {
	out, err := f.run(f.provider.Contents(f.name))
	if err != nil {
		return "", err
	}
	return out.ToText()
}

// Owner returns the file's owning user name.
func (f *File) Owner() (string, error) {
	out, err := f.run(f.provider.Owner(f.name))
	if err != nil {
		return "", err
	}
	return out.ToText()
}

// Group returns the file's owning group name.
func (f *File) Group() (string, error) {
	out, err := f.run(f.provider.Group(f.name))
	if err != nil {
		return "", err
	}
	return out.ToText()
}

// LinkedTo returns the target of a symbolic link.
func (f *File) LinkedTo() (string, error) {
	out, err := f.run(f.provider.LinkedTo(f.name))
	if err != nil {
		return "", err
	}
	return out.ToText()
}

// IsReadable reports whether whom can read the file. A nil whom checks
// whether anybody can.
func (f *File) IsReadable(whom *model.Whom) (bool, error) {
	out, err := f.run(f.provider.IsReadable(f.name, whom))
	if err != nil {
		return false, err
	}
	return out.ToBool()
}

// IsWritable reports whether whom can write the file. A nil whom checks
// whether anybody can.
func (f *File) IsWritable(whom *model.Whom) (bool, error) {
	out, err := f.run(f.provider.IsWritable(f.name, whom))
	if err != nil {
		return false, err
	}
	return out.ToBool()
}

// MD5Sum returns the file's MD5 digest as a hex string.
func (f *File) MD5Sum() (string, error) {
	out, err := f.run(f.provider.MD5Sum(f.name))
	if err != nil {
		return "", err
	}
	return out.ToText()
}

// SHA256Sum returns the file's SHA-256 digest as a hex string.
func (f *File) SHA256Sum() (string, error) {
	out, err := f.run(f.provider.SHA256Sum(f.name))
	if err != nil {
		return "", err
	}
	return out.ToText()
}
