package file

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"os/user"
	"strconv"
	"syscall"

	"github.com/hostspec/hostspec/model"
)

// Posix answers file operations using local syscalls: stat for
// type/permissions/size, getpwuid/getgrgid (via os/user) for
// owner/group, symlink-aware Lstat for IsSymlink, Readlink for
// LinkedTo, and a plain file read for Contents/MD5Sum/SHA256Sum.
type Posix struct{}

func (Posix) stat(name string) (os.FileInfo, *syscall.Stat_t, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, nil, err
	}
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return fi, nil, nil
	}
	return fi, st, nil
}

// Mode returns the low 12 permission bits (rwxrwxrwx plus
// setuid/setgid/sticky) as a uint32.
func (p Posix) Mode(name string) (model.Output, error) {
	_, st, err := p.stat(name)
	if err != nil {
		return model.Output{}, err
	}
	return model.OutputU32(uint32(st.Mode) & 0o7777), nil
}

func (p Posix) Size(name string) (model.Output, error) {
	fi, _, err := p.stat(name)
	if err != nil {
		return model.Output{}, err
	}
	return model.OutputI64(fi.Size()), nil
}

func (p Posix) IsFile(name string) (model.Output, error) {
	fi, _, err := p.stat(name)
	if err != nil {
		return model.OutputBool(false), nil
	}
	return model.OutputBool(fi.Mode().IsRegular()), nil
}

func (p Posix) Exist(name string) (model.Output, error) {
	_, err := os.Lstat(name)
	return model.OutputBool(err == nil), nil
}

func (p Posix) IsDirectory(name string) (model.Output, error) {
	fi, _, err := p.stat(name)
	if err != nil {
		return model.OutputBool(false), nil
	}
	return model.OutputBool(fi.IsDir()), nil
}

func (p Posix) IsBlockDevice(name string) (model.Output, error) {
	fi, _, err := p.stat(name)
	if err != nil {
		return model.OutputBool(false), nil
	}
	return model.OutputBool(fi.Mode()&os.ModeDevice != 0 && fi.Mode()&os.ModeCharDevice == 0), nil
}

func (p Posix) IsCharacterDevice(name string) (model.Output, error) {
	fi, _, err := p.stat(name)
	if err != nil {
		return model.OutputBool(false), nil
	}
	return model.OutputBool(fi.Mode()&os.ModeCharDevice != 0), nil
}

func (p Posix) IsPipe(name string) (model.Output, error) {
	fi, _, err := p.stat(name)
	if err != nil {
		return model.OutputBool(false), nil
	}
	return model.OutputBool(fi.Mode()&os.ModeNamedPipe != 0), nil
}

func (p Posix) IsSocket(name string) (model.Output, error) {
	fi, _, err := p.stat(name)
	if err != nil {
		return model.OutputBool(false), nil
	}
	return model.OutputBool(fi.Mode()&os.ModeSocket != 0), nil
}

func (p Posix) IsSymlink(name string) (model.Output, error) {
	fi, err := os.Lstat(name)
	if err != nil {
		return model.OutputBool(false), nil
	}
	return model.OutputBool(fi.Mode()&os.ModeSymlink != 0), nil
}

func (p Posix) Contents(name string) (model.Output, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return model.Output{}, err
	}
	return model.OutputText(string(data)), nil
}

func (p Posix) Owner(name string) (model.Output, error) {
	_, st, err := p.stat(name)
	if err != nil {
		return model.Output{}, err
	}
	u, err := user.LookupId(strconv.FormatUint(uint64(st.Uid), 10))
	if err != nil {
		return model.OutputText(strconv.FormatUint(uint64(st.Uid), 10)), nil
	}
	return model.OutputText(u.Username), nil
}

func (p Posix) Group(name string) (model.Output, error) {
	_, st, err := p.stat(name)
	if err != nil {
		return model.Output{}, err
	}
	g, err := user.LookupGroupId(strconv.FormatUint(uint64(st.Gid), 10))
	if err != nil {
		return model.OutputText(strconv.FormatUint(uint64(st.Gid), 10)), nil
	}
	return model.OutputText(g.Name), nil
}

func (p Posix) LinkedTo(name string) (model.Output, error) {
	target, err := os.Readlink(name)
	if err != nil {
		return model.Output{}, err
	}
	return model.OutputText(target), nil
}

func (p Posix) MD5Sum(name string) (model.Output, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return model.Output{}, err
	}
	sum := md5.Sum(data)
	return model.OutputText(hex.EncodeToString(sum[:])), nil
}

func (p Posix) SHA256Sum(name string) (model.Output, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return model.Output{}, err
	}
	sum := sha256.Sum256(data)
	return model.OutputText(hex.EncodeToString(sum[:])), nil
}

func resolveLocalIdentity(name string) (identity, error) {
	u, err := user.Lookup(name)
	if err != nil {
		return identity{}, err
	}
	uid, _ := strconv.ParseUint(u.Uid, 10, 32)
	gid, _ := strconv.ParseUint(u.Gid, 10, 32)
	id := identity{uid: uint32(uid), gid: uint32(gid)}

	groupIDs, err := u.GroupIds()
	if err == nil {
		for _, g := range groupIDs {
			gv, err := strconv.ParseUint(g, 10, 32)
			if err == nil {
				id.groups = append(id.groups, uint32(gv))
			}
		}
	}
	return id, nil
}

func (p Posix) IsReadable(name string, whom *model.Whom) (model.Output, error) {
	_, st, err := p.stat(name)
	if err != nil {
		return model.Output{}, err
	}
	ok, err := bitTest(accessRead, uint32(st.Mode), st.Uid, st.Gid, whom, resolveLocalIdentity)
	if err != nil {
		return model.Output{}, err
	}
	return model.OutputBool(ok), nil
}

func (p Posix) IsWritable(name string, whom *model.Whom) (model.Output, error) {
	_, st, err := p.stat(name)
	if err != nil {
		return model.Output{}, err
	}
	ok, err := bitTest(accessWrite, uint32(st.Mode), st.Uid, st.Gid, whom, resolveLocalIdentity)
	if err != nil {
		return model.Output{}, err
	}
	return model.OutputBool(ok), nil
}
