package file

import (
	"strconv"
	"strings"

	"github.com/hostspec/hostspec/backend"
	"github.com/hostspec/hostspec/model"
)

// unixShell is the shell-provider logic shared by Bsd and Linux: both
// run the same sequence of commands, differing only in the stat format
// string and the checksum tool names. Grounded on the original's
// split between a shared mod.rs and per-OS bsd.rs/unix.rs files.
type unixShell struct {
	// statFormat builds the "stat" invocation for name, whose output
	// must be "<modeOctal>:<size>:<uid>:<gid>:<owner>:<group>".
	statFormat func(name string) string
	md5Tool    func(name string) string
	sha256Tool func(name string) string
}

type statInfo struct {
	mode  uint32
	size  int64
	uid   uint32
	gid   uint32
	owner string
	group string
}

func (u unixShell) stat(b backend.Backend, name string) (statInfo, error) {
	res, err := b.Run(model.Cmd(u.statFormat(name)))
	if err != nil {
		return statInfo{}, err
	}
	return parseStatLine(res.Stdout)
}

func parseStatLine(line string) (statInfo, error) {
	fields := strings.SplitN(strings.TrimSpace(line), ":", 6)
	if len(fields) != 6 {
		return statInfo{}, &statParseError{line: line}
	}

	mode, err := strconv.ParseUint(fields[0], 8, 32)
	if err != nil {
		return statInfo{}, err
	}
	size, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return statInfo{}, err
	}
	uid, err := strconv.ParseUint(fields[2], 10, 32)
	if err != nil {
		return statInfo{}, err
	}
	gid, err := strconv.ParseUint(fields[3], 10, 32)
	if err != nil {
		return statInfo{}, err
	}

	return statInfo{
		mode:  uint32(mode),
		size:  size,
		uid:   uint32(uid),
		gid:   uint32(gid),
		owner: fields[4],
		group: fields[5],
	}, nil
}

type statParseError struct{ line string }

func (e *statParseError) Error() string { return "file: could not parse stat output: " + e.line }

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// isSomething implements the "verify existence, then check type" shell
// pattern: if name does not exist, the answer is false, not an error.
func isSomething(b backend.Backend, name string, typeFlag string) (model.Output, error) {
	if !b.Probe(model.Cmd("test -e " + shellQuote(name))) {
		return model.OutputBool(false), nil
	}
	ok := b.Probe(model.Cmd("test -" + typeFlag + " " + shellQuote(name)))
	return model.OutputBool(ok), nil
}

func resolveShellIdentity(b backend.Backend) func(name string) (identity, error) {
	return func(name string) (identity, error) {
		uidRes, err := b.Run(model.Cmd("id -u " + shellQuote(name)))
		if err != nil {
			return identity{}, err
		}
		gidRes, err := b.Run(model.Cmd("id -g " + shellQuote(name)))
		if err != nil {
			return identity{}, err
		}
		groupsRes, err := b.Run(model.Cmd("id -G " + shellQuote(name)))
		if err != nil {
			return identity{}, err
		}

		uid, err := strconv.ParseUint(strings.TrimSpace(uidRes.Stdout), 10, 32)
		if err != nil {
			return identity{}, err
		}
		gid, err := strconv.ParseUint(strings.TrimSpace(gidRes.Stdout), 10, 32)
		if err != nil {
			return identity{}, err
		}

		id := identity{uid: uint32(uid), gid: uint32(gid)}
		for _, g := range strings.Fields(groupsRes.Stdout) {
			gv, err := strconv.ParseUint(g, 10, 32)
			if err == nil {
				id.groups = append(id.groups, uint32(gv))
			}
		}
		return id, nil
	}
}

func (u unixShell) Mode(b backend.Backend, name string) (model.Output, error) {
	st, err := u.stat(b, name)
	if err != nil {
		return model.Output{}, err
	}
	return model.OutputU32(st.mode), nil
}

func (u unixShell) Size(b backend.Backend, name string) (model.Output, error) {
	st, err := u.stat(b, name)
	if err != nil {
		return model.Output{}, err
	}
	return model.OutputI64(st.size), nil
}

func (u unixShell) Exist(b backend.Backend, name string) (model.Output, error) {
	return model.OutputBool(b.Probe(model.Cmd("test -e " + shellQuote(name)))), nil
}

func (u unixShell) IsFile(b backend.Backend, name string) (model.Output, error) {
	return isSomething(b, name, "f")
}

func (u unixShell) IsDirectory(b backend.Backend, name string) (model.Output, error) {
	return isSomething(b, name, "d")
}

func (u unixShell) IsBlockDevice(b backend.Backend, name string) (model.Output, error) {
	return isSomething(b, name, "b")
}

func (u unixShell) IsCharacterDevice(b backend.Backend, name string) (model.Output, error) {
	return isSomething(b, name, "c")
}

func (u unixShell) IsPipe(b backend.Backend, name string) (model.Output, error) {
	return isSomething(b, name, "p")
}

func (u unixShell) IsSocket(b backend.Backend, name string) (model.Output, error) {
	return isSomething(b, name, "S")
}

func (u unixShell) IsSymlink(b backend.Backend, name string) (model.Output, error) {
	return isSomething(b, name, "L")
}

func (u unixShell) Contents(b backend.Backend, name string) (model.Output, error) {
	res, err := b.Run(model.Cmd("cat " + shellQuote(name)))
	if err != nil {
		return model.Output{}, err
	}
	return model.OutputText(res.Stdout), nil
}

func (u unixShell) Owner(b backend.Backend, name string) (model.Output, error) {
	st, err := u.stat(b, name)
	if err != nil {
		return model.Output{}, err
	}
	return model.OutputText(st.owner), nil
}

func (u unixShell) Group(b backend.Backend, name string) (model.Output, error) {
	st, err := u.stat(b, name)
	if err != nil {
		return model.Output{}, err
	}
	return model.OutputText(st.group), nil
}

func (u unixShell) LinkedTo(b backend.Backend, name string) (model.Output, error) {
	res, err := b.Run(model.Cmd("readlink " + shellQuote(name)))
	if err != nil {
		return model.Output{}, err
	}
	return model.OutputText(res.Stdout), nil
}

func (u unixShell) MD5Sum(b backend.Backend, name string) (model.Output, error) {
	res, err := b.Run(model.Cmd(u.md5Tool(name)))
	if err != nil {
		return model.Output{}, err
	}
	return model.OutputText(firstField(res.Stdout)), nil
}

func (u unixShell) SHA256Sum(b backend.Backend, name string) (model.Output, error) {
	res, err := b.Run(model.Cmd(u.sha256Tool(name)))
	if err != nil {
		return model.Output{}, err
	}
	return model.OutputText(firstField(res.Stdout)), nil
}

func firstField(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func (u unixShell) IsReadable(b backend.Backend, name string, whom *model.Whom) (model.Output, error) {
	st, err := u.stat(b, name)
	if err != nil {
		return model.Output{}, err
	}
	ok, err := bitTest(accessRead, st.mode, st.uid, st.gid, whom, resolveShellIdentity(b))
	if err != nil {
		return model.Output{}, err
	}
	return model.OutputBool(ok), nil
}

func (u unixShell) IsWritable(b backend.Backend, name string, whom *model.Whom) (model.Output, error) {
	st, err := u.stat(b, name)
	if err != nil {
		return model.Output{}, err
	}
	ok, err := bitTest(accessWrite, st.mode, st.uid, st.gid, whom, resolveShellIdentity(b))
	if err != nil {
		return model.Output{}, err
	}
	return model.OutputBool(ok), nil
}
