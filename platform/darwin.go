package platform

import (
	"strings"

	"github.com/hostspec/hostspec/backend"
	"github.com/hostspec/hostspec/model"
	"golang.org/x/sys/unix"
)

// darwinInline reports the release via the uname(2) syscall, matching
// only when sysname is exactly "Darwin".
func darwinInline() (release string, ok bool, err error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", false, err
	}
	if cstr(uts.Sysname[:]) != "Darwin" {
		return "", false, nil
	}
	return cstr(uts.Release[:]), true, nil
}

// darwinShell runs "uname -sr" and parses its two whitespace-separated
// tokens: sysname and release.
func darwinShell(b backend.Backend) (release string, ok bool) {
	res, err := b.Run(model.Cmd("uname -sr"))
	if err != nil {
		return "", false
	}
	fields := strings.Fields(res.Stdout)
	if len(fields) < 2 || fields[0] != "Darwin" {
		return "", false
	}
	return fields[1], true
}

func cstr(b []byte) string {
	n := 0
	for n < len(b) && b[n] != 0 {
		n++
	}
	return string(b[:n])
}
