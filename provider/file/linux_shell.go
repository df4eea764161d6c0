package file

// Linux is the shell file provider for systemd/SysV/upstart Linux
// distros (GNU stat flags, md5sum, sha256sum, readlink).
type Linux struct {
	unixShell
}

// NewLinux builds the Linux shell provider.
func NewLinux() Linux {
	return Linux{unixShell{
		statFormat: func(name string) string {
			return "stat -c '%a:%s:%u:%g:%U:%G' " + shellQuote(name)
		},
		md5Tool:    func(name string) string { return "md5sum " + shellQuote(name) },
		sha256Tool: func(name string) string { return "sha256sum " + shellQuote(name) },
	}}
}
