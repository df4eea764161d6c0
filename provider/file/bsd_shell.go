package file

// Bsd is the shell file provider for Darwin (macOS stat flags, md5,
// shasum -a 256).
type Bsd struct {
	unixShell
}

// NewBsd builds the Bsd shell provider.
func NewBsd() Bsd {
	return Bsd{unixShell{
		statFormat: func(name string) string {
			return "stat -f '%OLp:%z:%u:%g:%Su:%Sg' " + shellQuote(name)
		},
		md5Tool:    func(name string) string { return "md5 -q " + shellQuote(name) },
		sha256Tool: func(name string) string { return "shasum -a 256 " + shellQuote(name) },
	}}
}
