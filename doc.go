// Package hostspec answers questions about operating-system resources —
// files, services, packages, and listening ports — on the local machine
// or on a remote host reached over SSH.
//
// A caller builds an Engine once from a backend.Backend, which detects
// the target platform and binds the provider set used for every
// subsequent query. The same question produces the same answer whether
// the target is systemd-era RHEL, upstart-era Ubuntu, or Darwin.
package hostspec
