package service

import (
	"testing"

	"github.com/hostspec/hostspec/backend"
)

func TestSystemdShellCommands(t *testing.T) {
	cases := []struct {
		name string
		call func(b backend.Backend) error
		want string
	}{
		{"IsRunning", func(b backend.Backend) error { _, err := SystemdShell{}.IsRunning(b, "nginx"); return err }, "systemctl is-active nginx"},
		{"IsEnabled", func(b backend.Backend) error { _, err := SystemdShell{}.IsEnabled(b, "nginx"); return err }, "systemctl is-enabled nginx"},
		{"Enable", func(b backend.Backend) error { _, err := SystemdShell{}.Enable(b, "nginx"); return err }, "systemctl enable nginx"},
		{"Disable", func(b backend.Backend) error { _, err := SystemdShell{}.Disable(b, "nginx"); return err }, "systemctl disable nginx"},
		{"Start", func(b backend.Backend) error { _, err := SystemdShell{}.Start(b, "nginx"); return err }, "systemctl start nginx"},
		{"Stop", func(b backend.Backend) error { _, err := SystemdShell{}.Stop(b, "nginx"); return err }, "systemctl stop nginx"},
		{"Reload", func(b backend.Backend) error { _, err := SystemdShell{}.Reload(b, "nginx"); return err }, "systemctl reload nginx"},
		{"Restart", func(b backend.Backend) error { _, err := SystemdShell{}.Restart(b, "nginx"); return err }, "systemctl restart nginx"},
	}

	for _, c := range cases {
		b := &recordingBackend{locus: backend.LocusRemote, succeed: true}
		if err := c.call(b); err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if len(b.commands) != 1 || b.commands[0] != c.want {
			t.Errorf("%s: commands = %v, want [%q]", c.name, b.commands, c.want)
		}
	}
}
