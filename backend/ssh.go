package backend

import (
	"bytes"
	"net"
	"os"
	"strconv"

	"github.com/hostspec/hostspec/model"
	"github.com/pkg/errors"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
)

const defaultSSHPort = 22

// SSHConfig is a builder for an SSH backend. Host is required; Port
// defaults to 22. Authentication is tried, in order, key file,
// password, agent — the first one configured wins.
type SSHConfig struct {
	host     string
	port     int
	user     string
	keyFile  string
	password string
	useAgent bool
}

// NewSSHConfig starts a builder for host. Defaults: port 22, user
// "root", no authentication configured (Connect fails until one is
// set).
func NewSSHConfig(host string) *SSHConfig {
	return &SSHConfig{host: host, port: defaultSSHPort, user: "root"}
}

// WithPort overrides the default port 22.
func (c *SSHConfig) WithPort(port int) *SSHConfig { c.port = port; return c }

// WithUser overrides the default user "root".
func (c *SSHConfig) WithUser(user string) *SSHConfig { c.user = user; return c }

// WithKeyFile configures key-file authentication, highest precedence.
func (c *SSHConfig) WithKeyFile(path string) *SSHConfig { c.keyFile = path; return c }

// WithPassword configures password authentication, second precedence.
func (c *SSHConfig) WithPassword(password string) *SSHConfig { c.password = password; return c }

// WithAgent configures ssh-agent authentication, lowest precedence.
func (c *SSHConfig) WithAgent(enabled bool) *SSHConfig { c.useAgent = enabled; return c }

func (c *SSHConfig) authMethods() ([]ssh.AuthMethod, error) {
	if c.keyFile != "" {
		key, err := os.ReadFile(c.keyFile)
		if err != nil {
			return nil, errors.Wrapf(err, "read ssh key file %s", c.keyFile)
		}
		signer, err := ssh.ParsePrivateKey(key)
		if err != nil {
			return nil, errors.Wrap(err, "parse ssh private key")
		}
		return []ssh.AuthMethod{ssh.PublicKeys(signer)}, nil
	}
	if c.password != "" {
		return []ssh.AuthMethod{ssh.Password(c.password)}, nil
	}
	if c.useAgent {
		sock, err := net.Dial("unix", os.Getenv("SSH_AUTH_SOCK"))
		if err != nil {
			return nil, errors.Wrap(err, "dial ssh-agent socket")
		}
		return []ssh.AuthMethod{ssh.PublicKeysCallback(agent.NewClient(sock).Signers)}, nil
	}
	return nil, errors.New("ssh config: none of key file, password, or agent is configured")
}

func ensurePortSuffix(host string, port int) string {
	if port == 0 {
		port = defaultSSHPort
	}
	if _, _, err := net.SplitHostPort(host); err == nil {
		return host
	}
	return net.JoinHostPort(host, strconv.Itoa(port))
}

// Connect dials host and authenticates, returning an SSH backend that
// reuses the resulting client for every subsequent Run/Probe call.
func (c *SSHConfig) Connect() (*SSH, error) {
	auth, err := c.authMethods()
	if err != nil {
		return nil, err
	}

	cfg := &ssh.ClientConfig{
		User:            c.user,
		Auth:            auth,
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
	}

	addr := ensurePortSuffix(c.host, c.port)
	client, err := ssh.Dial("tcp", addr, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "dial ssh %s", addr)
	}

	return &SSH{client: client}, nil
}

// SSH runs commands over a channel opened on a pre-established,
// authenticated session. A new channel-session is opened per command;
// the underlying client supports at least one session at a time.
type SSH struct {
	client *ssh.Client
}

// Locus always reports LocusRemote.
func (s *SSH) Locus() Locus { return LocusRemote }

// Close releases the underlying SSH client connection.
func (s *SSH) Close() error {
	return s.client.Close()
}

func (s *SSH) run(spec model.CommandSpec) (model.CommandResult, error) {
	session, err := s.client.NewSession()
	if err != nil {
		return model.CommandResult{}, &TransportError{Cause: errors.Wrap(err, "open ssh session")}
	}
	defer session.Close()

	var stdout, stderr bytes.Buffer
	session.Stdout = &stdout
	session.Stderr = &stderr

	runErr := session.Run(spec.String())
	out := string(bytes.TrimSpace(stdout.Bytes()))
	errOut := string(bytes.TrimSpace(stderr.Bytes()))

	if runErr == nil {
		return model.CommandResult{Stdout: out, Stderr: errOut, ExitCode: 0, Success: true}, nil
	}

	if exitErr, ok := runErr.(*ssh.ExitError); ok {
		code := int32(exitErr.ExitStatus())
		return model.CommandResult{Stdout: out, Stderr: errOut, ExitCode: code, Success: false},
			&CommandError{Code: code, Stderr: errOut}
	}

	return model.CommandResult{}, &TransportError{Cause: errors.Wrap(runErr, "run ssh command")}
}

// Run executes spec over a fresh channel and returns its result only
// on exit code zero, matching the Local backend's contract.
func (s *SSH) Run(spec model.CommandSpec) (model.CommandResult, error) {
	res, err := s.run(spec)
	if err != nil {
		if cmdErr, ok := err.(*CommandError); ok {
			return model.CommandResult{}, cmdErr
		}
		return model.CommandResult{}, err
	}
	return res, nil
}

// Probe executes spec over a fresh channel and reports only its
// success bit, absorbing any *CommandError.
func (s *SSH) Probe(spec model.CommandSpec) bool {
	res, err := s.run(spec)
	if err == nil {
		return res.Success
	}
	if _, ok := err.(*CommandError); ok {
		return false
	}
	return false
}
