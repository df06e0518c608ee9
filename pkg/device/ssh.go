package device

import (
	"context"
	"fmt"

	"golang.org/x/crypto/ssh"

	"github.com/lagmigrate-network/lagmigrate/pkg/util"
)

// SSHExecutor implements Executor over an SSH connection to the switch.
// Each Execute call runs in its own SSH session (stateless).
type SSHExecutor struct {
	host   string
	client *ssh.Client
}

// Dial connects to the device's SSH endpoint. A dial failure here is the
// one fatal transport error in the tool: without a command channel the
// migration refuses to start.
func Dial(host string, port int, user, password string) (*SSHExecutor, error) {
	if port == 0 {
		port = 22
	}
	config := &ssh.ClientConfig{
		User: user,
		Auth: []ssh.AuthMethod{
			ssh.Password(password),
		},
		// Switch management networks — production would verify host keys.
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
	}

	addr := fmt.Sprintf("%s:%d", host, port)
	util.WithDevice(host).Warnf("SSH to %s: host key verification disabled (InsecureIgnoreHostKey)", addr)
	client, err := ssh.Dial("tcp", addr, config)
	if err != nil {
		return nil, fmt.Errorf("SSH dial %s: %w", addr, err)
	}

	return &SSHExecutor{host: host, client: client}, nil
}

// Close closes the SSH connection.
func (e *SSHExecutor) Close() error {
	return e.client.Close()
}

// Execute runs a command on the device and returns its combined output.
// Session faults become (false, ""); a command that runs but exits non-zero
// returns (false, output) so callers can still see what the device said.
func (e *SSHExecutor) Execute(ctx context.Context, command string) (bool, string) {
	if err := ctx.Err(); err != nil {
		util.WithDevice(e.host).Debugf("skipping '%s': %v", command, err)
		return false, ""
	}

	session, err := e.client.NewSession()
	if err != nil {
		util.WithDevice(e.host).Debugf("SSH session for '%s': %v", command, err)
		return false, ""
	}
	defer session.Close()

	output, err := session.CombinedOutput(command)
	if err != nil {
		util.WithDevice(e.host).Debugf("command '%s' failed: %v", command, err)
		return false, string(output)
	}
	return true, string(output)
}
