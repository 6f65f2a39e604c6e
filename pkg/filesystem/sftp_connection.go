package filesystem

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
)

// dialTimeout bounds how long Connect waits for the TCP handshake.
const dialTimeout = 15 * time.Second

// errNoAuthMethods is returned when neither the agent nor a default key is usable.
var errNoAuthMethods = errors.New("no SSH authentication methods available (tried SSH agent and default keys)")

// SFTPConnection holds an active SSH connection and its SFTP session.
type SFTPConnection struct {
	sshClient  *ssh.Client
	sftpClient *sftp.Client
	agentConn  net.Conn
}

// Connect establishes an SSH connection and opens an SFTP session.
// It authenticates with the SSH agent and the default keys in ~/.ssh.
func Connect(host string, port int, user string) (*SFTPConnection, error) {
	authMethods, agentConn := sshAuthMethods()
	if len(authMethods) == 0 {
		return nil, errNoAuthMethods
	}

	config := &ssh.ClientConfig{
		User:            user,
		Auth:            authMethods,
		HostKeyCallback: ssh.InsecureIgnoreHostKey(), //nolint:gosec // TODO: verify against ~/.ssh/known_hosts
		Timeout:         dialTimeout,
	}

	addr := net.JoinHostPort(host, strconv.Itoa(port))

	sshClient, err := ssh.Dial("tcp", addr, config)
	if err != nil {
		closeQuietly(agentConn)
		return nil, fmt.Errorf("SSH connection failed: %w", err)
	}

	sftpClient, err := sftp.NewClient(sshClient)
	if err != nil {
		_ = sshClient.Close()
		closeQuietly(agentConn)

		return nil, fmt.Errorf("SFTP session creation failed: %w", err)
	}

	return &SFTPConnection{
		sshClient:  sshClient,
		sftpClient: sftpClient,
		agentConn:  agentConn,
	}, nil
}

// Client returns the underlying SFTP client.
func (c *SFTPConnection) Client() *sftp.Client {
	return c.sftpClient
}

// Close closes the SFTP session, the SSH connection and the agent socket.
func (c *SFTPConnection) Close() error {
	var firstErr error

	if c.sftpClient != nil {
		if err := c.sftpClient.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if c.sshClient != nil {
		if err := c.sshClient.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	closeQuietly(c.agentConn)

	return firstErr
}

func closeQuietly(conn net.Conn) {
	if conn != nil {
		_ = conn.Close()
	}
}

// sshAuthMethods collects agent and default-key auth, agent first.
// The returned connection belongs to the agent and must be closed with the session.
func sshAuthMethods() ([]ssh.AuthMethod, net.Conn) {
	var methods []ssh.AuthMethod

	agentConn := dialSSHAgent()
	if agentConn != nil {
		methods = append(methods, ssh.PublicKeysCallback(agent.NewClient(agentConn).Signers))
	}

	if signers := defaultKeySigners(); len(signers) > 0 {
		methods = append(methods, ssh.PublicKeys(signers...))
	}

	return methods, agentConn
}

func dialSSHAgent() net.Conn {
	socket := os.Getenv("SSH_AUTH_SOCK")
	if socket == "" {
		return nil
	}

	conn, err := net.Dial("unix", socket)
	if err != nil {
		return nil
	}

	return conn
}

// defaultKeySigners loads unencrypted keys from the usual ~/.ssh locations.
func defaultKeySigners() []ssh.Signer {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	var signers []ssh.Signer

	for _, name := range []string{"id_ed25519", "id_rsa", "id_ecdsa"} {
		keyData, err := os.ReadFile(filepath.Join(homeDir, ".ssh", name))
		if err != nil {
			continue
		}

		// Passphrase-protected keys are left to the agent.
		signer, err := ssh.ParsePrivateKey(keyData)
		if err != nil {
			continue
		}

		signers = append(signers, signer)
	}

	return signers
}
