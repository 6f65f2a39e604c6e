package filesystem

import (
	"fmt"
	"io"
	"os"
)

// sftpClient is the subset of *sftp.Client the SFTP filesystem needs.
type sftpClient interface {
	ReadDir(path string) ([]os.FileInfo, error)
	Stat(path string) (os.FileInfo, error)
	Lstat(path string) (os.FileInfo, error)
}

// SFTPFileSystem implements FileSystem for a remote host over SFTP.
type SFTPFileSystem struct {
	client sftpClient
}

// NewSFTPFileSystem creates a filesystem backed by an established connection.
func NewSFTPFileSystem(conn *SFTPConnection) *SFTPFileSystem {
	return &SFTPFileSystem{client: conn.Client()}
}

// Lstat returns remote file information without following a final symlink.
func (s *SFTPFileSystem) Lstat(path string) (os.FileInfo, error) {
	info, err := s.client.Lstat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to lstat remote %s: %w", path, err)
	}

	return info, nil
}

// OpenDir lists a remote directory. SFTP has no cursor that survives between
// requests, so the listing is fetched once and handed out a name at a time.
func (s *SFTPFileSystem) OpenDir(path string) (DirHandle, error) {
	infos, err := s.client.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open remote directory %s: %w", path, err)
	}

	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name()
	}

	return &listingHandle{names: names}, nil
}

// Stat returns remote file information, following symlinks.
func (s *SFTPFileSystem) Stat(path string) (os.FileInfo, error) {
	info, err := s.client.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat remote %s: %w", path, err)
	}

	return info, nil
}

// listingHandle yields names from an already fetched directory listing.
type listingHandle struct {
	names  []string
	closed bool
}

func (h *listingHandle) Close() error {
	if h.closed {
		return os.ErrClosed
	}

	h.closed = true
	h.names = nil

	return nil
}

func (h *listingHandle) ReadName() (string, error) {
	if h.closed {
		return "", os.ErrClosed
	}

	if len(h.names) == 0 {
		return "", io.EOF
	}

	name := h.names[0]
	h.names = h.names[1:]

	return name, nil
}
