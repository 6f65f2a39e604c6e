// Package filesystem provides the directory-walking primitives the traversal
// engine is written against, with local, afero and SFTP implementations.
package filesystem

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// DirHandle is an open directory being read one raw entry at a time.
type DirHandle interface {
	// ReadName returns the next raw entry name in the directory.
	// It returns io.EOF once the directory is exhausted.
	ReadName() (string, error)

	// Close releases the handle.
	Close() error
}

// FileSystem is the primitive set consumed by the traversal engine.
// Errors must keep fs.ErrNotExist reachable through errors.Is so callers can
// tell a vanished entry from any other failure.
type FileSystem interface {
	OpenDir(path string) (DirHandle, error)
	Stat(path string) (fs.FileInfo, error)
	Lstat(path string) (fs.FileInfo, error)
}

// RealFileSystem implements FileSystem using the local operating system.
type RealFileSystem struct{}

// NewRealFileSystem creates a new RealFileSystem instance.
func NewRealFileSystem() *RealFileSystem {
	return &RealFileSystem{}
}

// Lstat returns file information without following a final symlink.
func (fs *RealFileSystem) Lstat(path string) (os.FileInfo, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to lstat %s: %w", path, err)
	}

	return info, nil
}

// OpenDir opens a directory for reading its entries.
func (fs *RealFileSystem) OpenDir(path string) (DirHandle, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory %s: %w", path, err)
	}

	return &nameReaderHandle{reader: file, path: path}, nil
}

// Stat returns file information, following symlinks.
func (fs *RealFileSystem) Stat(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	return info, nil
}

// namesReader is satisfied by *os.File and afero.File.
type namesReader interface {
	Readdirnames(n int) ([]string, error)
	Close() error
}

// nameReaderHandle reads a directory one name per call. The underlying
// readers buffer the raw directory stream, so single-name reads stay cheap.
type nameReaderHandle struct {
	reader namesReader
	path   string
}

// Close closes the directory.
func (h *nameReaderHandle) Close() error {
	err := h.reader.Close()
	if err != nil {
		return fmt.Errorf("failed to close directory %s: %w", h.path, err)
	}

	return nil
}

// ReadName returns the next entry name or io.EOF.
func (h *nameReaderHandle) ReadName() (string, error) {
	names, err := h.reader.Readdirnames(1)
	if len(names) > 0 {
		return names[0], nil
	}

	if err == nil || errors.Is(err, io.EOF) {
		return "", io.EOF
	}

	return "", fmt.Errorf("failed to read directory %s: %w", h.path, err)
}
