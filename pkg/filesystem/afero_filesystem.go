package filesystem

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// AferoFileSystem implements FileSystem on top of an afero.Fs, which makes
// in-memory trees (afero.NewMemMapFs) and layered filesystems walkable.
type AferoFileSystem struct {
	fs afero.Fs
}

// NewAferoFileSystem wraps the given afero filesystem.
func NewAferoFileSystem(fs afero.Fs) *AferoFileSystem {
	return &AferoFileSystem{fs: fs}
}

// Lstat returns file information without following a final symlink when the
// underlying filesystem supports it, and falls back to Stat otherwise.
func (a *AferoFileSystem) Lstat(path string) (os.FileInfo, error) {
	lstater, ok := a.fs.(afero.Lstater)
	if !ok {
		return a.Stat(path)
	}

	info, _, err := lstater.LstatIfPossible(path)
	if err != nil {
		return nil, fmt.Errorf("failed to lstat %s: %w", path, err)
	}

	return info, nil
}

// OpenDir opens a directory for reading its entries.
func (a *AferoFileSystem) OpenDir(path string) (DirHandle, error) {
	file, err := a.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory %s: %w", path, err)
	}

	return &nameReaderHandle{reader: file, path: path}, nil
}

// Stat returns file information, following symlinks.
func (a *AferoFileSystem) Stat(path string) (os.FileInfo, error) {
	info, err := a.fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	return info, nil
}
