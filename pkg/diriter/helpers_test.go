//nolint:varnamelen // Test files use idiomatic short variable names (t, g, etc.)
package diriter_test

import (
	"io/fs"
	"sync"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers
	"github.com/spf13/afero"

	"github.com/joe/dir-iterator/pkg/diriter"
	"github.com/joe/dir-iterator/pkg/filesystem"
)

// produced is one entry as seen by a test.
type produced struct {
	rel         string
	base        string
	dir         bool
	orientation diriter.Orientation
}

// warning is one diagnostic delivered to a recordingSink.
type warning struct {
	path string
	err  error
}

type recordingSink struct {
	mu       sync.Mutex
	warnings []warning
}

func (s *recordingSink) Warn(path string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.warnings = append(s.warnings, warning{path: path, err: err})
}

func (s *recordingSink) all() []warning {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]warning(nil), s.warnings...)
}

// faultFS injects errors for chosen paths on top of another filesystem.
type faultFS struct {
	filesystem.FileSystem

	openErr map[string]error
	statErr map[string]error
	readErr map[string]error
}

func newFaultFS(inner filesystem.FileSystem) *faultFS {
	return &faultFS{
		FileSystem: inner,
		openErr:    map[string]error{},
		statErr:    map[string]error{},
		readErr:    map[string]error{},
	}
}

func (f *faultFS) OpenDir(path string) (filesystem.DirHandle, error) {
	if err, ok := f.openErr[path]; ok {
		return nil, err
	}

	handle, err := f.FileSystem.OpenDir(path)
	if err != nil {
		return nil, err //nolint:wrapcheck // test double
	}

	if err, ok := f.readErr[path]; ok {
		return &faultHandle{DirHandle: handle, err: err}, nil
	}

	return handle, nil
}

func (f *faultFS) Lstat(path string) (fs.FileInfo, error) {
	if err, ok := f.statErr[path]; ok {
		return nil, err
	}

	return f.FileSystem.Lstat(path) //nolint:wrapcheck // test double
}

func (f *faultFS) Stat(path string) (fs.FileInfo, error) {
	if err, ok := f.statErr[path]; ok {
		return nil, err
	}

	return f.FileSystem.Stat(path) //nolint:wrapcheck // test double
}

// faultHandle fails every read.
type faultHandle struct {
	filesystem.DirHandle

	err error
}

func (h *faultHandle) ReadName() (string, error) {
	return "", h.err
}

// memTree builds an in-memory tree. Keys ending in "/" are directories.
func memTree(g Gomega, paths ...string) afero.Fs {
	mem := afero.NewMemMapFs()

	for _, p := range paths {
		if p[len(p)-1] == '/' {
			g.Expect(mem.MkdirAll(p, 0o755)).To(Succeed())
			continue
		}

		g.Expect(afero.WriteFile(mem, p, []byte(p), 0o644)).To(Succeed())
	}

	return mem
}

// drain advances until the walk ends, returning what was produced and the
// final status.
func drain(t *testing.T, it *diriter.Iterator) ([]produced, diriter.Status) {
	t.Helper()

	var entries []produced

	for range 10_000 {
		status := it.Advance()
		if status != diriter.StatusOK {
			return entries, status
		}

		entries = append(entries, produced{
			rel:         it.RelativePath(),
			base:        it.Basename(),
			dir:         it.Info().IsDir(),
			orientation: it.Orientation(),
		})
	}

	t.Fatal("walk did not terminate")

	return nil, diriter.StatusError
}

func relPaths(entries []produced) []string {
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		paths = append(paths, e.rel)
	}

	return paths
}

func indexOf(entries []produced, rel string, orientation diriter.Orientation) int {
	for i, e := range entries {
		if e.rel == rel && e.orientation == orientation {
			return i
		}
	}

	return -1
}
