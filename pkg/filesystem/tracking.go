package filesystem

import (
	"os"
	"sync/atomic"
)

// TrackingFileSystem wraps a FileSystem and counts directory handles that
// have been opened but not yet closed.
type TrackingFileSystem struct {
	inner  FileSystem
	open   atomic.Int64
	opened atomic.Int64
}

// NewTrackingFileSystem wraps inner.
func NewTrackingFileSystem(inner FileSystem) *TrackingFileSystem {
	return &TrackingFileSystem{inner: inner}
}

// Lstat delegates to the wrapped filesystem.
func (t *TrackingFileSystem) Lstat(path string) (os.FileInfo, error) {
	return t.inner.Lstat(path) //nolint:wrapcheck // already wrapped by the inner filesystem
}

// OpenDir delegates and tracks the returned handle.
func (t *TrackingFileSystem) OpenDir(path string) (DirHandle, error) {
	handle, err := t.inner.OpenDir(path)
	if err != nil {
		return nil, err //nolint:wrapcheck // already wrapped by the inner filesystem
	}

	t.open.Add(1)
	t.opened.Add(1)

	return &trackedHandle{DirHandle: handle, owner: t}, nil
}

// OpenHandles reports how many handles are currently open.
func (t *TrackingFileSystem) OpenHandles() int {
	return int(t.open.Load())
}

// OpenedTotal reports how many handles have ever been opened.
func (t *TrackingFileSystem) OpenedTotal() int {
	return int(t.opened.Load())
}

// Stat delegates to the wrapped filesystem.
func (t *TrackingFileSystem) Stat(path string) (os.FileInfo, error) {
	return t.inner.Stat(path) //nolint:wrapcheck // already wrapped by the inner filesystem
}

type trackedHandle struct {
	DirHandle
	owner  *TrackingFileSystem
	closed bool
}

// Close counts the handle as released even when the inner close fails:
// the descriptor is gone either way.
func (h *trackedHandle) Close() error {
	if !h.closed {
		h.closed = true
		h.owner.open.Add(-1)
	}

	return h.DirHandle.Close() //nolint:wrapcheck // already wrapped by the inner handle
}
