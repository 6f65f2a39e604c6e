// Package diriter walks a directory tree depth-first, one entry per call.
//
// The caller drives the walk: Begin opens the root, each Advance produces the
// next entry, and the walk ends when Advance returns StatusDone or StatusError
// or when the caller calls Abort. Every terminal path releases all open
// directory handles.
//
// Within a directory, entries come in the order the filesystem returns them.
// Entries that disappear mid-walk are skipped silently.
package diriter

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/joe/dir-iterator/pkg/filesystem"
)

// ErrNotDirectory is returned by Begin when the root is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// Status is the outcome of Advance or Abort.
type Status uint8

const (
	// StatusOK means an entry is available through the accessors.
	StatusOK Status = iota
	// StatusDone means the walk is over and all resources were released.
	StatusDone
	// StatusError means the walk failed; Err returns the cause and all
	// resources were released.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusDone:
		return "done"
	case StatusError:
		return "error"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

type state uint8

const (
	stateActive state = iota
	stateDone
	stateFailed
)

// initialLevels is the starting capacity of the descent stack.
const initialLevels = 10

// Iterator is a suspended depth-first walk. It is not safe for concurrent use.
type Iterator struct {
	fsys  filesystem.FileSystem
	flags Flags
	sink  Sink

	path   pathBuffer
	levels []level
	state  state
	err    error

	info        fs.FileInfo
	orientation Orientation
	relative    span
	basename    span

	opened int
}

// Begin starts a walk rooted at path. Trailing separators on path are
// dropped, except that a root made only of separators stays "/".
//
// Begin fails if the root cannot be stat'ed, is not a directory, or cannot
// be opened; nothing is left open in that case. Begin failures are returned,
// never sent to the sink.
func Begin(fsys filesystem.FileSystem, path string, flags Flags, opts ...Option) (*Iterator, error) {
	it := &Iterator{
		fsys:   fsys,
		flags:  flags,
		sink:   LogSink(slog.Default()),
		path:   newPathBuffer(path),
		levels: make([]level, 0, initialLevels),
	}

	for _, opt := range opts {
		opt(it)
	}

	info, err := fsys.Stat(it.path.String())
	if err != nil {
		it.release()
		return nil, fmt.Errorf("cannot walk %s: %w", path, err)
	}

	if !info.IsDir() {
		it.release()
		return nil, fmt.Errorf("cannot walk %s: %w", path, ErrNotDirectory)
	}

	it.info = info
	it.pushLevel()

	_, err = it.activateLevel()
	if err != nil {
		it.release()
		return nil, fmt.Errorf("cannot walk %s: %w", path, err)
	}

	it.info = nil

	return it, nil
}

// Advance moves to the next entry. On StatusOK the accessors describe it.
// Calling Advance after the walk has ended returns the terminal status again.
func (it *Iterator) Advance() Status {
	if it.state != stateActive {
		return it.terminalStatus()
	}

	for {
		act, err := it.activateLevel()
		if act != activated {
			if act == activationFailed {
				it.sink.Warn(it.path.prefix(it.top().prefixLen), err)

				if it.flags.Has(Strict) {
					return it.fail(err)
				}
			}

			if status, produced := it.leaveDirectory(); produced {
				return status
			}

			continue
		}

		top := it.top()
		it.path.truncate(top.prefixLen)

		name, err := top.dir.ReadName()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				it.sink.Warn(it.path.String(), err)

				if it.flags.Has(Strict) {
					return it.fail(err)
				}
			}

			if status, produced := it.leaveDirectory(); produced {
				return status
			}

			continue
		}

		if name == "." || name == ".." {
			continue
		}

		outcome, err := it.exposeEntry(name, Before)

		switch outcome {
		case exposed:
			it.pushLevel()
			return StatusOK
		case exposureIgnoredDir:
			it.pushLevel()
		case exposureFailed:
			if it.flags.Has(Strict) {
				return it.fail(err)
			}
		case exposureVanished:
		}
	}
}

// leaveDirectory pops the top level and, if enabled, exposes the directory
// again in After orientation. produced reports whether status should be
// returned to the caller.
func (it *Iterator) leaveDirectory() (status Status, produced bool) {
	var name string
	if depth := len(it.levels); depth > 1 {
		parent := it.levels[depth-2]
		name = it.path.view(span{
			start: it.path.nameStart(parent.prefixLen),
			end:   it.top().prefixLen,
		})
	}

	if it.popLevel() == 0 {
		return it.finish(), true
	}

	if !it.flags.Has(DirsAfter) {
		return StatusOK, false
	}

	it.path.truncate(it.top().prefixLen)

	outcome, err := it.exposeEntry(name, After)

	switch outcome {
	case exposed:
		return StatusOK, true
	case exposureFailed:
		if it.flags.Has(Strict) {
			return it.fail(err), true
		}
	case exposureIgnoredDir, exposureVanished:
	}

	return StatusOK, false
}

// Abort ends the walk early, closing every open directory handle. Close
// failures are reported to the sink. Abort always returns StatusDone; on an
// already ended walk it returns the terminal status without side effects.
func (it *Iterator) Abort() Status {
	if it.state != stateActive {
		return it.terminalStatus()
	}

	return it.finish()
}

// Err returns the cause of a StatusError walk, or nil.
func (it *Iterator) Err() error {
	return it.err
}

// Path is the full path of the current entry, starting with the root.
func (it *Iterator) Path() string {
	if it.state != stateActive {
		return ""
	}

	return it.path.String()
}

// RelativePath is the current entry's path below the root, with no leading
// separator.
func (it *Iterator) RelativePath() string {
	if it.state != stateActive {
		return ""
	}

	return it.path.view(it.relative)
}

// Basename is the last component of the current entry's path.
func (it *Iterator) Basename() string {
	if it.state != stateActive {
		return ""
	}

	return it.path.view(it.basename)
}

// Info describes the current entry. With FollowSymlinks it describes the
// link target; otherwise a symlink is described as a link.
func (it *Iterator) Info() fs.FileInfo {
	if it.state != stateActive {
		return nil
	}

	return it.info
}

// Orientation tells whether the current directory entry is produced before
// or after its contents.
func (it *Iterator) Orientation() Orientation {
	return it.orientation
}

// Depth is the number of directories currently on the descent stack,
// counting the root.
func (it *Iterator) Depth() int {
	return len(it.levels)
}

// Opened is the number of directory handles opened so far. It is a
// diagnostic counter; the listing reports it in its summary.
func (it *Iterator) Opened() int {
	return it.opened
}

// Entry snapshots the current entry.
func (it *Iterator) Entry() Entry {
	return Entry{
		Path:         it.Path(),
		RelativePath: it.RelativePath(),
		Basename:     it.Basename(),
		Info:         it.Info(),
		Orientation:  it.orientation,
	}
}

func (it *Iterator) terminalStatus() Status {
	if it.state == stateFailed {
		return StatusError
	}

	return StatusDone
}

func (it *Iterator) finish() Status {
	it.release()
	it.state = stateDone

	return StatusDone
}

func (it *Iterator) fail(err error) Status {
	it.release()
	it.err = err
	it.state = stateFailed

	return StatusError
}

// release closes open handles from the innermost level outwards and drops
// the stack and path storage.
func (it *Iterator) release() {
	for i := len(it.levels) - 1; i >= 0; i-- {
		it.closeLevel(&it.levels[i])
	}

	it.levels = nil
	it.path.release()
	it.info = nil
}
