package diriter

import (
	"github.com/joe/dir-iterator/pkg/filesystem"
)

// level is one directory on the descent stack. dir is opened lazily the first
// time the level becomes the top of the stack.
type level struct {
	dir       filesystem.DirHandle
	prefixLen int
}

type activation uint8

const (
	activated activation = iota
	activationVanished
	activationFailed
)

func (it *Iterator) top() *level {
	return &it.levels[len(it.levels)-1]
}

// pushLevel descends into the entry just exposed. It refuses anything that
// is not a directory.
func (it *Iterator) pushLevel() bool {
	if it.info == nil || !it.info.IsDir() {
		return false
	}

	it.levels = append(it.levels, level{prefixLen: it.path.len()})

	return true
}

// activateLevel opens the top level's directory if it is not open yet.
// Failures are returned, not reported; the caller decides.
func (it *Iterator) activateLevel() (activation, error) {
	top := it.top()
	if top.dir != nil {
		return activated, nil
	}

	dirPath := it.path.prefix(top.prefixLen)

	dir, err := it.fsys.OpenDir(dirPath)
	if err == nil {
		top.dir = dir
		it.opened++

		return activated, nil
	}

	if isVanished(err) {
		return activationVanished, err
	}

	return activationFailed, err
}

// popLevel closes the top level's handle, if any, and removes the level.
// A close failure is reported but never fatal. It returns the new depth.
func (it *Iterator) popLevel() int {
	top := it.top()
	it.closeLevel(top)

	it.levels = it.levels[:len(it.levels)-1]

	return len(it.levels)
}

func (it *Iterator) closeLevel(lvl *level) {
	if lvl.dir == nil {
		return
	}

	err := lvl.dir.Close()
	lvl.dir = nil

	if err != nil {
		it.path.truncate(lvl.prefixLen)
		it.sink.Warn(it.path.String(), err)
	}
}
