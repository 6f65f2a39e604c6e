package diriter

import (
	"errors"
	"io/fs"
)

type exposure uint8

const (
	exposed exposure = iota
	exposureIgnoredDir
	exposureVanished
	exposureFailed
)

// isVanished reports whether err means the entry no longer exists. Such
// entries are skipped silently in every mode.
func isVanished(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// exposeEntry appends name to the current path, stats it and decides whether
// it is produced. A directory whose orientation is not enabled is stat'ed but
// reported as exposureIgnoredDir so the caller may still descend into it.
// An After exposure that finds a non-directory counts as vanished.
// On success the relative path and basename views are refreshed.
func (it *Iterator) exposeEntry(name string, orientation Orientation) (exposure, error) {
	prefixLen := it.path.len()
	it.path.appendName(name)

	fullPath := it.path.String()

	stat := it.fsys.Lstat
	if it.flags.Has(FollowSymlinks) {
		stat = it.fsys.Stat
	}

	info, err := stat(fullPath)
	if err != nil {
		it.info = nil

		if isVanished(err) {
			return exposureVanished, err
		}

		it.sink.Warn(fullPath, err)

		return exposureFailed, err
	}

	it.info = info

	// The directory was replaced while its contents were walked.
	if orientation == After && !info.IsDir() {
		it.info = nil
		return exposureVanished, nil
	}

	if info.IsDir() && !it.producesDirs(orientation) {
		return exposureIgnoredDir, nil
	}

	it.orientation = orientation
	it.relative = span{start: it.path.nameStart(it.levels[0].prefixLen), end: it.path.len()}
	it.basename = span{start: it.path.nameStart(prefixLen), end: it.path.len()}

	return exposed, nil
}

func (it *Iterator) producesDirs(orientation Orientation) bool {
	if orientation == After {
		return it.flags.Has(DirsAfter)
	}

	return it.flags.Has(DirsBefore)
}
