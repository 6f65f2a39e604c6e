package diriter

import "strings"

// Flags select traversal policy. They combine freely; the zero value walks
// every directory but only produces non-directory entries.
type Flags uint8

const (
	// Strict turns every failure other than a vanished entry into a fatal
	// error: resources are released and Advance returns StatusError.
	Strict Flags = 1 << iota
	// FollowSymlinks stats link targets instead of links, so linked
	// directories are descended into. Cycles are not detected.
	FollowSymlinks
	// DirsBefore produces a directory before its contents.
	DirsBefore
	// DirsAfter produces a directory after all of its contents.
	DirsAfter
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{Strict, "strict"},
	{FollowSymlinks, "follow-symlinks"},
	{DirsBefore, "dirs-before"},
	{DirsAfter, "dirs-after"},
}

// Has reports whether every bit of flag is set.
func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

// String lists the set flags joined by "|", or "none".
func (f Flags) String() string {
	var names []string

	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			names = append(names, fn.name)
		}
	}

	if len(names) == 0 {
		return "none"
	}

	return strings.Join(names, "|")
}

// Orientation tells whether a produced directory is being exposed before or
// after its contents. Non-directories are always exposed Before.
type Orientation uint8

const (
	// Before is a directory produced ahead of its contents, and every
	// non-directory.
	Before Orientation = iota
	// After is a directory produced once its contents are exhausted.
	After
)

func (o Orientation) String() string {
	if o == After {
		return "after"
	}

	return "before"
}
