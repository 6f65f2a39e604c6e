package listing

import (
	"fmt"
	"io/fs"

	"github.com/joe/dir-iterator/pkg/diriter"
)

// Kind names the type of a produced entry.
type Kind string

const (
	KindFile    Kind = "file"
	KindDir     Kind = "dir"
	KindSymlink Kind = "symlink"
	KindOther   Kind = "other"
)

// KindOf classifies info. A nil info is KindOther.
func KindOf(info fs.FileInfo) Kind {
	if info == nil {
		return KindOther
	}

	mode := info.Mode()

	switch {
	case mode.IsDir():
		return KindDir
	case mode&fs.ModeSymlink != 0:
		return KindSymlink
	case mode.IsRegular():
		return KindFile
	default:
		return KindOther
	}
}

// Summary tallies a finished or interrupted walk.
type Summary struct {
	Files    int
	Dirs     int
	Symlinks int
	Others   int
	Bytes    int64
	Listed   int
	Warnings int
	// Opened is the number of directory handles the walk opened.
	Opened int

	// countAfter counts directories on their after exposure, for walks
	// that only produce them there.
	countAfter bool
}

// NewSummary returns an empty Summary for a walk using flags.
func NewSummary(flags diriter.Flags) Summary {
	return Summary{
		countAfter: flags.Has(diriter.DirsAfter) && !flags.Has(diriter.DirsBefore),
	}
}

// Add counts one produced entry. A directory is counted once even when it
// is produced both before and after its contents.
func (s *Summary) Add(entry diriter.Entry) {
	switch KindOf(entry.Info) {
	case KindDir:
		if (entry.Orientation == diriter.After) == s.countAfter {
			s.Dirs++
		}
	case KindSymlink:
		s.Symlinks++
	case KindFile:
		s.Files++
		s.Bytes += entry.Info.Size()
	case KindOther:
		s.Others++
	}
}

// Entries is the number of distinct entries counted.
func (s Summary) Entries() int {
	return s.Files + s.Dirs + s.Symlinks + s.Others
}

func (s Summary) String() string {
	return fmt.Sprintf("%d files, %d dirs, %d symlinks, %d other, %d warnings",
		s.Files, s.Dirs, s.Symlinks, s.Others, s.Warnings)
}
