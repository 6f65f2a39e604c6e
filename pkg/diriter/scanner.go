package diriter

import "io/fs"

// Entry is a snapshot of one produced entry.
type Entry struct {
	Path         string
	RelativePath string
	Basename     string
	Info         fs.FileInfo
	Orientation  Orientation
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Info != nil && e.Info.IsDir()
}

// Scanner adapts an Iterator to a Next/Err loop:
//
//	scanner := diriter.NewScanner(it)
//	defer scanner.Close()
//	for entry, ok := scanner.Next(); ok; entry, ok = scanner.Next() {
//		...
//	}
//	if err := scanner.Err(); err != nil { ... }
type Scanner struct {
	it   *Iterator
	err  error
	done bool
}

// NewScanner wraps an iterator returned by Begin.
func NewScanner(it *Iterator) *Scanner {
	return &Scanner{it: it}
}

// Next returns the next entry, or false once the walk has ended.
func (s *Scanner) Next() (Entry, bool) {
	if s.done {
		return Entry{}, false
	}

	switch s.it.Advance() {
	case StatusOK:
		return s.it.Entry(), true
	case StatusError:
		s.err = s.it.Err()
	case StatusDone:
	}

	s.done = true

	return Entry{}, false
}

// Err returns the error that ended the walk, if any.
func (s *Scanner) Err() error {
	return s.err
}

// Close aborts the walk if it is still running. It is safe to call more
// than once.
func (s *Scanner) Close() {
	if s.done {
		return
	}

	s.done = true
	s.it.Abort()
}
