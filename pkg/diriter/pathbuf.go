package diriter

import "os"

// span is a view into the path buffer: buf[start:end]. Views are stored as
// offsets and resolved on demand, so growing the buffer never invalidates them.
type span struct {
	start, end int
}

// pathBuffer holds the absolute path of the current entry. Names are always
// joined with '/'.
type pathBuffer struct {
	buf []byte
}

// initialPathCapacity avoids regrowth for typical path lengths.
const initialPathCapacity = 256

func newPathBuffer(root string) pathBuffer {
	root = trimTrailingSeparators(root)

	buf := make([]byte, 0, max(initialPathCapacity, len(root)))

	return pathBuffer{buf: append(buf, root...)}
}

// trimTrailingSeparators drops trailing separators but keeps a lone root
// separator, so "/" stays "/" and "a//" becomes "a".
func trimTrailingSeparators(path string) string {
	end := len(path)
	for end > 1 && os.IsPathSeparator(path[end-1]) {
		end--
	}

	return path[:end]
}

func (p *pathBuffer) len() int {
	return len(p.buf)
}

func (p *pathBuffer) truncate(n int) {
	p.buf = p.buf[:n]
}

// appendName joins name onto the buffer, adding a separator unless the
// buffer is empty or already ends in one.
func (p *pathBuffer) appendName(name string) {
	if n := len(p.buf); n > 0 && !os.IsPathSeparator(p.buf[n-1]) {
		p.buf = append(p.buf, '/')
	}

	p.buf = append(p.buf, name...)
}

// nameStart is the offset where a name appended at prefixLen begins.
func (p *pathBuffer) nameStart(prefixLen int) int {
	if prefixLen == 0 || os.IsPathSeparator(p.buf[prefixLen-1]) {
		return prefixLen
	}

	return prefixLen + 1
}

// view returns the text of s, or "" if s no longer fits the buffer.
func (p *pathBuffer) view(s span) string {
	if s.end > len(p.buf) || s.start > s.end {
		return ""
	}

	return string(p.buf[s.start:s.end])
}

func (p *pathBuffer) prefix(n int) string {
	return string(p.buf[:n])
}

func (p *pathBuffer) String() string {
	return string(p.buf)
}

func (p *pathBuffer) release() {
	p.buf = nil
}
