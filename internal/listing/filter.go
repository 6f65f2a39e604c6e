package listing

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// EntryFilter decides which produced entries are written
type EntryFilter interface {
	// ShouldInclude returns true if the entry at the given relative path should be listed
	ShouldInclude(relativePath string) bool
}

// GlobFilter implements EntryFilter using doublestar glob patterns
type GlobFilter struct {
	normalizedPattern string
	isEmpty           bool
}

// NewGlobFilter creates a new GlobFilter with the given pattern
// Empty pattern matches every entry
func NewGlobFilter(pattern string) *GlobFilter {
	return &GlobFilter{
		normalizedPattern: strings.ToLower(pattern),
		isEmpty:           pattern == "",
	}
}

// ShouldInclude reports whether relativePath matches, case-insensitively
func (f *GlobFilter) ShouldInclude(relativePath string) bool {
	if f.isEmpty {
		return true
	}

	matched, err := doublestar.Match(f.normalizedPattern, strings.ToLower(relativePath))
	if err != nil {
		// Invalid patterns match nothing
		return false
	}

	return matched
}
