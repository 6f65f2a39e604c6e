package errors

import (
	"errors"
	"io/fs"
	"strings"
	"syscall"
)

// PatternMatcher matches error messages to categories using string patterns.
type PatternMatcher interface {
	Match(errorMsg string) ErrorCategory
}

// NewPatternMatcher creates a new PatternMatcher with predefined patterns.
// Patterns are checked in order, so more specific categories come first.
func NewPatternMatcher() PatternMatcher {
	return &patternMatcher{
		patterns: []categoryPatterns{
			{CategorySymlinkLoop, []string{
				"too many levels of symbolic links",
				"too many links",
			}},
			{CategoryNotDirectory, []string{
				"not a directory",
			}},
			{CategoryPermission, []string{
				"permission denied",
				"access denied",
				"access is denied",
				"operation not permitted",
			}},
			{CategoryNotFound, []string{
				"no such file or directory",
				"file does not exist",
				"cannot find the path",
			}},
			{CategoryIO, []string{
				"input/output error",
				"i/o error",
				"stale file handle",
				"connection lost",
			}},
		},
	}
}

// Categorize classifies err by identity when it wraps a known sentinel and
// falls back to matching its message.
func Categorize(matcher PatternMatcher, err error) ErrorCategory {
	switch {
	case errors.Is(err, syscall.ELOOP):
		return CategorySymlinkLoop
	case errors.Is(err, syscall.ENOTDIR):
		return CategoryNotDirectory
	case errors.Is(err, fs.ErrPermission):
		return CategoryPermission
	case errors.Is(err, fs.ErrNotExist):
		return CategoryNotFound
	case errors.Is(err, syscall.EIO):
		return CategoryIO
	}

	return matcher.Match(err.Error())
}

type categoryPatterns struct {
	category ErrorCategory
	patterns []string
}

// patternMatcher is the concrete implementation of PatternMatcher.
type patternMatcher struct {
	patterns []categoryPatterns
}

// Match returns the first category with a pattern contained in errorMsg.
func (m *patternMatcher) Match(errorMsg string) ErrorCategory {
	lowerMsg := strings.ToLower(errorMsg)

	for _, entry := range m.patterns {
		for _, pattern := range entry.patterns {
			if strings.Contains(lowerMsg, pattern) {
				return entry.category
			}
		}
	}

	return CategoryUnknown
}
