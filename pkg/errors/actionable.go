// Package errors turns walk failures into actionable diagnostics.
//
// This package enriches standard Go errors with a category and suggestions
// so a user can see why part of a tree was skipped and what to do about it.
// It recognizes permission, missing-path, symlink-loop, not-a-directory and
// I/O failures, by error identity first and by message text second.
//
// Basic Usage:
//
//	enricher := errors.NewEnricher()
//	actionableErr := enricher.Enrich(err, "/srv/data/locked")
//	fmt.Println(actionableErr.Error())
//	fmt.Println(errors.FormatSuggestions(actionableErr))
//
// The enricher extracts paths from error messages when none is provided:
//
//	err := errors.New("open /home/user/private: permission denied")
//	enriched := enricher.Enrich(err, "") // Path is taken from the message
package errors

import "strings"

// Exported constants.
const (
	CategoryIO           ErrorCategory = "io"
	CategoryNotDirectory ErrorCategory = "not_a_directory"
	CategoryNotFound     ErrorCategory = "not_found"
	CategoryPermission   ErrorCategory = "permission"
	CategorySymlinkLoop  ErrorCategory = "symlink_loop"
	CategoryUnknown      ErrorCategory = "unknown"
)

// ActionableError represents an error with actionable suggestions for the user.
type ActionableError interface {
	error
	OriginalError() string
	Category() ErrorCategory
	Suggestions() []string
	AffectedPath() string
}

// NewActionableError creates a new ActionableError with the given details.
func NewActionableError(
	originalError string,
	category ErrorCategory,
	suggestions []string,
	affectedPath string,
) ActionableError {
	return &actionableError{
		originalError: originalError,
		category:      category,
		suggestions:   suggestions,
		affectedPath:  affectedPath,
	}
}

// ErrorCategory represents the type of error that occurred.
type ErrorCategory string

// FormatSuggestions formats the suggestions from an ActionableError as a bulleted list
// with a two-space indent. Returns empty string if the error is nil or has no suggestions.
func FormatSuggestions(err error) string {
	if err == nil {
		return ""
	}

	actionable, ok := err.(ActionableError)
	if !ok {
		return ""
	}

	suggestions := actionable.Suggestions()
	if len(suggestions) == 0 {
		return ""
	}

	var builder strings.Builder
	for i, suggestion := range suggestions {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString("  • ")
		builder.WriteString(suggestion)
	}

	return builder.String()
}

// actionableError is the concrete implementation of ActionableError.
type actionableError struct {
	originalError string
	category      ErrorCategory
	suggestions   []string
	affectedPath  string
}

// AffectedPath returns the path the walk was visiting when the error occurred.
func (e *actionableError) AffectedPath() string {
	return e.affectedPath
}

// Category returns the error category.
func (e *actionableError) Category() ErrorCategory {
	return e.category
}

// Error implements the error interface.
func (e *actionableError) Error() string {
	return e.originalError
}

// OriginalError returns the original error message.
func (e *actionableError) OriginalError() string {
	return e.originalError
}

// Suggestions returns the list of actionable suggestions.
func (e *actionableError) Suggestions() []string {
	return e.suggestions
}
