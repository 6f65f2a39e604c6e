package errors

import "fmt"

// SuggestionGenerator generates actionable suggestions based on error category.
type SuggestionGenerator interface {
	Generate(category ErrorCategory, affectedPath string) []string
}

// NewSuggestionGenerator creates a new SuggestionGenerator.
func NewSuggestionGenerator() SuggestionGenerator {
	return &suggestionGenerator{}
}

// suggestionGenerator is the concrete implementation of SuggestionGenerator.
type suggestionGenerator struct{}

// Generate returns actionable suggestions based on the error category and affected path.
func (g *suggestionGenerator) Generate(category ErrorCategory, affectedPath string) []string {
	switch category {
	case CategoryPermission:
		return g.generatePermissionSuggestions(affectedPath)
	case CategoryNotFound:
		return g.generateNotFoundSuggestions(affectedPath)
	case CategorySymlinkLoop:
		return g.generateSymlinkLoopSuggestions(affectedPath)
	case CategoryNotDirectory:
		return g.generateNotDirectorySuggestions(affectedPath)
	case CategoryIO:
		return g.generateIOSuggestions(affectedPath)
	case CategoryUnknown:
		return g.generateUnknownSuggestions(affectedPath)
	default:
		return g.generateUnknownSuggestions(affectedPath)
	}
}

func (g *suggestionGenerator) generateIOSuggestions(_ string) []string {
	return []string{
		"Try the walk again - this may be a transient I/O error",
		"Check that network or removable storage is still mounted",
		"Check system logs for hardware issues",
	}
}

func (g *suggestionGenerator) generateNotDirectorySuggestions(path string) []string {
	suggestions := []string{
		"Point the walk at a directory, not a file",
	}

	if path != "" {
		suggestions = append(suggestions, "Check what kind of entry this is with 'ls -ld "+path+"'")
	}

	return suggestions
}

func (g *suggestionGenerator) generateNotFoundSuggestions(path string) []string {
	suggestions := []string{
		"Verify the path exists and is spelled correctly",
	}

	if path != "" {
		suggestions = append(suggestions, "Check if the path exists: "+path)
	}

	suggestions = append(suggestions, "Entries removed while the walk runs are skipped; re-run once the tree is stable")

	return suggestions
}

func (g *suggestionGenerator) generatePermissionSuggestions(path string) []string {
	suggestions := []string{
		"Ensure you have read and execute permission on the directories being walked",
	}

	if path != "" {
		suggestions = append(suggestions, fmt.Sprintf("Check permissions with 'ls -ld %s'", path))
	} else {
		suggestions = append(suggestions, "Check permissions with 'ls -ld' on the affected path")
	}

	suggestions = append(suggestions,
		"Run without --strict to skip unreadable directories instead of stopping")

	return suggestions
}

func (g *suggestionGenerator) generateSymlinkLoopSuggestions(path string) []string {
	suggestions := []string{
		"A symbolic link points back into its own ancestry",
		"Run without --follow-symlinks to report links instead of descending into them",
	}

	if path != "" {
		suggestions = append(suggestions, fmt.Sprintf("Inspect the link with 'readlink -f %s'", path))
	}

	return suggestions
}

func (g *suggestionGenerator) generateUnknownSuggestions(path string) []string {
	suggestions := []string{
		"Check the error message for more details",
		"Verify directory permissions",
	}

	if path != "" {
		suggestions = append(suggestions, "Verify the path is accessible: "+path)
	}

	return suggestions
}
