package errors_test

import (
	"strings"
	"testing"

	"github.com/joe/dir-iterator/pkg/errors"
)

func TestSuggestionGenerator_EveryCategoryHasAdvice(t *testing.T) {
	t.Parallel()

	categories := []errors.ErrorCategory{
		errors.CategoryPermission,
		errors.CategoryNotFound,
		errors.CategorySymlinkLoop,
		errors.CategoryNotDirectory,
		errors.CategoryIO,
		errors.CategoryUnknown,
		errors.ErrorCategory("made_up"),
	}

	generator := errors.NewSuggestionGenerator()

	for _, category := range categories {
		t.Run(string(category), func(t *testing.T) {
			t.Parallel()

			if got := generator.Generate(category, ""); len(got) == 0 {
				t.Errorf("expected suggestions for %q without a path", category)
			}

			if got := generator.Generate(category, "/x"); len(got) == 0 {
				t.Errorf("expected suggestions for %q with a path", category)
			}
		})
	}
}

func TestSuggestionGenerator_PermissionMentionsPath(t *testing.T) {
	t.Parallel()

	suggestions := errors.NewSuggestionGenerator().Generate(errors.CategoryPermission, "/srv/locked")

	found := false

	for _, suggestion := range suggestions {
		if strings.Contains(suggestion, "ls -ld /srv/locked") {
			found = true

			break
		}
	}

	if !found {
		t.Errorf("expected ls -ld suggestion, got: %v", suggestions)
	}
}

func TestSuggestionGenerator_PermissionWithoutPath(t *testing.T) {
	t.Parallel()

	suggestions := errors.NewSuggestionGenerator().Generate(errors.CategoryPermission, "")

	for _, suggestion := range suggestions {
		if strings.Contains(suggestion, "ls -ld /") {
			t.Errorf("did not expect a concrete path, got: %q", suggestion)
		}
	}
}
