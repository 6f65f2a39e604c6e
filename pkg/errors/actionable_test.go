package errors_test

import (
	"testing"

	"github.com/joe/dir-iterator/pkg/errors"
)

func TestActionableError_FormatSuggestionsWithEmptySuggestions(t *testing.T) {
	t.Parallel()

	err := errors.NewActionableError(
		"unknown error",
		errors.CategoryUnknown,
		[]string{},
		"/path",
	)

	formatted := errors.FormatSuggestions(err)

	if formatted != "" {
		t.Errorf("expected empty string for no suggestions, got %q", formatted)
	}
}

func TestActionableError_FormatSuggestionsWithMultipleSuggestions(t *testing.T) {
	t.Parallel()

	err := errors.NewActionableError(
		"open /srv/locked: permission denied",
		errors.CategoryPermission,
		[]string{
			"Check permissions with 'ls -ld /srv/locked'",
			"Ensure you have read access",
			"Run without --strict",
		},
		"/srv/locked",
	)

	formatted := errors.FormatSuggestions(err)

	expected := "  • Check permissions with 'ls -ld /srv/locked'\n  • Ensure you have read access\n  • Run without --strict"
	if formatted != expected {
		t.Errorf("expected:\n%q\ngot:\n%q", expected, formatted)
	}
}

func TestActionableError_FormatSuggestionsWithNonActionableError(t *testing.T) {
	t.Parallel()

	if formatted := errors.FormatSuggestions(nil); formatted != "" {
		t.Errorf("expected empty string for nil error, got %q", formatted)
	}

	if formatted := errors.FormatSuggestions(errPlain{}); formatted != "" {
		t.Errorf("expected empty string for plain error, got %q", formatted)
	}
}

func TestActionableError_FormatSuggestionsWithSingleSuggestion(t *testing.T) {
	t.Parallel()

	err := errors.NewActionableError(
		"readdirent /mnt/usb: input/output error",
		errors.CategoryIO,
		[]string{"Check system logs for hardware issues"},
		"/mnt/usb",
	)

	formatted := errors.FormatSuggestions(err)

	expected := "  • Check system logs for hardware issues"
	if formatted != expected {
		t.Errorf("expected:\n%q\ngot:\n%q", expected, formatted)
	}
}

func TestActionableError_ProvidesDetails(t *testing.T) {
	t.Parallel()

	suggestions := []string{"Inspect the link"}
	err := errors.NewActionableError(
		"stat /a/loop: too many levels of symbolic links",
		errors.CategorySymlinkLoop,
		suggestions,
		"/a/loop",
	)

	var _ error = err

	if err.Error() != "stat /a/loop: too many levels of symbolic links" {
		t.Errorf("unexpected Error(): %q", err.Error())
	}

	if err.OriginalError() != err.Error() {
		t.Errorf("expected original error %q, got %q", err.Error(), err.OriginalError())
	}

	if err.Category() != errors.CategorySymlinkLoop {
		t.Errorf("expected category %q, got %q", errors.CategorySymlinkLoop, err.Category())
	}

	if err.AffectedPath() != "/a/loop" {
		t.Errorf("expected path %q, got %q", "/a/loop", err.AffectedPath())
	}

	if got := err.Suggestions(); len(got) != 1 || got[0] != suggestions[0] {
		t.Errorf("expected suggestions %v, got %v", suggestions, got)
	}
}

func TestErrorCategory_CategoriesAreDistinct(t *testing.T) {
	t.Parallel()

	categories := []errors.ErrorCategory{
		errors.CategoryPermission,
		errors.CategoryNotFound,
		errors.CategorySymlinkLoop,
		errors.CategoryNotDirectory,
		errors.CategoryIO,
		errors.CategoryUnknown,
	}

	seen := make(map[errors.ErrorCategory]bool)
	for _, cat := range categories {
		if cat == "" {
			t.Error("category should not be empty string")
		}

		if seen[cat] {
			t.Errorf("duplicate category: %q", cat)
		}

		seen[cat] = true
	}
}

type errPlain struct{}

func (errPlain) Error() string { return "plain" }
