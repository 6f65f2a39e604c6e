package shared

import (
	"fmt"
	"strings"

	"github.com/joe/dir-iterator/internal/diagnostics"
	"github.com/joe/dir-iterator/pkg/errors"
)

// Warning display limits for different screen contexts
const (
	// WarningLimitInProgress is for the screen while the walk is running
	WarningLimitInProgress = 3

	// WarningLimitFinished is for the screen after the walk has ended
	WarningLimitFinished = 10
)

// WarningDisplayContext defines the context in which warnings are being displayed
type WarningDisplayContext int

const (
	// ContextInProgress indicates warnings shown while walking
	ContextInProgress WarningDisplayContext = iota
	// ContextFinished indicates warnings shown after the walk ended
	ContextFinished
)

// WarningListConfig holds configuration for rendering warning lists
type WarningListConfig struct {
	// Warnings is the list of recorded walk warnings
	Warnings []diagnostics.Warning

	// Total is the number of warnings seen, which may exceed len(Warnings)
	Total int

	// Context determines the display limit and overflow message
	Context WarningDisplayContext

	// MaxWidth is the maximum width for path and message display
	MaxWidth int

	// TruncatePathFunc is the function to use for truncating paths
	TruncatePathFunc func(string, int) string
}

// RenderWarningList renders warnings with their suggestions, up to the limit
// for the display context.
func RenderWarningList(config WarningListConfig) string {
	if len(config.Warnings) == 0 {
		return ""
	}

	total := max(config.Total, len(config.Warnings))
	limit := getWarningLimit(config.Context)

	var builder strings.Builder

	for i, warning := range config.Warnings {
		if i >= limit {
			break
		}

		displayPath := warning.Path
		if config.TruncatePathFunc != nil && config.MaxWidth > 0 {
			displayPath = config.TruncatePathFunc(warning.Path, config.MaxWidth)
		}

		fmt.Fprintf(&builder, "  %s %s\n", ErrorSymbol(), WarningStyle().Render(displayPath))

		errMsg := warning.Err.Error()
		if config.MaxWidth > 3 && len(errMsg) > config.MaxWidth {
			errMsg = errMsg[:config.MaxWidth-3] + "..."
		}

		fmt.Fprintf(&builder, "    %s\n", errMsg)

		// Suggestions only fit once the walk has stopped
		if config.Context == ContextFinished {
			suggestions := errors.FormatSuggestions(warning.Actionable())
			if suggestions != "" {
				fmt.Fprintf(&builder, "%s\n", "    "+strings.ReplaceAll(suggestions, "\n", "\n    "))
			}
		}
	}

	if remaining := total - min(limit, len(config.Warnings)); remaining > 0 {
		fmt.Fprintf(&builder, "%s\n", getOverflowMessage(config.Context, remaining))
	}

	return builder.String()
}

func getWarningLimit(context WarningDisplayContext) int {
	if context == ContextInProgress {
		return WarningLimitInProgress
	}

	return WarningLimitFinished
}

func getOverflowMessage(context WarningDisplayContext, remaining int) string {
	if context == ContextInProgress {
		return fmt.Sprintf("  ... and %d more so far", remaining)
	}

	return fmt.Sprintf("  ... and %d more warning(s), see the log", remaining)
}
