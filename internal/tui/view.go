package tui

import (
	"fmt"
	"strings"

	"github.com/joe/dir-iterator/internal/tui/shared"
	"github.com/joe/dir-iterator/pkg/errors"
)

// View renders the TUI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var builder strings.Builder

	builder.WriteString(shared.RenderTitle("dir-iterator"))
	builder.WriteString("\n")
	builder.WriteString(shared.RenderSubtitle(fmt.Sprintf("%s  (%s)", m.root, m.flags)))
	builder.WriteString("\n")
	builder.WriteString(m.renderStatus())
	builder.WriteString("\n\n")
	builder.WriteString(m.renderCounts())
	builder.WriteString("\n\n")

	if len(m.recent) > 0 {
		builder.WriteString(shared.RenderRecent("Recent entries", m.recent, m.pathWidth()))
		builder.WriteString("\n\n")
	}

	if m.reporter != nil {
		context := shared.ContextInProgress
		if m.finished() {
			context = shared.ContextFinished
		}

		warnings := shared.RenderWarningList(shared.WarningListConfig{
			Warnings:         m.reporter.Warnings(),
			Total:            m.reporter.Count(),
			Context:          context,
			MaxWidth:         m.pathWidth(),
			TruncatePathFunc: shared.TruncatePath,
		})
		if warnings != "" {
			builder.WriteString(shared.RenderLabel("Warnings"))
			builder.WriteString("\n")
			builder.WriteString(warnings)
			builder.WriteString("\n")
		}
	}

	builder.WriteString(shared.RenderDim(m.helpText()))

	return shared.RenderBox(builder.String())
}

func (m Model) renderStatus() string {
	switch m.state {
	case shared.StateComplete:
		return shared.RenderSuccess("✓ Walk complete")
	case shared.StateCancelled:
		return shared.RenderWarning("Walk stopped")
	case shared.StateCancelling:
		return m.spinner.View() + " " + shared.RenderWarning("Stopping...")
	case shared.StateError:
		status := shared.RenderError("Walk failed: " + m.err.Error())
		if suggestions := errors.FormatSuggestions(errors.NewEnricher().Enrich(m.err, "")); suggestions != "" {
			status += "\n" + suggestions
		}

		return status
	default:
		return m.spinner.View() + " Walking..."
	}
}

func (m Model) renderCounts() string {
	summary := m.Summary()

	lines := []string{
		fmt.Sprintf("%s %d files (%s), %d dirs, %d symlinks, %d other",
			shared.RenderLabel("Entries:"),
			summary.Files, shared.FormatBytes(summary.Bytes),
			summary.Dirs, summary.Symlinks, summary.Others),
		fmt.Sprintf("%s %d", shared.RenderLabel("Listed:"), summary.Listed),
		fmt.Sprintf("%s %d", shared.RenderLabel("Warnings:"), summary.Warnings),
		fmt.Sprintf("%s %s (%s)",
			shared.RenderLabel("Elapsed:"),
			shared.FormatDuration(m.elapsed),
			shared.FormatRate(summary.Entries(), m.elapsed)),
	}

	return strings.Join(lines, "\n")
}

func (m Model) helpText() string {
	if m.finished() {
		return "q/enter: exit"
	}

	return "q: stop walking"
}

func (m Model) pathWidth() int {
	if m.width <= shared.PathMarginWidth {
		return 0
	}

	return m.width - shared.PathMarginWidth
}
