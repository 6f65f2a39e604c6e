package shared

import (
	"strings"

	"github.com/joe/dir-iterator/internal/listing"
	"github.com/joe/dir-iterator/pkg/diriter"
)

// RecentEntry is one line of the recent-entries panel.
type RecentEntry struct {
	Path        string
	Kind        listing.Kind
	Orientation diriter.Orientation
}

// NewRecentEntry captures what the panel needs from a produced entry.
func NewRecentEntry(entry diriter.Entry) RecentEntry {
	return RecentEntry{
		Path:        entry.RelativePath,
		Kind:        listing.KindOf(entry.Info),
		Orientation: entry.Orientation,
	}
}

// PushRecent appends entry, keeping at most limit entries (oldest dropped).
func PushRecent(entries []RecentEntry, entry RecentEntry, limit int) []RecentEntry {
	entries = append(entries, entry)
	if limit > 0 && len(entries) > limit {
		entries = append(entries[:0:0], entries[len(entries)-limit:]...)
	}

	return entries
}

// RenderRecent renders entries oldest first under an optional title.
// Directories end in "/"; a directory leaving the stack is marked with "↑".
func RenderRecent(title string, entries []RecentEntry, maxWidth int) string {
	var builder strings.Builder

	if trimmed := strings.TrimSpace(title); trimmed != "" {
		builder.WriteString(RenderLabel(trimmed))
		builder.WriteString("\n")
	}

	for i, entry := range entries {
		line := entry.Path
		if entry.Kind == listing.KindDir {
			line += "/"
		}

		if maxWidth > 0 {
			line = TruncatePath(line, maxWidth)
		}

		marker := "  "
		if entry.Kind == listing.KindDir && entry.Orientation == diriter.After {
			marker = "↑ "
		}

		builder.WriteString(RenderDim(marker))
		builder.WriteString(EntryStyle(entry.Kind).Render(line))

		if i < len(entries)-1 {
			builder.WriteString("\n")
		}
	}

	return builder.String()
}
