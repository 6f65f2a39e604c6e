package shared

import (
	"fmt"
	"time"
)

// FormatBytes formats bytes into human-readable format (e.g., "1.5 MB")
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// FormatDuration formats duration into human-readable format (e.g., "2m 30s")
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)
	hours := duration / time.Hour
	duration %= time.Hour
	minutes := duration / time.Minute
	duration %= time.Minute
	seconds := duration / time.Second

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	} else if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}

	return fmt.Sprintf("%ds", seconds)
}

// FormatRate formats a walk rate (e.g., "1520 entries/s")
func FormatRate(entries int, elapsed time.Duration) string {
	if elapsed <= 0 {
		return "0 entries/s"
	}

	return fmt.Sprintf("%.0f entries/s", float64(entries)/elapsed.Seconds())
}

// TruncatePath shortens path to maxWidth by replacing its start with "...",
// keeping the most specific components visible.
func TruncatePath(path string, maxWidth int) string {
	if maxWidth <= ellipsisLength || len(path) <= maxWidth {
		return path
	}

	return "..." + path[len(path)-(maxWidth-ellipsisLength):]
}

const ellipsisLength = 3
