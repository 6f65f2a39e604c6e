package shared

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/joe/dir-iterator/internal/listing"
)

// Exported constants organized by category for clarity.
const (
	// ============================================================================
	// UI Layout & Display
	// ============================================================================

	// DefaultPadding is the default padding for UI elements
	DefaultPadding = 2
	// RecentEntryLimit is how many recently produced entries stay on screen
	RecentEntryLimit = 12
	// PathMarginWidth is subtracted from the window width when truncating paths
	PathMarginWidth = 10

	// ============================================================================
	// Time Intervals
	// ============================================================================

	// TickIntervalMs is the interval for elapsed-time ticks in milliseconds
	TickIntervalMs = 250

	// ============================================================================
	// Keys & Symbols
	// ============================================================================

	// KeyCtrlC is the key binding for cancellation
	KeyCtrlC = "ctrl+c"
	// KeyQuit stops the walk or leaves a finished screen
	KeyQuit = "q"
	// KeyEnter leaves a finished screen
	KeyEnter = "enter"

	// ============================================================================
	// State Constants
	// ============================================================================

	StateCancelled  = "cancelled"
	StateCancelling = "cancelling"
	StateComplete   = "complete"
	StateError      = "error"
	StateWalking    = "walking"
)

func AccentColor() lipgloss.Color { return lipgloss.Color(accentColorCode) }

// BoxStyle returns the style for boxes with padding
func BoxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(AccentColor()).
		Padding(1, DefaultPadding)
}

func DimColor() lipgloss.Color { return lipgloss.Color(dimColorCode) }

// DimStyle returns the style for dimmed text
func DimStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(DimColor())
}

// EntryStyle returns the style for a produced entry of the given kind
func EntryStyle(kind listing.Kind) lipgloss.Style {
	switch kind {
	case listing.KindDir:
		return lipgloss.NewStyle().Foreground(AccentColor()).Bold(true)
	case listing.KindSymlink:
		return lipgloss.NewStyle().Foreground(HighlightColor())
	case listing.KindOther:
		return lipgloss.NewStyle().Foreground(WarningColor())
	case listing.KindFile:
	}

	return lipgloss.NewStyle().Foreground(NormalColor())
}

func ErrorColor() lipgloss.Color { return lipgloss.Color(errorColorCode) }

// ErrorStyle returns the style for error messages
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(ErrorColor()).
		Bold(true)
}

// ErrorSymbol marks a warning line
func ErrorSymbol() string {
	return ErrorStyle().Render("✗")
}

func HighlightColor() lipgloss.Color { return lipgloss.Color(highlightColorCode) }

// LabelStyle returns the style for labels
func LabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(HighlightColor()).
		Bold(true)
}

func NormalColor() lipgloss.Color { return lipgloss.Color(normalColorCode) }

// PrimaryColor returns the primary color for the UI
func PrimaryColor() lipgloss.Color { return lipgloss.Color(primaryColorCode) }

// RenderBox renders content in a box with consistent styling
func RenderBox(content string) string {
	return BoxStyle().Render(content)
}

// RenderDim renders dimmed text with consistent styling
func RenderDim(text string) string {
	return DimStyle().Render(text)
}

// RenderError renders an error message with consistent styling
func RenderError(text string) string {
	return ErrorStyle().Render(text)
}

// RenderLabel renders a label with consistent styling
func RenderLabel(text string) string {
	return LabelStyle().Render(text)
}

// RenderSubtitle renders a subtitle with consistent styling
func RenderSubtitle(text string) string {
	return SubtitleStyle().Render(text)
}

// RenderSuccess renders a success message with consistent styling
func RenderSuccess(text string) string {
	return SuccessStyle().Render(text)
}

// RenderTitle renders a title with consistent styling
func RenderTitle(text string) string {
	return TitleStyle().Render(text)
}

// RenderWarning renders a warning message with consistent styling
func RenderWarning(text string) string {
	return WarningStyle().Render(text)
}

// SubtitleStyle returns the style for subtitles
func SubtitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(SubtleColor()).
		MarginBottom(1)
}

func SubtleColor() lipgloss.Color { return lipgloss.Color(subtleColorCode) }

func SuccessColor() lipgloss.Color { return lipgloss.Color(successColorCode) }

// SuccessStyle returns the style for success messages
func SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(SuccessColor()).
		Bold(true)
}

// TitleStyle returns the style for titles
func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor()).
		MarginBottom(1)
}

func WarningColor() lipgloss.Color { return lipgloss.Color(warningColorCode) }

// WarningStyle returns the style for warning messages
func WarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(WarningColor()).
		Bold(true)
}

// unexported constants.
const (
	accentColorCode    = "62"  // Blue
	dimColorCode       = "240" // Dark gray
	errorColorCode     = "196" // Red
	highlightColorCode = "86"  // Cyan
	normalColorCode    = "252" // Light gray
	primaryColorCode   = "205" // Pink/purple
	subtleColorCode    = "241" // Medium gray
	successColorCode   = "42"  // Green
	warningColorCode   = "226" // Yellow
)
