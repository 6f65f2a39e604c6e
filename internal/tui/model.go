// Package tui is the interactive walk viewer. It advances the iterator one
// entry per message so the screen stays responsive on large trees.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/joe/dir-iterator/internal/config"
	"github.com/joe/dir-iterator/internal/diagnostics"
	"github.com/joe/dir-iterator/internal/listing"
	"github.com/joe/dir-iterator/internal/tui/shared"
	"github.com/joe/dir-iterator/pkg/diriter"
)

// Model represents the TUI state
type Model struct {
	root     string
	flags    diriter.Flags
	walker   *Walker
	reporter *diagnostics.Reporter
	filter   listing.EntryFilter

	spinner spinner.Model
	summary listing.Summary
	recent  []shared.RecentEntry

	// inFlight is true while an advance command is running; a stop
	// requested meanwhile is applied when its result arrives
	inFlight bool
	state    string // "walking", "cancelling", "complete", "cancelled", "error"
	err      error
	quitting bool

	started time.Time
	elapsed time.Duration
	width   int
	height  int
}

// EntryMsg carries the entry produced by one advance
type EntryMsg struct {
	Entry diriter.Entry
}

// DoneMsg is sent when the walk has produced every entry
type DoneMsg struct{}

// ErrorMsg is sent when a strict walk stops on an error
type ErrorMsg struct {
	Err error
}

type elapsedTickMsg time.Time

// NewModel creates a viewer driving walker. Warnings are read from reporter,
// which should be the iterator's sink.
func NewModel(cfg *config.Config, walker *Walker, reporter *diagnostics.Reporter) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(shared.PrimaryColor())

	return Model{
		root:     cfg.Root,
		flags:    cfg.Flags(),
		walker:   walker,
		reporter: reporter,
		filter:   listing.NewGlobFilter(cfg.Include),
		spinner:  s,
		summary:  listing.NewSummary(cfg.Flags()),
		inFlight: true,
		state:    shared.StateWalking,
		started:  time.Now(),
	}
}

// Init starts the first advance, the spinner and the elapsed timer
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		advanceCmd(m.walker),
		tickCmd(),
	)
}

// Summary returns the counts so far
func (m Model) Summary() listing.Summary {
	summary := m.summary
	if m.reporter != nil {
		summary.Warnings = m.reporter.Count()
	}

	return summary
}

// Err returns the error that stopped a strict walk
func (m Model) Err() error {
	return m.err
}

// advanceCmd moves the walk one step on the command goroutine
func advanceCmd(walker *Walker) tea.Cmd {
	return walker.Step
}

// tickCmd creates a tick command for elapsed-time updates
func tickCmd() tea.Cmd {
	return tea.Tick(shared.TickIntervalMs*time.Millisecond, func(t time.Time) tea.Msg {
		return elapsedTickMsg(t)
	})
}

func (m Model) finished() bool {
	return m.state == shared.StateComplete ||
		m.state == shared.StateCancelled ||
		m.state == shared.StateError
}
