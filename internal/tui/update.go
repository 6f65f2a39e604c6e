package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/dir-iterator/internal/tui/shared"
)

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EntryMsg:
		return m.handleEntry(msg)

	case DoneMsg:
		m.inFlight = false
		m.state = shared.StateComplete
		m.elapsed = time.Since(m.started)

		return m, nil

	case ErrorMsg:
		m.inFlight = false
		m.state = shared.StateError
		m.err = msg.Err
		m.elapsed = time.Since(m.started)

		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil

	case spinner.TickMsg:
		if m.finished() {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case elapsedTickMsg:
		if m.finished() {
			return m, nil
		}

		m.elapsed = time.Since(m.started)

		return m, tickCmd()
	}

	return m, nil
}

func (m Model) handleEntry(msg EntryMsg) (tea.Model, tea.Cmd) {
	m.inFlight = false
	m.summary.Add(msg.Entry)

	if m.filter.ShouldInclude(msg.Entry.RelativePath) {
		m.summary.Listed++
		m.recent = shared.PushRecent(m.recent, shared.NewRecentEntry(msg.Entry), shared.RecentEntryLimit)
	}

	// A stop requested mid-advance takes effect now that the advance is done
	if m.state == shared.StateCancelling {
		m.walker.Abort()
		m.state = shared.StateCancelled
		m.elapsed = time.Since(m.started)

		return m, nil
	}

	m.inFlight = true

	return m, advanceCmd(m.walker)
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case shared.KeyCtrlC, shared.KeyQuit:
		// If already in a final state, quit immediately
		if m.finished() {
			m.quitting = true
			return m, tea.Quit
		}

		if m.state == shared.StateCancelling {
			return m, nil
		}

		m.state = shared.StateCancelling
		if !m.inFlight {
			m.walker.Abort()
			m.state = shared.StateCancelled
		}

		return m, nil

	case shared.KeyEnter:
		if m.finished() {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}
