package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/dir-iterator/pkg/diriter"
)

// Walker serialises access to an iterator shared between the advance
// commands and whoever stops the walk, which may be another goroutine once
// the program has exited.
type Walker struct {
	mu sync.Mutex
	it *diriter.Iterator
}

// NewWalker wraps an iterator returned by diriter.Begin.
func NewWalker(it *diriter.Iterator) *Walker {
	return &Walker{it: it}
}

// Step advances once and returns the result as a message.
func (w *Walker) Step() tea.Msg {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.it.Advance() {
	case diriter.StatusOK:
		return EntryMsg{Entry: w.it.Entry()}
	case diriter.StatusError:
		return ErrorMsg{Err: w.it.Err()}
	case diriter.StatusDone:
	}

	return DoneMsg{}
}

// Abort stops the walk, waiting for a running Step to return first.
func (w *Walker) Abort() diriter.Status {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.it.Abort()
}
