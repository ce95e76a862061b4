// Package tui renders the task board in the terminal. The local view edits
// task order and column membership in memory and saves back to the todo
// file on demand; the global view is a read-only board over remote records.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/randalmurphal/todui/internal/board"
)

// Options configures a board session.
type Options struct {
	// Theme names the color palette. Unknown names fall back to the
	// default palette.
	Theme string

	// SaveTheme persists a newly selected theme. Nil disables persistence;
	// the session still switches colors.
	SaveTheme func(theme string) error
}

// RunBoard opens the editable board for the todo file at path and blocks
// until the user quits.
func RunBoard(b *board.Board, path string, opts Options) error {
	m := newModel(b, path, false, opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("board ui: %w", err)
	}
	return nil
}

// RunGlobal opens the read-only board over remote records and blocks until
// the user quits. There is no file behind it, so saving and reloading are
// disabled.
func RunGlobal(b *board.Board, opts Options) error {
	m := newModel(b, "", true, opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("global ui: %w", err)
	}
	return nil
}
