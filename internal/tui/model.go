package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/randalmurphal/todui/internal/board"
	"github.com/randalmurphal/todui/internal/document"
)

// model drives both board views. The local view owns the todo file at path;
// the global view has no file and refuses mutation.
type model struct {
	board    *board.Board
	path     string
	readOnly bool

	// Cursor: col indexes the focused column, row the focused card in that
	// column's flattened list (subtasks inline after their parents).
	col int
	row int

	theme     string
	saveTheme func(string) error
	styles    Styles
	keys      keyMap
	help      help.Model

	status string
	dirty  bool

	width  int
	height int
}

func newModel(b *board.Board, path string, readOnly bool, opts Options) *model {
	p := paletteFor(opts.Theme)
	return &model{
		board:     b,
		path:      path,
		readOnly:  readOnly,
		theme:     p.name,
		saveTheme: opts.SaveTheme,
		styles:    stylesFor(p),
		keys:      newKeyMap(readOnly),
		help:      help.New(),
	}
}

// Init implements tea.Model.
func (m *model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		// Every keypress clears the previous status message.
		m.status = ""

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Up):
			if m.row > 0 {
				m.row--
			}
		case key.Matches(msg, m.keys.Down):
			if m.row < len(m.cards(m.col))-1 {
				m.row++
			}
		case key.Matches(msg, m.keys.Left):
			if m.col > 0 {
				m.col--
				m.row = 0
			}
		case key.Matches(msg, m.keys.Right):
			if m.col < len(m.board.Columns)-1 {
				m.col++
				m.row = 0
			}
		case key.Matches(msg, m.keys.MoveUp):
			m.reorder(board.DirectionUp)
		case key.Matches(msg, m.keys.MoveDown):
			m.reorder(board.DirectionDown)
		case key.Matches(msg, m.keys.MoveLeft):
			m.moveAcross(-1)
		case key.Matches(msg, m.keys.MoveRight):
			m.moveAcross(1)
		case key.Matches(msg, m.keys.Save):
			m.save()
		case key.Matches(msg, m.keys.Reload):
			m.reload()
		case key.Matches(msg, m.keys.Theme):
			m.cycleTheme()
		}
	}
	return m, nil
}

// reorder swaps the focused task with its sibling and keeps it focused.
func (m *model) reorder(dir board.Direction) {
	if m.readOnly {
		m.status = "Read-only view"
		return
	}
	sel := m.selected()
	if sel == nil {
		return
	}
	if m.board.Reorder(sel, dir) {
		m.dirty = true
		m.focusTask(sel)
	}
}

// moveAcross moves the focused top-level task to the adjacent column,
// appended at the end. Subtasks stay with their parent.
func (m *model) moveAcross(delta int) {
	if m.readOnly {
		m.status = "Read-only view"
		return
	}
	sel := m.selected()
	if sel == nil {
		return
	}
	if sel.Level > 0 {
		m.status = "Subtasks move with their parent"
		return
	}
	target := m.col + delta
	if target < 0 || target >= len(m.board.Columns) {
		return
	}
	if m.board.MoveToColumn(sel, m.board.Columns[target].Name, board.PositionEnd) {
		m.dirty = true
		m.focusTask(sel)
	}
}

func (m *model) save() {
	if m.readOnly {
		m.status = "Read-only view"
		return
	}
	if err := document.Save(m.path, m.board); err != nil {
		m.status = "Save failed: " + err.Error()
		return
	}
	m.dirty = false
	m.status = "Saved " + m.path
}

// reload replaces the board wholesale with the file's current content,
// dropping unsaved changes.
func (m *model) reload() {
	b, err := document.Load(m.path)
	if err != nil {
		m.status = "Reload failed: " + err.Error()
		return
	}
	m.board = b
	m.dirty = false
	m.clampCursor()
	m.status = "Reloaded " + m.path
}

func (m *model) cycleTheme() {
	m.theme = nextThemeName(m.theme)
	m.styles = stylesFor(paletteFor(m.theme))
	m.status = "Theme: " + m.theme
	if m.saveTheme != nil {
		if err := m.saveTheme(m.theme); err != nil {
			m.status = "Theme not saved: " + err.Error()
		}
	}
}

// cards returns a column's tasks in display order, subtasks following their
// parents depth first.
func (m *model) cards(col int) []*board.Task {
	if col < 0 || col >= len(m.board.Columns) {
		return nil
	}
	return flattenColumn(m.board.Columns[col])
}

func flattenColumn(c *board.Column) []*board.Task {
	var out []*board.Task
	var visit func(*board.Task)
	visit = func(t *board.Task) {
		out = append(out, t)
		for _, child := range t.Children {
			visit(child)
		}
	}
	for _, t := range c.Tasks {
		visit(t)
	}
	return out
}

// selected returns the focused task, nil when the column is empty.
func (m *model) selected() *board.Task {
	cards := m.cards(m.col)
	if m.row < 0 || m.row >= len(cards) {
		return nil
	}
	return cards[m.row]
}

// focusTask points the cursor at t wherever it now lives.
func (m *model) focusTask(t *board.Task) {
	for ci, c := range m.board.Columns {
		for ri, card := range flattenColumn(c) {
			if card == t {
				m.col, m.row = ci, ri
				return
			}
		}
	}
	m.clampCursor()
}

// clampCursor pulls the cursor back inside the board after its shape changed.
func (m *model) clampCursor() {
	if len(m.board.Columns) == 0 {
		m.col, m.row = 0, 0
		return
	}
	if m.col >= len(m.board.Columns) {
		m.col = len(m.board.Columns) - 1
	}
	if m.col < 0 {
		m.col = 0
	}
	n := len(m.cards(m.col))
	if m.row >= n {
		m.row = n - 1
	}
	if m.row < 0 {
		m.row = 0
	}
}
