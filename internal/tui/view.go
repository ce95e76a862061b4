package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/randalmurphal/todui/internal/board"
)

// defaultColumnWidth is used before the first WindowSizeMsg arrives.
const defaultColumnWidth = 28

// View implements tea.Model.
func (m *model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(m.titleLine()))
	b.WriteString("\n")

	cols := make([]string, 0, len(m.board.Columns))
	for i := range m.board.Columns {
		cols = append(cols, m.renderColumn(i))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(m.styles.Status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m *model) titleLine() string {
	title := m.board.Title
	if title == "" {
		title = "TODO"
	}
	switch {
	case m.readOnly:
		title += " (read-only)"
	case m.dirty:
		title += " *"
	}
	return title
}

func (m *model) renderColumn(i int) string {
	c := m.board.Columns[i]
	cards := flattenColumn(c)

	lines := []string{
		m.styles.ColumnHeader.Render(fmt.Sprintf("%s (%d)", c.Name, len(cards))),
	}
	for ri, t := range cards {
		lines = append(lines, m.renderCard(t, i == m.col && ri == m.row))
	}

	style := m.styles.Column
	if i == m.col {
		style = m.styles.FocusedColumn
	}
	return style.Width(m.columnWidth()).Render(strings.Join(lines, "\n"))
}

// renderCard renders one task: the title line, then a metadata line when
// the task carries any. The selected card is styled as one block so its
// background covers both lines.
func (m *model) renderCard(t *board.Task, selected bool) string {
	indent := strings.Repeat("  ", t.Level)
	title := indent + t.Title
	meta := metaLine(t)

	if selected {
		card := title
		if meta != "" {
			card += "\n" + indent + "  " + meta
		}
		return m.styles.SelectedCard.Render(card)
	}

	card := m.styles.Card.Render(title)
	if meta != "" {
		card += "\n" + m.styles.Meta.Render(indent+"  "+meta)
	}
	return card
}

// metaLine renders a task's inline metadata: priority, tags, then the
// owning project in the global view.
func metaLine(t *board.Task) string {
	var parts []string
	if t.Priority != "" {
		parts = append(parts, "!"+t.Priority)
	}
	for _, tag := range t.Tags {
		parts = append(parts, "#"+tag)
	}
	if t.Project != "" {
		parts = append(parts, "["+t.Project+"]")
	}
	return strings.Join(parts, " ")
}

// columnWidth sizes columns to share the window, clamped to a readable
// range.
func (m *model) columnWidth() int {
	if m.width == 0 || len(m.board.Columns) == 0 {
		return defaultColumnWidth
	}
	w := m.width/len(m.board.Columns) - 2
	if w < 16 {
		w = 16
	}
	if w > 40 {
		w = 40
	}
	return w
}
