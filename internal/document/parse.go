package document

import (
	"strings"

	"github.com/randalmurphal/todui/internal/board"
)

// Parse builds a Board from document text. Parsing never fails: front matter
// degrades to empty settings, unrecognized lines are skipped, and a document
// with no column headers gets the default columns.
func Parse(content string) *board.Board {
	b := board.New()
	lines := strings.Split(content, "\n")

	settings, start := parseFrontMatter(lines)
	b.Settings = settings

	var currentColumn *board.Column
	var stack []*board.Task // open ancestors, indexed by level
	titleSeen := false

	for _, line := range lines[start:] {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}

		if rest, ok := strings.CutPrefix(stripped, "## "); ok {
			currentColumn = b.AddColumn(strings.TrimSpace(rest))
			// A new column never continues the previous column's hierarchy.
			stack = stack[:0]
			continue
		}

		if rest, ok := strings.CutPrefix(stripped, "# "); ok {
			if !titleSeen {
				b.Title = strings.TrimSpace(rest)
				titleSeen = true
			}
			continue
		}

		rest, ok := strings.CutPrefix(stripped, "- ")
		if !ok {
			continue
		}
		if currentColumn == nil {
			currentColumn = b.AddColumn(board.ColumnTodo)
		}

		level := indentOf(line) / indentWidth
		meta := parseInline(strings.TrimSpace(rest))
		task := &board.Task{
			Title:     meta.Title,
			Column:    currentColumn.Name,
			Tags:      meta.Tags,
			Priority:  meta.Priority,
			Level:     level,
			UpdatedAt: meta.UpdatedAt,
		}

		// Pop ancestors deeper than or at the declared level, then attach.
		// An over-indented task under a shallower ancestor snaps to that
		// ancestor's level plus one; an indented task with no ancestor at
		// all has nowhere to attach and is dropped, matching the permissive
		// parse policy.
		for len(stack) > level {
			stack = stack[:len(stack)-1]
		}
		if level > 0 && len(stack) > 0 {
			stack[len(stack)-1].AddChild(task)
		} else {
			stack = stack[:0]
		}
		stack = append(stack, task)

		if level == 0 {
			currentColumn.Tasks = append(currentColumn.Tasks, task)
		}
	}

	if len(b.Columns) == 0 {
		for _, name := range board.DefaultColumns() {
			b.AddColumn(name)
		}
	}
	return b
}
