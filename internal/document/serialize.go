package document

import (
	"strings"

	"github.com/randalmurphal/todui/internal/board"
)

// Serialize renders the board back to document text: front matter (when any
// settings exist), the title heading, then each column with its tasks,
// subtasks indented beneath their parents. Trailing whitespace is trimmed so
// repeated load/save cycles never accumulate blank lines.
func Serialize(b *board.Board) string {
	var sb strings.Builder

	if len(b.Settings) > 0 {
		renderFrontMatter(&sb, b.Settings)
	}

	title := b.Title
	if title == "" {
		title = "TODO"
	}
	sb.WriteString("# ")
	sb.WriteString(title)
	sb.WriteString("\n\n")

	for _, c := range b.Columns {
		sb.WriteString("## ")
		sb.WriteString(c.Name)
		sb.WriteString("\n")
		for _, t := range c.Tasks {
			writeTask(&sb, t, 0)
		}
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), " \t\n")
}

// writeTask renders one task line and recurses into children one indent
// level deeper. Depth comes from the recursion, not the task's Level field,
// so a malformed level value cannot produce an unparseable line.
func writeTask(sb *strings.Builder, t *board.Task, depth int) {
	sb.WriteString(strings.Repeat(" ", depth*indentWidth))
	sb.WriteString("- ")
	sb.WriteString(formatInline(taskMeta{
		Title:     t.Title,
		Tags:      t.Tags,
		Priority:  t.Priority,
		UpdatedAt: t.UpdatedAt,
	}))
	sb.WriteString("\n")
	for _, child := range t.Children {
		writeTask(sb, child, depth+1)
	}
}
