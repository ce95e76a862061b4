package reconcile

import "github.com/randalmurphal/todui/internal/board"

// KeySeparator joins ancestor titles into a subtask's record key.
const KeySeparator = " > "

// Flatten projects every task on the board into FlatRecords, depth first,
// so parents precede their subtasks. Subtask records inherit the column of
// their top-level ancestor through Task.Column.
func Flatten(b *board.Board, project string) []FlatRecord {
	var records []FlatRecord
	for _, col := range b.Columns {
		for _, t := range col.Tasks {
			records = flattenTask(records, t, "", project)
		}
	}
	return records
}

func flattenTask(records []FlatRecord, t *board.Task, parentKey, project string) []FlatRecord {
	key := joinKey(parentKey, t.Title)
	records = append(records, FlatRecord{
		Key:       key,
		Project:   project,
		Status:    t.Column,
		Tags:      append([]string(nil), t.Tags...),
		Priority:  t.Priority,
		Timestamp: t.UpdatedAt,
	})
	for _, child := range t.Children {
		records = flattenTask(records, child, key, project)
	}
	return records
}

func joinKey(parentKey, title string) string {
	if parentKey == "" {
		return title
	}
	return parentKey + KeySeparator + title
}
