package bitable

import (
	"github.com/randalmurphal/todui/internal/board"
	"github.com/randalmurphal/todui/internal/reconcile"
)

// preferredColumnOrder fixes the column order of the merged global board
// for the common status values; statuses outside the list follow in
// first-seen order.
var preferredColumnOrder = []string{
	board.ColumnTodo,
	board.ColumnInProgress,
	"Review",
	board.ColumnDone,
}

// BoardFromRecords builds a read-only board over records from every
// project, one column per status, each task labeled with its project.
// Rows with an empty key are skipped; rows with an empty status land in
// Todo.
func BoardFromRecords(records []reconcile.RemoteRecord) *board.Board {
	byStatus := make(map[string][]*board.Task)
	var firstSeen []string
	for _, r := range records {
		if r.Key == "" {
			continue
		}
		status := r.Status
		if status == "" {
			status = board.ColumnTodo
		}

		t := board.NewTask(r.Key)
		t.Column = status
		t.Tags = append([]string(nil), r.Tags...)
		t.Priority = r.Priority
		t.UpdatedAt = r.Timestamp
		t.Project = r.Project

		if _, ok := byStatus[status]; !ok {
			firstSeen = append(firstSeen, status)
		}
		byStatus[status] = append(byStatus[status], t)
	}

	b := board.New()
	b.Title = "Global Task View"
	for _, status := range preferredColumnOrder {
		if tasks, ok := byStatus[status]; ok {
			b.AddColumn(status).Tasks = tasks
			delete(byStatus, status)
		}
	}
	for _, status := range firstSeen {
		if tasks, ok := byStatus[status]; ok {
			b.AddColumn(status).Tasks = tasks
		}
	}
	return b
}
