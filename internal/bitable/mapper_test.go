package bitable

import (
	"reflect"
	"testing"

	"github.com/randalmurphal/todui/internal/reconcile"
)

func globalRecord(key, project, status string, tags ...string) reconcile.RemoteRecord {
	return reconcile.RemoteRecord{
		ID:         "id-" + key,
		FlatRecord: reconcile.FlatRecord{Key: key, Project: project, Status: status, Tags: tags},
	}
}

func TestBoardFromRecords_ColumnOrder(t *testing.T) {
	records := []reconcile.RemoteRecord{
		globalRecord("d", "p1", "Done"),
		globalRecord("b", "p1", "Blocked"),
		globalRecord("t", "p2", "Todo"),
		globalRecord("r", "p2", "Review"),
	}

	b := BoardFromRecords(records)

	want := []string{"Todo", "Review", "Done", "Blocked"}
	if got := b.AllColumns(); !reflect.DeepEqual(got, want) {
		t.Errorf("columns = %v, want %v", got, want)
	}
	if b.Title != "Global Task View" {
		t.Errorf("Title = %q", b.Title)
	}
}

func TestBoardFromRecords_TaskFields(t *testing.T) {
	rec := globalRecord("write spec", "todui", "In Progress", "docs")
	rec.Priority = "P1"
	rec.Timestamp = "2026-03-01T10:00"

	b := BoardFromRecords([]reconcile.RemoteRecord{rec})

	tasks := b.TasksInColumn("In Progress")
	if len(tasks) != 1 {
		t.Fatalf("tasks = %d, want 1", len(tasks))
	}
	task := tasks[0]
	if task.Title != "write spec" || task.Project != "todui" || task.Priority != "P1" {
		t.Errorf("task = %+v", task)
	}
	if task.UpdatedAt != "2026-03-01T10:00" {
		t.Errorf("UpdatedAt = %q", task.UpdatedAt)
	}
	if !reflect.DeepEqual(task.Tags, []string{"docs"}) {
		t.Errorf("Tags = %v, want [docs]", task.Tags)
	}
}

func TestBoardFromRecords_SkipsAndDefaults(t *testing.T) {
	records := []reconcile.RemoteRecord{
		globalRecord("", "p1", "Todo"),
		globalRecord("homeless", "p1", ""),
	}

	b := BoardFromRecords(records)

	tasks := b.TasksInColumn("Todo")
	if len(tasks) != 1 || tasks[0].Title != "homeless" {
		t.Fatalf("Todo tasks = %v, want only the empty-status record defaulted in", tasks)
	}
}
