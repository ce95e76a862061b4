// Package board defines the in-memory model of a kanban board: ordered
// columns holding ordered, optionally nested tasks.
package board

import "strings"

const (
	// ColumnTodo is the default column for new tasks.
	ColumnTodo = "Todo"
	// ColumnInProgress is the default middle column.
	ColumnInProgress = "In Progress"
	// ColumnDone is the default terminal column.
	ColumnDone = "Done"
)

// DefaultColumns returns the column set used when a document declares none.
func DefaultColumns() []string {
	return []string{ColumnTodo, ColumnInProgress, ColumnDone}
}

// Priority represents the urgency marker attached to a task.
type Priority string

const (
	PriorityP0 Priority = "P0"
	PriorityP1 Priority = "P1"
	PriorityP2 Priority = "P2"
	PriorityP3 Priority = "P3"
	PriorityP4 Priority = "P4"
)

// ValidPriorities returns all valid priority values.
func ValidPriorities() []Priority {
	return []Priority{PriorityP0, PriorityP1, PriorityP2, PriorityP3, PriorityP4}
}

// IsValidPriority returns true if s is a valid priority value, ignoring case.
func IsValidPriority(s string) bool {
	switch Priority(strings.ToUpper(s)) {
	case PriorityP0, PriorityP1, PriorityP2, PriorityP3, PriorityP4:
		return true
	default:
		return false
	}
}

// Task is a single board entry. Tasks form a tree: a top-level task (level 0)
// lives in exactly one column's task list, while a subtask (level > 0) lives
// in exactly its parent's Children list. The Column field of a subtask always
// mirrors its top-level ancestor's column.
type Task struct {
	// Title is the task text with all inline metadata stripped.
	Title string

	// Column is the name of the column that contains this task's top-level
	// ancestor (or the task itself at level 0).
	Column string

	// Tags in appearance order. Order matters for display only; comparison
	// elsewhere treats tags as a set.
	Tags []string

	// Priority is one of P0..P4 when set from a document, empty otherwise.
	// Stored as free text so remote values pass through untouched.
	Priority string

	// Level is the nesting depth. 0 means top-level.
	Level int

	// UpdatedAt is an optional timestamp string, opaque to the model.
	UpdatedAt string

	// Project labels the owning board in the merged global view. Empty for
	// tasks loaded from a document; the codec neither reads nor writes it.
	Project string

	// Parent is nil for top-level tasks. The parent's Children slice owns the
	// task; Parent is only a back-reference for traversal.
	Parent *Task

	// Children holds subtasks in display order.
	Children []*Task
}

// NewTask creates a top-level task in the default column.
func NewTask(title string) *Task {
	return &Task{Title: title, Column: ColumnTodo}
}

// AddChild appends child as a subtask, fixing up its level, parent link and
// column to keep the hierarchy invariant.
func (t *Task) AddChild(child *Task) {
	child.Parent = t
	child.Level = t.Level + 1
	child.Column = t.Column
	t.Children = append(t.Children, child)
}

// setColumnRecursive sets the column on t and every descendant.
func (t *Task) setColumnRecursive(column string) {
	t.Column = column
	for _, c := range t.Children {
		c.setColumnRecursive(column)
	}
}

// walk visits t and its descendants depth-first, parents before children.
func (t *Task) walk(fn func(*Task)) {
	fn(t)
	for _, c := range t.Children {
		c.walk(fn)
	}
}

// indexOf returns the position of target in tasks by identity, or -1.
// Identity lookup is deliberate: titles may repeat, so value comparison
// would be ambiguous.
func indexOf(tasks []*Task, target *Task) int {
	for i, t := range tasks {
		if t == target {
			return i
		}
	}
	return -1
}
