package board

// Direction selects which sibling a reorder swaps with.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// Position selects where a moved task lands in its new column.
type Position string

const (
	PositionStart Position = "start"
	PositionEnd   Position = "end"
)

// Column is a named, ordered bucket of top-level tasks.
type Column struct {
	Name  string
	Tasks []*Task
}

// Board is the full collection of columns and tasks loaded from one document.
// Column order is insertion order and is preserved through a load, mutate,
// save cycle.
type Board struct {
	// Title is the document's level-1 heading.
	Title string

	// Columns in display order.
	Columns []*Column

	// Settings is the front-matter content, passed through untouched.
	Settings Settings
}

// New creates an empty board with no columns.
func New() *Board {
	return &Board{Title: "TODO"}
}

// Column returns the named column, or nil if it does not exist.
func (b *Board) Column(name string) *Column {
	for _, c := range b.Columns {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// AddColumn returns the named column, creating it at the end of the column
// order if absent.
func (b *Board) AddColumn(name string) *Column {
	if c := b.Column(name); c != nil {
		return c
	}
	c := &Column{Name: name}
	b.Columns = append(b.Columns, c)
	return c
}

// AddTask appends a top-level task to the column named by task.Column,
// creating the column if absent.
func (b *Board) AddTask(task *Task) {
	c := b.AddColumn(task.Column)
	c.Tasks = append(c.Tasks, task)
}

// AllColumns returns column names in display order, or the default column set
// if the board has none.
func (b *Board) AllColumns() []string {
	if len(b.Columns) == 0 {
		return DefaultColumns()
	}
	names := make([]string, len(b.Columns))
	for i, c := range b.Columns {
		names[i] = c.Name
	}
	return names
}

// TasksInColumn returns the top-level tasks of the named column at call time.
// The returned slice is a snapshot; later board mutations do not update it.
func (b *Board) TasksInColumn(name string) []*Task {
	c := b.Column(name)
	if c == nil {
		return nil
	}
	tasks := make([]*Task, len(c.Tasks))
	copy(tasks, c.Tasks)
	return tasks
}

// Walk visits every task on the board depth-first, parents before children,
// columns in display order.
func (b *Board) Walk(fn func(*Task)) {
	for _, c := range b.Columns {
		for _, t := range c.Tasks {
			t.walk(fn)
		}
	}
}

// Reorder swaps task with its immediate sibling in the given direction.
// Siblings are the surrounding entries of the same container: the parent's
// Children list for subtasks, the column's task list for top-level tasks.
// Returns false without mutating anything if the task sits at the boundary,
// is not found in its expected container, or the direction is unknown.
func (b *Board) Reorder(task *Task, dir Direction) bool {
	siblings := b.siblingsOf(task)
	if siblings == nil {
		return false
	}
	idx := indexOf(siblings, task)
	if idx < 0 {
		return false
	}
	switch dir {
	case DirectionUp:
		if idx == 0 {
			return false
		}
		siblings[idx-1], siblings[idx] = siblings[idx], siblings[idx-1]
	case DirectionDown:
		if idx == len(siblings)-1 {
			return false
		}
		siblings[idx], siblings[idx+1] = siblings[idx+1], siblings[idx]
	default:
		return false
	}
	return true
}

// siblingsOf returns the container slice holding task, or nil if the task's
// recorded position does not resolve to a container.
func (b *Board) siblingsOf(task *Task) []*Task {
	if task.Parent != nil {
		return task.Parent.Children
	}
	c := b.Column(task.Column)
	if c == nil {
		return nil
	}
	return c.Tasks
}

// MoveToColumn moves a top-level task to another column, inserting at the
// start or end of the destination, and cascades the new column name to every
// descendant. Subtasks move with their parent and cannot be relocated on
// their own. Returns false if the destination column does not exist or the
// task is not a top-level member of its recorded column.
func (b *Board) MoveToColumn(task *Task, newColumn string, at Position) bool {
	dst := b.Column(newColumn)
	if dst == nil {
		return false
	}
	src := b.Column(task.Column)
	if src == nil {
		return false
	}
	idx := indexOf(src.Tasks, task)
	if idx < 0 {
		return false
	}

	src.Tasks = append(src.Tasks[:idx], src.Tasks[idx+1:]...)
	task.setColumnRecursive(newColumn)
	if at == PositionStart {
		dst.Tasks = append([]*Task{task}, dst.Tasks...)
	} else {
		dst.Tasks = append(dst.Tasks, task)
	}
	return true
}
