package reconcile

import (
	"sort"
	"strings"

	"github.com/randalmurphal/todui/internal/board"
)

// PullPlan is the outcome of classifying the remote set against local
// records for a pull. Remote is authoritative: every remote row lands in
// New, Unchanged or Modified, and local records the remote no longer has
// become Deleted.
type PullPlan struct {
	// New are remote records with no local counterpart.
	New []RemoteRecord

	// Unchanged matched a local record field for field.
	Unchanged []RemoteRecord

	// Modified pairs local records with the remote row that overrides them.
	Modified []PullChange

	// Deleted are local records absent from the remote.
	Deleted []FlatRecord
}

// Changes returns the number of local mutations the plan implies.
func (p *PullPlan) Changes() int {
	return len(p.New) + len(p.Modified) + len(p.Deleted)
}

// PullChange pairs a local record with the remote row overriding it.
type PullChange struct {
	Local  FlatRecord
	Remote RemoteRecord
}

// ClassifyPull compares the remote set against local records for a pull.
// The comparison mirrors Classify with the roles reversed. Records sharing
// a key resolve to the first one seen; remote rows with an empty key are
// ignored.
func ClassifyPull(local []FlatRecord, remote []RemoteRecord, opts Options) *PullPlan {
	localByKey := make(map[string]FlatRecord, len(local))
	for _, l := range local {
		if _, ok := localByKey[l.Key]; !ok {
			localByKey[l.Key] = l
		}
	}

	plan := &PullPlan{}
	seen := make(map[string]bool)
	for _, r := range remote {
		if r.Key == "" {
			continue
		}
		seen[r.Key] = true
		l, ok := localByKey[r.Key]
		if !ok {
			plan.New = append(plan.New, r)
			continue
		}
		if len(changedFields(l, r.FlatRecord, opts.TimestampAware)) == 0 {
			plan.Unchanged = append(plan.Unchanged, r)
		} else {
			plan.Modified = append(plan.Modified, PullChange{Local: l, Remote: r})
		}
	}

	for _, l := range local {
		if !seen[l.Key] {
			plan.Deleted = append(plan.Deleted, l)
		}
	}
	return plan
}

// PullStats counts the board mutations an ApplyPull performed.
type PullStats struct {
	// Added is the number of tasks created from remote-only records.
	Added int

	// Updated is the number of tasks whose scalar fields were overwritten.
	Updated int

	// Removed is the number of tasks pruned, descendants included.
	Removed int
}

// ApplyPull rewrites the board in place from a pull plan.
//
// Matching tasks take the remote's scalar fields but keep their subtask
// subtrees. A status change moves top-level tasks to the remote's column,
// descendants cascading along; a subtask's status is ignored because its
// column is owned by its top-level ancestor. Tasks are pruned only when
// their whole subtree is gone remotely, so a parent with one surviving
// subtask stays. Remote-only records become new tasks: attached under
// their parent when the key's ancestor chain resolves to a local task,
// appended top-level to the column matching their status otherwise.
func ApplyPull(b *board.Board, plan *PullPlan) PullStats {
	var stats PullStats

	// 1. Prune subtrees the remote no longer has.
	if len(plan.Deleted) > 0 {
		deleted := make(map[string]bool, len(plan.Deleted))
		for _, l := range plan.Deleted {
			deleted[l.Key] = true
		}
		for _, col := range b.Columns {
			col.Tasks = pruneTasks(col.Tasks, "", deleted, &stats)
		}
	}

	// 2. Overwrite scalars on modified tasks. The index is built after
	// pruning so removed tasks cannot match.
	index := taskIndex(b)
	for _, change := range plan.Modified {
		t, ok := index[change.Local.Key]
		if !ok {
			continue
		}
		applyRemoteFields(b, t, change.Remote)
		stats.Updated++
	}

	// 3. Add remote-only records, shallow keys first so a new subtask finds
	// its freshly added parent.
	newRecords := append([]RemoteRecord(nil), plan.New...)
	sort.SliceStable(newRecords, func(i, j int) bool {
		return strings.Count(newRecords[i].Key, KeySeparator) < strings.Count(newRecords[j].Key, KeySeparator)
	})
	for _, r := range newRecords {
		title := r.Key
		var parent *board.Task
		if i := strings.LastIndex(r.Key, KeySeparator); i >= 0 {
			if p, ok := index[r.Key[:i]]; ok {
				parent = p
				title = r.Key[i+len(KeySeparator):]
			}
		}

		t := board.NewTask(title)
		t.Tags = append([]string(nil), r.Tags...)
		t.Priority = r.Priority
		t.UpdatedAt = r.Timestamp
		if parent != nil {
			parent.AddChild(t)
		} else {
			if r.Status != "" {
				t.Column = r.Status
			}
			b.AddTask(t)
		}
		index[r.Key] = t
		stats.Added++
	}

	return stats
}

// applyRemoteFields overwrites one task's scalar fields from a remote row.
// The title needs no rewrite: key equality already pins it to the key's
// last segment.
func applyRemoteFields(b *board.Board, t *board.Task, r RemoteRecord) {
	t.Tags = append([]string(nil), r.Tags...)
	t.Priority = r.Priority
	if r.Timestamp != "" {
		t.UpdatedAt = r.Timestamp
	}
	if t.Parent == nil && r.Status != "" && r.Status != t.Column {
		b.AddColumn(r.Status)
		b.MoveToColumn(t, r.Status, board.PositionEnd)
	}
}

// pruneTasks filters out tasks whose key and entire subtree are marked
// deleted, recursing into the children of every survivor.
func pruneTasks(tasks []*board.Task, parentKey string, deleted map[string]bool, stats *PullStats) []*board.Task {
	kept := tasks[:0]
	for _, t := range tasks {
		key := joinKey(parentKey, t.Title)
		if deleted[key] && subtreeDeleted(t, key, deleted) {
			stats.Removed += subtreeSize(t)
			continue
		}
		t.Children = pruneTasks(t.Children, key, deleted, stats)
		kept = append(kept, t)
	}
	return kept
}

func subtreeDeleted(t *board.Task, key string, deleted map[string]bool) bool {
	for _, c := range t.Children {
		ck := joinKey(key, c.Title)
		if !deleted[ck] || !subtreeDeleted(c, ck, deleted) {
			return false
		}
	}
	return true
}

func subtreeSize(t *board.Task) int {
	n := 1
	for _, c := range t.Children {
		n += subtreeSize(c)
	}
	return n
}

// taskIndex maps record keys to live tasks, the first task winning when
// top-level titles collide.
func taskIndex(b *board.Board) map[string]*board.Task {
	index := make(map[string]*board.Task)
	var add func(t *board.Task, parentKey string)
	add = func(t *board.Task, parentKey string) {
		key := joinKey(parentKey, t.Title)
		if _, ok := index[key]; !ok {
			index[key] = t
		}
		for _, c := range t.Children {
			add(c, key)
		}
	}
	for _, col := range b.Columns {
		for _, t := range col.Tasks {
			add(t, "")
		}
	}
	return index
}
