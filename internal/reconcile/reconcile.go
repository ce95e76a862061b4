// Package reconcile compares the tasks of a local board against the rows of
// a remote table and turns the differences into an executable plan. The
// classification step is pure: it works on already-fetched records and
// issues no calls of its own. Network side effects live behind the Gateway
// interface and are driven by the Applier.
package reconcile

import (
	"context"
	"sort"
	"strings"
)

// Remote field names shared by the engine and its gateways.
const (
	FieldTask     = "Task"
	FieldProject  = "Project"
	FieldStatus   = "Status"
	FieldTags     = "Tags"
	FieldPriority = "Priority"
	FieldUpdated  = "Updated At"
)

// FieldNames lists the remote fields a fetch should request.
func FieldNames(timestampAware bool) []string {
	names := []string{FieldTask, FieldProject, FieldStatus, FieldTags, FieldPriority}
	if timestampAware {
		names = append(names, FieldUpdated)
	}
	return names
}

// Options controls optional reconciliation behavior.
type Options struct {
	// TimestampAware includes the Timestamp field in comparisons and in
	// create and update payloads. Requires an "Updated At" column on the
	// remote table.
	TimestampAware bool
}

// FlatRecord is a disposable projection of one task, used only for remote
// comparison. It is derived from a Board by Flatten and never mutated back
// into the task graph directly; pull changes flow through ApplyPull.
type FlatRecord struct {
	// Key identifies the task across local and remote: the task title,
	// prefixed by its ancestor titles joined with " > ".
	Key string

	// Project scopes the record to one board.
	Project string

	// Status is the name of the column holding the task.
	Status string

	// Tags in display order. Comparison order-insensitive, see NormalizeTags.
	Tags []string

	// Priority is the task's priority label, empty when unset.
	Priority string

	// Timestamp is the task's last-edit marker, compared only in
	// timestamp-aware mode. Empty when unset.
	Timestamp string
}

// Fields returns the remote field map used to create this record.
// Tags are sent as a list for multi-select columns.
func (r FlatRecord) Fields(timestampAware bool) map[string]any {
	fields := map[string]any{
		FieldTask:     r.Key,
		FieldProject:  r.Project,
		FieldStatus:   r.Status,
		FieldTags:     append([]string{}, r.Tags...),
		FieldPriority: r.Priority,
	}
	if timestampAware && r.Timestamp != "" {
		fields[FieldUpdated] = r.Timestamp
	}
	return fields
}

// RemoteRecord is one row of the remote table as fetched by a Gateway.
type RemoteRecord struct {
	// ID is the remote row id used for updates and deletes.
	ID string

	FlatRecord
}

// Gateway is the remote table surface the engine drives. internal/bitable
// provides the production implementation; tests substitute fakes. Every
// call may fail independently; there is no batch atomicity.
type Gateway interface {
	// FetchProjectRecords returns the rows belonging to one project.
	FetchProjectRecords(ctx context.Context, project string) ([]RemoteRecord, error)

	// CreateRecords inserts new rows, one field map per row.
	CreateRecords(ctx context.Context, fields []map[string]any) error

	// UpdateRecord overwrites the given fields of one row.
	UpdateRecord(ctx context.Context, id string, fields map[string]any) error

	// DeleteRecords removes rows by id.
	DeleteRecords(ctx context.Context, ids []string) error
}

// NormalizeTags renders a tag list in comparison form, sorted and joined
// with ", ", so order differences never register as a modification.
func NormalizeTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	sorted := append([]string(nil), tags...)
	sort.Strings(sorted)
	return strings.Join(sorted, ", ")
}

// SplitTags parses a joined tag cell back into a list. Remote data carries
// both "a, b" and "a,b" forms.
func SplitTags(s string) []string {
	if s == "" {
		return nil
	}
	var tags []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			tags = append(tags, part)
		}
	}
	return tags
}

// changedFields diffs a local record against its remote counterpart and
// returns only the differing fields, keyed by remote field name and
// carrying the local value, ready to send as an update payload.
func changedFields(local, remote FlatRecord, timestampAware bool) map[string]any {
	changed := map[string]any{}
	if local.Project != remote.Project {
		changed[FieldProject] = local.Project
	}
	if local.Status != remote.Status {
		changed[FieldStatus] = local.Status
	}
	if NormalizeTags(local.Tags) != NormalizeTags(remote.Tags) {
		changed[FieldTags] = append([]string{}, local.Tags...)
	}
	if local.Priority != remote.Priority {
		changed[FieldPriority] = local.Priority
	}
	if timestampAware && local.Timestamp != remote.Timestamp {
		changed[FieldUpdated] = local.Timestamp
	}
	return changed
}
