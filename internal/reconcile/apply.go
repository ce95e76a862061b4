package reconcile

import (
	"context"
	"fmt"
	"log/slog"
)

// Result reports what a push apply actually did. Failed calls land in
// Errors and never abort the remainder of the plan, so a partially applied
// plan is reported rather than rolled back.
type Result struct {
	Created int
	Updated int
	Deleted int
	Errors  []ApplyError
}

// ApplyError records one failed gateway call during plan application.
type ApplyError struct {
	// Op is the gateway operation that failed: "create", "update" or
	// "delete".
	Op string

	// Key is the record key the call was for, empty for batch calls.
	Key string

	Err error
}

func (e ApplyError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Key, e.Err)
}

// Applier executes push plans against a remote gateway.
type Applier struct {
	gw     Gateway
	opts   Options
	logger *slog.Logger
}

// NewApplier creates an Applier. A nil logger falls back to slog.Default().
func NewApplier(gw Gateway, opts Options, logger *slog.Logger) *Applier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Applier{gw: gw, opts: opts, logger: logger}
}

// Push applies a push plan: creates New records, updates Modified ones and
// deletes Orphaned ones. Unchanged records are never touched. Each gateway
// call may fail independently; failures are recorded on the result and the
// rest of the plan still runs.
func (a *Applier) Push(ctx context.Context, plan *Plan) *Result {
	res := &Result{}
	a.logger.Info("applying push plan",
		"create", len(plan.New),
		"update", len(plan.Modified),
		"delete", len(plan.Orphaned))

	// 1. Batch-create records that do not exist remotely.
	if len(plan.New) > 0 {
		fields := make([]map[string]any, 0, len(plan.New))
		for _, rec := range plan.New {
			fields = append(fields, rec.Fields(a.opts.TimestampAware))
		}
		if err := a.gw.CreateRecords(ctx, fields); err != nil {
			a.logger.Error("batch create failed", "records", len(fields), "error", err)
			res.Errors = append(res.Errors, ApplyError{Op: "create", Err: err})
		} else {
			res.Created = len(fields)
		}
	}

	// 2. Update each modified record by id, sending only changed fields.
	for _, m := range plan.Modified {
		if err := a.gw.UpdateRecord(ctx, m.Remote.ID, m.Changed); err != nil {
			a.logger.Error("update failed", "key", m.Local.Key, "error", err)
			res.Errors = append(res.Errors, ApplyError{Op: "update", Key: m.Local.Key, Err: err})
			continue
		}
		res.Updated++
	}

	// 3. Batch-delete orphaned records.
	if len(plan.Orphaned) > 0 {
		ids := make([]string, 0, len(plan.Orphaned))
		for _, rec := range plan.Orphaned {
			ids = append(ids, rec.ID)
		}
		if err := a.gw.DeleteRecords(ctx, ids); err != nil {
			a.logger.Error("batch delete failed", "records", len(ids), "error", err)
			res.Errors = append(res.Errors, ApplyError{Op: "delete", Err: err})
		} else {
			res.Deleted = len(ids)
		}
	}

	a.logger.Info("push plan applied",
		"created", res.Created,
		"updated", res.Updated,
		"deleted", res.Deleted,
		"failed", len(res.Errors))
	return res
}
