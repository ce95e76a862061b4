package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/randalmurphal/todui/internal/reconcile"
)

const previewBanner = "============================================================"

// printPushPreview prints the classified push plan: counts plus itemized
// new/modified/orphaned entries, unchanged as a count only.
func printPushPreview(w io.Writer, plan *reconcile.Plan, totalLocal, totalRemote int) {
	fmt.Fprintf(w, "\n%s\n", previewBanner)
	fmt.Fprintf(w, "Push preview: %d local tasks vs %d remote records\n", totalLocal, totalRemote)
	fmt.Fprintln(w, previewBanner)

	if len(plan.New) > 0 {
		fmt.Fprintf(w, "\nNew (%d):\n", len(plan.New))
		for _, r := range plan.New {
			fmt.Fprintf(w, "   + [%s] %s\n", r.Status, r.Key)
			if len(r.Tags) > 0 {
				fmt.Fprintf(w, "     tags: %s\n", strings.Join(r.Tags, ", "))
			}
			if r.Priority != "" {
				fmt.Fprintf(w, "     priority: %s\n", r.Priority)
			}
		}
	}

	if len(plan.Modified) > 0 {
		fmt.Fprintf(w, "\nModified (%d):\n", len(plan.Modified))
		for _, m := range plan.Modified {
			fmt.Fprintf(w, "   ~ [%s] %s\n", m.Local.Status, m.Local.Key)
			printFieldDiffs(w, m.Remote.FlatRecord, m.Local)
		}
	}

	if len(plan.Orphaned) > 0 {
		fmt.Fprintf(w, "\nOrphaned (%d) - no local task maps to these:\n", len(plan.Orphaned))
		for _, r := range plan.Orphaned {
			fmt.Fprintf(w, "   - [%s] %s\n", r.Status, r.Key)
		}
	}

	fmt.Fprintf(w, "\n%s\n", previewBanner)
	fmt.Fprintf(w, "Summary: %d new, %d modified, %d orphaned, %d unchanged\n",
		len(plan.New), len(plan.Modified), len(plan.Orphaned), len(plan.Unchanged))
	fmt.Fprintf(w, "%s\n\n", previewBanner)
}

// printPullPreview prints the classified pull plan.
func printPullPreview(w io.Writer, plan *reconcile.PullPlan, totalRemote, totalLocal int) {
	fmt.Fprintf(w, "\n%s\n", previewBanner)
	fmt.Fprintf(w, "Pull preview: %d remote records vs %d local tasks\n", totalRemote, totalLocal)
	fmt.Fprintln(w, previewBanner)

	if len(plan.New) > 0 {
		fmt.Fprintf(w, "\nNew (%d) - will be added locally:\n", len(plan.New))
		for _, r := range plan.New {
			fmt.Fprintf(w, "   + [%s] %s\n", r.Status, r.Key)
			if len(r.Tags) > 0 {
				fmt.Fprintf(w, "     tags: %s\n", strings.Join(r.Tags, ", "))
			}
			if r.Priority != "" {
				fmt.Fprintf(w, "     priority: %s\n", r.Priority)
			}
		}
	}

	if len(plan.Modified) > 0 {
		fmt.Fprintf(w, "\nModified (%d) - will be updated locally:\n", len(plan.Modified))
		for _, m := range plan.Modified {
			fmt.Fprintf(w, "   ~ [%s] %s\n", m.Remote.Status, m.Remote.Key)
			printFieldDiffs(w, m.Local, m.Remote.FlatRecord)
		}
	}

	if len(plan.Deleted) > 0 {
		fmt.Fprintf(w, "\nDeleted (%d) - local tasks absent from the remote:\n", len(plan.Deleted))
		for _, r := range plan.Deleted {
			fmt.Fprintf(w, "   - [%s] %s\n", r.Status, r.Key)
		}
	}

	fmt.Fprintf(w, "\n%s\n", previewBanner)
	fmt.Fprintf(w, "Summary: %d new, %d modified, %d deleted, %d unchanged\n",
		len(plan.New), len(plan.Modified), len(plan.Deleted), len(plan.Unchanged))
	fmt.Fprintf(w, "%s\n\n", previewBanner)
}

// printFieldDiffs prints per-field old -> new lines for a modified record.
func printFieldDiffs(w io.Writer, old, new reconcile.FlatRecord) {
	if old.Status != new.Status {
		fmt.Fprintf(w, "     status: %s -> %s\n", orNone(old.Status), orNone(new.Status))
	}
	oldTags := reconcile.NormalizeTags(old.Tags)
	newTags := reconcile.NormalizeTags(new.Tags)
	if oldTags != newTags {
		fmt.Fprintf(w, "     tags: %s -> %s\n", orNone(oldTags), orNone(newTags))
	}
	if old.Priority != new.Priority {
		fmt.Fprintf(w, "     priority: %s -> %s\n", orNone(old.Priority), orNone(new.Priority))
	}
	if old.Project != new.Project {
		fmt.Fprintf(w, "     project: %s -> %s\n", orNone(old.Project), orNone(new.Project))
	}
}

// printPushResult prints the apply outcome, itemizing failures per key.
func printPushResult(w io.Writer, result *reconcile.Result) {
	fmt.Fprintf(w, "Push complete: %d created, %d updated, %d deleted\n",
		result.Created, result.Updated, result.Deleted)
	if len(result.Errors) > 0 {
		fmt.Fprintf(w, "  Errors: %d\n", len(result.Errors))
		for _, e := range result.Errors {
			fmt.Fprintf(w, "    %v\n", e)
		}
	}
}
