package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/randalmurphal/todui/internal/document"
	"github.com/randalmurphal/todui/internal/errors"
	"github.com/randalmurphal/todui/internal/reconcile"
)

// newPullCmd creates the pull command.
func newPullCmd() *cobra.Command {
	var (
		dryRun bool
		yes    bool
	)

	cmd := &cobra.Command{
		Use:   "pull [path]",
		Short: "Pull remote changes into the todo file",
		Long: `Pull the project's rows from the configured bitable and fold them into
the board.

The remote is authoritative for the fields it carries: rows missing locally
are added, changed rows update the matching task in place, and tasks whose
rows were deleted remotely are removed. Subtasks of a surviving task are
always preserved, and moving a top-level task to another column carries its
subtasks along.

Examples:
  todui pull --dry-run        Preview without touching the file
  todui pull --yes            Apply and save without the prompt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}
			out := cmd.OutOrStdout()

			todoPath, ok := findTodoFile(path)
			if !ok {
				return errors.ErrNoTodoFile(filepath.Dir(todoPath))
			}
			b, err := document.Load(todoPath)
			if err != nil {
				return err
			}

			proj := resolveProject("", b, todoPath)
			local := reconcile.Flatten(b, proj)

			client, err := newSyncClient()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			fmt.Fprintf(out, "Fetching remote records for project '%s'...\n", proj)
			remote, err := client.FetchProjectRecords(ctx, proj)
			if err != nil {
				return fmt.Errorf("fetch remote records: %w", err)
			}
			fmt.Fprintf(out, "Found %d remote records.\n", len(remote))

			plan := reconcile.ClassifyPull(local, remote, reconcile.Options{})
			printPullPreview(out, plan, len(remote), len(local))

			if dryRun {
				fmt.Fprintln(out, "Dry run - nothing changed.")
				return nil
			}
			if plan.Changes() == 0 {
				fmt.Fprintln(out, "No changes to pull. All tasks are already in sync.")
				return nil
			}

			if !yes && isatty.IsTerminal(os.Stdout.Fd()) {
				ok, err := confirm("Apply these changes to the todo file?")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(out, "Cancelled.")
					return nil
				}
			}

			stats := reconcile.ApplyPull(b, plan)
			if err := document.Save(todoPath, b); err != nil {
				return err
			}

			fmt.Fprintf(out, "Pulled %d added, %d updated, %d removed.\n",
				stats.Added, stats.Updated, stats.Removed)
			fmt.Fprintf(out, "Saved %s\n", todoPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview the plan without applying")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
