package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/randalmurphal/todui/internal/document"
	"github.com/randalmurphal/todui/internal/errors"
	"github.com/randalmurphal/todui/internal/reconcile"
)

// newPushCmd creates the push command.
func newPushCmd() *cobra.Command {
	var (
		dryRun  bool
		yes     bool
		project string
	)

	cmd := &cobra.Command{
		Use:   "push [path]",
		Short: "Push local tasks to the remote table",
		Long: `Push the board's tasks to the configured bitable.

Every task and subtask becomes one row keyed by its full title path
(subtasks as "parent > child"). The local file is authoritative: new rows
are created, changed rows are updated field by field, and rows no local
task maps to are deleted.

The project name scopes which remote rows belong to this board. It defaults
to the todo file's directory name and can be overridden by front matter
(project: ...), TODUI_PROJECT, or --project.

Examples:
  todui push --dry-run        Preview without touching the remote
  todui push --yes            Apply without the confirmation prompt
  todui push --project work   Push under an explicit project name`,
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

			proj := resolveProject(project, b, todoPath)
			local := reconcile.Flatten(b, proj)
			if len(local) == 0 {
				// An empty or brand-new board never wipes the remote table
				fmt.Fprintln(out, "No tasks found to push.")
				return nil
			}

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
			fmt.Fprintf(out, "Found %d existing records.\n", len(remote))

			plan := reconcile.Classify(local, remote, reconcile.Options{})
			printPushPreview(out, plan, len(local), len(remote))

			if dryRun {
				fmt.Fprintln(out, "Dry run - nothing pushed.")
				return nil
			}
			if plan.Changes() == 0 {
				fmt.Fprintln(out, "No changes to push. All tasks are already in sync.")
				return nil
			}

			if !yes && isatty.IsTerminal(os.Stdout.Fd()) {
				ok, err := confirm("Apply these changes to the remote table?")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(out, "Cancelled.")
					return nil
				}
			}

			result := reconcile.NewApplier(client, reconcile.Options{}, slog.Default()).Push(ctx, plan)
			printPushResult(out, result)

			if len(result.Errors) > 0 {
				return errors.ErrSyncIncomplete("push", len(result.Errors))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview the plan without pushing")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().StringVar(&project, "project", "", "Project name (default: front matter or directory name)")

	return cmd
}
