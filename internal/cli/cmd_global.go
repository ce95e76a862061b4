package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/todui/internal/bitable"
	"github.com/randalmurphal/todui/internal/tui"
)

// newGlobalCmd creates the global command.
func newGlobalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "global",
		Short: "Browse every project's tasks from the remote table",
		Long: `Fetch all rows from the configured bitable, across every project, and
open them in a read-only board grouped by status.

Nothing is written: the board is a view of the remote table, so editing
keys are disabled and there is no file to save to. Use it to scan what
is in flight everywhere without opening each project's TODO.md.

Examples:
  todui global              Browse the whole table
  TODUI_THEME=nord todui global`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			client, err := newSyncClient()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Fetching tasks from the remote table...")
			records, err := client.FetchGlobalRecords(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetch remote records: %w", err)
			}
			fmt.Fprintf(out, "Fetched %d tasks.\n", len(records))

			b := bitable.BoardFromRecords(records)
			return tui.RunGlobal(b, tui.Options{
				Theme: resolveTheme(b, cfg),
			})
		},
	}

	return cmd
}
