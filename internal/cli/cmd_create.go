package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/todui/internal/errors"
	"github.com/randalmurphal/todui/internal/util"
	"github.com/randalmurphal/todui/templates"
)

// newCreateCmd creates the create command.
func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create [path]",
		Short: "Create a sample TODO.md",
		Long: `Create a starter TODO.md in the given directory (default: current).

The sample demonstrates columns, subtasks, tags and priorities. An existing
todo file is never overwritten.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			path, exists := util.FindTodoFile(dir)
			if exists {
				return errors.ErrTodoFileExists(path)
			}

			if err := util.AtomicWriteFile(path, []byte(templates.SampleTodo), 0644); err != nil {
				return fmt.Errorf("write sample: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created sample TODO.md at %s\n", path)
			return nil
		},
	}
}
