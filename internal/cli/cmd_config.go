package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/randalmurphal/todui/internal/config"
)

// newConfigCmd creates the config command and its subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the global todui configuration",
		Long: `Manage the global configuration file that holds the bitable endpoint,
credentials, and UI preferences.

The file lives in the user config directory (todui config path prints the
exact location). Every value can also be supplied through TODUI_* environment
variables, which take precedence over the file.`,
	}

	cmd.AddCommand(newConfigPathCmd())
	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigSetSecretCmd())

	return cmd
}

// newConfigPathCmd creates the config path command.
func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

// newConfigInitCmd creates the config init command.
func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a skeleton config file",
		Long: `Write a commented skeleton config file with every supported key.

Refuses to overwrite an existing file unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Init(force)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Created config at %s\n", path)
			fmt.Fprintln(out, "Fill in the bitable credentials before running push or pull.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}

// newConfigSetSecretCmd creates the config set-secret command.
func newConfigSetSecretCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-secret",
		Short: "Store the bot app secret without echoing it",
		Long: `Prompt for the bot app secret and store it in the config file.

Input is not echoed when run from a terminal. When stdin is not a terminal
the secret is read as a single line, so it can be piped in:

  pass show feishu/bot | todui config set-secret`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := readSecret(cmd)
			if err != nil {
				return err
			}
			if secret == "" {
				return fmt.Errorf("empty secret")
			}

			// Read the file directly: environment overrides are transient
			// and must not be written back.
			path := cfgFile
			if path == "" {
				if path, err = config.Path(); err != nil {
					return err
				}
			}
			cfg, err := config.LoadFrom(path)
			if err != nil {
				return err
			}
			cfg.Bitable.AppSecret = secret
			if err := cfg.SaveTo(path); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Secret saved to %s\n", path)
			return nil
		},
	}
}

// readSecret reads the secret from stdin, without echo on a terminal.
func readSecret(cmd *cobra.Command) (string, error) {
	out := cmd.OutOrStdout()
	if isatty.IsTerminal(os.Stdin.Fd()) {
		fmt.Fprint(out, "Bot app secret: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("read secret: %w", err)
		}
		return strings.TrimSpace(string(raw)), nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return strings.TrimSpace(line), nil
}
