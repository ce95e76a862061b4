// Package cli implements the todui command-line interface.
package cli

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/randalmurphal/todui/internal/config"
	"github.com/randalmurphal/todui/internal/document"
	"github.com/randalmurphal/todui/internal/errors"
	"github.com/randalmurphal/todui/internal/tui"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "todui [path]",
	Short: "A TUI kanban board for TODO.md files",
	Long: `todui renders a TODO.md task board in the terminal and syncs it with a
remote bitable on demand.

The board lives in a plain Markdown file: '## ' headings are columns,
'- ' list items are tasks, and two leading spaces per level nest subtasks.
Tags (#tag), a priority (!P0..!P4) and a timestamp (~2026-01-02T15:04)
ride inline on the task line.

Quick start:
  todui create                Create a sample TODO.md here
  todui                       Open the board
  todui push --dry-run        Preview a push to the remote table
  todui pull                  Pull remote changes into the file
  todui global                Browse every project's tasks read-only`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBoard,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.config/todui/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging on stderr")

	// Add subcommands
	rootCmd.AddCommand(newCreateCmd())
	rootCmd.AddCommand(newPushCmd())
	rootCmd.AddCommand(newPullCmd())
	rootCmd.AddCommand(newGlobalCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if path, err := config.Path(); err == nil {
		viper.AddConfigPath(filepath.Dir(path))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("TODUI")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// A missing config file is fine; commands validate what they need
	_ = viper.ReadInConfig()

	setupLogging()
}

// setupLogging installs the default slog logger. Output goes to stderr so it
// never interleaves with command output or the TUI.
func setupLogging() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// runBoard is the default action: find the todo file, parse it, open the TUI.
func runBoard(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) == 1 {
		path = args[0]
	}

	todoPath, ok := findTodoFile(path)
	if !ok {
		return errors.ErrNoTodoFile(filepath.Dir(todoPath))
	}

	b, err := document.Load(todoPath)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	return tui.RunBoard(b, todoPath, tui.Options{
		Theme:     resolveTheme(b, cfg),
		SaveTheme: config.SaveTheme,
	})
}
