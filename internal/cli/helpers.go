// Package cli implements the todui command-line interface.
// This file contains shared helper functions used across multiple commands.
package cli

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/randalmurphal/todui/internal/bitable"
	"github.com/randalmurphal/todui/internal/board"
	"github.com/randalmurphal/todui/internal/config"
	"github.com/randalmurphal/todui/internal/errors"
	"github.com/randalmurphal/todui/internal/util"
)

// findTodoFile resolves a path argument to the board file. path may name the
// file itself or a directory to probe.
func findTodoFile(path string) (string, bool) {
	return util.FindTodoFile(path)
}

// loadConfig loads the global config, honoring the --config flag and TODUI_*
// environment overrides bound by viper. Environment wins over the file.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.LoadFrom(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	overlay := func(dst *string, key string) {
		if v := viper.GetString(key); v != "" {
			*dst = v
		}
	}
	overlay(&cfg.Bitable.Endpoint, "bitable.endpoint")
	overlay(&cfg.Bitable.AppID, "bitable.app_id")
	overlay(&cfg.Bitable.AppSecret, "bitable.app_secret")
	overlay(&cfg.Bitable.AppToken, "bitable.app_token")
	overlay(&cfg.Bitable.TableID, "bitable.table_id")
	overlay(&cfg.Bitable.ViewID, "bitable.view_id")
	overlay(&cfg.Theme, "theme")

	return cfg, nil
}

// newSyncClient validates the sync configuration and builds a bitable client.
func newSyncClient() (*bitable.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	if missing := cfg.MissingFields(); len(missing) > 0 {
		path := cfgFile
		if path == "" {
			path, _ = config.Path()
		}
		return nil, errors.ErrConfigMissing(path, missing)
	}

	client, err := bitable.NewClient(cfg.ClientConfig(), slog.Default())
	if err != nil {
		return nil, fmt.Errorf("create bitable client: %w", err)
	}
	return client, nil
}

// resolveProject picks the project name used to scope remote records.
// Priority: --project flag > TODUI_PROJECT > front matter > directory name.
func resolveProject(flag string, b *board.Board, todoPath string) string {
	if flag != "" {
		return flag
	}
	if v := os.Getenv("TODUI_PROJECT"); v != "" {
		return v
	}
	if v, ok := b.Settings.Get("project"); ok && v != "" {
		return v
	}
	abs, err := filepath.Abs(todoPath)
	if err != nil {
		return ""
	}
	return filepath.Base(filepath.Dir(abs))
}

// resolveTheme picks the TUI theme.
// Priority: TODUI_THEME > front matter > config file > built-in default.
func resolveTheme(b *board.Board, cfg *config.Config) string {
	if v := os.Getenv("TODUI_THEME"); v != "" {
		return v
	}
	if v, ok := b.Settings.Get("theme"); ok && v != "" {
		return v
	}
	if cfg.Theme != "" {
		return cfg.Theme
	}
	return config.DefaultTheme
}

// confirm prompts on stdout and reads a y/N answer from stdin.
func confirm(prompt string) (bool, error) {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("read response: %w", err)
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

// orNone renders empty field values in previews.
func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
