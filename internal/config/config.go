// Package config loads and persists the global todui configuration.
//
// The file lives at <user config dir>/todui/config.yaml and holds the bitable
// credentials plus the persisted TUI theme. A missing file is not an error;
// Load returns defaults so first-run commands can still print useful guidance.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/todui/internal/bitable"
	"github.com/randalmurphal/todui/internal/util"
)

const (
	// FileName is the config file name
	FileName = "config.yaml"
	// DirName is the directory under the user config root holding the file
	DirName = "todui"
)

// DefaultTheme is used when the config file does not name a theme.
const DefaultTheme = "dracula"

// Bitable identifies the remote table and the app credentials used to reach
// it. Sync commands require every field.
type Bitable struct {
	// Endpoint is the API base URL, e.g. https://open.feishu.cn/open-apis
	Endpoint string `yaml:"endpoint"`

	// AppID and AppSecret mint tenant access tokens
	AppID     string `yaml:"app_id"`
	AppSecret string `yaml:"app_secret"`

	// AppToken names the bitable app holding the task table
	AppToken string `yaml:"app_token"`

	// TableID is the task table; ViewID is the view queried on fetch
	TableID string `yaml:"table_id"`
	ViewID  string `yaml:"view_id"`
}

// Config represents the todui global configuration.
type Config struct {
	// Bitable holds remote sync credentials
	Bitable Bitable `yaml:"bitable"`

	// Theme is the TUI color theme, persisted when changed from the TUI
	Theme string `yaml:"theme"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{Theme: DefaultTheme}
}

// Path returns the location of the global config file.
func Path() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(base, DirName, FileName), nil
}

// Load loads the config from the default location.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom loads the config from a specific path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return default config if file doesn't exist
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default() // Start with defaults
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// Save saves the config to the default location.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo saves the config to a specific path. The write is atomic and the
// file is 0600 since it carries the app secret.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := util.AtomicWriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// SaveTheme persists only the theme, keeping the rest of the file intact.
func SaveTheme(theme string) error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	cfg.Theme = theme
	return cfg.Save()
}

// skeleton is written by Init. The comments double as documentation for hand
// editing; Load tolerates the empty values.
const skeleton = `# todui global configuration.
bitable:
  # API base URL, e.g. https://open.feishu.cn/open-apis
  endpoint: ""
  # App credentials used to mint tenant access tokens.
  app_id: ""
  app_secret: ""
  # Bitable app and table holding the tasks.
  app_token: ""
  table_id: ""
  # View queried on fetch.
  view_id: ""
theme: dracula
`

// Init writes a commented skeleton config and returns its path. An existing
// file is left alone unless force is set.
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}
	if err := util.AtomicWriteFile(path, []byte(skeleton), 0600); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return path, nil
}

// MissingFields lists the required bitable keys that are still empty, as
// dotted yaml paths in file order.
func (c *Config) MissingFields() []string {
	var missing []string
	require := func(key, val string) {
		if val == "" {
			missing = append(missing, "bitable."+key)
		}
	}
	require("endpoint", c.Bitable.Endpoint)
	require("app_id", c.Bitable.AppID)
	require("app_secret", c.Bitable.AppSecret)
	require("app_token", c.Bitable.AppToken)
	require("table_id", c.Bitable.TableID)
	require("view_id", c.Bitable.ViewID)
	return missing
}

// Validate reports an error naming every missing required field.
func (c *Config) Validate() error {
	missing := c.MissingFields()
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("config missing required fields: %s", strings.Join(missing, ", "))
}

// ClientConfig converts the bitable block into the client's config form.
func (c *Config) ClientConfig() bitable.ClientConfig {
	return bitable.ClientConfig{
		Endpoint:  c.Bitable.Endpoint,
		AppID:     c.Bitable.AppID,
		AppSecret: c.Bitable.AppSecret,
		AppToken:  c.Bitable.AppToken,
		TableID:   c.Bitable.TableID,
		ViewID:    c.Bitable.ViewID,
	}
}
