package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func full() *Config {
	return &Config{
		Bitable: Bitable{
			Endpoint:  "https://open.feishu.cn/open-apis",
			AppID:     "cli_a1",
			AppSecret: "s3cret",
			AppToken:  "bascn1",
			TableID:   "tbl1",
			ViewID:    "vew1",
		},
		Theme: "dracula",
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Theme != DefaultTheme {
		t.Errorf("Theme = %s, want %s", cfg.Theme, DefaultTheme)
	}
	if cfg.Bitable != (Bitable{}) {
		t.Errorf("Bitable = %+v, want empty", cfg.Bitable)
	}
}

func TestPath(t *testing.T) {
	path, err := Path()
	if err != nil {
		t.Fatalf("Path() failed: %v", err)
	}
	if !filepath.IsAbs(path) {
		t.Errorf("Path() = %s, want absolute", path)
	}
	if filepath.Base(path) != FileName {
		t.Errorf("Path() base = %s, want %s", filepath.Base(path), FileName)
	}
	if filepath.Base(filepath.Dir(path)) != DirName {
		t.Errorf("Path() dir = %s, want %s", filepath.Dir(path), DirName)
	}
}

func TestSaveToLoadFromRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := full()
	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("SaveTo() failed: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip = %+v, want %+v", loaded, cfg)
	}
}

func TestSaveToFileMode(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := full().SaveTo(configPath); err != nil {
		t.Fatalf("SaveTo() failed: %v", err)
	}

	info, err := os.Stat(configPath)
	if err != nil {
		t.Fatalf("Stat() failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file mode = %o, want 0600", perm)
	}
}

func TestLoadFrom_NonExistent(t *testing.T) {
	// LoadFrom returns the default config when the file doesn't exist
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom() should not error for a missing file: %v", err)
	}
	if cfg.Theme != DefaultTheme {
		t.Errorf("Theme = %s, want %s", cfg.Theme, DefaultTheme)
	}
}

func TestLoadFrom_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "invalid.yaml")
	if err := os.WriteFile(path, []byte("bitable: [not a mapping"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFrom(path)
	if err == nil {
		t.Fatal("LoadFrom() should fail with invalid YAML")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Errorf("error = %v, want parse config", err)
	}
}

func TestLoadFrom_PartialFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	data := "bitable:\n  app_id: cli_a1\n  app_secret: s3cret\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}
	if cfg.Bitable.AppID != "cli_a1" {
		t.Errorf("AppID = %s, want cli_a1", cfg.Bitable.AppID)
	}
	if cfg.Bitable.Endpoint != "" {
		t.Errorf("Endpoint = %s, want empty", cfg.Bitable.Endpoint)
	}
	if cfg.Theme != DefaultTheme {
		t.Errorf("Theme = %s, want default %s", cfg.Theme, DefaultTheme)
	}
}

func TestSaveTheme(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	t.Setenv("HOME", tmpDir)

	cfg := full()
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	if err := SaveTheme("nord"); err != nil {
		t.Fatalf("SaveTheme() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.Theme != "nord" {
		t.Errorf("Theme = %s, want nord", loaded.Theme)
	}
	if loaded.Bitable != cfg.Bitable {
		t.Errorf("Bitable = %+v, want preserved %+v", loaded.Bitable, cfg.Bitable)
	}
}

func TestInit(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	t.Setenv("HOME", tmpDir)

	path, err := Init(false)
	if err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	// The skeleton must parse and carry the defaults
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom(skeleton) failed: %v", err)
	}
	if cfg.Theme != DefaultTheme {
		t.Errorf("skeleton theme = %s, want %s", cfg.Theme, DefaultTheme)
	}
	if got := len(cfg.MissingFields()); got != 6 {
		t.Errorf("skeleton missing fields = %d, want 6", got)
	}

	// A second Init without force must refuse
	if _, err := Init(false); err == nil {
		t.Error("Init() should fail when the file exists")
	}
	if _, err := Init(true); err != nil {
		t.Errorf("Init(force) failed: %v", err)
	}
}

func TestMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   []string
	}{
		{
			name:   "complete",
			mutate: func(c *Config) {},
			want:   nil,
		},
		{
			name:   "missing secret",
			mutate: func(c *Config) { c.Bitable.AppSecret = "" },
			want:   []string{"bitable.app_secret"},
		},
		{
			name: "missing several",
			mutate: func(c *Config) {
				c.Bitable.Endpoint = ""
				c.Bitable.TableID = ""
				c.Bitable.ViewID = ""
			},
			want: []string{"bitable.endpoint", "bitable.table_id", "bitable.view_id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := full()
			tt.mutate(cfg)

			got := cfg.MissingFields()
			if len(got) != len(tt.want) {
				t.Fatalf("MissingFields() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("MissingFields()[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestValidate(t *testing.T) {
	if err := full().Validate(); err != nil {
		t.Errorf("Validate() on complete config failed: %v", err)
	}

	cfg := full()
	cfg.Bitable.AppID = ""
	cfg.Bitable.AppToken = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail with missing fields")
	}
	for _, want := range []string{"bitable.app_id", "bitable.app_token"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should name %s", err, want)
		}
	}
}

func TestClientConfig(t *testing.T) {
	cc := full().ClientConfig()

	if cc.Endpoint != "https://open.feishu.cn/open-apis" {
		t.Errorf("Endpoint = %s", cc.Endpoint)
	}
	if cc.AppID != "cli_a1" || cc.AppSecret != "s3cret" {
		t.Errorf("credentials = %s/%s", cc.AppID, cc.AppSecret)
	}
	if cc.AppToken != "bascn1" || cc.TableID != "tbl1" || cc.ViewID != "vew1" {
		t.Errorf("table coordinates = %s/%s/%s", cc.AppToken, cc.TableID, cc.ViewID)
	}
	if cc.TimestampAware {
		t.Error("TimestampAware should default to false")
	}
}
