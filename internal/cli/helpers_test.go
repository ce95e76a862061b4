package cli

import (
	"testing"

	"github.com/randalmurphal/todui/internal/board"
	"github.com/randalmurphal/todui/internal/config"
)

func TestResolveProject(t *testing.T) {
	tests := []struct {
		name        string
		flag        string
		env         string
		frontMatter string
		todoPath    string
		want        string
	}{
		{
			name:     "flag wins over everything",
			flag:     "flagged",
			env:      "from-env",
			todoPath: "/work/acme/TODO.md",
			want:     "flagged",
		},
		{
			name:        "env wins over front matter",
			env:         "from-env",
			frontMatter: "from-file",
			todoPath:    "/work/acme/TODO.md",
			want:        "from-env",
		},
		{
			name:        "front matter wins over directory",
			frontMatter: "from-file",
			todoPath:    "/work/acme/TODO.md",
			want:        "from-file",
		},
		{
			name:     "directory name is the fallback",
			todoPath: "/work/acme/TODO.md",
			want:     "acme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TODUI_PROJECT", tt.env)

			b := board.New()
			if tt.frontMatter != "" {
				b.Settings = b.Settings.Set("project", tt.frontMatter)
			}

			got := resolveProject(tt.flag, b, tt.todoPath)
			if got != tt.want {
				t.Errorf("resolveProject() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveTheme(t *testing.T) {
	tests := []struct {
		name        string
		env         string
		frontMatter string
		cfgTheme    string
		want        string
	}{
		{
			name:        "env wins",
			env:         "nord",
			frontMatter: "gruvbox",
			cfgTheme:    "solarized",
			want:        "nord",
		},
		{
			name:        "front matter wins over config",
			frontMatter: "gruvbox",
			cfgTheme:    "solarized",
			want:        "gruvbox",
		},
		{
			name:     "config file theme",
			cfgTheme: "solarized",
			want:     "solarized",
		},
		{
			name: "built-in default",
			want: config.DefaultTheme,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TODUI_THEME", tt.env)

			b := board.New()
			if tt.frontMatter != "" {
				b.Settings = b.Settings.Set("theme", tt.frontMatter)
			}
			cfg := config.Default()
			cfg.Theme = tt.cfgTheme

			got := resolveTheme(b, cfg)
			if got != tt.want {
				t.Errorf("resolveTheme() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOrNone(t *testing.T) {
	if got := orNone(""); got != "(none)" {
		t.Errorf("orNone(\"\") = %q, want %q", got, "(none)")
	}
	if got := orNone("P1"); got != "P1" {
		t.Errorf("orNone(\"P1\") = %q, want %q", got, "P1")
	}
}
