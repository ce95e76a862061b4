package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/randalmurphal/todui/internal/errors"
)

func TestPullCmd_NoTodoFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "cfg"))

	var buf bytes.Buffer
	cmd := newPullCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{tmpDir})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("pull without a todo file succeeded")
	}
	uerr := errors.AsUserError(err)
	if uerr == nil || uerr.Code != errors.CodeNoTodoFile {
		t.Errorf("want %s error, got %v", errors.CodeNoTodoFile, err)
	}
}

func TestPullCmd_MissingConfig(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "cfg"))

	content := "# Test\n\n## Todo\n- Task one\n"
	if err := os.WriteFile(filepath.Join(tmpDir, "TODO.md"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	cmd := newPullCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{tmpDir})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("pull without sync config succeeded")
	}
	uerr := errors.AsUserError(err)
	if uerr == nil || uerr.Code != errors.CodeConfigMissing {
		t.Errorf("want %s error, got %v", errors.CodeConfigMissing, err)
	}
}
