package util

import (
	"os"
	"path/filepath"
)

// todoFileNames lists the accepted board file names, checked in order.
var todoFileNames = []string{"TODO.md", "todo.md", "Todo.md"}

// FindTodoFile locates the board file. If path is a directory, the accepted
// file names are probed in order and the first existing one wins; when none
// exists the default TODO.md path inside the directory is returned with
// ok=false so callers can offer to create it. A non-directory path is
// returned as-is with ok reporting whether it exists.
func FindTodoFile(path string) (string, bool) {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		for _, name := range todoFileNames {
			candidate := filepath.Join(path, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, true
			}
		}
		return filepath.Join(path, todoFileNames[0]), false
	}
	return path, err == nil
}
