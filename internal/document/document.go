// Package document converts between the TODO.md text format and the board
// model. Parsing is permissive: malformed front matter degrades to empty
// settings and unrecognized lines are skipped, so a damaged file still loads
// as much board as it can. Serialization is the exact inverse, and a
// parse(serialize(board)) round trip reproduces the board structurally.
package document

import (
	"fmt"
	"os"

	"github.com/randalmurphal/todui/internal/board"
	"github.com/randalmurphal/todui/internal/util"
)

const (
	// indentWidth is the number of leading spaces per hierarchy level.
	indentWidth = 2
	// frontMatterDelim opens and closes the front-matter block.
	frontMatterDelim = "---"
)

// Load reads and parses the board file at path.
func Load(path string) (*board.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read board file %s: %w", path, err)
	}
	return Parse(string(data)), nil
}

// Save serializes the board and writes it to path atomically. The file
// always ends with a single newline.
func Save(path string, b *board.Board) error {
	if err := util.AtomicWriteFile(path, []byte(Serialize(b)+"\n"), 0o644); err != nil {
		return fmt.Errorf("write board file %s: %w", path, err)
	}
	return nil
}
