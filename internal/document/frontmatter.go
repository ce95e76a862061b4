package document

import (
	"strings"

	"github.com/randalmurphal/todui/internal/board"
)

// parseFrontMatter reads the settings block at the top of the document.
// The block must open with --- on the first line and close with a later ---
// line; anything else returns empty settings and resume index 0 so the whole
// input is parsed as body. Inside the block, blank lines and #-comments are
// skipped. A key with an empty value followed by a more deeply indented line
// opens a one-level nested mapping; an unindented line closes it.
func parseFrontMatter(lines []string) (board.Settings, int) {
	if len(lines) < 2 {
		return nil, 0
	}
	if strings.TrimSpace(lines[0]) != frontMatterDelim {
		return nil, 0
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == frontMatterDelim {
			end = i
			break
		}
	}
	if end == -1 {
		return nil, 0
	}

	var settings board.Settings
	nested := "" // key of the currently open nested block

	for i := 1; i < end; i++ {
		line := lines[i]
		stripped := strings.TrimSpace(line)
		if stripped == "" || strings.HasPrefix(stripped, "#") {
			continue
		}

		indent := indentOf(line)
		key, value, hasColon := strings.Cut(stripped, ":")
		if !hasColon {
			if nested != "" && indent == 0 {
				nested = ""
			}
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch {
		case value == "" && nextContentIndent(lines, i+1, end) > indent:
			nested = key
			settings = upsertMapping(settings, key)
		case nested != "" && indent > 0:
			settings = upsertNested(settings, nested, key, value)
		case nested != "":
			nested = ""
			settings = upsertScalar(settings, key, value)
		default:
			settings = upsertScalar(settings, key, value)
		}
	}

	return settings, end + 1
}

// nextContentIndent returns the indentation of the first non-blank,
// non-comment line in lines[from:to], or 0 if there is none.
func nextContentIndent(lines []string, from, to int) int {
	for j := from; j < to; j++ {
		stripped := strings.TrimSpace(lines[j])
		if stripped != "" && !strings.HasPrefix(stripped, "#") {
			return indentOf(lines[j])
		}
	}
	return 0
}

// indentOf counts leading whitespace characters.
func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

// upsertScalar sets key to a scalar value, keeping an existing entry's
// position or appending a new one.
func upsertScalar(s board.Settings, key, value string) board.Settings {
	for i := range s {
		if s[i].Key == key {
			s[i].Value = board.SettingValue{String: value}
			return s
		}
	}
	return append(s, board.Setting{Key: key, Value: board.SettingValue{String: value}})
}

// upsertMapping sets key to a fresh empty mapping, keeping an existing
// entry's position or appending a new one.
func upsertMapping(s board.Settings, key string) board.Settings {
	for i := range s {
		if s[i].Key == key {
			s[i].Value = board.SettingValue{Mapping: board.Settings{}}
			return s
		}
	}
	return append(s, board.Setting{Key: key, Value: board.SettingValue{Mapping: board.Settings{}}})
}

// upsertNested sets key to value inside the mapping at nestedKey.
func upsertNested(s board.Settings, nestedKey, key, value string) board.Settings {
	for i := range s {
		if s[i].Key == nestedKey {
			s[i].Value.Mapping = upsertScalar(s[i].Value.Mapping, key, value)
			return s
		}
	}
	return s
}

// renderFrontMatter writes the settings block, nested mappings indented two
// spaces per level. Empty scalars render as a bare "key:" line, which parses
// back to an empty scalar as long as the following line is not indented.
func renderFrontMatter(sb *strings.Builder, settings board.Settings) {
	sb.WriteString(frontMatterDelim)
	sb.WriteString("\n")
	renderSettings(sb, settings, 0)
	sb.WriteString(frontMatterDelim)
	sb.WriteString("\n\n")
}

func renderSettings(sb *strings.Builder, settings board.Settings, depth int) {
	indent := strings.Repeat(" ", depth*indentWidth)
	for _, entry := range settings {
		sb.WriteString(indent)
		sb.WriteString(entry.Key)
		sb.WriteString(":")
		if entry.Value.IsMapping() {
			sb.WriteString("\n")
			renderSettings(sb, entry.Value.Mapping, depth+1)
			continue
		}
		if entry.Value.String != "" {
			sb.WriteString(" ")
			sb.WriteString(entry.Value.String)
		}
		sb.WriteString("\n")
	}
}
