package document

import (
	"regexp"
	"strings"
)

// Inline metadata tokens inside a task line. The patterns are mutually
// exclusive, so extraction order does not change the resulting title.
var (
	tagPattern       = regexp.MustCompile(`#(\w+)`)
	priorityPattern  = regexp.MustCompile(`!([Pp][0-4])`)
	timestampPattern = regexp.MustCompile(`~(\d{4}-\d{2}-\d{2}T\d{2}:\d{2})`)
)

// taskMeta is the decomposition of one task line's content.
type taskMeta struct {
	Title     string
	Tags      []string
	Priority  string
	UpdatedAt string
}

// parseInline extracts tags, priority and timestamp from a task line's
// content. Tags keep their appearance order. The priority token is matched
// case-insensitively and stored uppercase. Whatever text remains after
// removing the tokens, trimmed, is the title.
func parseInline(content string) taskMeta {
	meta := taskMeta{}

	for _, m := range tagPattern.FindAllStringSubmatch(content, -1) {
		meta.Tags = append(meta.Tags, m[1])
	}
	meta.Title = strings.TrimSpace(tagPattern.ReplaceAllString(content, ""))

	if m := priorityPattern.FindStringSubmatch(content); m != nil {
		meta.Priority = strings.ToUpper(m[1])
		meta.Title = strings.TrimSpace(priorityPattern.ReplaceAllString(meta.Title, ""))
	}

	if m := timestampPattern.FindStringSubmatch(content); m != nil {
		meta.UpdatedAt = m[1]
		meta.Title = strings.TrimSpace(timestampPattern.ReplaceAllString(meta.Title, ""))
	}

	return meta
}

// formatInline renders a task's content back to its line form,
// the inverse of parseInline.
func formatInline(t taskMeta) string {
	var sb strings.Builder
	sb.WriteString(t.Title)
	for _, tag := range t.Tags {
		sb.WriteString(" #")
		sb.WriteString(tag)
	}
	if t.Priority != "" {
		sb.WriteString(" !")
		sb.WriteString(strings.ToUpper(t.Priority))
	}
	if t.UpdatedAt != "" {
		sb.WriteString(" ~")
		sb.WriteString(t.UpdatedAt)
	}
	return sb.String()
}
