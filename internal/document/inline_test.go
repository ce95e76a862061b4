package document

import (
	"reflect"
	"testing"
)

func TestParseInline(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    taskMeta
	}{
		{
			name:    "plain title",
			content: "write the parser",
			want:    taskMeta{Title: "write the parser"},
		},
		{
			name:    "tags in appearance order",
			content: "fix login #bug #urgent",
			want:    taskMeta{Title: "fix login", Tags: []string{"bug", "urgent"}},
		},
		{
			name:    "lowercase priority stored uppercase",
			content: "hotfix !p0",
			want:    taskMeta{Title: "hotfix", Priority: "P0"},
		},
		{
			name:    "timestamp",
			content: "деплой ~2026-02-28T14:30",
			want:    taskMeta{Title: "деплой", UpdatedAt: "2026-02-28T14:30"},
		},
		{
			name:    "all token kinds",
			content: "ship release #infra !P2 ~2026-03-01T09:00",
			want: taskMeta{
				Title:     "ship release",
				Tags:      []string{"infra"},
				Priority:  "P2",
				UpdatedAt: "2026-03-01T09:00",
			},
		},
		{
			name:    "token order in the line does not matter",
			content: "!P3 #later ship release",
			want:    taskMeta{Title: "ship release", Tags: []string{"later"}, Priority: "P3"},
		},
		{
			name:    "out of range priority is plain text",
			content: "try !P5 harder",
			want:    taskMeta{Title: "try !P5 harder"},
		},
		{
			name:    "mid-title tag leaves inner whitespace",
			content: "fix #bug now",
			want:    taskMeta{Title: "fix  now", Tags: []string{"bug"}},
		},
		{
			name:    "first priority wins, all removed",
			content: "a !p1 b !P2",
			want:    taskMeta{Title: "a  b", Priority: "P1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseInline(tt.content)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseInline(%q) = %+v, want %+v", tt.content, got, tt.want)
			}
		})
	}
}

func TestFormatInlineRoundTrip(t *testing.T) {
	metas := []taskMeta{
		{Title: "bare"},
		{Title: "tagged", Tags: []string{"a", "b"}},
		{Title: "full", Tags: []string{"x"}, Priority: "P4", UpdatedAt: "2026-01-02T03:04"},
	}
	for _, meta := range metas {
		if got := parseInline(formatInline(meta)); !reflect.DeepEqual(got, meta) {
			t.Errorf("parseInline(formatInline(%+v)) = %+v", meta, got)
		}
	}
}

func TestFormatInlineUppercasesPriority(t *testing.T) {
	got := formatInline(taskMeta{Title: "t", Priority: "p1"})
	if got != "t !P1" {
		t.Errorf("formatInline = %q, want \"t !P1\"", got)
	}
}
