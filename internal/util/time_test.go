package util

import (
	"strconv"
	"testing"
	"time"
)

func TestNormalizeRemoteTimeEpochMillis(t *testing.T) {
	ref := time.Date(2026, 2, 28, 14, 30, 0, 0, time.Local)
	want := "2026-02-28T14:30"

	if got := NormalizeRemoteTime(float64(ref.UnixMilli())); got != want {
		t.Errorf("NormalizeRemoteTime(float64 millis) = %q, want %q", got, want)
	}
	if got := NormalizeRemoteTime(ref.UnixMilli()); got != want {
		t.Errorf("NormalizeRemoteTime(int64 millis) = %q, want %q", got, want)
	}
	// Numeric strings happen when the field is configured as text remotely.
	if got := NormalizeRemoteTime(strconv.FormatInt(ref.UnixMilli(), 10)); got != want {
		t.Errorf("NormalizeRemoteTime(string millis) = %q, want %q", got, want)
	}
}

func TestNormalizeRemoteTimeStrings(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2026-02-28T14:30", "2026-02-28T14:30"},
		{"2026-02-28T14:30:00", "2026-02-28T14:30"},
		{"2026-02-28T14:30:00Z", "2026-02-28T14:30"},
		{"2026-02-28T14:30:00+00:00", "2026-02-28T14:30"},
		{"", ""},
		{"   ", ""},
		{"2026-02-28", ""},
		{"not a time", ""},
	}
	for _, tt := range tests {
		if got := NormalizeRemoteTime(tt.in); got != tt.want {
			t.Errorf("NormalizeRemoteTime(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeRemoteTimeUnknownTypes(t *testing.T) {
	if got := NormalizeRemoteTime(nil); got != "" {
		t.Errorf("NormalizeRemoteTime(nil) = %q, want empty", got)
	}
	if got := NormalizeRemoteTime([]string{"x"}); got != "" {
		t.Errorf("NormalizeRemoteTime(slice) = %q, want empty", got)
	}
	if got := NormalizeRemoteTime(0); got != "" {
		t.Errorf("NormalizeRemoteTime(0) = %q, want empty", got)
	}
}
