package util

import (
	"strconv"
	"strings"
	"time"
)

// remoteTimeLayout is the timestamp form stored in task metadata.
const remoteTimeLayout = "2006-01-02T15:04"

// NormalizeRemoteTime converts a timestamp field value from the remote table
// into the local "YYYY-MM-DDTHH:MM" form. The remote side may deliver epoch
// milliseconds (as a number or numeric string) or an ISO date-time string;
// anything unparseable normalizes to "".
func NormalizeRemoteTime(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case float64:
		return fromEpochMillis(int64(v))
	case int64:
		return fromEpochMillis(v)
	case int:
		return fromEpochMillis(int64(v))
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return ""
		}
		if millis, err := strconv.ParseInt(s, 10, 64); err == nil {
			return fromEpochMillis(millis)
		}
		// Already in the target form.
		if len(s) == len(remoteTimeLayout) && s[10] == 'T' {
			return s
		}
		if !strings.Contains(s, "T") {
			return ""
		}
		s = strings.TrimSuffix(s, "Z")
		s = strings.TrimSuffix(s, "+00:00")
		for _, layout := range []string{"2006-01-02T15:04:05", remoteTimeLayout} {
			if t, err := time.Parse(layout, s); err == nil {
				return t.Format(remoteTimeLayout)
			}
		}
		return ""
	default:
		return ""
	}
}

func fromEpochMillis(millis int64) string {
	if millis <= 0 {
		return ""
	}
	return time.UnixMilli(millis).Format(remoteTimeLayout)
}
