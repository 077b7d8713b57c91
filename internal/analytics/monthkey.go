package analytics

import (
	"fmt"
	"time"
)

const monthKeyLayout = "2006-01"

// MonthKey derives the YYYY-MM aggregate key from a session date. The date is
// always interpreted in UTC, so a session at 23:59 local time lands in
// whichever month that instant belongs to in UTC, not in the wall-clock month.
func MonthKey(t time.Time) string {
	return t.UTC().Format(monthKeyLayout)
}

// MonthRange returns the half-open UTC interval [first of month, first of
// next month) for a YYYY-MM key.
func MonthRange(monthKey string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(monthKeyLayout, monthKey, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month key %q: %w", monthKey, err)
	}
	return start, start.AddDate(0, 1, 0), nil
}

// ParseSessionDate normalizes a session's date field, which is a native
// timestamp when written through the app and an ISO string when imported.
func ParseSessionDate(v any) (time.Time, error) {
	switch d := v.(type) {
	case time.Time:
		return d, nil
	case *time.Time:
		if d == nil {
			return time.Time{}, fmt.Errorf("session date is nil")
		}
		return *d, nil
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
			if t, err := time.Parse(layout, d); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("unparseable session date %q", d)
	default:
		return time.Time{}, fmt.Errorf("unsupported session date type %T", v)
	}
}
