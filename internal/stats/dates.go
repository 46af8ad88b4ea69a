package stats

import (
	"time"

	"grind/internal/model"
)

const dateLayout = "2006-01-02"

// normalizeDate parses a YYYY-MM-DD string as a local calendar date and
// re-formats it. Parsing in local time keeps the same wall-clock day
// for bucketing and "today" comparisons. Returns "" for malformed input.
func normalizeDate(date string) string {
	t, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return ""
	}
	return t.Format(dateLayout)
}

// bucketByDay counts entries per normalized local date, skipping
// entries with missing or malformed dates.
func bucketByDay(entries []model.AnnotatedEntry) map[string]int {
	counts := make(map[string]int)
	for _, e := range entries {
		key := normalizeDate(e.Date)
		if key == "" {
			continue
		}
		counts[key]++
	}
	return counts
}
