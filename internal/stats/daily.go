package stats

import (
	"time"

	"grind/internal/model"
)

const dailyWindowDays = 30

// computeDailyCounts builds the rolling 30-day histogram ending today
// and the current consecutive-day streak.
func computeDailyCounts(entries []model.AnnotatedEntry, now time.Time) ([]model.DayCount, int) {
	counts := bucketByDay(entries)

	daily := make([]model.DayCount, 0, dailyWindowDays)
	for i := dailyWindowDays - 1; i >= 0; i-- {
		key := now.AddDate(0, 0, -i).Format(dateLayout)
		daily = append(daily, model.DayCount{Date: key, Count: counts[key]})
	}

	return daily, computeStreak(counts, now)
}

// computeStreak walks backward from today one day at a time while every
// day has at least one solve. A zero count today means streak 0.
func computeStreak(counts map[string]int, now time.Time) int {
	streak := 0
	for d := now; counts[d.Format(dateLayout)] > 0; d = d.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}
