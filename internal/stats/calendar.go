package stats

import (
	"fmt"
	"time"

	"grind/internal/model"
)

var monthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// computeMonths partitions the active year into 12 months with a
// count for every calendar day, leap-year February included.
func computeMonths(entries []model.AnnotatedEntry, year int) []model.Month {
	counts := bucketByDay(entries)

	months := make([]model.Month, 0, 12)
	for m := time.January; m <= time.December; m++ {
		monthKey := fmt.Sprintf("%04d-%02d", year, int(m))
		// Day 0 of the next month is the last day of this one.
		daysInMonth := time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
		days := make([]model.MonthDay, 0, daysInMonth)
		for day := 1; day <= daysInMonth; day++ {
			dateKey := fmt.Sprintf("%s-%02d", monthKey, day)
			days = append(days, model.MonthDay{Day: day, Date: dateKey, Count: counts[dateKey]})
		}
		months = append(months, model.Month{
			Key:   monthKey,
			Label: fmt.Sprintf("%s %d", monthNames[m-1], year),
			Days:  days,
		})
	}
	return months
}

// computeYearHeatmap produces one entry per calendar day of the active
// year, Jan 1 through Dec 31, iterated in UTC.
func computeYearHeatmap(entries []model.AnnotatedEntry, year int) []model.DayCount {
	counts := bucketByDay(entries)

	first := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	days := make([]model.DayCount, 0, 366)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		key := d.Format(dateLayout)
		days = append(days, model.DayCount{Date: key, Count: counts[key]})
	}
	return days
}
