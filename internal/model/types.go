// Package model defines shared data structures.
package model

import "time"

// Difficulty values used by the catalog and the solved log.
const (
	DifficultyEasy    = "Easy"
	DifficultyMedium  = "Medium"
	DifficultyHard    = "Hard"
	DifficultyUnknown = "Unknown"
)

// Difficulties lists the valid catalog difficulty values in display order.
var Difficulties = []string{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Problem is one entry of the practice catalog.
type Problem struct {
	Name       string `json:"name"`
	Difficulty string `json:"difficulty"`
	Link       string `json:"link"`
}

// Section groups catalog problems under a named topic.
type Section struct {
	Name     string    `json:"section"`
	Problems []Problem `json:"questions"`
}

// Review holds the spaced-repetition state of a solved entry. Numeric
// fields are pointers so validation can tell "absent" from zero.
type Review struct {
	NextReviewDate string   `json:"nextReviewDate"`
	Interval       *int     `json:"interval,omitempty"`
	EaseFactor     *float64 `json:"easeFactor,omitempty"`
	Repetitions    *int     `json:"repetitions,omitempty"`
}

// SolvedEntry is one record of the solved log.
type SolvedEntry struct {
	Date             string  `json:"date"`
	Number           *int    `json:"number,omitempty"`
	Name             string  `json:"name"`
	Difficulty       string  `json:"difficulty,omitempty"`
	Code             string  `json:"code,omitempty"`
	MyApproach       string  `json:"myApproach,omitempty"`
	MyComplexity     string  `json:"myComplexity,omitempty"`
	BetterApproach   string  `json:"betterApproach,omitempty"`
	BetterComplexity string  `json:"betterComplexity,omitempty"`
	Review           *Review `json:"review,omitempty"`
}

// AnnotatedEntry is a solved entry joined against the catalog. Difficulty
// is resolved on annotation: the entry's own value, the catalog's as a
// fallback, else "Unknown".
type AnnotatedEntry struct {
	SolvedEntry
	InCatalog bool
}

// DayCount pairs a YYYY-MM-DD date with a solved count.
type DayCount struct {
	Date  string
	Count int
}

// MonthDay is one calendar day of a month bucket.
type MonthDay struct {
	Day   int
	Date  string
	Count int
}

// Month is a calendar month of the active year with per-day counts.
type Month struct {
	Key   string // YYYY-MM
	Label string // e.g. "Jan 2026"
	Days  []MonthDay
}

// Projection estimates when a numeric goal will be reached at the
// historical average pace. DaysRemaining is nil when the pace is zero.
type Projection struct {
	DaysRemaining *int
	ETA           string // YYYY-MM-DD, empty when unknown
	AvgPerDay     float64
}

// Projections holds the catalog-goal and overall-goal estimates.
type Projections struct {
	Catalog Projection
	All     Projection
}

// Stats is the aggregate snapshot consumed by the report and the dashboard.
type Stats struct {
	AnnotatedSolved    []AnnotatedEntry // active-year entries only
	TotalProblems      int
	SolvedCountAll     int
	SolvedCountCatalog int
	RemainingCatalog   int
	DiffTotals         map[string]int
	DiffSolved         map[string]int
	DailyCounts        []DayCount // rolling 30 days ending today
	Streak             int
	Months             []Month
	YearHeatmap        []DayCount
	Projections        Projections
	Year               int
}

// Options configures the aggregation entry point. Year and Now are
// explicit so tests are deterministic across years.
type Options struct {
	Year        int
	Now         time.Time
	CatalogGoal int
	OverallGoal int
}
