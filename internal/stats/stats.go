// Package stats contains the aggregation engine and report rendering.
// Compute is pure: it never fails and degrades to zero/nil defaults
// when the inputs are empty or malformed.
package stats

import (
	"strconv"
	"time"

	"grind/internal/catalog"
	"grind/internal/model"
)

// Default goals for the two projections.
const (
	DefaultCatalogGoal = 250
	DefaultOverallGoal = 500
)

// Annotate joins solved entries against the catalog index, resolving
// catalog membership and effective difficulty.
func Annotate(index catalog.Index, solved []model.SolvedEntry) []model.AnnotatedEntry {
	out := make([]model.AnnotatedEntry, 0, len(solved))
	for _, entry := range solved {
		annotated := model.AnnotatedEntry{SolvedEntry: entry}
		if entry.Name != "" {
			if info, ok := index.Lookup(entry.Name); ok {
				annotated.InCatalog = true
				if annotated.Difficulty == "" {
					annotated.Difficulty = info.Difficulty
				}
			}
		}
		if annotated.Difficulty == "" {
			annotated.Difficulty = model.DifficultyUnknown
		}
		out = append(out, annotated)
	}
	return out
}

// Compute derives the full stats snapshot from the two collections.
func Compute(sections []model.Section, solved []model.SolvedEntry, opts model.Options) model.Stats {
	opts = fillOptions(opts)

	index := catalog.BuildIndex(sections)
	annotated := Annotate(index, solved)
	annotatedYear := filterYear(annotated, opts.Year)

	totalProblems := catalog.TotalProblems(sections)
	solvedCountAll := len(annotatedYear)

	solvedCountCatalog := 0
	for _, e := range annotatedYear {
		if e.InCatalog {
			solvedCountCatalog++
		}
	}
	remainingCatalog := totalProblems - solvedCountCatalog
	if remainingCatalog < 0 {
		remainingCatalog = 0
	}

	diffSolved := map[string]int{
		model.DifficultyEasy:   0,
		model.DifficultyMedium: 0,
		model.DifficultyHard:   0,
	}
	for _, e := range annotatedYear {
		diffSolved[e.Difficulty]++
	}

	// The 30-day window rolls over today regardless of the active year,
	// so late-December activity still counts in early January.
	dailyCounts, streak := computeDailyCounts(annotated, opts.Now)

	return model.Stats{
		AnnotatedSolved:    annotatedYear,
		TotalProblems:      totalProblems,
		SolvedCountAll:     solvedCountAll,
		SolvedCountCatalog: solvedCountCatalog,
		RemainingCatalog:   remainingCatalog,
		DiffTotals:         catalog.DifficultyTotals(sections),
		DiffSolved:         diffSolved,
		DailyCounts:        dailyCounts,
		Streak:             streak,
		Months:             computeMonths(annotatedYear, opts.Year),
		YearHeatmap:        computeYearHeatmap(annotatedYear, opts.Year),
		Projections:        computeProjections(solvedCountCatalog, solvedCountAll, opts),
		Year:               opts.Year,
	}
}

func fillOptions(opts model.Options) model.Options {
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	if opts.Year == 0 {
		opts.Year = opts.Now.Year()
	}
	if opts.CatalogGoal == 0 {
		opts.CatalogGoal = DefaultCatalogGoal
	}
	if opts.OverallGoal == 0 {
		opts.OverallGoal = DefaultOverallGoal
	}
	return opts
}

// inYear matches the active year as a pure 4-character prefix of the
// raw date string.
func inYear(date string, year int) bool {
	if len(date) < 4 {
		return false
	}
	return date[:4] == strconv.Itoa(year)
}

func filterYear(entries []model.AnnotatedEntry, year int) []model.AnnotatedEntry {
	out := make([]model.AnnotatedEntry, 0, len(entries))
	for _, e := range entries {
		if inYear(e.Date, year) {
			out = append(out, e)
		}
	}
	return out
}
