// Package catalog loads the problem catalog and builds the name index
// used to join solved entries against it.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"unicode"

	"grind/internal/model"
)

// Info is the catalog-side value of the name join.
type Info struct {
	Name       string
	Difficulty string
}

// Index maps normalized problem names to catalog info.
type Index struct {
	byName map[string]Info
}

// Load reads the catalog JSON file.
func Load(path string) ([]model.Section, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	var sections []model.Section
	if err := json.Unmarshal(data, &sections); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return sections, nil
}

// BuildIndex builds the name lookup. Duplicate names resolve last-wins,
// mirroring the ordering of the catalog file.
func BuildIndex(sections []model.Section) Index {
	byName := make(map[string]Info)
	for _, sec := range sections {
		for _, p := range sec.Problems {
			key := NormalizeName(p.Name)
			if key == "" {
				continue
			}
			byName[key] = Info{Name: p.Name, Difficulty: p.Difficulty}
		}
	}
	return Index{byName: byName}
}

// Lookup resolves a solved-entry name against the catalog.
func (ix Index) Lookup(name string) (Info, bool) {
	info, ok := ix.byName[NormalizeName(name)]
	return info, ok
}

// Len reports the number of distinct normalized names.
func (ix Index) Len() int {
	return len(ix.byName)
}

// NormalizeName lowercases a problem name, drops punctuation, and
// collapses whitespace. The join stays name-based (the catalog has no
// stable IDs); normalization only reduces mismatches from formatting
// drift, it cannot survive a rename.
func NormalizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	space := true
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			space = false
		case !space:
			b.WriteByte(' ')
			space = true
		}
	}
	return strings.TrimSpace(b.String())
}

// TotalProblems counts every catalog entry across sections.
func TotalProblems(sections []model.Section) int {
	total := 0
	for _, sec := range sections {
		total += len(sec.Problems)
	}
	return total
}

// DifficultyTotals counts catalog entries per difficulty. Entries with a
// value outside Easy/Medium/Hard are dropped.
func DifficultyTotals(sections []model.Section) map[string]int {
	totals := map[string]int{
		model.DifficultyEasy:   0,
		model.DifficultyMedium: 0,
		model.DifficultyHard:   0,
	}
	for _, sec := range sections {
		for _, p := range sec.Problems {
			if _, ok := totals[p.Difficulty]; ok {
				totals[p.Difficulty]++
			}
		}
	}
	return totals
}

// SolvedSet builds a normalized-name set from annotated entries, used to
// mark catalog problems as solved in the sections view.
func SolvedSet(entries []model.AnnotatedEntry) map[string]struct{} {
	set := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		key := NormalizeName(e.Name)
		if key == "" {
			continue
		}
		set[key] = struct{}{}
	}
	return set
}
