package solvedlog

import (
	"fmt"
	"strings"

	"grind/internal/model"
)

// ValidationError aggregates every schema failure of a payload so the
// operator sees the full list in one run.
type ValidationError struct {
	Errs []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed:\n - %s", strings.Join(e.Errs, "\n - "))
}

// Validate checks a payload against the entry schema. It collects all
// failures instead of stopping at the first.
func Validate(payload model.SolvedEntry) []string {
	var errs []string

	if payload.Date == "" {
		errs = append(errs, "missing required field: date")
	}
	// A zero number is treated as missing; problem numbering starts at 1.
	if payload.Number == nil || *payload.Number == 0 {
		errs = append(errs, "missing required field: number")
	}
	if payload.Name == "" {
		errs = append(errs, "missing required field: name")
	}
	if payload.Difficulty == "" {
		errs = append(errs, "missing required field: difficulty")
	}
	if payload.Code == "" {
		errs = append(errs, "missing required field: code")
	}
	if payload.Review == nil {
		errs = append(errs, "missing required field: review")
	}

	if payload.Difficulty != "" && !validDifficulty(payload.Difficulty) {
		errs = append(errs, fmt.Sprintf("invalid difficulty: %s (must be one of %s)",
			payload.Difficulty, strings.Join(model.Difficulties, ", ")))
	}

	if payload.Review != nil {
		if payload.Review.NextReviewDate == "" {
			errs = append(errs, "missing review.nextReviewDate")
		}
		if payload.Review.Interval == nil {
			errs = append(errs, "missing/invalid review.interval")
		}
		if payload.Review.EaseFactor == nil {
			errs = append(errs, "missing/invalid review.easeFactor")
		}
		if payload.Review.Repetitions == nil {
			errs = append(errs, "missing/invalid review.repetitions")
		}
	}

	return errs
}

func validDifficulty(d string) bool {
	for _, v := range model.Difficulties {
		if d == v {
			return true
		}
	}
	return false
}
