// Package payload builds solved-entry payloads from a problem line and
// the code that solved it.
package payload

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"grind/internal/model"
)

var problemLineRe = regexp.MustCompile(`^(\d+)\.\s*(.+)$`)

// Defaults for a freshly created spaced-repetition state.
const (
	defaultEaseFactor = 2.5
	defaultInterval   = 1
)

// ParseProblemLine splits "1929. Concatenation of Array" into number
// and title. A bare leading number is also accepted; a line without a
// number yields a nil number and the trimmed line as the name.
func ParseProblemLine(line string) (*int, string) {
	trimmed := strings.TrimSpace(line)
	if m := problemLineRe.FindStringSubmatch(trimmed); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return &n, m[2]
		}
	}
	fields := strings.Fields(trimmed)
	if len(fields) > 0 {
		if n, err := strconv.Atoi(fields[0]); err == nil {
			return &n, trimmed
		}
	}
	return nil, trimmed
}

// Fingerprint hashes a payload into a short hex token the operator can
// eyeball when moving payloads between machines.
func Fingerprint(s string) string {
	var h int32
	for _, r := range s {
		h = h<<5 - h + int32(r)
	}
	return fmt.Sprintf("%x", uint32(h))
}

// Params are the inputs of Build.
type Params struct {
	Date        string // defaults to today
	ProblemLine string // "N. Title"
	Difficulty  string
	Code        string
	MyApproach  string
}

// Build assembles a solved-entry payload that passes the append tool's
// validation, with a fresh review state (ease 2.50, one-day interval).
func Build(p Params, now time.Time) (model.SolvedEntry, error) {
	date := p.Date
	if date == "" {
		date = now.Format("2006-01-02")
	}
	parsedDate, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return model.SolvedEntry{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}

	number, name := ParseProblemLine(p.ProblemLine)
	if number == nil {
		return model.SolvedEntry{}, fmt.Errorf("problem line %q has no number (e.g. \"1929. Concatenation of Array\")", p.ProblemLine)
	}
	if name == "" {
		return model.SolvedEntry{}, fmt.Errorf("problem line has no title")
	}

	interval := defaultInterval
	ease := defaultEaseFactor
	repetitions := 0
	return model.SolvedEntry{
		Date:       date,
		Number:     number,
		Name:       name,
		Difficulty: p.Difficulty,
		Code:       strings.TrimSpace(p.Code),
		MyApproach: p.MyApproach,
		Review: &model.Review{
			NextReviewDate: parsedDate.AddDate(0, 0, interval).Format("2006-01-02"),
			Interval:       &interval,
			EaseFactor:     &ease,
			Repetitions:    &repetitions,
		},
	}, nil
}
