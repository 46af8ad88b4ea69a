package payload

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grind/internal/solvedlog"
)

func TestParseProblemLine(t *testing.T) {
	tests := []struct {
		in       string
		wantNum  int
		wantNil  bool
		wantName string
	}{
		{"1929. Concatenation of Array", 1929, false, "Concatenation of Array"},
		{"217.Contains Duplicate", 217, false, "Contains Duplicate"},
		{"  1. Two Sum  ", 1, false, "Two Sum"},
		{"42 Some Title", 42, false, "42 Some Title"},
		{"Two Sum", 0, true, "Two Sum"},
		{"", 0, true, ""},
	}
	for _, tt := range tests {
		num, name := ParseProblemLine(tt.in)
		if tt.wantNil {
			assert.Nil(t, num, "line %q", tt.in)
		} else {
			require.NotNil(t, num, "line %q", tt.in)
			assert.Equal(t, tt.wantNum, *num, "line %q", tt.in)
		}
		assert.Equal(t, tt.wantName, name, "line %q", tt.in)
	}
}

func TestFingerprint(t *testing.T) {
	assert.Equal(t, "61", Fingerprint("a"))
	assert.Equal(t, Fingerprint("payload"), Fingerprint("payload"))
	assert.NotEqual(t, Fingerprint("payload"), Fingerprint("payloae"))
}

func TestBuild(t *testing.T) {
	now := time.Date(2026, 1, 10, 15, 0, 0, 0, time.Local)
	entry, err := Build(Params{
		ProblemLine: "1929. Concatenation of Array",
		Difficulty:  "Easy",
		Code:        "func getConcatenation(nums []int) []int { return append(nums, nums...) }\n",
		MyApproach:  "double append",
	}, now)
	require.NoError(t, err)

	assert.Equal(t, "2026-01-10", entry.Date)
	require.NotNil(t, entry.Number)
	assert.Equal(t, 1929, *entry.Number)
	assert.Equal(t, "Concatenation of Array", entry.Name)

	require.NotNil(t, entry.Review)
	assert.Equal(t, "2026-01-11", entry.Review.NextReviewDate)
	assert.Equal(t, 1, *entry.Review.Interval)
	assert.Equal(t, 2.5, *entry.Review.EaseFactor)
	assert.Equal(t, 0, *entry.Review.Repetitions)

	// A built payload must pass the append tool's validation.
	assert.Empty(t, solvedlog.Validate(entry))
}

func TestBuildExplicitDate(t *testing.T) {
	now := time.Date(2026, 1, 10, 15, 0, 0, 0, time.Local)
	entry, err := Build(Params{
		Date:        "2026-01-05",
		ProblemLine: "1. Two Sum",
		Difficulty:  "Easy",
		Code:        "code",
	}, now)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-05", entry.Date)
	assert.Equal(t, "2026-01-06", entry.Review.NextReviewDate)
}

func TestBuildErrors(t *testing.T) {
	now := time.Date(2026, 1, 10, 15, 0, 0, 0, time.Local)

	_, err := Build(Params{Date: "01/05/2026", ProblemLine: "1. Two Sum"}, now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date")

	_, err = Build(Params{ProblemLine: "Two Sum"}, now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no number")
}
