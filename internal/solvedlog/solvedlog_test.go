package solvedlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grind/internal/model"
)

func validEntry(number int, date string) model.SolvedEntry {
	interval := 1
	ease := 2.5
	reps := 0
	return model.SolvedEntry{
		Date:       date,
		Number:     &number,
		Name:       "Two Sum",
		Difficulty: model.DifficultyEasy,
		Code:       "func twoSum(nums []int, target int) []int { return nil }",
		Review: &model.Review{
			NextReviewDate: "2026-01-06",
			Interval:       &interval,
			EaseFactor:     &ease,
			Repetitions:    &reps,
		},
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	errs := Validate(model.SolvedEntry{})
	require.Len(t, errs, 6)
	joined := strings.Join(errs, "\n")
	for _, field := range []string{"date", "number", "name", "difficulty", "code", "review"} {
		assert.Contains(t, joined, field)
	}
}

func TestValidateZeroNumber(t *testing.T) {
	entry := validEntry(0, "2026-01-05")
	errs := Validate(entry)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "number")
}

func TestValidateDifficultyEnum(t *testing.T) {
	entry := validEntry(1, "2026-01-05")
	entry.Difficulty = "Impossible"
	errs := Validate(entry)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "invalid difficulty: Impossible")
}

func TestValidateReviewFields(t *testing.T) {
	entry := validEntry(1, "2026-01-05")
	entry.Review = &model.Review{}
	errs := Validate(entry)
	require.Len(t, errs, 4)
	joined := strings.Join(errs, "\n")
	assert.Contains(t, joined, "review.nextReviewDate")
	assert.Contains(t, joined, "review.interval")
	assert.Contains(t, joined, "review.easeFactor")
	assert.Contains(t, joined, "review.repetitions")
}

func TestValidateOK(t *testing.T) {
	assert.Empty(t, Validate(validEntry(1, "2026-01-05")))
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Errs: []string{"a", "b"}}
	assert.Equal(t, "validation failed:\n - a\n - b", err.Error())
}

func TestLoadMissingFile(t *testing.T) {
	entries, err := Load(filepath.Join(t.TempDir(), "solved.json"))
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestAppendSortsAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solved.json")

	total, err := Append(path, validEntry(2, "2026-01-10"))
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	total, err = Append(path, validEntry(1, "2026-01-05"))
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	entries, err := Load(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "2026-01-05", entries[0].Date)
	assert.Equal(t, "2026-01-10", entries[1].Date)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "\n"), "log should end with a newline")
	assert.True(t, strings.HasPrefix(string(data), "[\n  {"), "log should be 2-space indented")
}

func TestAppendRejectsDuplicate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solved.json")

	_, err := Append(path, validEntry(1, "2026-01-05"))
	require.NoError(t, err)

	_, err = Append(path, validEntry(1, "2026-01-05"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry for problem #1 on 2026-01-05 already exists")

	// Re-solving on another date is fine.
	total, err := Append(path, validEntry(1, "2026-02-01"))
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestAppendInvalidWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solved.json")

	_, err := Append(path, model.SolvedEntry{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Errs, 6)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "no log should be created on validation failure")
}

func TestSortStable(t *testing.T) {
	a := validEntry(1, "2026-01-05")
	b := validEntry(2, "2026-01-05")
	c := validEntry(3, "2026-01-01")
	entries := []model.SolvedEntry{a, b, c}

	Sort(entries)
	assert.Equal(t, 3, *entries[0].Number)
	// Same-day entries keep their insertion order.
	assert.Equal(t, 1, *entries[1].Number)
	assert.Equal(t, 2, *entries[2].Number)
}

func TestFindDuplicateNilNumber(t *testing.T) {
	existing := []model.SolvedEntry{validEntry(1, "2026-01-05")}
	payload := validEntry(1, "2026-01-05")
	payload.Number = nil
	_, ok := FindDuplicate(existing, payload)
	assert.False(t, ok)
}

func TestSaveEmptyLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solved.json")
	require.NoError(t, Save(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}
