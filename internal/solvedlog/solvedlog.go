// Package solvedlog reads, validates, and appends the solved log: a
// single JSON array of entries kept sorted ascending by date.
package solvedlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"grind/internal/model"
)

// Load reads the solved log. A missing file yields an empty log.
func Load(path string) ([]model.SolvedEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read solved log: %w", err)
	}
	var entries []model.SolvedEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse solved log: %w", err)
	}
	return entries, nil
}

// LoadPayload reads a single-entry payload file.
func LoadPayload(path string) (model.SolvedEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.SolvedEntry{}, fmt.Errorf("failed to read payload: %w", err)
	}
	var entry model.SolvedEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return model.SolvedEntry{}, fmt.Errorf("failed to parse payload: %w", err)
	}
	return entry, nil
}

// Save writes the log atomically: temp file in the target directory,
// then rename. Output is 2-space-indented JSON with a trailing newline.
func Save(path string, entries []model.SolvedEntry) error {
	if entries == nil {
		entries = []model.SolvedEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode solved log: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create solved log dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(dir, "solved-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp solved log: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write solved log: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close solved log: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write solved log: %w", err)
	}
	return nil
}

// Sort orders entries ascending by date string. The sort is stable so
// same-day entries keep their insertion order.
func Sort(entries []model.SolvedEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})
}

// FindDuplicate reports an existing entry with the same (number, date)
// pair, the signature of an accidental double submission. Solving the
// same problem again on another date is legitimate.
func FindDuplicate(entries []model.SolvedEntry, payload model.SolvedEntry) (model.SolvedEntry, bool) {
	if payload.Number == nil {
		return model.SolvedEntry{}, false
	}
	for _, e := range entries {
		if e.Number != nil && *e.Number == *payload.Number && e.Date == payload.Date {
			return e, true
		}
	}
	return model.SolvedEntry{}, false
}

// Append validates the payload against the current log, appends it,
// re-sorts, and persists. Nothing is written on any failure.
func Append(path string, payload model.SolvedEntry) (int, error) {
	if errs := Validate(payload); len(errs) > 0 {
		return 0, &ValidationError{Errs: errs}
	}
	entries, err := Load(path)
	if err != nil {
		return 0, err
	}
	if dup, ok := FindDuplicate(entries, payload); ok {
		return 0, fmt.Errorf("entry for problem #%d on %s already exists", *dup.Number, dup.Date)
	}
	entries = append(entries, payload)
	Sort(entries)
	if err := Save(path, entries); err != nil {
		return 0, err
	}
	return len(entries), nil
}
