package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"grind/internal/model"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Two Sum", "two sum"},
		{"  Two   Sum  ", "two sum"},
		{"Non-Cyclical Number", "non cyclical number"},
		{"Koko Eating Bananas!", "koko eating bananas"},
		{"3Sum", "3sum"},
		{"Design Add & Search Word Data Structure", "design add search word data structure"},
		{"", ""},
		{"---", ""},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Fatalf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildIndexLastWins(t *testing.T) {
	sections := []model.Section{
		{Name: "A", Problems: []model.Problem{
			{Name: "Two Sum", Difficulty: model.DifficultyEasy},
		}},
		{Name: "B", Problems: []model.Problem{
			{Name: "two sum", Difficulty: model.DifficultyMedium},
		}},
	}

	ix := BuildIndex(sections)
	if ix.Len() != 1 {
		t.Fatalf("expected 1 distinct name, got %d", ix.Len())
	}
	info, ok := ix.Lookup("TWO SUM")
	if !ok {
		t.Fatalf("expected lookup to succeed")
	}
	if info.Difficulty != model.DifficultyMedium {
		t.Fatalf("expected later entry to win, got %q", info.Difficulty)
	}
}

func TestLookupNormalizes(t *testing.T) {
	sections := []model.Section{
		{Name: "Arrays", Problems: []model.Problem{
			{Name: "Contains Duplicate", Difficulty: model.DifficultyEasy},
		}},
	}
	ix := BuildIndex(sections)

	for _, name := range []string{"contains duplicate", "Contains  Duplicate", "contains-duplicate"} {
		if _, ok := ix.Lookup(name); !ok {
			t.Fatalf("expected %q to resolve", name)
		}
	}
	if _, ok := ix.Lookup("Missing Problem"); ok {
		t.Fatalf("expected unknown name to miss")
	}
}

func TestDifficultyTotals(t *testing.T) {
	sections := []model.Section{
		{Name: "A", Problems: []model.Problem{
			{Name: "P1", Difficulty: model.DifficultyEasy},
			{Name: "P2", Difficulty: model.DifficultyEasy},
			{Name: "P3", Difficulty: model.DifficultyHard},
			{Name: "P4", Difficulty: "Impossible"},
		}},
	}

	totals := DifficultyTotals(sections)
	if totals[model.DifficultyEasy] != 2 || totals[model.DifficultyMedium] != 0 || totals[model.DifficultyHard] != 1 {
		t.Fatalf("unexpected totals: %+v", totals)
	}
	if _, ok := totals["Impossible"]; ok {
		t.Fatalf("expected unknown difficulty to be dropped")
	}
	if TotalProblems(sections) != 4 {
		t.Fatalf("expected 4 total problems, got %d", TotalProblems(sections))
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	content := `[
  {
    "section": "Arrays & Hashing",
    "questions": [
      {"name": "Two Sum", "difficulty": "Easy", "link": "https://example.com/two-sum"}
    ]
  }
]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}

	sections, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sections) != 1 || sections[0].Name != "Arrays & Hashing" {
		t.Fatalf("unexpected sections: %+v", sections)
	}
	if len(sections[0].Problems) != 1 || sections[0].Problems[0].Name != "Two Sum" {
		t.Fatalf("unexpected problems: %+v", sections[0].Problems)
	}

	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatalf("expected error for missing catalog")
	}
}
