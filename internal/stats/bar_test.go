package stats

import (
	"fmt"
	"strings"
	"testing"

	"grind/internal/model"
)

func TestBarChartScalesToMax(t *testing.T) {
	days := []model.DayCount{
		{Date: "2026-01-01", Count: 1},
		{Date: "2026-01-02", Count: 8},
	}

	lines := barChart(days, 1)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0] != "▁█" {
		t.Fatalf("unexpected chart line: %q", lines[0])
	}
}

func TestBarChartNonZeroAlwaysVisible(t *testing.T) {
	days := []model.DayCount{
		{Date: "2026-01-01", Count: 1},
		{Date: "2026-01-02", Count: 100},
	}

	lines := barChart(days, 1)
	if lines[0] != "▁█" {
		t.Fatalf("expected a minimal visible bar for count 1, got %q", lines[0])
	}
}

func TestBarChartEmpty(t *testing.T) {
	if lines := barChart(nil, 5); lines != nil {
		t.Fatalf("expected nil for empty window, got %v", lines)
	}
}

func TestBarChartHeight(t *testing.T) {
	days := []model.DayCount{{Date: "2026-01-01", Count: 3}}
	lines := barChart(days, 5)
	if len(lines) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(lines))
	}
	// Max count fills the whole column.
	for i, line := range lines {
		if line != "█" {
			t.Fatalf("expected full block in row %d, got %q", i, line)
		}
	}
}

func TestBarAxis(t *testing.T) {
	days := make([]model.DayCount, 0, 30)
	for d := 1; d <= 30; d++ {
		days = append(days, model.DayCount{Date: fmt.Sprintf("2026-01-%02d", d)})
	}
	axis := barAxis(days)
	want := "01-01" + strings.Repeat(" ", 20) + "01-30"
	if axis != want {
		t.Fatalf("unexpected axis: %q", axis)
	}
}

func TestHeatLevel(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 3}, {5, 4}, {50, 4},
	}
	for _, tt := range tests {
		if got := HeatLevel(tt.count); got != tt.want {
			t.Fatalf("HeatLevel(%d) = %d, want %d", tt.count, got, tt.want)
		}
	}
}
