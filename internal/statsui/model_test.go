package statsui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"grind/internal/model"
)

func TestCurrentMonthIdx(t *testing.T) {
	months := make([]model.Month, 12)
	for i := range months {
		months[i] = model.Month{Key: fmt.Sprintf("2026-%02d", i+1)}
	}
	st := model.Stats{Months: months}

	// Active year matches now: open on the current month.
	opts := model.Options{Now: time.Date(2026, 5, 10, 0, 0, 0, 0, time.Local)}
	if got := currentMonthIdx(st, opts); got != 4 {
		t.Fatalf("expected May (index 4), got %d", got)
	}

	// Browsing a past year: open on December.
	opts = model.Options{Now: time.Date(2027, 3, 1, 0, 0, 0, 0, time.Local)}
	if got := currentMonthIdx(st, opts); got != 11 {
		t.Fatalf("expected December (index 11), got %d", got)
	}
}

func TestMoveTabWraps(t *testing.T) {
	m := &Model{tabs: []string{"a", "b", "c"}}

	m.moveTab(-1)
	if m.activeTab != 2 {
		t.Fatalf("expected wrap to last tab, got %d", m.activeTab)
	}
	m.moveTab(1)
	if m.activeTab != 0 {
		t.Fatalf("expected wrap to first tab, got %d", m.activeTab)
	}
}

func TestFitLines(t *testing.T) {
	got := fitLines("ab\ncd\nef", 4, 2)
	if got != "ab  \ncd  " {
		t.Fatalf("unexpected fit: %q", got)
	}

	got = fitLines("ab", 3, 3)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if len(line) != 3 {
			t.Fatalf("line %d not padded: %q", i, line)
		}
	}
}

func TestModalWidth(t *testing.T) {
	if got := modalWidth(120); got != 48 {
		t.Fatalf("expected cap at 48, got %d", got)
	}
	if got := modalWidth(40); got != 36 {
		t.Fatalf("expected width-4, got %d", got)
	}
	if got := modalWidth(10); got != 24 {
		t.Fatalf("expected floor at 24, got %d", got)
	}
}

func TestTruncateLine(t *testing.T) {
	if got := truncateLine("hello world", 8); got != "hello..." {
		t.Fatalf("unexpected truncation: %q", got)
	}
	if got := truncateLine("short", 8); got != "short" {
		t.Fatalf("expected no truncation, got %q", got)
	}
}
