package stats

import (
	"os"
	"strings"

	"golang.org/x/term"

	"grind/internal/model"
)

const (
	defaultBarHeight    = 5
	terminalWidthBackup = 80
)

var barFill = []rune(" ▁▂▃▄▅▆▇█")

// barChart renders one column per day using block characters, scaled to
// the window maximum. Returns the chart lines, tallest row first.
func barChart(days []model.DayCount, height int) []string {
	if len(days) == 0 {
		return nil
	}
	if height <= 0 {
		height = defaultBarHeight
	}

	maxCount := 1
	for _, d := range days {
		if d.Count > maxCount {
			maxCount = d.Count
		}
	}

	// Each column is height cells tall; a column's filled amount is its
	// count scaled into height*8 eighth-blocks.
	steps := height * (len(barFill) - 1)
	lines := make([]string, height)
	for row := 0; row < height; row++ {
		var b strings.Builder
		for _, d := range days {
			filled := d.Count * steps / maxCount
			if d.Count > 0 && filled == 0 {
				filled = 1
			}
			// Cells below this row's floor are full, above are empty.
			floor := (height - 1 - row) * (len(barFill) - 1)
			switch {
			case filled >= floor+len(barFill)-1:
				b.WriteRune(barFill[len(barFill)-1])
			case filled <= floor:
				b.WriteRune(barFill[0])
			default:
				b.WriteRune(barFill[filled-floor])
			}
		}
		lines[row] = strings.TrimRight(b.String(), " ")
	}
	return lines
}

// barAxis renders the line under a bar chart: first and last date of
// the window, spaced to the chart width.
func barAxis(days []model.DayCount) string {
	if len(days) == 0 {
		return ""
	}
	first := shortDate(days[0].Date)
	last := shortDate(days[len(days)-1].Date)
	gap := len(days) - displayWidth(first) - displayWidth(last)
	if gap < 1 {
		gap = 1
	}
	return first + strings.Repeat(" ", gap) + last
}

func shortDate(date string) string {
	// Trim the year: "2026-01-05" -> "01-05".
	if len(date) == 10 {
		return date[5:]
	}
	return date
}

// HeatLevel maps a daily count onto the five heatmap intensities.
func HeatLevel(count int) int {
	switch {
	case count == 0:
		return 0
	case count == 1:
		return 1
	case count == 2:
		return 2
	case count <= 4:
		return 3
	default:
		return 4
	}
}

var heatRunes = []rune("·░▒▓█")

func heatRune(count int) rune {
	return heatRunes[HeatLevel(count)]
}

// TerminalWidth reports the stdout terminal width, falling back to 80
// columns when stdout is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}
