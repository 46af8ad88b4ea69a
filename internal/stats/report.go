package stats

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"grind/internal/catalog"
	"grind/internal/model"
)

const timelineLimit = 15

// RenderReport writes the full one-shot text report sized to the given
// total width (use TerminalWidth for interactive runs).
func RenderReport(w io.Writer, sections []model.Section, stats model.Stats, width int) error {
	if err := RenderSummary(w, stats); err != nil {
		return err
	}
	if err := RenderDifficultyTable(w, stats); err != nil {
		return err
	}
	if err := RenderDaily(w, stats); err != nil {
		return err
	}
	if err := RenderHeatmap(w, stats.YearHeatmap); err != nil {
		return err
	}
	if err := RenderSections(w, sections, stats, width); err != nil {
		return err
	}
	return RenderTimeline(w, stats.AnnotatedSolved, timelineLimit, width)
}

// RenderSummary prints the headline counters and projections.
func RenderSummary(w io.Writer, stats model.Stats) error {
	if _, err := fmt.Fprintf(w, "Progress %d\n", stats.Year); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total solved (all): %d\n", stats.SolvedCountAll); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Catalog: %d/%d (%d remaining)\n",
		stats.SolvedCountCatalog, stats.TotalProblems, stats.RemainingCatalog); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Streak (days): %d\n", stats.Streak); err != nil {
		return err
	}
	if err := renderProjection(w, "Catalog goal", stats.Projections.Catalog); err != nil {
		return err
	}
	if err := renderProjection(w, "Overall goal", stats.Projections.All); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

func renderProjection(w io.Writer, label string, proj model.Projection) error {
	if proj.DaysRemaining == nil {
		_, err := fmt.Fprintf(w, "%s: ∞ (no pace yet)\n", label)
		return err
	}
	_, err := fmt.Fprintf(w, "%s: %d days (ETA %s, %.2f/day)\n",
		label, *proj.DaysRemaining, proj.ETA, proj.AvgPerDay)
	return err
}

// FormatDays renders a projection day count, "∞" when unbounded.
func FormatDays(days *int) string {
	if days == nil {
		return "∞"
	}
	return fmt.Sprintf("%d", *days)
}

// RenderDifficultyTable prints solved/total per difficulty.
func RenderDifficultyTable(w io.Writer, stats model.Stats) error {
	if _, err := fmt.Fprintln(w, "By Difficulty"); err != nil {
		return err
	}
	headers := []string{"Difficulty", "Solved", "Total", "Pct"}
	rows := make([][]string, 0, len(model.Difficulties))
	for _, diff := range model.Difficulties {
		solved := stats.DiffSolved[diff]
		total := stats.DiffTotals[diff]
		pct := 0
		if total > 0 {
			pct = solved * 100 / total
		}
		rows = append(rows, []string{
			diff,
			fmt.Sprintf("%d", solved),
			fmt.Sprintf("%d", total),
			fmt.Sprintf("%d%%", pct),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderDaily prints the rolling 30-day histogram with today's and the
// last week's totals.
func RenderDaily(w io.Writer, stats model.Stats) error {
	if _, err := fmt.Fprintln(w, "Last 30 Days"); err != nil {
		return err
	}
	today, last7 := WindowTotals(stats.DailyCounts)
	if _, err := fmt.Fprintf(w, "Today: %d | 7d: %d\n", today, last7); err != nil {
		return err
	}
	for _, line := range barChart(stats.DailyCounts, defaultBarHeight) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, barAxis(stats.DailyCounts)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// WindowTotals returns today's count and the 7-day sum of the rolling
// histogram (the last entries of the window).
func WindowTotals(daily []model.DayCount) (today, last7 int) {
	if len(daily) == 0 {
		return 0, 0
	}
	today = daily[len(daily)-1].Count
	start := len(daily) - 7
	if start < 0 {
		start = 0
	}
	for _, d := range daily[start:] {
		last7 += d.Count
	}
	return today, last7
}

// RenderMonth prints one month of the calendar as a labeled bar chart.
func RenderMonth(w io.Writer, month model.Month) error {
	if _, err := fmt.Fprintln(w, month.Label); err != nil {
		return err
	}
	days := make([]model.DayCount, 0, len(month.Days))
	for _, d := range month.Days {
		days = append(days, model.DayCount{Date: d.Date, Count: d.Count})
	}
	for _, line := range barChart(days, defaultBarHeight) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, barAxis(days))
	return err
}

// RenderHeatmap prints the year heatmap, one row per month.
func RenderHeatmap(w io.Writer, days []model.DayCount) error {
	if len(days) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "Year Heatmap (%s)\n", days[0].Date[:4]); err != nil {
		return err
	}
	for _, row := range heatmapRows(days) {
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// heatmapRows groups heatmap days by month and renders each month as a
// label plus one intensity rune per day.
func heatmapRows(days []model.DayCount) []string {
	byMonth := make(map[string][]model.DayCount)
	keys := make([]string, 0, 12)
	for _, d := range days {
		if len(d.Date) < 7 {
			continue
		}
		key := d.Date[:7]
		if _, ok := byMonth[key]; !ok {
			keys = append(keys, key)
		}
		byMonth[key] = append(byMonth[key], d)
	}
	sort.Strings(keys)

	rows := make([]string, 0, len(keys))
	for _, key := range keys {
		var b strings.Builder
		b.WriteString(key)
		b.WriteByte(' ')
		for _, d := range byMonth[key] {
			b.WriteRune(heatRune(d.Count))
		}
		rows = append(rows, b.String())
	}
	return rows
}

// RenderSections prints per-section progress with a fill bar.
func RenderSections(w io.Writer, sections []model.Section, stats model.Stats, width int) error {
	if len(sections) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Sections"); err != nil {
		return err
	}
	solved := catalog.SolvedSet(catalogEntries(stats.AnnotatedSolved))
	headers := []string{"Section", "Solved", "Total", "Progress"}
	rows := make([][]string, 0, len(sections))
	for _, sec := range sections {
		count, total := SectionProgress(sec, solved)
		rows = append(rows, []string{
			sec.Name,
			fmt.Sprintf("%d", count),
			fmt.Sprintf("%d", total),
			progressBar(count, total, 10),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, truncateLine(line, width)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// SectionProgress counts how many of a section's problems appear in the
// solved set.
func SectionProgress(sec model.Section, solved map[string]struct{}) (count, total int) {
	total = len(sec.Problems)
	for _, p := range sec.Problems {
		if _, ok := solved[catalog.NormalizeName(p.Name)]; ok {
			count++
		}
	}
	return count, total
}

func catalogEntries(entries []model.AnnotatedEntry) []model.AnnotatedEntry {
	out := make([]model.AnnotatedEntry, 0, len(entries))
	for _, e := range entries {
		if e.InCatalog {
			out = append(out, e)
		}
	}
	return out
}

func progressBar(count, total, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if total > 0 {
		filled = count * width / total
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// RenderTimeline prints the most recent entries, newest first.
func RenderTimeline(w io.Writer, entries []model.AnnotatedEntry, limit, width int) error {
	if _, err := fmt.Fprintln(w, "Recent"); err != nil {
		return err
	}
	for _, e := range TimelineEntries(entries, limit) {
		title := e.Name
		if e.Number != nil {
			title = fmt.Sprintf("%d. %s", *e.Number, e.Name)
		}
		membership := "not in catalog"
		if e.InCatalog {
			membership = "catalog"
		}
		line := fmt.Sprintf("%s  [%s]  %s  (%s)", e.Date, e.Difficulty, title, membership)
		if _, err := fmt.Fprintln(w, truncateLine(line, width)); err != nil {
			return err
		}
		if e.MyComplexity != "" {
			if _, err := fmt.Fprintln(w, truncateLine("    "+e.MyComplexity, width)); err != nil {
				return err
			}
		}
	}
	return nil
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

// TimelineEntries returns up to limit entries sorted by date descending.
func TimelineEntries(entries []model.AnnotatedEntry, limit int) []model.AnnotatedEntry {
	sorted := append([]model.AnnotatedEntry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
