// Package statsui provides the Bubble Tea dashboard.
package statsui

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"grind/internal/catalog"
	"grind/internal/model"
	"grind/internal/stats"
)

const (
	tabOverview = iota
	tabCalendar
	tabHeatmap
	tabSections
	tabTimeline
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#0DD28A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
	modalStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#0DD28A")).
			Padding(1, 2)

	easyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#0DD28A"))
	mediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC35D"))
	hardStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6D78"))

	heatStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("#2A2A2A")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#0A5C3E")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#0B8A5A")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#0DB974")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#0DD28A")),
	}
)

// Model implements the Bubble Tea dashboard.
type Model struct {
	sections []model.Section
	solved   []model.SolvedEntry
	opts     model.Options

	stats model.Stats

	tabs          []string
	activeTab     int
	viewports     []viewport.Model
	sectionsTable table.Model
	monthIdx      int

	width  int
	height int

	yearInputMode bool
	yearInput     textinput.Model
	yearInputErr  string
}

// NewModel constructs a dashboard over the loaded collections.
func NewModel(sections []model.Section, solved []model.SolvedEntry, opts model.Options) *Model {
	m := &Model{
		sections: sections,
		solved:   solved,
		opts:     opts,
		tabs:     []string{"Overview", "Calendar", "Heatmap", "Sections", "Timeline"},
	}
	m.yearInput = textinput.New()
	m.yearInput.Prompt = "Year: "
	m.yearInput.CharLimit = 4
	m.yearInput.Cursor.SetMode(cursor.CursorBlink)
	m.viewports = make([]viewport.Model, len(m.tabs))
	for i := range m.viewports {
		m.viewports[i] = viewport.New(0, 0)
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.renderTabContents()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
		if m.yearInputMode {
			return m.updateYearInput(msg)
		}
		switch msg.String() {
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "[", "p":
			if m.activeTab == tabCalendar && m.monthIdx > 0 {
				m.monthIdx--
				m.renderTabContents()
			}
			return m, nil
		case "]", "n":
			if m.activeTab == tabCalendar && m.monthIdx < len(m.stats.Months)-1 {
				m.monthIdx++
				m.renderTabContents()
			}
			return m, nil
		case "y":
			return m.startYearInput()
		case "g", "home":
			if m.activeTab == tabSections {
				m.sectionsTable.GotoTop()
			} else {
				m.viewports[m.activeTab].GotoTop()
			}
			return m, nil
		case "G", "end":
			if m.activeTab == tabSections {
				m.sectionsTable.GotoBottom()
			} else {
				m.viewports[m.activeTab].GotoBottom()
			}
			return m, nil
		default:
			if m.activeTab == tabSections {
				var cmd tea.Cmd
				m.sectionsTable, cmd = m.sectionsTable.Update(msg)
				return m, cmd
			}
			vp := m.viewports[m.activeTab]
			var cmd tea.Cmd
			vp, cmd = vp.Update(msg)
			m.viewports[m.activeTab] = vp
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.yearInputMode {
		return fitLines(m.renderYearModal(), m.width, m.height)
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) refresh() {
	m.stats = stats.Compute(m.sections, m.solved, m.opts)
	m.monthIdx = currentMonthIdx(m.stats, m.opts)
	m.rebuildSectionsTable()
	m.renderTabContents()
}

// currentMonthIdx opens the calendar on the current month when the
// active year is the current one, otherwise on December.
func currentMonthIdx(st model.Stats, opts model.Options) int {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	key := now.Format("2006-01")
	for i, month := range st.Months {
		if month.Key == key {
			return i
		}
	}
	return len(st.Months) - 1
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := lipgloss.Height(activeNavStyle.Render("X"))
	if tabsHeight < 1 {
		tabsHeight = 1
	}
	headerHeight = tabsHeight + 1
	footerHeight = 1
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, bodyHeight, _ := m.layoutHeights()
	for i := range m.viewports {
		m.viewports[i].Width = m.width
		m.viewports[i].Height = bodyHeight
	}
	m.sectionsTable.SetWidth(m.width)
	m.sectionsTable.SetHeight(maxInt(1, bodyHeight-1))
	promptWidth := lipgloss.Width(m.yearInput.Prompt)
	m.yearInput.Width = maxInt(4, modalInnerWidth(m.width)-promptWidth)
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	if count == 0 {
		return
	}
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
	if m.activeTab == tabSections {
		m.sectionsTable.Focus()
	} else {
		m.sectionsTable.Blur()
	}
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderHeader() string {
	tabs := padLines(m.renderTabs(), m.width)
	summary := fmt.Sprintf("Year: %d  Catalog: %d/%d  Streak: %d",
		m.stats.Year, m.stats.SolvedCountCatalog, m.stats.TotalProblems, m.stats.Streak)
	return tabs + "\n" + padLines(headerStyle.Render(truncateLine(summary, m.width)), m.width)
}

func (m *Model) renderFooter() string {
	help := "Nav: left/right  Scroll: up/down  Year: y  Quit: q"
	if m.activeTab == tabCalendar {
		help = "Nav: left/right  Month: [/]  Year: y  Quit: q"
	}
	return headerStyle.Render(help)
}

func (m *Model) renderBody() string {
	_, bodyHeight, _ := m.layoutHeights()
	if m.activeTab == tabSections {
		if len(m.sections) == 0 {
			return fitLines("No catalog sections found.", m.width, bodyHeight)
		}
		return fitLines(tableMutedStyle.Render(m.sectionsTable.View()), m.width, bodyHeight)
	}
	return fitLines(m.viewports[m.activeTab].View(), m.width, bodyHeight)
}

func (m *Model) renderTabContents() {
	if len(m.viewports) == 0 {
		return
	}
	m.viewports[tabOverview].SetContent(m.renderOverview())
	m.viewports[tabCalendar].SetContent(m.renderCalendar())
	m.viewports[tabHeatmap].SetContent(m.renderHeatmap())
	m.viewports[tabTimeline].SetContent(m.renderTimeline())
}

func (m *Model) renderOverview() string {
	st := m.stats
	today, last7 := stats.WindowTotals(st.DailyCounts)
	cards := []string{
		metricCard("Total solved", fmt.Sprintf("%d", st.SolvedCountAll)),
		metricCard("Catalog", fmt.Sprintf("%d/%d", st.SolvedCountCatalog, st.TotalProblems)),
		metricCard("Streak (days)", fmt.Sprintf("%d", st.Streak)),
		metricCard("Today | 7d", fmt.Sprintf("%d | %d", today, last7)),
	}
	projCards := []string{
		projectionCard("Days to catalog goal", st.Projections.Catalog),
		projectionCard("Days to overall goal", st.Projections.All),
	}
	var rows []string
	if m.width < 80 {
		rows = append(cards, projCards...)
	} else {
		rows = []string{
			lipgloss.JoinHorizontal(lipgloss.Top, cards...),
			lipgloss.JoinHorizontal(lipgloss.Top, projCards...),
		}
	}
	body := lipgloss.JoinVertical(lipgloss.Left, rows...)

	var buf bytes.Buffer
	_ = stats.RenderDifficultyTable(&buf, st)
	_ = stats.RenderDaily(&buf, st)
	return strings.TrimRight(body+"\n\n"+buf.String(), "\n")
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func projectionCard(label string, proj model.Projection) string {
	value := stats.FormatDays(proj.DaysRemaining)
	sub := "No pace yet"
	if proj.AvgPerDay > 0 {
		sub = fmt.Sprintf("%.2f / day", proj.AvgPerDay)
	}
	if proj.ETA != "" {
		sub += "  ETA " + proj.ETA
	}
	content := fmt.Sprintf("%s\n%s\n%s",
		cardTitleStyle.Render(label), cardValueStyle.Render(value), cardTitleStyle.Render(sub))
	return cardStyle.Render(content)
}

func (m *Model) renderCalendar() string {
	if len(m.stats.Months) == 0 {
		return "No calendar data."
	}
	if m.monthIdx < 0 || m.monthIdx >= len(m.stats.Months) {
		m.monthIdx = len(m.stats.Months) - 1
	}
	var buf bytes.Buffer
	_ = stats.RenderMonth(&buf, m.stats.Months[m.monthIdx])
	nav := headerStyle.Render(fmt.Sprintf("month %d/12  ([ prev, ] next)", m.monthIdx+1))
	return strings.TrimRight(buf.String(), "\n") + "\n" + nav
}

func (m *Model) renderHeatmap() string {
	days := m.stats.YearHeatmap
	if len(days) == 0 {
		return "No heatmap data."
	}
	byMonth := make(map[string][]model.DayCount)
	var keys []string
	for _, d := range days {
		key := d.Date[:7]
		if _, ok := byMonth[key]; !ok {
			keys = append(keys, key)
		}
		byMonth[key] = append(byMonth[key], d)
	}
	lines := make([]string, 0, len(keys)+1)
	lines = append(lines, headerStyle.Render(fmt.Sprintf("Year %d", m.stats.Year)))
	for _, key := range keys {
		var b strings.Builder
		b.WriteString(headerStyle.Render(key))
		b.WriteByte(' ')
		for _, d := range byMonth[key] {
			b.WriteString(heatCell(d.Count))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func heatCell(count int) string {
	return heatStyles[stats.HeatLevel(count)].Render("■")
}

func (m *Model) renderTimeline() string {
	entries := stats.TimelineEntries(m.stats.AnnotatedSolved, 0)
	if len(entries) == 0 {
		return "No solved entries this year."
	}
	lines := make([]string, 0, len(entries)*2)
	for _, e := range entries {
		title := e.Name
		if e.Number != nil {
			title = fmt.Sprintf("%d. %s", *e.Number, e.Name)
		}
		membership := "not in catalog"
		if e.InCatalog {
			membership = "catalog"
		}
		badge := difficultyStyle(e.Difficulty).Render("[" + e.Difficulty + "]")
		lines = append(lines, fmt.Sprintf("%s  %s  %s  %s",
			e.Date, badge, cardValueStyle.Render(title), headerStyle.Render("("+membership+")")))
		if e.MyComplexity != "" {
			lines = append(lines, headerStyle.Render("    "+e.MyComplexity))
		}
	}
	return strings.Join(lines, "\n")
}

func difficultyStyle(diff string) lipgloss.Style {
	switch diff {
	case model.DifficultyEasy:
		return easyStyle
	case model.DifficultyMedium:
		return mediumStyle
	case model.DifficultyHard:
		return hardStyle
	default:
		return headerStyle
	}
}

func (m *Model) rebuildSectionsTable() {
	columns := []table.Column{
		{Title: "Section", Width: 30},
		{Title: "Solved", Width: 6},
		{Title: "Total", Width: 5},
		{Title: "Pct", Width: 4},
	}
	solved := make(map[string]struct{})
	for _, e := range m.stats.AnnotatedSolved {
		if e.InCatalog {
			solved[catalog.NormalizeName(e.Name)] = struct{}{}
		}
	}
	rows := make([]table.Row, 0, len(m.sections))
	for _, sec := range m.sections {
		count, total := stats.SectionProgress(sec, solved)
		pct := 0
		if total > 0 {
			pct = count * 100 / total
		}
		rows = append(rows, table.Row{
			sec.Name,
			fmt.Sprintf("%d", count),
			fmt.Sprintf("%d", total),
			fmt.Sprintf("%d%%", pct),
		})
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(maxInt(1, len(rows))),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.Padding(0, 1).PaddingLeft(0)
	styles.Selected = styles.Cell.Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	t.SetStyles(styles)
	m.sectionsTable = t
}

func (m *Model) startYearInput() (tea.Model, tea.Cmd) {
	m.yearInputMode = true
	m.yearInputErr = ""
	m.yearInput.SetValue(strconv.Itoa(m.stats.Year))
	return m, m.yearInput.Focus()
}

func (m *Model) updateYearInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.yearInputMode = false
		m.yearInputErr = ""
		return m, nil
	case tea.KeyEnter:
		year, err := strconv.Atoi(strings.TrimSpace(m.yearInput.Value()))
		if err != nil || year < 1000 || year > 9999 {
			m.yearInputErr = "enter a four-digit year"
			return m, nil
		}
		m.opts.Year = year
		m.yearInputMode = false
		m.yearInputErr = ""
		m.refresh()
		m.updateLayout()
		return m, tea.ClearScreen
	}
	var cmd tea.Cmd
	m.yearInput, cmd = m.yearInput.Update(msg)
	return m, cmd
}

func (m *Model) renderYearModal() string {
	body := []string{
		cardValueStyle.Render("Active Year"),
		m.yearInput.View(),
		headerStyle.Render("Enter to apply / Esc to cancel"),
	}
	if m.yearInputErr != "" {
		body = append(body, errorStyle.Render(m.yearInputErr))
	}
	box := modalStyle.Width(modalWidth(m.width)).Render(strings.Join(body, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func modalWidth(width int) int {
	return maxInt(24, minInt(width-4, 48))
}

func modalInnerWidth(width int) int {
	w := modalWidth(width)
	w -= 6 // 2 border + 4 padding
	if w < 10 {
		return 10
	}
	return w
}

func padLines(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	return strings.Join(lines, "\n")
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
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
