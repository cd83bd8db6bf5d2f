package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/alexanderramin/yabane/internal/domain"
	"github.com/alexanderramin/yabane/internal/timeline"
)

var (
	ganttMonthStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4472C4"))
	ganttWeekendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6666"))
	ganttCursorStyle  = lipgloss.NewStyle().Bold(true)
	ganttTodayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E91E63"))
	ganttStatusStyle  = lipgloss.NewStyle().Faint(true)
	ganttReorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E9A23B"))
)

func barStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color("#" + hex))
}

func (m ganttModel) View() string {
	if m.project == nil {
		return "loading...\n"
	}

	days := timeline.Days(m.rng)
	gridWidth := len(days) * m.dayWidth
	if m.width > 0 && gridWidth > m.width-ganttLabelWidth {
		gridWidth = m.width - ganttLabelWidth
	}
	if gridWidth < 0 {
		gridWidth = 0
	}

	var b strings.Builder
	b.WriteString(m.headerView(days, gridWidth))

	nodes := m.nodes()
	visible := m.visibleRows()
	for i := m.top; i < len(nodes) && i < m.top+visible; i++ {
		b.WriteString(m.rowView(nodes[i], i, gridWidth))
		b.WriteByte('\n')
	}

	b.WriteString(m.statusView())
	return b.String()
}

// headerView renders the merged month row and the day-of-month row.
func (m ganttModel) headerView(days []time.Time, gridWidth int) string {
	var months strings.Builder
	months.WriteString(padOrTrim(projectTitle(m), ganttLabelWidth))
	written := 0
	for _, span := range timeline.MonthSpansOfDays(days) {
		w := span.Width * m.dayWidth
		if written+w > gridWidth {
			w = gridWidth - written
		}
		if w <= 0 {
			break
		}
		label := fmt.Sprintf("%s %d", span.Month.String()[:3], span.Year)
		months.WriteString(ganttMonthStyle.Render(padOrTrim(label, w)))
		written += w
	}

	var dayRow strings.Builder
	dayRow.WriteString(strings.Repeat(" ", ganttLabelWidth))
	written = 0
	for _, d := range days {
		if written+m.dayWidth > gridWidth {
			break
		}
		cell := padOrTrim(fmt.Sprintf("%d", d.Day()), m.dayWidth)
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			cell = ganttWeekendStyle.Render(cell)
		}
		dayRow.WriteString(cell)
		written += m.dayWidth
	}

	return months.String() + "\n" + dayRow.String() + "\n"
}

func projectTitle(m ganttModel) string {
	title := m.project.Name
	if m.guard.IsDirty() {
		title += " *"
	}
	return runewidth.Truncate(title, ganttLabelWidth-1, "…")
}

// rowView renders one arrow row: indented label pane plus the bar grid.
func (m ganttModel) rowView(node timeline.Node, idx, gridWidth int) string {
	a := node.Arrow

	marker := "  "
	if m.collapsed[a.ID] {
		marker = "▸ "
	}
	label := strings.Repeat("  ", node.Depth) + marker + a.Name
	label = runewidth.Truncate(label, ganttLabelWidth-1, "…")
	label = padOrTrim(label, ganttLabelWidth)
	if idx == m.cursor {
		if m.reorder != nil {
			label = ganttReorderStyle.Render(label)
		} else {
			label = ganttCursorStyle.Render(label)
		}
	}

	return label + m.gridView(a, gridWidth)
}

// gridView paints the day columns for one arrow: today marker and milestone
// diamonds underneath, the status-colored bar on top. A drag in flight on
// this arrow paints its preview geometry instead of the stored dates.
func (m ganttModel) gridView(a *domain.Arrow, gridWidth int) string {
	cells := make([]string, gridWidth)
	for i := range cells {
		cells[i] = " "
	}

	if off, ok := timeline.TodayOffset(time.Now(), m.rng, m.dayWidth); ok && off < gridWidth {
		cells[off] = ganttTodayStyle.Render("│")
	}
	for _, mark := range timeline.MilestoneMarks(m.milestones, m.rng, m.dayWidth) {
		if mark.Offset < gridWidth {
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(mark.Milestone.Color))
			cells[mark.Offset] = style.Render("◆")
		}
	}

	var bar timeline.Bar
	switch {
	case m.drag != nil && m.drag.ArrowID == a.ID:
		bar = m.drag.Bar(m.rng.Start, m.dayWidth)
	case a.HasDates():
		bar = timeline.BarFor(*a.StartDate, *a.EndDate, m.rng.Start, m.dayWidth, a.Status)
	default:
		return strings.Join(cells, "")
	}

	style := barStyle(bar.Color)
	for i := bar.Left; i < bar.Left+bar.Width; i++ {
		if i >= 0 && i < gridWidth {
			cells[i] = style.Render(" ")
		}
	}
	return strings.Join(cells, "")
}

func padOrTrim(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return runewidth.Truncate(s, width, "")
	}
	return s + strings.Repeat(" ", width-w)
}

func (m ganttModel) statusView() string {
	if m.status != "" {
		return ganttStatusStyle.Render(m.status)
	}
	hints := make([]string, 0, 6)
	if s := m.cursorSummary(); s != "" {
		hints = append(hints, s)
	}
	for _, b := range []key.Binding{m.keys.Up, m.keys.Collapse, m.keys.Reorder, m.keys.Quit} {
		h := b.Help()
		hints = append(hints, h.Key+" "+h.Desc)
	}
	hints = append(hints, "drag bars with the mouse")
	return ganttStatusStyle.Render(strings.Join(hints, " · "))
}

// cursorSummary rolls the selected arrow's subtree tasks up into a short
// "name · n tasks · avg%" fragment for the status bar.
func (m ganttModel) cursorSummary() string {
	node, ok := m.cursorNode()
	if !ok {
		return ""
	}
	in := make(map[int64]bool)
	for _, id := range m.arrows.Subtree(node.Arrow.ID) {
		in[id] = true
	}
	tasks, progress := 0, 0
	for _, it := range m.items.All() {
		if in[it.ArrowID] {
			tasks++
			progress += it.Progress
		}
	}
	if tasks == 0 {
		return node.Arrow.Name
	}
	return fmt.Sprintf("%s · %d tasks · %d%%", node.Arrow.Name, tasks, progress/tasks)
}
