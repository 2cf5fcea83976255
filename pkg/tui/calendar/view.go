package calendar

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/docket/pkg/agenda"
	"tableflip.dev/docket/pkg/docket"
	"tableflip.dev/docket/pkg/store"
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	tabActiveStyle = lipgloss.NewStyle().Bold(true).Underline(true)

	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	todayStyle   = lipgloss.NewStyle().Bold(true).Reverse(true)
	hearingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	taskStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("219"))
	generalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("117"))
	slotStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	groupStyle   = lipgloss.NewStyle().Bold(true)
)

func kindStyle(k docket.Kind) lipgloss.Style {
	switch k {
	case docket.KindHearing:
		return hearingStyle
	case docket.KindTask:
		return taskStyle
	default:
		return generalStyle
	}
}

// cellWidth is the month column width; six weeks of seven columns.
const cellWidth = 14

func (m Model) renderMonth(grid agenda.MonthGrid) string {
	var b strings.Builder

	for _, name := range []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"} {
		b.WriteString(dimStyle.Render(pad(name, cellWidth)))
	}
	b.WriteString("\n")

	for w := 0; w < agenda.MonthCells/7; w++ {
		cells := grid.Week(w)

		for _, cell := range cells {
			label := fmt.Sprintf("%2d", cell.Date.Day())
			switch {
			case cell.Today:
				label = todayStyle.Render(label)
			case !cell.InMonth:
				label = dimStyle.Render(label)
			}
			b.WriteString(label + strings.Repeat(" ", cellWidth-2))
		}
		b.WriteString("\n")

		// Two item lines per cell, then an overflow marker.
		for line := 0; line < 2; line++ {
			empty := true
			var row strings.Builder
			for _, cell := range cells {
				leading := cell.Leading(2)
				if line < len(leading) {
					it := leading[line]
					row.WriteString(kindStyle(it.Kind).Render(pad(it.Kind.Symbol()+" "+it.Title, cellWidth)))
					empty = false
				} else {
					row.WriteString(strings.Repeat(" ", cellWidth))
				}
			}
			if !empty {
				b.WriteString(row.String() + "\n")
			}
		}
		overflow := false
		var row strings.Builder
		for _, cell := range cells {
			if n := cell.Overflow(2); n > 0 {
				row.WriteString(dimStyle.Render(pad(fmt.Sprintf("+%d more", n), cellWidth)))
				overflow = true
			} else {
				row.WriteString(strings.Repeat(" ", cellWidth))
			}
		}
		if overflow {
			b.WriteString(row.String() + "\n")
		}
	}
	return b.String()
}

func (m Model) renderWeek(buckets []agenda.DayBucket) string {
	var b strings.Builder
	for _, bucket := range buckets {
		label := bucket.Date.Format("Mon Jan 2")
		if bucket.Today {
			label = todayStyle.Render(label)
		} else {
			label = groupStyle.Render(label)
		}
		b.WriteString(label + "\n")
		if len(bucket.Items) == 0 {
			b.WriteString(dimStyle.Render("  none") + "\n")
			continue
		}
		for _, it := range bucket.Items {
			b.WriteString(renderItem(it) + "\n")
		}
	}
	return b.String()
}

func (m Model) renderDay(sched agenda.DaySchedule) string {
	var b strings.Builder
	slotted := make(map[string]bool, len(sched.Items))
	for _, slot := range sched.Slots {
		b.WriteString(slotStyle.Render(slot.Label) + "\n")
		for _, it := range slot.Items {
			slotted[it.ID] = true
			b.WriteString(renderItem(it) + "\n")
		}
	}
	rest := false
	for _, it := range sched.Items {
		if slotted[it.ID] {
			continue
		}
		if !rest {
			b.WriteString(groupStyle.Render("Unscheduled") + "\n")
			rest = true
		}
		b.WriteString(renderItem(it) + "\n")
	}
	return b.String()
}

func (m Model) renderAgenda(groups []agenda.DateGroup) string {
	if len(groups) == 0 {
		return dimStyle.Render("nothing scheduled")
	}
	var b strings.Builder
	for _, group := range groups {
		b.WriteString(groupStyle.Render(group.Label) + "\n")
		for _, it := range group.Items {
			b.WriteString(renderItem(it) + "\n")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderItem(it agenda.Item) string {
	clock := it.Time.String()
	if clock == "" {
		clock = "--:--"
	}
	line := "  " + clock + " " + kindStyle(it.Kind).Render(it.Kind.Symbol()+" "+it.Title)
	if it.SourceInfo != "" {
		line += dimStyle.Render("  " + it.SourceInfo)
	}
	return line
}

func pad(s string, width int) string {
	s = truncate.StringWithTail(s, uint(width-1), "…")
	if gap := width - len([]rune(s)); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// Run launches the screen in the alternate buffer.
func Run(p store.Persistence) error {
	prog := tea.NewProgram(New(p), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}
