package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/docket/pkg/agenda"
	"tableflip.dev/docket/pkg/causelist"
	"tableflip.dev/docket/pkg/docket"
)

// PrettyPrint renders calendar projections and store listings for the
// terminal.
type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)
	switch count {
	case 1:
		_, _ = c.Println(" item")
	default:
		_, _ = c.Println(" items")
	}
}

// Agenda prints one dated section per group.
func (pp *PrettyPrint) Agenda(groups []agenda.DateGroup) {
	if len(groups) == 0 {
		pp.none()
		return
	}
	for _, group := range groups {
		pp.Title(group.Label)
		pp.items(group.Items...)
	}
}

// Week prints seven day columns as stacked sections.
func (pp *PrettyPrint) Week(buckets []agenda.DayBucket) {
	for _, bucket := range buckets {
		label := bucket.Date.Format("Mon Jan 2")
		if bucket.Today {
			label += " (today)"
		}
		pp.TitleWithCount(label, len(bucket.Items))
		if len(bucket.Items) > 0 {
			pp.items(bucket.Items...)
		}
	}
}

// Day prints the hourly schedule, then whatever fell outside the
// working-hours window.
func (pp *PrettyPrint) Day(sched agenda.DaySchedule) {
	faint := color.New(color.Faint)

	slotted := make(map[string]bool, len(sched.Items))
	for _, slot := range sched.Slots {
		_, _ = faint.Printf("%s\n", slot.Label)
		for _, it := range slot.Items {
			slotted[it.ID] = true
			pp.items(it)
		}
	}

	rest := make([]agenda.Item, 0)
	for _, it := range sched.Items {
		if !slotted[it.ID] {
			rest = append(rest, it)
		}
	}
	if len(rest) > 0 {
		pp.NewLine()
		pp.Title("Unscheduled")
		pp.items(rest...)
	}
}

// Items prints a flat item listing.
func (pp *PrettyPrint) Items(items ...agenda.Item) {
	if len(items) == 0 {
		pp.none()
		return
	}
	pp.items(items...)
}

func (pp *PrettyPrint) items(items ...agenda.Item) {
	tbl := uitable.New()
	tbl.Separator = "  "

	for _, it := range items {
		clock := it.Time.String()
		if clock == "" {
			clock = "--:--"
		}
		title := it.Title
		if it.Attachments > 0 {
			title = fmt.Sprintf("%s (%d att.)", title, it.Attachments)
		}
		row := []interface{}{
			kindColor(it.Kind).Sprint(it.Kind.Symbol()),
			clock,
			title,
			color.New(color.Faint).Sprint(it.SourceInfo),
		}
		if pp.ShowID {
			row = append(row, color.New(color.FgHiYellow, color.Faint).Sprint(it.ID))
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Cases prints the case book.
func (pp *PrettyPrint) Cases(cases ...*docket.Case) {
	if len(cases) == 0 {
		pp.none()
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("REF", "TYPE", "COURT", "STAGE", "STATUS", "HEARINGS", "TASKS")
	for _, c := range cases {
		tbl.AddRow(c.Reference(), c.CaseType, c.Court, c.Stage, c.Status,
			fmt.Sprintf("%d", len(c.Hearings)), fmt.Sprintf("%d", len(c.Tasks)))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// CauseList prints matched cause-list rows, colouring the status.
func (pp *PrettyPrint) CauseList(rows ...causelist.Row) {
	if len(rows) == 0 {
		pp.none()
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("SN", "CASE", "PARTIES", "PURPOSE", "STATUS")
	for _, row := range rows {
		parties := fmt.Sprintf("%s v. %s", row.Petitioner, row.Respondent)
		tbl.AddRow(row.SerialNumber, row.CaseNumber, parties, row.Purpose,
			statusColor(row.Status).Sprint(string(row.Status)))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Print(" none\n\n")
}

func kindColor(k docket.Kind) *color.Color {
	switch k {
	case docket.KindHearing:
		return color.New(color.FgHiRed, color.Bold)
	case docket.KindTask:
		return color.New(color.FgHiMagenta)
	default:
		return color.New(color.FgHiBlue)
	}
}

func statusColor(s causelist.Status) *color.Color {
	switch s {
	case causelist.StatusLinked:
		return color.New(color.FgHiGreen)
	case causelist.StatusActionRequired:
		return color.New(color.FgHiYellow, color.Bold)
	default:
		return color.New(color.Faint)
	}
}
