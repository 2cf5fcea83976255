package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/docket/pkg/agenda"
)

// How many items a month cell lists before collapsing to "+N more".
const cellItems = 2

const weekWidth = len("Mon 23  Tue 24  Wed 25  Thu 26  Fri 27  Sat 28  Sun 29")

// Month prints the 42-cell grid one week row at a time. Days outside the
// pivot month render faint; today renders bold.
func (pp *PrettyPrint) Month(grid agenda.MonthGrid) {
	tf := color.New(color.FgWhite, color.Italic)

	m := fmt.Sprintf("%s %d", grid.Month.String(), grid.Year)
	mid := (weekWidth - len(m)) / 2
	_, _ = tf.Printf("%s%s\n", strings.Repeat(" ", mid), m)

	for w := 0; w < MonthCells/7; w++ {
		pp.printWeekRow(grid.Week(w))
	}
	pp.NewLine()
}

// MonthCells mirrors the grid size so callers of the printer do not need
// the projection package for layout math.
const MonthCells = agenda.MonthCells

func (pp *PrettyPrint) printWeekRow(cells []agenda.MonthCell) {
	out := color.New(color.Faint, color.FgWhite)
	in := color.New(color.FgHiWhite)
	today := color.New(color.Bold, color.FgHiWhite, color.Underline)

	for _, cell := range cells {
		printer := out
		if cell.InMonth {
			printer = in
		}
		if cell.Today {
			printer = today
		}
		_, _ = printer.Printf("%s %2d", cell.Date.Format("Mon"), cell.Date.Day())
		fmt.Print("  ")
	}
	fmt.Print("\n")

	// Busy days list their first cellItems titles beneath the row, with
	// an overflow marker when a day holds more.
	more := color.New(color.Faint, color.Italic)
	for _, cell := range cells {
		if len(cell.Items) == 0 {
			continue
		}
		fmt.Printf("  %s:", cell.Date.Format("Jan 2"))
		for _, it := range cell.Leading(cellItems) {
			_, _ = kindColor(it.Kind).Printf("  %s %s", it.Kind.Symbol(), truncate.StringWithTail(it.Title, 24, "…"))
		}
		if n := cell.Overflow(cellItems); n > 0 {
			_, _ = more.Printf("  +%d more", n)
		}
		fmt.Print("\n")
	}
}
