package agenda

import (
	"sort"
	"time"

	"tableflip.dev/docket/pkg/docket"
)

// MonthCells is the fixed size of a month grid: six Monday-first weeks.
const MonthCells = 42

// MonthCell is one day square in the month grid.
type MonthCell struct {
	Date    docket.Date
	InMonth bool
	Today   bool
	Items   []Item
}

// Leading returns the first n items of the cell for compact display.
func (c MonthCell) Leading(n int) []Item {
	if len(c.Items) <= n {
		return c.Items
	}
	return c.Items[:n]
}

// Overflow is the count hidden behind a "+N more" label when only n items
// are shown.
func (c MonthCell) Overflow(n int) int {
	if len(c.Items) <= n {
		return 0
	}
	return len(c.Items) - n
}

// MonthGrid is the 42-cell projection for the month containing the pivot.
type MonthGrid struct {
	Month time.Month
	Year  int
	Cells []MonthCell
}

// Week returns the seven cells of week row i (0..5).
func (g MonthGrid) Week(i int) []MonthCell {
	return g.Cells[i*7 : i*7+7]
}

// Month buckets items into the grid for the month containing pivot.
// Leading and trailing days from the adjacent months pad the grid to
// exactly 42 cells. Within a day, hearings sort before everything else;
// the sort is stable, so re-projecting an already ordered day keeps its
// order.
func Month(pivot time.Time, items []Item, now time.Time) MonthGrid {
	first := time.Date(pivot.Year(), pivot.Month(), 1, 0, 0, 0, 0, pivot.Location())

	// Monday-first column of the 1st: Monday 0 .. Sunday 6.
	lead := (int(first.Weekday()) + 6) % 7
	start := first.AddDate(0, 0, -lead)

	byDate := make(map[string][]Item, len(items))
	for _, it := range items {
		key := it.Date.String()
		byDate[key] = append(byDate[key], it)
	}
	for key := range byDate {
		day := byDate[key]
		sort.SliceStable(day, func(i, j int) bool {
			return day[i].Kind == docket.KindHearing && day[j].Kind != docket.KindHearing
		})
	}

	grid := MonthGrid{Month: pivot.Month(), Year: pivot.Year(), Cells: make([]MonthCell, 0, MonthCells)}
	today := docket.DateOf(now)
	for i := 0; i < MonthCells; i++ {
		day := start.AddDate(0, 0, i)
		date := docket.DateOf(day)
		grid.Cells = append(grid.Cells, MonthCell{
			Date:    date,
			InMonth: day.Month() == pivot.Month(),
			Today:   date.String() == today.String(),
			Items:   byDate[date.String()],
		})
	}
	return grid
}
