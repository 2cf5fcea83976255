package agenda

import (
	"sort"

	"tableflip.dev/docket/pkg/docket"
)

// DateGroup is one dated section of the agenda listing.
type DateGroup struct {
	Date  docket.Date
	Label string // "Monday, January 2, 2006"
	Items []Item
}

// Agenda sorts every item ascending by date and groups them into one
// section per distinct date. Within a date, aggregation order is kept.
func Agenda(items []Item) []DateGroup {
	sorted := make([]Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date.Time)
	})

	groups := make([]DateGroup, 0)
	index := make(map[string]int)
	for _, it := range sorted {
		key := it.Date.String()
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, DateGroup{
				Date:  it.Date,
				Label: it.Date.Format("Monday, January 2, 2006"),
			})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	return groups
}
