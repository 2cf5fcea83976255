package agenda

import (
	"sort"
	"time"

	"tableflip.dev/docket/pkg/docket"
)

// DayBucket is one day column of the week view.
type DayBucket struct {
	Date  docket.Date
	Today bool
	Items []Item
}

// Week projects seven consecutive days starting on the Monday of the week
// containing pivot. Items within a day sort ascending by time; items
// without a time land at the end of the day.
func Week(pivot time.Time, items []Item, now time.Time) []DayBucket {
	start := StartOfWeek(pivot)
	today := docket.DateOf(now)

	byDate := make(map[string][]Item, len(items))
	for _, it := range items {
		key := it.Date.String()
		byDate[key] = append(byDate[key], it)
	}

	buckets := make([]DayBucket, 0, 7)
	for i := 0; i < 7; i++ {
		date := docket.DateOf(start.AddDate(0, 0, i))
		day := byDate[date.String()]
		sort.SliceStable(day, func(i, j int) bool {
			return timeKey(day[i]) < timeKey(day[j])
		})
		buckets = append(buckets, DayBucket{
			Date:  date,
			Today: date.String() == today.String(),
			Items: day,
		})
	}
	return buckets
}
