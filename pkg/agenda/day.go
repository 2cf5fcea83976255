package agenda

import (
	"fmt"
	"sort"
	"time"

	"tableflip.dev/docket/pkg/docket"
)

// Working-hours window shown as hourly slots in the day view.
const (
	FirstSlotHour = 8
	LastSlotHour  = 19
)

// HourSlot is one fixed hour row of the day view.
type HourSlot struct {
	Label string // "08:00" .. "19:00"
	Items []Item
}

// DaySchedule is the projection for a single date.
type DaySchedule struct {
	Date docket.Date

	// Items holds every item for the date, time-ascending, untimed last.
	// Slots only cover the working-hours window; items outside it stay
	// visible here.
	Items []Item
	Slots []HourSlot
}

// Day projects the items falling on exactly the pivot date.
func Day(pivot time.Time, items []Item) DaySchedule {
	date := docket.DateOf(pivot)

	day := make([]Item, 0)
	for _, it := range items {
		if it.Date.String() == date.String() {
			day = append(day, it)
		}
	}
	sort.SliceStable(day, func(i, j int) bool {
		return timeKey(day[i]) < timeKey(day[j])
	})

	slots := make([]HourSlot, 0, LastSlotHour-FirstSlotHour+1)
	for h := FirstSlotHour; h <= LastSlotHour; h++ {
		label := fmt.Sprintf("%02d:00", h)
		slot := HourSlot{Label: label}
		for _, it := range day {
			if !it.Time.IsZero() && it.Time.Hour() == label[:2] {
				slot.Items = append(slot.Items, it)
			}
		}
		slots = append(slots, slot)
	}

	return DaySchedule{Date: date, Items: day, Slots: slots}
}
