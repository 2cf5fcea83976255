package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	ical "github.com/arran4/golang-ical"

	"tableflip.dev/docket/pkg/agenda"
	"tableflip.dev/docket/pkg/docket"
	"tableflip.dev/docket/pkg/store"
	"tableflip.dev/docket/pkg/timeutil"
)

// Export serializes the aggregated calendar as an iCalendar feed so the
// practice's entries can be subscribed to from any calendar client.
type Export struct {
	Path   string // "" or "-" writes to stdout
	Filter string
	Window string // horizon from today, e.g. "4w" or "10d"

	Persistence store.Persistence
}

func (n *Export) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not export, no persistence")
	}

	items := agenda.Aggregate(agenda.Sources{
		Cases:       n.Persistence.ListCases(ctx),
		GlobalTasks: n.Persistence.ListTasks(ctx),
		Events:      n.Persistence.ListEvents(ctx),
	})
	items = agenda.Filter(items, n.Filter)

	horizon, _, err := timeutil.ParseWindow(n.Window)
	if err != nil {
		return err
	}
	items = within(items, docket.Today(), horizon)

	out := io.Writer(os.Stdout)
	if n.Path != "" && n.Path != "-" {
		f, err := os.Create(n.Path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	cal := Calendar(items, time.Now())
	_, err = io.WriteString(out, cal.Serialize())
	return err
}

// Calendar builds the VCALENDAR for a set of items. Untimed items export
// as all-day entries; timed items get a one-hour slot unless the backing
// record carries its own end instant.
func Calendar(items []agenda.Item, now time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//docket//calendar//EN")

	for _, it := range items {
		ev := cal.AddEvent(fmt.Sprintf("%s@docket", it.ID))
		ev.SetDtStampTime(now)
		ev.SetSummary(summary(it))
		if d := it.Description(); d != "" {
			ev.SetDescription(d)
		}

		if it.Time.IsZero() {
			ev.SetAllDayStartAt(it.Date.Time)
			ev.SetAllDayEndAt(it.Date.AddDays(1).Time)
			continue
		}

		start, end := span(it)
		ev.SetStartAt(start)
		ev.SetEndAt(end)
	}
	return cal
}

// within keeps items dated inside [today, today+horizon). Past entries
// are left out of the feed.
func within(items []agenda.Item, today docket.Date, horizon time.Duration) []agenda.Item {
	end := today.Time.Add(horizon)
	kept := make([]agenda.Item, 0, len(items))
	for _, it := range items {
		if it.Date.Before(today.Time) || !it.Date.Before(end) {
			continue
		}
		kept = append(kept, it)
	}
	return kept
}

func summary(it agenda.Item) string {
	if it.SourceInfo == agenda.SourceGeneral || it.SourceInfo == agenda.SourceGlobalTask {
		return it.Title
	}
	return fmt.Sprintf("%s [%s]", it.Title, it.SourceInfo)
}

func span(it agenda.Item) (time.Time, time.Time) {
	if e, ok := it.Raw.(*docket.Event); ok && !e.End.IsZero() {
		return e.Start.Time, e.End.Time
	}
	at, err := time.Parse("15:04", it.Time.String())
	if err != nil {
		at = time.Time{}
	}
	start := time.Date(it.Date.Year(), it.Date.Month(), it.Date.Day(),
		at.Hour(), at.Minute(), 0, 0, time.UTC)
	return start, start.Add(time.Hour)
}
