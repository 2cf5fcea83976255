package main

import (
	"context"
	"fmt"
	"time"

	"tableflip.dev/docket/pkg/docket"
	"tableflip.dev/docket/pkg/store"
)

// Seeds the configured store with the demo practice so the CLI and UI
// have something to show.
func main() {
	ctx := context.Background()

	demo := store.NewDemo(time.Now())

	p, err := store.Load(nil)
	if err != nil {
		panic(err)
	}

	for _, c := range demo.ListCases(ctx) {
		if err := p.StoreCase(c); err != nil {
			panic(err)
		}
	}
	// One global task and one general event so every calendar source has
	// something in it.
	due := docket.DateOf(time.Now()).AddDays(4)
	if _, err := p.CreateTask(ctx, docket.TaskDraft{
		Title:    "File Vakalatnama",
		DueDate:  due,
		Priority: docket.PriorityMedium,
	}); err != nil {
		panic(err)
	}

	start := time.Date(due.Year(), due.Month(), due.Day(), 16, 0, 0, 0, time.UTC)
	if _, err := p.CreateEvent(ctx, docket.EventDraft{
		Title:       "Client Meeting",
		Start:       docket.Timestamp{Time: start},
		End:         docket.Timestamp{Time: start.Add(time.Hour)},
		Description: "Quarterly review",
	}); err != nil {
		panic(err)
	}

	for _, c := range p.ListCases(ctx) {
		fmt.Printf("%s  %s  %d hearings  %d tasks\n",
			c.Reference(), c.Court, len(c.Hearings), len(c.Tasks))
	}
}
