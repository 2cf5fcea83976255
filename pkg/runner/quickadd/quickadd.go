package quickadd

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/docket/pkg/gateway"
	"tableflip.dev/docket/pkg/printers"
	"tableflip.dev/docket/pkg/quick"
	"tableflip.dev/docket/pkg/store"
)

// QuickAdd parses one line of free text into a draft entry. The draft is
// shown for review; with Confirm set it is appended through the gateway,
// matching the confirm step of the interactive flow.
type QuickAdd struct {
	Text    string
	Confirm bool

	Persistence store.Persistence
}

func (n *QuickAdd) Do(ctx context.Context) error {
	draft := quick.Parse(n.Text)

	pp := printers.PrettyPrint{}
	pp.Title("Draft")
	printDraft(draft)

	if !n.Confirm {
		faint := color.New(color.Faint, color.Italic)
		_, _ = faint.Println("re-run with --confirm to save")
		return nil
	}

	if n.Persistence == nil {
		return errors.New("can not save, no persistence")
	}

	g := &gateway.Gateway{Tasks: n.Persistence, Events: n.Persistence}
	created, err := g.Create(ctx, gateway.Payload{
		Kind:        draft.Kind,
		Title:       draft.Title,
		Date:        draft.Date,
		Time:        draft.Time,
		Description: draft.Description,
	})
	if err != nil {
		return err
	}

	switch {
	case created.Task != nil:
		pp.Title("Saved task " + created.Task.ID)
	case created.Event != nil:
		pp.Title("Saved event " + created.Event.ID)
	}
	return nil
}

func printDraft(draft quick.Result) {
	faint := color.New(color.Faint)
	clock := draft.Time.String()
	if clock == "" {
		clock = "unscheduled"
	}
	fmt.Printf("%s %s\n", draft.Kind.Symbol(), draft.Title)
	_, _ = faint.Printf("  %s on %s at %s\n", draft.Kind, draft.Date, clock)
}
