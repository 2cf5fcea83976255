package causelist

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/docket/pkg/causelist"
	"tableflip.dev/docket/pkg/docket"
	"tableflip.dev/docket/pkg/printers"
	"tableflip.dev/docket/pkg/store"
)

// CauseList fetches the court's published list for a date and matches it
// against the case book. With AcceptSerial set, the matching Action
// Required row is recorded as a hearing on its linked case.
type CauseList struct {
	On           docket.Date
	AcceptSerial string

	Source      causelist.Source
	Persistence store.Persistence
}

func (n *CauseList) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not check cause list, no persistence")
	}
	if n.Source == nil {
		n.Source = causelist.Simulated{}
	}
	if n.On.IsZero() {
		n.On = docket.Today()
	}

	entries, err := n.Source.ListFor(ctx, n.On)
	if err != nil {
		return err
	}
	rows := causelist.Match(entries, n.Persistence.ListCases(ctx), n.On)

	if n.AcceptSerial != "" {
		return n.accept(ctx, rows)
	}

	pp := printers.PrettyPrint{}
	pp.Title("Cause List for " + n.On.String())
	pp.NewLine()
	pp.CauseList(rows...)
	return nil
}

func (n *CauseList) accept(ctx context.Context, rows []causelist.Row) error {
	for _, row := range rows {
		if row.SerialNumber != n.AcceptSerial {
			continue
		}
		if row.Status != causelist.StatusActionRequired {
			return fmt.Errorf("entry %s is %s, nothing to accept", row.SerialNumber, row.Status)
		}
		h, err := n.Persistence.AddHearing(ctx, row.LinkedCaseID, row.Accept(n.On))
		if err != nil {
			return err
		}
		pp := printers.PrettyPrint{}
		pp.Title(fmt.Sprintf("Hearing %s recorded on case %s", h.ID, row.CaseNumber))
		return nil
	}
	return fmt.Errorf("no cause-list entry with serial %s", n.AcceptSerial)
}
