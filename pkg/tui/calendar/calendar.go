// Package calendar is the interactive calendar screen: four switchable
// projections over one aggregated item list, with live reload when the
// store changes underneath it.
package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/docket/pkg/agenda"
	"tableflip.dev/docket/pkg/store"
)

type mode int

const (
	modeNormal mode = iota
	modeFilter
)

// Model contains the screen state.
type Model struct {
	persistence store.Persistence
	ctx         context.Context
	now         func() time.Time

	pivot agenda.Pivot
	mode  mode
	query string
	input textinput.Model

	items  []agenda.Item
	status string

	termWidth  int
	termHeight int

	changes <-chan store.Event
}

// New creates the calendar screen backed by the store.
func New(p store.Persistence) Model {
	return NewWithClock(p, time.Now)
}

// NewWithClock is New with the clock supplied, so the initial pivot and
// the t key agree on what "today" means.
func NewWithClock(p store.Persistence, now func() time.Time) Model {
	ti := textinput.New()
	ti.Placeholder = "filter title or case"
	ti.CharLimit = 128
	ti.Prompt = "/"

	m := Model{
		persistence: p,
		ctx:         context.Background(),
		now:         now,
		mode:        modeNormal,
		input:       ti,
		status:      "m/w/d/a views, ←/→ move, t today, / filter, r reload, q quit",
	}
	m.pivot = agenda.NewPivot(m.now())

	// One subscription for the model's lifetime; Watch ends with the ctx.
	if p != nil {
		if ch, err := p.Watch(m.ctx); err == nil {
			m.changes = ch
		}
	}
	return m
}

// messages
type errMsg struct{ err error }
type itemsLoadedMsg struct{ items []agenda.Item }
type storeChangedMsg struct{}

// Init loads the first snapshot and starts listening for store changes.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.load(), m.watch())
}

func (m *Model) load() tea.Cmd {
	return func() tea.Msg {
		if m.persistence == nil {
			return itemsLoadedMsg{nil}
		}
		items := agenda.Aggregate(agenda.Sources{
			Cases:       m.persistence.ListCases(m.ctx),
			GlobalTasks: m.persistence.ListTasks(m.ctx),
			Events:      m.persistence.ListEvents(m.ctx),
		})
		return itemsLoadedMsg{items}
	}
}

func (m *Model) watch() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case itemsLoadedMsg:
		m.items = msg.items
	case storeChangedMsg:
		cmds = append(cmds, m.load(), m.watch())
	case tea.KeyPressMsg:
		switch m.mode {
		case modeFilter:
			switch msg.String() {
			case "enter":
				m.query = m.input.Value()
				m.mode = modeNormal
				m.input.Blur()
			case "esc":
				m.mode = modeNormal
				m.input.Reset()
				m.input.Blur()
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
			}
		case modeNormal:
			switch msg.String() {
			case "m":
				m.pivot = m.pivot.WithMode(agenda.ViewMonth)
			case "w":
				m.pivot = m.pivot.WithMode(agenda.ViewWeek)
			case "d":
				m.pivot = m.pivot.WithMode(agenda.ViewDay)
			case "a":
				m.pivot = m.pivot.WithMode(agenda.ViewAgenda)
			case "left", "h":
				m.pivot = m.pivot.Prev()
			case "right", "l":
				m.pivot = m.pivot.Next()
			case "t":
				m.pivot = m.pivot.Today(m.now())
			case "/":
				m.mode = modeFilter
				m.input.SetValue(m.query)
				m.input.CursorEnd()
				if cmd := m.input.Focus(); cmd != nil {
					cmds = append(cmds, cmd)
				}
				cmds = append(cmds, textinput.Blink)
			case "r":
				cmds = append(cmds, m.load())
			case "q", "esc", "ctrl+c":
				cmds = append(cmds, tea.Quit)
			}
		}
	}

	return m, tea.Batch(cmds...)
}

// visible returns the filtered snapshot the active view projects.
func (m Model) visible() []agenda.Item {
	return agenda.Filter(m.items, m.query)
}

// View renders header, projection body, and status line.
func (m Model) View() string {
	header := headerStyle.Render(m.pivot.Title()) + "  " + m.renderTabs()

	items := m.visible()
	var body string
	switch m.pivot.Mode {
	case agenda.ViewWeek:
		body = m.renderWeek(agenda.Week(m.pivot.Date, items, m.now()))
	case agenda.ViewDay:
		body = m.renderDay(agenda.Day(m.pivot.Date, items))
	case agenda.ViewAgenda:
		body = m.renderAgenda(agenda.Agenda(items))
	default:
		body = m.renderMonth(agenda.Month(m.pivot.Date, items, m.now()))
	}

	footer := statusStyle.Render(m.status)
	if m.query != "" {
		footer = statusStyle.Render(fmt.Sprintf("filter: %q  (/ to change, enter on empty to clear)  %s", m.query, m.status))
	}
	if m.mode == modeFilter {
		footer = m.input.View()
	}

	return header + "\n\n" + body + "\n\n" + footer
}

func (m Model) renderTabs() string {
	out := ""
	for _, v := range []agenda.ViewMode{agenda.ViewMonth, agenda.ViewWeek, agenda.ViewDay, agenda.ViewAgenda} {
		style := tabStyle
		if v == m.pivot.Mode {
			style = tabActiveStyle
		}
		out += style.Render(v.String()) + " "
	}
	return out
}
