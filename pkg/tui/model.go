package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yurifrl/moneyprinter/pkg/clock"
	"github.com/yurifrl/moneyprinter/pkg/session"
	"github.com/yurifrl/moneyprinter/pkg/surface"
)

// Focus order of the form.
const (
	focusDollars = iota
	focusCents
	focusReset
	focusCount
)

// Model is the terminal form. It is both the display surface the session
// binds to and the clock that drives accrual: bubbletea delivers key and tick
// messages to Update one at a time, which serializes every session mutation.
type Model struct {
	interval time.Duration
	focus    int
	quitting bool

	dollars *inputControl
	cents   *inputControl
	total   *textControl
	reset   *buttonControl

	tickHandlers []func(time.Time)

	readClipboard func() (string, error)
}

type (
	tickMsg   time.Time
	pastedMsg string
)

var (
	_ tea.Model       = (*Model)(nil)
	_ surface.Surface = (*Model)(nil)
	_ clock.Clock     = (*Model)(nil)
)

func NewModel(interval time.Duration) *Model {
	if interval <= 0 {
		interval = clock.DefaultInterval
	}
	m := &Model{
		interval: interval,
		dollars:  newInputControl(session.DollarsID),
		cents:    newInputControl(session.CentsID),
		total:    &textControl{id: session.TotalID},
		reset:    &buttonControl{id: session.ResetID},

		readClipboard: clipboard.ReadAll,
	}
	m.dollars.input.Focus()
	return m
}

func (m *Model) Lookup(id string, kind surface.Kind) (surface.Control, error) {
	var ctrl surface.Control
	switch id {
	case m.dollars.id:
		ctrl = m.dollars
	case m.cents.id:
		ctrl = m.cents
	case m.total.id:
		ctrl = m.total
	case m.reset.id:
		ctrl = m.reset
	}
	return surface.Check(id, ctrl, kind)
}

func (m *Model) OnTick(handler func(at time.Time)) {
	m.tickHandlers = append(m.tickHandlers, handler)
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.tick())
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab", "down":
			return m, m.setFocus(m.focus + 1)
		case "shift+tab", "up":
			return m, m.setFocus(m.focus - 1)
		case "ctrl+r":
			m.reset.activate()
			return m, nil
		case "enter", " ":
			if m.focus == focusReset {
				m.reset.activate()
				return m, nil
			}
		case "ctrl+v":
			if m.focused() != nil {
				return m, m.paste()
			}
		}
		return m, m.forward(msg)

	case pastedMsg:
		return m, m.forward(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(string(msg)), Paste: true})

	case tickMsg:
		at := time.Time(msg)
		for _, h := range m.tickHandlers {
			h(at)
		}
		return m, m.tick()
	}

	// Cursor blink and anything else belongs to the focused input.
	return m, m.forward(msg)
}

// forward hands msg to the focused input. Any change of its value raises the
// input notification; programmatic SetValue calls never do.
func (m *Model) forward(msg tea.Msg) tea.Cmd {
	in := m.focused()
	if in == nil {
		return nil
	}
	before := in.input.Value()
	var cmd tea.Cmd
	*in.input, cmd = in.input.Update(msg)
	if in.input.Value() != before {
		in.notify()
	}
	return cmd
}

// paste reads the clipboard off the event loop; the text comes back as a
// pastedMsg and is inserted like typed runes.
func (m *Model) paste() tea.Cmd {
	read := m.readClipboard
	return func() tea.Msg {
		text, err := read()
		if err != nil || text == "" {
			return nil
		}
		return pastedMsg(text)
	}
}

func (m *Model) focused() *inputControl {
	switch m.focus {
	case focusDollars:
		return m.dollars
	case focusCents:
		return m.cents
	}
	return nil
}

func (m *Model) setFocus(f int) tea.Cmd {
	m.focus = (f + focusCount) % focusCount
	m.dollars.input.Blur()
	m.cents.input.Blur()
	if in := m.focused(); in != nil {
		return in.input.Focus()
	}
	return nil
}

// Run starts the program and blocks until the user quits or ctx is done.
func Run(ctx context.Context, m *Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}

type inputControl struct {
	id       string
	input    *textinput.Model
	handlers []func()
}

func newInputControl(id string) *inputControl {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "0"
	ti.CharLimit = 12
	ti.Width = 12
	return &inputControl{id: id, input: &ti}
}

func (c *inputControl) ID() string { return c.id }
func (c *inputControl) Kind() surface.Kind { return surface.KindInput }
func (c *inputControl) Value() string { return c.input.Value() }
func (c *inputControl) SetValue(v string) { c.input.SetValue(v) }
func (c *inputControl) Subscribe(h func()) { c.handlers = append(c.handlers, h) }

func (c *inputControl) notify() {
	for _, h := range c.handlers {
		h()
	}
}

type textControl struct {
	id    string
	value string
}

func (c *textControl) ID() string { return c.id }
func (c *textControl) Kind() surface.Kind { return surface.KindText }
func (c *textControl) Value() string { return c.value }
func (c *textControl) SetValue(v string) { c.value = v }

// Subscribe is a no-op: the total is not editable.
func (c *textControl) Subscribe(func()) {}

type buttonControl struct {
	id       string
	handlers []func()
}

func (c *buttonControl) ID() string { return c.id }
func (c *buttonControl) Kind() surface.Kind { return surface.KindButton }
func (c *buttonControl) Value() string { return "" }
func (c *buttonControl) SetValue(string) {}
func (c *buttonControl) Subscribe(h func()) { c.handlers = append(c.handlers, h) }

func (c *buttonControl) activate() {
	for _, h := range c.handlers {
		h()
	}
}
