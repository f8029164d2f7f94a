package session

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/yurifrl/moneyprinter/pkg/clock"
	"github.com/yurifrl/moneyprinter/pkg/models"
	"github.com/yurifrl/moneyprinter/pkg/sanitize"
	"github.com/yurifrl/moneyprinter/pkg/surface"
)

// Control identifiers expected on the display surface.
const (
	DollarsID = "dollars"
	CentsID   = "cents"
	TotalID   = "total"
	ResetID   = "reset"
)

const (
	MaxPrintAmount = 10_000
	MaxTotal       = 1_000_000_000

	DefaultPrintAmount = 12.34
)

// State holds the session state and keeps the display surface in sync with
// it. Every write goes through Sanitize before it is stored or displayed.
//
// State is not safe for concurrent use; the host event loop serializes calls.
type State struct {
	logger *log.Logger

	dollars surface.Control
	cents   surface.Control
	total   surface.Control
	reset   surface.Control

	printAmount float64
	totalAmount float64

	observers []func(models.Accrual)
}

// Snapshot is a copy of the session state.
type Snapshot struct {
	PrintAmount float64 `yaml:"print_amount"`
	Total       float64 `yaml:"total"`
}

// New resolves the controls the session binds to and wires the screen to
// session direction. A missing or mistyped control is an integrity error.
func New(s surface.Surface, logger *log.Logger) (*State, error) {
	if logger == nil {
		logger = log.Default()
	}
	st := &State{logger: logger}

	var err error
	if st.dollars, err = s.Lookup(DollarsID, surface.KindInput); err != nil {
		return nil, err
	}
	if st.cents, err = s.Lookup(CentsID, surface.KindInput); err != nil {
		return nil, err
	}
	if st.total, err = s.Lookup(TotalID, surface.KindText); err != nil {
		return nil, err
	}
	if st.reset, err = s.Lookup(ResetID, surface.KindButton); err != nil {
		return nil, err
	}

	st.dollars.Subscribe(st.readInputs)
	st.cents.Subscribe(st.readInputs)
	st.reset.Subscribe(st.Reset)

	return st, nil
}

// Start initializes the session, which also initializes the screen, and
// subscribes accrual to the clock.
func (s *State) Start(clk clock.Clock, initial float64) {
	s.SetPrintAmount(initial)
	s.SetTotal(0)
	clk.OnTick(func(at time.Time) { s.Accrue(at) })
	s.logger.Info("session started", "print_amount", s.printAmount, "total", s.totalAmount)
}

func (s *State) PrintAmount() float64 {
	return s.printAmount
}

// SetPrintAmount stores the sanitized amount and overwrites the dollars and
// cents controls. Programmatic control writes do not notify subscribers, so
// this never re-enters readInputs.
func (s *State) SetPrintAmount(x float64) {
	s.printAmount = sanitize.Sanitize(x, 0, MaxPrintAmount, 0)

	dollars, cents := sanitize.SplitDollarsAndCents(s.printAmount)
	s.dollars.SetValue(sanitize.FormatWhole(dollars))
	s.cents.SetValue(sanitize.FormatWhole(cents))
}

func (s *State) Total() float64 {
	return s.totalAmount
}

func (s *State) SetTotal(x float64) {
	s.totalAmount = sanitize.Sanitize(x, 0, MaxTotal, 0)
	s.total.SetValue(sanitize.FormatTotal(s.totalAmount))
}

// Accrue adds the print amount into the total and notifies observers.
func (s *State) Accrue(at time.Time) models.Accrual {
	s.SetTotal(s.totalAmount + s.printAmount)

	a := models.Accrual{At: at, Amount: s.printAmount, Total: s.totalAmount}
	s.logger.Debug("accrued", "amount", a.Amount, "total", a.Total)
	for _, fn := range s.observers {
		fn(a)
	}
	return a
}

func (s *State) Reset() {
	s.SetTotal(0)
	s.logger.Info("total reset", "print_amount", s.printAmount)
}

// OnAccrue registers fn to run after every accrual.
func (s *State) OnAccrue(fn func(models.Accrual)) {
	s.observers = append(s.observers, fn)
}

func (s *State) Snapshot() Snapshot {
	return Snapshot{PrintAmount: s.printAmount, Total: s.totalAmount}
}

func (s Snapshot) String() string {
	return fmt.Sprintf("print_amount=%s total=%s",
		sanitize.FormatTotal(s.PrintAmount), sanitize.FormatTotal(s.Total))
}

// readInputs is the screen to session half of the binding. It is fine to read
// the screen state here; it is the user's input.
func (s *State) readInputs() {
	rawDollars, rawCents := s.dollars.Value(), s.cents.Value()
	dollars := sanitize.ParseNumber(rawDollars)
	cents := sanitize.ParseNumber(rawCents)
	s.SetPrintAmount(dollars + 0.01*cents)
	s.logger.Debug("print amount changed", "dollars", rawDollars, "cents", rawCents, "amount", s.printAmount)
}

// NewMemorySurface returns an in-memory surface carrying every control the
// session expects.
func NewMemorySurface() *surface.Memory {
	return surface.NewMemory().
		Add(DollarsID, surface.KindInput).
		Add(CentsID, surface.KindInput).
		Add(TotalID, surface.KindText).
		Add(ResetID, surface.KindButton)
}
