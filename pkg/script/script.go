package script

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yurifrl/moneyprinter/pkg/clock"
	"github.com/yurifrl/moneyprinter/pkg/session"
	"github.com/yurifrl/moneyprinter/pkg/surface"
)

// Step types.
const (
	Input = "input"
	Tick  = "tick"
	Reset = "reset"
)

var ErrUnknownStep = errors.New("unknown step")

// Script is a recorded sequence of user edits, clock ticks and resets.
type Script struct {
	Amount *float64      `yaml:"amount"`
	Start  time.Time     `yaml:"start"`
	Every  time.Duration `yaml:"interval"`
	Steps  []Step        `yaml:"steps"`
}

type Step struct {
	Type    string `yaml:"type"`
	Control string `yaml:"control,omitempty"`
	Value   string `yaml:"value,omitempty"`
	Count   int    `yaml:"count,omitempty"`
}

func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("script has no steps")
	}
	for i := range s.Steps {
		if err := s.Steps[i].validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &s, nil
}

func (st *Step) validate() error {
	switch st.Type {
	case Input:
		if st.Control != session.DollarsID && st.Control != session.CentsID {
			return fmt.Errorf("input step must target %s or %s, got %q", session.DollarsID, session.CentsID, st.Control)
		}
	case Tick:
		if st.Count < 0 {
			return fmt.Errorf("tick count must not be negative")
		}
		if st.Count == 0 {
			st.Count = 1
		}
	case Reset:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStep, st.Type)
	}
	return nil
}

// InitialAmount returns the configured starting amount, or fallback.
func (s *Script) InitialAmount(fallback float64) float64 {
	if s.Amount == nil {
		return fallback
	}
	return *s.Amount
}

// Clock returns a manual clock positioned at the script's start time.
func (s *Script) Clock(fallback time.Duration) *clock.Manual {
	every := s.Every
	if every <= 0 {
		every = fallback
	}
	return clock.NewManual(s.Start, every)
}

// Run applies every step in order against the surface and clock. after is
// called once per step with its 1-based index.
func (s *Script) Run(mem *surface.Memory, clk *clock.Manual, after func(n int, step Step)) error {
	for i, step := range s.Steps {
		switch step.Type {
		case Input:
			if err := mem.Type(step.Control, step.Value); err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
		case Tick:
			for range step.Count {
				clk.Tick()
			}
		case Reset:
			if err := mem.Activate(session.ResetID); err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
		}
		if after != nil {
			after(i+1, step)
		}
	}
	return nil
}

func (st Step) String() string {
	switch st.Type {
	case Input:
		return fmt.Sprintf("input %s=%q", st.Control, st.Value)
	case Tick:
		return fmt.Sprintf("tick x%d", st.Count)
	default:
		return st.Type
	}
}
