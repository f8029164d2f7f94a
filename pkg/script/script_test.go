package script

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yurifrl/moneyprinter/pkg/models"
	"github.com/yurifrl/moneyprinter/pkg/session"
)

const sample = `
amount: 12.34
start: 2025-03-17T12:00:00Z
interval: 1s
steps:
  - type: tick
    count: 2
  - type: reset
  - type: input
    control: dollars
    value: "5"
  - type: input
    control: cents
    value: "60"
  - type: tick
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	require.Len(t, s.Steps, 5)
	assert.Equal(t, 12.34, s.InitialAmount(0))
	assert.Equal(t, time.Second, s.Every)
	assert.Equal(t, time.Date(2025, 3, 17, 12, 0, 0, 0, time.UTC), s.Start.UTC())
	assert.Equal(t, Step{Type: Tick, Count: 2}, s.Steps[0])
	assert.Equal(t, Step{Type: Input, Control: "dollars", Value: "5"}, s.Steps[2])
	assert.Equal(t, 1, s.Steps[4].Count, "tick count defaults to one")
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"no steps", "amount: 1\n", "script has no steps"},
		{"bad yaml", "steps: [", "failed to parse yaml"},
		{"unknown type", "steps:\n  - type: jump\n", "unknown step"},
		{"unknown control", "steps:\n  - type: input\n    control: total\n", "must target"},
		{"negative tick", "steps:\n  - type: tick\n    count: -1\n", "must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := Parse([]byte("steps:\n  - type: jump\n"))
	assert.True(t, errors.Is(err, ErrUnknownStep))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read script file")
}

func TestRun(t *testing.T) {
	s, err := Parse([]byte(sample))
	require.NoError(t, err)

	mem := session.NewMemorySurface()
	st, err := session.New(mem, log.New(io.Discard))
	require.NoError(t, err)

	clk := s.Clock(time.Minute)
	st.Start(clk, s.InitialAmount(session.DefaultPrintAmount))

	var ledger []models.Accrual
	st.OnAccrue(func(a models.Accrual) { ledger = append(ledger, a) })

	var totals []string
	err = s.Run(mem, clk, func(_ int, _ Step) {
		totals = append(totals, mem.Text(session.TotalID))
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"24.68", "0.00", "0.00", "0.00", "5.60"}, totals)
	assert.Equal(t, "5", mem.Text(session.DollarsID))
	assert.Equal(t, "60", mem.Text(session.CentsID))
	require.Len(t, ledger, 3)
	assert.Equal(t, s.Start.Add(3*time.Second), ledger[2].At)
}

func TestClock_DefaultInterval(t *testing.T) {
	s := &Script{Start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	clk := s.Clock(time.Minute)
	assert.Equal(t, s.Start.Add(time.Minute), clk.Tick())
	assert.Equal(t, 7.0, s.InitialAmount(7))
}

func TestStep_String(t *testing.T) {
	assert.Equal(t, `input dollars="5"`, Step{Type: Input, Control: "dollars", Value: "5"}.String())
	assert.Equal(t, "tick x3", Step{Type: Tick, Count: 3}.String())
	assert.Equal(t, "reset", Step{Type: Reset}.String())
}
