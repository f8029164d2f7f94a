package clock

import (
	"context"
	"time"
)

// DefaultInterval is the accrual period.
const DefaultInterval = time.Second

// Clock delivers tick notifications to its subscribers.
type Clock interface {
	OnTick(handler func(at time.Time))
}

type subscribers []func(time.Time)

func (s subscribers) fire(at time.Time) {
	for _, h := range s {
		h(at)
	}
}

// Ticker is a wall clock. Handlers run on the goroutine that calls Run, one
// tick at a time.
type Ticker struct {
	interval time.Duration
	handlers subscribers
}

func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Ticker{interval: interval}
}

func (t *Ticker) OnTick(handler func(at time.Time)) {
	t.handlers = append(t.handlers, handler)
}

func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Run delivers ticks until ctx is done or, when limit > 0, until limit ticks
// have been delivered. It returns the number of ticks delivered.
func (t *Ticker) Run(ctx context.Context, limit int) int {
	tk := time.NewTicker(t.interval)
	defer tk.Stop()

	n := 0
	for limit <= 0 || n < limit {
		select {
		case <-ctx.Done():
			return n
		case at := <-tk.C:
			t.handlers.fire(at)
			n++
		}
	}
	return n
}

// Manual ticks only when told to.
type Manual struct {
	now      time.Time
	interval time.Duration
	handlers subscribers
}

func NewManual(start time.Time, interval time.Duration) *Manual {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Manual{now: start, interval: interval}
}

func (m *Manual) OnTick(handler func(at time.Time)) {
	m.handlers = append(m.handlers, handler)
}

// Tick advances the clock by one interval and notifies subscribers.
func (m *Manual) Tick() time.Time {
	m.now = m.now.Add(m.interval)
	m.handlers.fire(m.now)
	return m.now
}

func (m *Manual) Now() time.Time {
	return m.now
}
