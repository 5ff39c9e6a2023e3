// Package blink drives an output pin as a blinking LED with a cycling
// period, the demo application's output side.
package blink

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	goutils "go.viam.com/utils"
)

const (
	// PeriodAlwaysOn holds the LED on without toggling.
	PeriodAlwaysOn = time.Duration(0)
	// PeriodOff holds the LED off without toggling.
	PeriodOff = time.Duration(-1)

	// minPeriod is the shortest useful blink; cycling below it pins the
	// LED always-on.
	minPeriod = 7 * time.Millisecond

	// idleInterval is how often the loop re-checks state while not
	// toggling (paused, always-on, always-off).
	idleInterval = 50 * time.Millisecond
)

// Output is the writable pin the blinker drives.
type Output interface {
	Write(high bool) error
}

// Blinker toggles an output pin at a configurable period. Toggle pauses and
// resumes blinking; CyclePeriod steps through the period sequence. Both are
// intended to be called from edge callbacks.
type Blinker struct {
	pin     Output
	clock   clock.Clock
	logger  golog.Logger
	initial time.Duration

	mu      sync.Mutex
	period  time.Duration
	running bool
	level   bool

	cancelCtx  context.Context
	cancelFunc func()
	workers    sync.WaitGroup
}

// New creates a Blinker at the given initial period, paused. The initial
// period must be positive. Pass a nil clock to use the wall clock.
func New(pin Output, initial time.Duration, c clock.Clock, logger golog.Logger) (*Blinker, error) {
	if pin == nil {
		return nil, errors.New("blinker needs an output pin")
	}
	if initial <= 0 {
		return nil, errors.Errorf("initial period must be positive, got %v", initial)
	}
	if c == nil {
		c = clock.New()
	}
	cancelCtx, cancelFunc := context.WithCancel(context.Background())
	return &Blinker{
		pin:        pin,
		clock:      c,
		logger:     logger,
		initial:    initial,
		period:     initial,
		cancelCtx:  cancelCtx,
		cancelFunc: cancelFunc,
	}, nil
}

// Start launches the blink loop in the background and begins blinking.
func (b *Blinker) Start() {
	b.mu.Lock()
	b.running = true
	b.mu.Unlock()

	b.workers.Add(1)
	goutils.ManagedGo(b.run, b.workers.Done)
}

// Toggle pauses the blinker if running (LED off), otherwise resumes it.
// It reports the new running state.
func (b *Blinker) Toggle() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.running = !b.running
	return b.running
}

// CyclePeriod advances to the next blink period: halve the current one, pin
// to always-on below the minimum, then always-off, then back to the initial
// period. It returns the new period.
func (b *Blinker) CyclePeriod() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch b.period {
	case PeriodOff:
		b.period = b.initial
	case PeriodAlwaysOn:
		b.period = PeriodOff
	default:
		b.period /= 2
		if b.period < minPeriod {
			b.period = PeriodAlwaysOn
		}
	}
	return b.period
}

// Period returns the current blink period.
func (b *Blinker) Period() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.period
}

// Running reports whether the blinker is toggling.
func (b *Blinker) Running() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.running
}

func (b *Blinker) run() {
	for {
		b.mu.Lock()
		running, period := b.running, b.period
		b.mu.Unlock()

		wait := idleInterval
		switch {
		case !running || period == PeriodOff:
			b.write(false)
		case period == PeriodAlwaysOn:
			b.write(true)
		default:
			b.mu.Lock()
			b.level = !b.level
			level := b.level
			b.mu.Unlock()
			b.write(level)
			wait = period
		}

		timer := b.clock.Timer(wait)
		select {
		case <-b.cancelCtx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}

func (b *Blinker) write(high bool) {
	if err := b.pin.Write(high); err != nil {
		b.logger.Errorw("led write failed", "error", err)
	}
}

// Close stops the loop and leaves the LED off.
func (b *Blinker) Close() {
	b.cancelFunc()
	b.workers.Wait()
	b.write(false)
}
