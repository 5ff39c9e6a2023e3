// Package monitor runs the cooperative tick loop that drives edge detection:
// poll-mode pins take their samples here, and IRQ-mode pins have their
// latched events confirmed here.
package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	goutils "go.viam.com/utils"
)

// A Ticker is anything the loop should advance once per interval.
type Ticker interface {
	Tick(now time.Time) error
}

// Monitor invokes Tick on every registered pin at a fixed cadence. The loop
// is a single goroutine, so ticks for one pin are never concurrent. The
// interval should be well under the shortest debounce interval in play,
// half or less, so confirmations are not held up between samples.
type Monitor struct {
	interval time.Duration
	clock    clock.Clock
	logger   golog.Logger

	mu   sync.Mutex
	pins []Ticker

	cancelCtx  context.Context
	cancelFunc func()
	workers    sync.WaitGroup
}

// New creates a stopped Monitor. Pass a nil clock to use the wall clock.
func New(interval time.Duration, c clock.Clock, logger golog.Logger) (*Monitor, error) {
	if interval <= 0 {
		return nil, errors.Errorf("monitor interval must be positive, got %v", interval)
	}
	if c == nil {
		c = clock.New()
	}
	cancelCtx, cancelFunc := context.WithCancel(context.Background())
	return &Monitor{
		interval:   interval,
		clock:      c,
		logger:     logger,
		cancelCtx:  cancelCtx,
		cancelFunc: cancelFunc,
	}, nil
}

// Add registers p for ticking. Safe while the loop is running; p is picked
// up on the next interval.
func (m *Monitor) Add(p Ticker) {
	m.mu.Lock()
	m.pins = append(m.pins, p)
	m.mu.Unlock()
}

// Start launches the loop in the background.
func (m *Monitor) Start() {
	m.workers.Add(1)
	goutils.ManagedGo(m.run, m.workers.Done)
}

func (m *Monitor) run() {
	ticker := m.clock.Ticker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-m.cancelCtx.Done():
			return
		case <-ticker.C:
			m.TickAll(m.clock.Now())
		}
	}
}

// TickAll advances every registered pin once. Exposed so a caller that owns
// its own scheduler can drive the loop directly instead of Start.
func (m *Monitor) TickAll(now time.Time) {
	m.mu.Lock()
	pins := make([]Ticker, len(m.pins))
	copy(pins, m.pins)
	m.mu.Unlock()

	for _, p := range pins {
		if err := p.Tick(now); err != nil {
			// A failed read skips this pin until the next interval.
			m.logger.Errorw("pin tick failed", "error", err)
		}
	}
}

// Close stops the loop and waits for it to exit.
func (m *Monitor) Close() {
	m.cancelFunc()
	m.workers.Wait()
}
