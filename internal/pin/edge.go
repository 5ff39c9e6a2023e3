package pin

import (
	"fmt"
	"sync"
	"time"

	"github.com/sweeney/boardio/internal/hw"
)

// EdgeTrigger extends Button with a debounced edge-detection state machine
// and a callback registry keyed by edge.
//
// Debounce is modeled as confirmation delay rather than a separate machine
// state: a raw transition becomes a candidate, and only a candidate that
// holds for the full interval moves the stable value and dispatches
// callbacks. A candidate that returns to the stable value first is dropped.
//
// In IRQ mode the hardware event handler only latches the logical value and
// timestamp; confirmation and dispatch still happen on Tick, so user
// callbacks never run in event context. Ticks for one pin must not run
// concurrently; the monitor loop serializes them.
type EdgeTrigger struct {
	*Button

	mode     Mode
	debounce time.Duration

	mu         sync.Mutex
	lastStable bool
	lastRaw    bool
	lastChange time.Time
	pending    bool
	latch      *latchedSample
	callbacks  map[Edge][]Callback
}

// latchedSample records one hardware edge event awaiting confirmation.
type latchedSample struct {
	value bool
	when  time.Time
}

// NewEdgeTrigger wraps p in an edge detector. The debounce interval must be
// positive; it is fixed for the life of the pin. In IRQ mode p must report
// edge events (hw.EventPin). The initial stable value is the logical value
// read at construction.
func NewEdgeTrigger(p hw.Pin, inverted bool, mode Mode, debounce time.Duration) (*EdgeTrigger, error) {
	b, err := NewButton(p, inverted)
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("debounce interval must be positive, got %v", debounce)}
	}
	if mode != ModePoll && mode != ModeIRQ {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("unknown sourcing mode %v", mode)}
	}

	initial, err := b.Read()
	if err != nil {
		return nil, err
	}

	t := &EdgeTrigger{
		Button:     b,
		mode:       mode,
		debounce:   debounce,
		lastStable: initial,
		lastRaw:    initial,
		callbacks:  map[Edge][]Callback{},
	}

	if mode == ModeIRQ {
		ep, ok := p.(hw.EventPin)
		if !ok {
			return nil, &ConfigurationError{Reason: "irq mode requires a pin with edge events"}
		}
		if err := ep.OnRawChange(t.latchRawChange); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Mode returns the sourcing mode.
func (t *EdgeTrigger) Mode() Mode {
	return t.mode
}

// Debounce returns the debounce interval.
func (t *EdgeTrigger) Debounce() time.Duration {
	return t.debounce
}

// Stable returns the last debounced logical value.
func (t *EdgeTrigger) Stable() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastStable
}

// AddCallback registers cb for the given edge; EdgeBoth registers it for
// rising and falling. Callbacks fire in registration order. Registering the
// same callback twice invokes it twice per event; deduplication is the
// caller's job. Registration is allowed at any time, including while the
// pin is being ticked.
func (t *EdgeTrigger) AddCallback(e Edge, cb Callback) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch e {
	case EdgeRising, EdgeFalling:
		t.callbacks[e] = append(t.callbacks[e], cb)
	case EdgeBoth:
		t.callbacks[EdgeRising] = append(t.callbacks[EdgeRising], cb)
		t.callbacks[EdgeFalling] = append(t.callbacks[EdgeFalling], cb)
	default:
		return &ConfigurationError{Reason: fmt.Sprintf("unknown edge %v", e)}
	}
	return nil
}

// latchRawChange runs in hardware event context. It records the logical
// value and timestamp of the edge and nothing else; any previous unconfirmed
// latch is overwritten, which is the same noise rejection the debounce
// window applies.
func (t *EdgeTrigger) latchRawChange(raw bool, when time.Time) {
	v := t.logical(raw)
	t.mu.Lock()
	t.latch = &latchedSample{value: v, when: when}
	t.mu.Unlock()
}

// Tick advances the state machine once. IRQ-mode pins first run any latched
// event through the classifier with its original timestamp, then both modes
// classify a fresh sample at now. Confirmed transitions dispatch their
// callbacks synchronously before Tick returns; hardware read failures
// propagate without touching pin state.
func (t *EdgeTrigger) Tick(now time.Time) error {
	var fires []dispatch

	if t.mode == ModeIRQ {
		t.mu.Lock()
		if t.latch != nil {
			l := t.latch
			t.latch = nil
			if d, ok := t.classifyLocked(l.value, l.when); ok {
				fires = append(fires, d)
			}
		}
		t.mu.Unlock()
	}

	v, err := t.Read()
	if err != nil {
		return err
	}

	t.mu.Lock()
	if d, ok := t.classifyLocked(v, now); ok {
		fires = append(fires, d)
	}
	t.mu.Unlock()

	for _, d := range fires {
		for _, cb := range d.cbs {
			cb(t, d.edge)
		}
	}
	return nil
}

type dispatch struct {
	edge Edge
	cbs  []Callback
}

// classifyLocked runs one logical sample through the debounce state machine.
// It returns the callbacks to dispatch if the sample confirms a transition.
// Caller holds mu; dispatch happens after unlocking so callbacks may call
// back into the pin.
func (t *EdgeTrigger) classifyLocked(v bool, now time.Time) (dispatch, bool) {
	if v == t.lastStable {
		// Value returned to baseline before confirming: drop the candidate.
		t.pending = false
		t.lastRaw = v
		return dispatch{}, false
	}

	if !t.pending || v != t.lastRaw {
		// New raw transition: open the debounce window.
		t.lastRaw = v
		t.lastChange = now
		t.pending = true
		return dispatch{}, false
	}

	if now.Sub(t.lastChange) < t.debounce {
		// Candidate still inside the window.
		return dispatch{}, false
	}

	// Candidate held for the full interval: accept it. Confirmation is
	// time-based, so a late tick still confirms.
	t.lastStable = v
	t.pending = false

	e := EdgeFalling
	if v {
		e = EdgeRising
	}
	cbs := make([]Callback, len(t.callbacks[e]))
	copy(cbs, t.callbacks[e])
	return dispatch{edge: e, cbs: cbs}, true
}
