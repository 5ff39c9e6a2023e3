package hw

import (
	"sync"
	"time"
)

// FakePin is a test double implementing EventPin. The raw level is set by the
// test; SetAndFire plays the part of a hardware edge event.
type FakePin struct {
	mu      sync.Mutex
	value   bool
	handler func(raw bool, when time.Time)
	writes  []bool

	// ReadError, if set, will be returned by Read.
	ReadError error

	// WriteError, if set, will be returned by Write.
	WriteError error

	// Closed tracks if Close was called.
	Closed bool
}

// NewFakePin creates a FakePin at the given raw level.
func NewFakePin(initial bool) *FakePin {
	return &FakePin{value: initial}
}

// Read returns the current raw level.
func (f *FakePin) Read() (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ReadError != nil {
		return false, f.ReadError
	}
	return f.value, nil
}

// Write records the driven level and makes it readable back.
func (f *FakePin) Write(high bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.WriteError != nil {
		return f.WriteError
	}
	f.value = high
	f.writes = append(f.writes, high)
	return nil
}

// OnRawChange registers the edge handler.
func (f *FakePin) OnRawChange(handler func(raw bool, when time.Time)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handler = handler
	return nil
}

// Close marks the pin as closed.
func (f *FakePin) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Closed = true
	return nil
}

// Set changes the raw level without firing an edge event, as seen by a
// polling consumer.
func (f *FakePin) Set(raw bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.value = raw
}

// SetAndFire changes the raw level and invokes the registered edge handler,
// as a real interrupt-capable pin would.
func (f *FakePin) SetAndFire(raw bool, when time.Time) {
	f.mu.Lock()
	f.value = raw
	handler := f.handler
	f.mu.Unlock()
	if handler != nil {
		handler(raw, when)
	}
}

// Writes returns a copy of every level driven through Write, in order.
func (f *FakePin) Writes() []bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]bool, len(f.writes))
	copy(out, f.writes)
	return out
}
