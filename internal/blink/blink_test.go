package blink

import (
	"testing"
	"time"

	"github.com/edaniels/golog"

	"github.com/sweeney/boardio/internal/hw"
)

func TestNewValidation(t *testing.T) {
	logger := golog.NewTestLogger(t)
	pin := hw.NewFakePin(false)

	if _, err := New(nil, time.Second, nil, logger); err == nil {
		t.Error("expected error for nil pin")
	}
	for _, period := range []time.Duration{0, -time.Second} {
		if _, err := New(pin, period, nil, logger); err == nil {
			t.Errorf("period %v: expected error", period)
		}
	}
}

func TestCyclePeriodSequence(t *testing.T) {
	pin := hw.NewFakePin(false)
	b, err := New(pin, time.Second, nil, golog.NewTestLogger(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Halving from 1s runs down to just under 4ms, which pins the LED
	// always-on; the next step disables it, and the one after wraps back
	// to the initial period.
	want := []time.Duration{
		500 * time.Millisecond,
		250 * time.Millisecond,
		125 * time.Millisecond,
		62500 * time.Microsecond,
		31250 * time.Microsecond,
		15625 * time.Microsecond,
		7812500 * time.Nanosecond,
		PeriodAlwaysOn,
		PeriodOff,
		time.Second,
	}
	for i, w := range want {
		if got := b.CyclePeriod(); got != w {
			t.Fatalf("step %d: got %v, want %v", i, got, w)
		}
	}
}

func TestToggle(t *testing.T) {
	pin := hw.NewFakePin(false)
	b, err := New(pin, time.Second, nil, golog.NewTestLogger(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if b.Running() {
		t.Error("blinker must start paused")
	}
	if !b.Toggle() {
		t.Error("first Toggle should resume")
	}
	if b.Toggle() {
		t.Error("second Toggle should pause")
	}
}

func TestBlinkLoopTogglesPin(t *testing.T) {
	pin := hw.NewFakePin(false)
	b, err := New(pin, 2*time.Millisecond, nil, golog.NewTestLogger(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	b.Start()
	deadline := time.Now().Add(2 * time.Second)
	for len(pin.Writes()) < 4 {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for toggles, got %d writes", len(pin.Writes()))
		}
		time.Sleep(time.Millisecond)
	}
	b.Close()

	writes := pin.Writes()
	if writes[len(writes)-1] {
		t.Error("Close must leave the LED off")
	}

	// The loop alternates levels while blinking.
	sawHigh := false
	for _, w := range writes {
		if w {
			sawHigh = true
		}
	}
	if !sawHigh {
		t.Error("expected the LED to be driven high at least once")
	}
}

func TestPausedHoldsLow(t *testing.T) {
	pin := hw.NewFakePin(true)
	b, err := New(pin, 10*time.Millisecond, nil, golog.NewTestLogger(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	b.Start()
	b.Toggle() // pause
	// Once the in-flight wait expires, every write from the paused loop
	// drives low.
	time.Sleep(200 * time.Millisecond)
	writes := pin.Writes()
	if len(writes) == 0 {
		t.Fatal("expected at least one write")
	}
	if writes[len(writes)-1] {
		t.Error("paused blinker must hold the LED low")
	}
	b.Close()
}
