package hw

import (
	"errors"
	"testing"
	"time"
)

func TestFakePinReadWrite(t *testing.T) {
	f := NewFakePin(false)

	v, err := f.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if v {
		t.Error("expected initial level low")
	}

	if err := f.Write(true); err != nil {
		t.Fatalf("Write: %v", err)
	}
	v, err = f.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !v {
		t.Error("expected written level to read back high")
	}

	writes := f.Writes()
	if len(writes) != 1 || !writes[0] {
		t.Errorf("expected recorded writes [true], got %v", writes)
	}
}

func TestFakePinErrors(t *testing.T) {
	f := NewFakePin(false)
	f.ReadError = errors.New("read boom")
	f.WriteError = errors.New("write boom")

	if _, err := f.Read(); err == nil {
		t.Error("expected injected read error")
	}
	if err := f.Write(true); err == nil {
		t.Error("expected injected write error")
	}
}

func TestFakePinFiresHandler(t *testing.T) {
	f := NewFakePin(false)

	var gotRaw bool
	var gotWhen time.Time
	calls := 0
	if err := f.OnRawChange(func(raw bool, when time.Time) {
		gotRaw = raw
		gotWhen = when
		calls++
	}); err != nil {
		t.Fatalf("OnRawChange: %v", err)
	}

	// Set never fires; SetAndFire does.
	f.Set(true)
	if calls != 0 {
		t.Fatal("Set must not fire the handler")
	}

	when := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	f.SetAndFire(false, when)
	if calls != 1 {
		t.Fatalf("expected one handler call, got %d", calls)
	}
	if gotRaw {
		t.Error("expected raw low")
	}
	if !gotWhen.Equal(when) {
		t.Errorf("expected timestamp %v, got %v", when, gotWhen)
	}
}

func TestFakePinClose(t *testing.T) {
	f := NewFakePin(false)
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !f.Closed {
		t.Error("expected Closed to be set")
	}
}
