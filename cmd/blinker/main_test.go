package main

import (
	"fmt"
	"testing"
	"time"

	"github.com/sweeney/boardio/internal/board"
)

func TestPinConfigsValidate(t *testing.T) {
	cfgs := pinConfigs(DefaultPinLED, DefaultPinButton, DefaultPinButton2, 50*time.Millisecond)
	for i, cfg := range cfgs {
		if err := cfg.Validate(fmt.Sprintf("pins.%d", i)); err != nil {
			t.Errorf("config %q: %v", cfg.Name, err)
		}
	}
}

func TestPinConfigsShape(t *testing.T) {
	cfgs := pinConfigs(25, 15, 14, 50*time.Millisecond)
	if len(cfgs) != 3 {
		t.Fatalf("expected 3 pin configs, got %d", len(cfgs))
	}

	byName := map[string]board.PinConfig{}
	for _, cfg := range cfgs {
		byName[cfg.Name] = cfg
	}

	led, ok := byName["led"]
	if !ok {
		t.Fatal("missing led config")
	}
	if led.Direction != board.DirectionOutput {
		t.Errorf("led direction: got %q", led.Direction)
	}
	if led.Offset != 25 {
		t.Errorf("led offset: got %d, want 25", led.Offset)
	}

	button, ok := byName["button"]
	if !ok {
		t.Fatal("missing button config")
	}
	if button.Mode != "irq" {
		t.Errorf("button mode: got %q, want irq", button.Mode)
	}
	if button.Offset != 15 {
		t.Errorf("button offset: got %d, want 15", button.Offset)
	}

	button2, ok := byName["button2"]
	if !ok {
		t.Fatal("missing button2 config")
	}
	if button2.Mode != "poll" {
		t.Errorf("button2 mode: got %q, want poll", button2.Mode)
	}
	if button2.Offset != 14 {
		t.Errorf("button2 offset: got %d, want 14", button2.Offset)
	}

	// Both buttons are active-low with a pull-up, sharing the debounce.
	for _, name := range []string{"button", "button2"} {
		cfg := byName[name]
		if !cfg.Inverted {
			t.Errorf("%s: expected Inverted", name)
		}
		if cfg.Pull != "up" {
			t.Errorf("%s pull: got %q, want up", name, cfg.Pull)
		}
		if cfg.DebounceMs != 50 {
			t.Errorf("%s debounce: got %dms, want 50ms", name, cfg.DebounceMs)
		}
		if got := cfg.Debounce(); got != 50*time.Millisecond {
			t.Errorf("%s Debounce(): got %v", name, got)
		}
	}
}
