// Command blinker blinks an LED and adjusts it from two debounced buttons.
// One button pauses and resumes the blinker, the other cycles the blink
// period. Pins are wired through the BoardIO registry; edge detection runs
// on the monitor tick loop.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/edaniels/golog"

	"github.com/sweeney/boardio/internal/blink"
	"github.com/sweeney/boardio/internal/board"
	"github.com/sweeney/boardio/internal/hw"
	"github.com/sweeney/boardio/internal/monitor"
	"github.com/sweeney/boardio/internal/pin"
)

// Default line offsets (BCM numbering).
const (
	DefaultPinLED     = 25
	DefaultPinButton  = 15 // start/stop, interrupt-driven
	DefaultPinButton2 = 14 // period cycling, polled
)

func main() {
	chipName := flag.String("chip", hw.DefaultChip, "GPIO character device")
	poll := flag.Duration("poll", 10*time.Millisecond, "edge monitor tick interval")
	debounce := flag.Duration("debounce", 50*time.Millisecond, "button debounce interval")
	pinLED := flag.Int("pin-led", DefaultPinLED, "line offset for the LED")
	pinButton := flag.Int("pin-button", DefaultPinButton, "line offset for the start/stop button")
	pinButton2 := flag.Int("pin-button2", DefaultPinButton2, "line offset for the period button")
	period := flag.Duration("period", time.Second, "initial blink period")

	flag.Parse()

	logger := golog.NewDevelopmentLogger("blinker")
	if err := run(*chipName, *poll, *debounce, *pinLED, *pinButton, *pinButton2, *period, logger); err != nil {
		logger.Fatal(err)
	}
}

// pinConfigs builds the demo's pin setup: one LED output plus two active-low
// pull-up buttons, one interrupt-driven and one polled.
func pinConfigs(led, button, button2 int, debounce time.Duration) []board.PinConfig {
	debounceMs := int(debounce / time.Millisecond)
	return []board.PinConfig{
		{Name: "led", Offset: led, Direction: board.DirectionOutput},
		{
			Name: "button", Offset: button, Direction: board.DirectionInput,
			Pull: "up", Inverted: true, Mode: "irq", DebounceMs: debounceMs,
		},
		{
			Name: "button2", Offset: button2, Direction: board.DirectionInput,
			Pull: "up", Inverted: true, Mode: "poll", DebounceMs: debounceMs,
		},
	}
}

func run(chipName string, poll, debounce time.Duration, pinLED, pinButton, pinButton2 int, period time.Duration, logger golog.Logger) error {
	cfgs := pinConfigs(pinLED, pinButton, pinButton2, debounce)
	for i, cfg := range cfgs {
		if err := cfg.Validate(fmt.Sprintf("pins.%d", i)); err != nil {
			return err
		}
	}

	chip, err := hw.OpenChip(chipName)
	if err != nil {
		return err
	}
	defer func() {
		if err := chip.Close(); err != nil {
			logger.Errorw("close gpio chip", "error", err)
		}
	}()

	bio := board.New()
	triggers := map[string]*pin.EdgeTrigger{}
	for _, cfg := range cfgs {
		if err := setupPin(chip, bio, cfg, triggers); err != nil {
			return fmt.Errorf("setup pin %q: %w", cfg.Name, err)
		}
	}

	led, err := bio.Output.GetPin("led")
	if err != nil {
		return err
	}
	blinker, err := blink.New(led, period, nil, logger)
	if err != nil {
		return err
	}

	button := triggers["button"]
	if err := button.AddCallback(pin.EdgeRising, func(*pin.EdgeTrigger, pin.Edge) {
		if blinker.Toggle() {
			logger.Infof("blinker resumed (period %v)", blinker.Period())
		} else {
			logger.Info("blinker paused")
		}
	}); err != nil {
		return err
	}

	button2 := triggers["button2"]
	if err := button2.AddCallback(pin.EdgeRising, func(*pin.EdgeTrigger, pin.Edge) {
		switch p := blinker.CyclePeriod(); p {
		case blink.PeriodAlwaysOn:
			logger.Info("blink mode: always on")
		case blink.PeriodOff:
			logger.Info("blink mode: always off")
		default:
			logger.Infof("blink period changed to %v", p)
		}
	}); err != nil {
		return err
	}

	mon, err := monitor.New(poll, nil, logger)
	if err != nil {
		return err
	}
	mon.Add(button)
	mon.Add(button2)
	mon.Start()
	defer mon.Close()

	blinker.Start()
	defer blinker.Close()

	logger.Infof("started: poll=%v debounce=%v period=%v", poll, debounce, period)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	s := <-sigCh
	logger.Infof("received %v, shutting down", s)
	return nil
}

// setupPin opens the hardware line for cfg and registers it in the matching
// group. Inputs are wrapped in edge triggers and collected for the monitor.
func setupPin(chip *hw.Chip, bio *board.BoardIO, cfg board.PinConfig, triggers map[string]*pin.EdgeTrigger) error {
	switch cfg.Direction {
	case board.DirectionOutput:
		p, err := chip.OpenOutput(cfg.Offset)
		if err != nil {
			return err
		}
		return bio.Output.AddPin(cfg.Name, p)
	case board.DirectionInput:
		pull, err := cfg.PullBias()
		if err != nil {
			return err
		}
		hp, err := chip.OpenInput(cfg.Offset, pull)
		if err != nil {
			return err
		}
		mode, err := pin.ParseMode(cfg.Mode)
		if err != nil {
			return err
		}
		t, err := pin.NewEdgeTrigger(hp, cfg.Inverted, mode, cfg.Debounce())
		if err != nil {
			return err
		}
		if err := bio.Input.AddPin(cfg.Name, t); err != nil {
			return err
		}
		triggers[cfg.Name] = t
		return nil
	}
	return &pin.ConfigurationError{Reason: fmt.Sprintf("unknown direction %q", cfg.Direction)}
}
