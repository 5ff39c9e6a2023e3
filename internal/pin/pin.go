// Package pin implements logical input pins over a raw hardware pin: value
// inversion for active-low wiring, and debounced edge detection with
// callback dispatch.
//
// The state machine takes time as explicit parameters so tests can drive it
// directly, and uses nothing beyond the hardware capability.
package pin

import "fmt"

// Edge identifies a confirmed logical transition.
type Edge int

const (
	// EdgeRising is a confirmed false -> true transition.
	EdgeRising Edge = iota + 1
	// EdgeFalling is a confirmed true -> false transition.
	EdgeFalling
	// EdgeBoth is accepted by AddCallback as a convenience and registers
	// the callback for both edges. Confirmed transitions are always
	// reported as EdgeRising or EdgeFalling.
	EdgeBoth
)

func (e Edge) String() string {
	switch e {
	case EdgeRising:
		return "RISING"
	case EdgeFalling:
		return "FALLING"
	case EdgeBoth:
		return "BOTH"
	}
	return fmt.Sprintf("Edge(%d)", int(e))
}

// Mode selects how raw samples reach the edge detector.
type Mode int

const (
	// ModePoll samples the pin on every cooperative tick.
	ModePoll Mode = iota + 1
	// ModeIRQ latches hardware edge events and confirms them on the next
	// cooperative tick.
	ModeIRQ
)

func (m Mode) String() string {
	switch m {
	case ModePoll:
		return "poll"
	case ModeIRQ:
		return "irq"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts a configuration string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "poll":
		return ModePoll, nil
	case "irq":
		return ModeIRQ, nil
	}
	return 0, &ConfigurationError{Reason: fmt.Sprintf("unknown sourcing mode %q", s)}
}

// Callback is invoked synchronously, in tick context, once per confirmed
// edge it is registered for.
type Callback func(p *EdgeTrigger, e Edge)

// ConfigurationError reports an invalid pin configuration. These indicate
// programmer mistakes discoverable at setup time and are never retried.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "pin configuration: " + e.Reason
}
