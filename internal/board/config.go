package board

import (
	"fmt"
	"time"

	goutils "go.viam.com/utils"

	"github.com/sweeney/boardio/internal/hw"
	"github.com/sweeney/boardio/internal/pin"
)

// PinConfig describes one pin to open and register at setup time. Direction
// and pull are passed through to the hardware layer; mode and debounce only
// apply to inputs, which are always opened as edge triggers.
type PinConfig struct {
	Name       string `json:"name"`
	Offset     int    `json:"offset"` // line offset on the GPIO chip
	Direction  string `json:"direction"`
	Pull       string `json:"pull,omitempty"`
	Inverted   bool   `json:"inverted,omitempty"`
	Mode       string `json:"mode,omitempty"`
	DebounceMs int    `json:"debounceMs,omitempty"`
}

const (
	DirectionInput  = "input"
	DirectionOutput = "output"
)

// Validate ensures the config is complete enough to open the pin.
func (c *PinConfig) Validate(path string) error {
	if c.Name == "" {
		return goutils.NewConfigValidationFieldRequiredError(path, "name")
	}
	switch c.Direction {
	case DirectionInput, DirectionOutput:
	case "":
		return goutils.NewConfigValidationFieldRequiredError(path, "direction")
	default:
		return &pin.ConfigurationError{Reason: fmt.Sprintf("unknown direction %q", c.Direction)}
	}
	if _, err := c.PullBias(); err != nil {
		return err
	}
	if c.Direction == DirectionInput {
		if c.Mode == "" {
			return goutils.NewConfigValidationFieldRequiredError(path, "mode")
		}
		if _, err := pin.ParseMode(c.Mode); err != nil {
			return err
		}
		if c.DebounceMs <= 0 {
			return &pin.ConfigurationError{Reason: fmt.Sprintf("debounceMs must be positive, got %d", c.DebounceMs)}
		}
	}
	return nil
}

// Debounce returns the debounce interval.
func (c *PinConfig) Debounce() time.Duration {
	return time.Duration(c.DebounceMs) * time.Millisecond
}

// PullBias maps the pull string onto the hardware bias option.
func (c *PinConfig) PullBias() (hw.Pull, error) {
	switch c.Pull {
	case "":
		return hw.PullNone, nil
	case "up":
		return hw.PullUp, nil
	case "down":
		return hw.PullDown, nil
	}
	return hw.PullNone, &pin.ConfigurationError{Reason: fmt.Sprintf("unknown pull %q", c.Pull)}
}
