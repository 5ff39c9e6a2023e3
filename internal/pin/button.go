package pin

import (
	"github.com/sweeney/boardio/internal/hw"
)

// Button wraps a hardware pin with logical-value inversion, so active-low
// wiring (pull-up with the switch to ground) reads true when pressed.
type Button struct {
	hw       hw.Pin
	inverted bool
}

// NewButton wraps p. With inverted set, Read returns the negated raw level.
func NewButton(p hw.Pin, inverted bool) (*Button, error) {
	if p == nil {
		return nil, &ConfigurationError{Reason: "hardware pin is required"}
	}
	return &Button{hw: p, inverted: inverted}, nil
}

// Read returns the logical value. Hardware read failures propagate as-is.
func (b *Button) Read() (bool, error) {
	raw, err := b.hw.Read()
	if err != nil {
		return false, err
	}
	return b.logical(raw), nil
}

// Inverted reports whether the pin is active-low.
func (b *Button) Inverted() bool {
	return b.inverted
}

func (b *Button) logical(raw bool) bool {
	if b.inverted {
		return !raw
	}
	return raw
}
