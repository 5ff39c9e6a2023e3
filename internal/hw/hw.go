// Package hw provides the hardware pin capability the rest of the library
// consumes. The real implementation uses the Linux GPIO character device.
// The fake implementation allows testing without hardware.
package hw

import "time"

// Pin is a single digital pin.
type Pin interface {
	// Read returns the raw electrical level: true = high.
	Read() (bool, error)

	// Write drives the pin: true = high. Fails on input pins.
	Write(high bool) error

	// Close releases the pin.
	Close() error
}

// EventPin is a Pin whose hardware reports raw edges asynchronously. The
// handler runs outside the cooperative tick context and must stay minimal:
// no blocking work and no user callback dispatch.
type EventPin interface {
	Pin

	// OnRawChange registers handler to be invoked on every raw edge with
	// the new raw level and the event timestamp. A pin supports exactly
	// one handler.
	OnRawChange(handler func(raw bool, when time.Time)) error
}

// Pull configures the bias applied to an input pin.
type Pull int

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

func (p Pull) String() string {
	switch p {
	case PullUp:
		return "up"
	case PullDown:
		return "down"
	}
	return "none"
}
