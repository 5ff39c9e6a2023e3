//go:build !linux

package hw

import "github.com/pkg/errors"

// DefaultChip is the GPIO character device on a Raspberry Pi.
const DefaultChip = "gpiochip0"

var errUnsupported = errors.New("gpio: not supported on this platform (requires Linux)")

// Chip is not available on non-Linux platforms.
type Chip struct{}

// OpenChip returns an error on non-Linux platforms.
func OpenChip(name string) (*Chip, error) {
	return nil, errUnsupported
}

// OpenInput is not implemented on non-Linux platforms.
func (c *Chip) OpenInput(offset int, pull Pull) (EventPin, error) {
	return nil, errUnsupported
}

// OpenOutput is not implemented on non-Linux platforms.
func (c *Chip) OpenOutput(offset int) (Pin, error) {
	return nil, errUnsupported
}

// Close is not implemented on non-Linux platforms.
func (c *Chip) Close() error {
	return nil
}
