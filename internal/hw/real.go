//go:build linux

package hw

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/warthog618/go-gpiocdev"
	"go.uber.org/multierr"
)

// DefaultChip is the GPIO character device on a Raspberry Pi.
const DefaultChip = "gpiochip0"

// Chip opens pins on a Linux GPIO character device and releases them all on
// Close.
type Chip struct {
	chip  *gpiocdev.Chip
	lines []*realPin
}

// OpenChip opens the named GPIO character device, e.g. "gpiochip0".
func OpenChip(name string) (*Chip, error) {
	c, err := gpiocdev.NewChip(name)
	if err != nil {
		return nil, errors.Wrapf(err, "open gpio chip %s", name)
	}
	return &Chip{chip: c}, nil
}

// OpenInput requests the line at offset as an input with the given bias.
// The line is requested with edge detection so the pin can serve IRQ-mode
// edge triggers; poll-mode consumers simply never register a handler.
func (c *Chip) OpenInput(offset int, pull Pull) (EventPin, error) {
	p := &realPin{}
	opts := []gpiocdev.LineReqOption{
		gpiocdev.AsInput,
		gpiocdev.WithBothEdges,
		gpiocdev.WithEventHandler(p.handleEvent),
	}
	switch pull {
	case PullUp:
		opts = append(opts, gpiocdev.WithPullUp)
	case PullDown:
		opts = append(opts, gpiocdev.WithPullDown)
	}
	line, err := c.chip.RequestLine(offset, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "request input line %d", offset)
	}
	p.line = line
	c.lines = append(c.lines, p)
	return p, nil
}

// OpenOutput requests the line at offset as an output, driven low.
func (c *Chip) OpenOutput(offset int) (Pin, error) {
	line, err := c.chip.RequestLine(offset, gpiocdev.AsOutput(0))
	if err != nil {
		return nil, errors.Wrapf(err, "request output line %d", offset)
	}
	p := &realPin{line: line, output: true}
	c.lines = append(c.lines, p)
	return p, nil
}

// Close releases every line opened through this chip, then the chip itself.
func (c *Chip) Close() error {
	var err error
	for _, p := range c.lines {
		err = multierr.Combine(err, p.Close())
	}
	return multierr.Combine(err, c.chip.Close())
}

type realPin struct {
	line   *gpiocdev.Line
	output bool

	mu      sync.Mutex
	handler func(raw bool, when time.Time)
	closed  bool
}

func (p *realPin) Read() (bool, error) {
	v, err := p.line.Value()
	if err != nil {
		return false, errors.Wrap(err, "read line")
	}
	// Any non-zero value counts as high.
	return v != 0, nil
}

func (p *realPin) Write(high bool) error {
	if !p.output {
		return errors.New("cannot write to an input pin")
	}
	v := 0
	if high {
		v = 1
	}
	return errors.Wrap(p.line.SetValue(v), "write line")
}

func (p *realPin) OnRawChange(handler func(raw bool, when time.Time)) error {
	if p.output {
		return errors.New("output pins do not report edges")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.handler != nil {
		return errors.New("raw change handler already registered")
	}
	p.handler = handler
	return nil
}

// handleEvent runs on the gpiocdev event goroutine. Kernel timestamps are
// monotonic durations since boot, so the wall time at delivery stands in for
// the event time.
func (p *realPin) handleEvent(evt gpiocdev.LineEvent) {
	p.mu.Lock()
	handler := p.handler
	p.mu.Unlock()
	if handler == nil {
		return
	}
	handler(evt.Type == gpiocdev.LineEventRisingEdge, time.Now())
}

// Close reconfigures the line back to a plain input (matching Pi boot
// defaults, which keeps externally wired modules in a known state across
// restarts) and releases it.
func (p *realPin) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.handler = nil
	p.mu.Unlock()

	var err error
	if p.output {
		err = p.line.Reconfigure(gpiocdev.AsInput)
	}
	return multierr.Combine(err, p.line.Close())
}
