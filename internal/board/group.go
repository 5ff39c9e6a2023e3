// Package board organizes pins into named groups behind a single registry.
// The registry is pure bookkeeping: it takes no part in the runtime data
// flow and has no removal operations.
package board

import "sort"

// A Group is a named mapping from identifier to pin. Names are unique within
// a group; the same name may be reused in a different group.
type Group[P any] struct {
	name string
	pins map[string]P
}

func newGroup[P any](name string) *Group[P] {
	return &Group[P]{name: name, pins: map[string]P{}}
}

// Name returns the group identifier.
func (g *Group[P]) Name() string {
	return g.name
}

// AddPin registers p under name. Registering a name twice fails with
// DuplicateNameError and leaves the existing entry in place.
func (g *Group[P]) AddPin(name string, p P) error {
	if _, ok := g.pins[name]; ok {
		return &DuplicateNameError{Group: g.name, Name: name}
	}
	g.pins[name] = p
	return nil
}

// GetPin returns the pin registered under name, or NotFoundError.
func (g *Group[P]) GetPin(name string) (P, error) {
	p, ok := g.pins[name]
	if !ok {
		var zero P
		return zero, &NotFoundError{Group: g.name, Name: name}
	}
	return p, nil
}

// PinNames returns the registered names, sorted.
func (g *Group[P]) PinNames() []string {
	names := make([]string, 0, len(g.pins))
	for name := range g.pins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
