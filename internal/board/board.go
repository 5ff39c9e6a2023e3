package board

// Input is a readable logical pin: buttons and edge triggers.
type Input interface {
	Read() (bool, error)
}

// Output is a writable pin.
type Output interface {
	Write(high bool) error
}

// BoardIO is the single access point application code uses to register and
// look up pins. It owns exactly three groups, created empty; population
// happens through explicit AddPin calls during setup. Analog pins are
// consumed opaquely; this library does no analog sampling.
type BoardIO struct {
	Input  *Group[Input]
	Output *Group[Output]
	Analog *Group[any]
}

// New returns a BoardIO with the three standard groups, empty.
func New() *BoardIO {
	return &BoardIO{
		Input:  newGroup[Input]("INPUT"),
		Output: newGroup[Output]("OUTPUT"),
		Analog: newGroup[any]("ANALOG"),
	}
}
