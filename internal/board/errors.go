package board

import "fmt"

// DuplicateNameError reports an attempt to register a pin under a name
// already taken in the same group. The existing entry is preserved;
// rejecting the overwrite catches wiring bugs at setup time.
type DuplicateNameError struct {
	Group string
	Name  string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("pin %q already registered in %s group", e.Name, e.Group)
}

// NotFoundError reports a lookup of a name never registered in the group.
type NotFoundError struct {
	Group string
	Name  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s group has no pin named %q", e.Group, e.Name)
}
