package intvm

import "fmt"

type Reason uint8

const (
	NeedsInput Reason = iota + 1
	Output
	Halted
)

func (r Reason) String() string {
	switch r {
	case NeedsInput:
		return "needs input"
	case Output:
		return "output"
	case Halted:
		return "halted"
	}
	return fmt.Sprintf("reason(%d)", uint8(r))
}

// Interrupt is the suspend point a machine returns to its host.
// Value is meaningful only for Output.
type Interrupt struct {
	Reason Reason
	Value  int64
}

var (
	InterruptNeedsInput = Interrupt{
		Reason: NeedsInput,
	}
	InterruptHalted = Interrupt{
		Reason: Halted,
	}
)

func (i Interrupt) String() string {
	if i.Reason == Output {
		return fmt.Sprintf("output(%d)", i.Value)
	}
	return i.Reason.String()
}
