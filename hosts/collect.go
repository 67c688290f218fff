package hosts

import (
	"context"
	"errors"

	"github.com/reusee/intcode/intvm"
)

var ErrInputExhausted = errors.New("machine needs input but none is left")

// Collect pushes inputs and resumes m until it halts, returning every output.
func Collect(ctx context.Context, m *intvm.Machine, inputs ...int64) (outputs []int64, err error) {
	m.Push(inputs...)
	if m.Blocked() {
		return nil, ErrInputExhausted
	}
	for {
		if err := ctx.Err(); err != nil {
			return outputs, err
		}
		intr, err := m.Resume(nil)
		if err != nil {
			return outputs, err
		}
		switch intr.Reason {
		case intvm.Output:
			outputs = append(outputs, intr.Value)
		case intvm.NeedsInput:
			return outputs, ErrInputExhausted
		case intvm.Halted:
			return outputs, nil
		}
	}
}
