package hosts

import (
	"context"
	"errors"
	"fmt"

	"github.com/reusee/intcode/intvm"
	"github.com/reusee/intcode/logs"
)

var ErrDeadlock = errors.New("every running machine is waiting for input")

// Pipeline connects each machine's output to the next machine's input.
// With Feedback the last machine feeds the first.
type Pipeline struct {
	Machines []*intvm.Machine
	Feedback bool
	Logger   logs.Logger
}

// Run schedules machines round-robin until all have halted, returning the outputs of the last one.
func (p *Pipeline) Run(ctx context.Context) (outputs []int64, err error) {
	n := len(p.Machines)
	if n == 0 {
		return nil, nil
	}

	for {
		progress := false
		halted := 0

		for i, m := range p.Machines {
			for !m.Halted() && !m.Blocked() {
				if err := ctx.Err(); err != nil {
					return outputs, err
				}
				intr, err := m.Resume(nil)
				if err != nil {
					return outputs, fmt.Errorf("machine %d: %w", i, err)
				}
				progress = true

				switch intr.Reason {
				case intvm.Output:
					if i < n-1 {
						p.Machines[i+1].Push(intr.Value)
						break
					}
					outputs = append(outputs, intr.Value)
					if p.Feedback {
						p.Machines[0].Push(intr.Value)
					}
				case intvm.Halted:
					p.Logger.DebugContext(ctx, "machine halted",
						"machine", i,
						"steps", m.Steps,
					)
				}
			}
			if m.Halted() {
				halted++
			}
		}

		if halted == n {
			return outputs, nil
		}
		if !progress {
			return outputs, ErrDeadlock
		}
	}
}
