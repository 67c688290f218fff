package hosts

import (
	"context"
	"errors"

	"github.com/reusee/intcode/intvm"
)

var ErrNotFound = errors.New("not found")

// SearchNounVerb reloads program with cells 1 and 2 set to every pair in 0..99
// and returns the first pair leaving target in cell 0. Pairs that fault are skipped.
func SearchNounVerb(ctx context.Context, m *intvm.Machine, program []int64, target int64) (noun, verb int64, err error) {
	for noun = 0; noun < 100; noun++ {
		for verb = 0; verb < 100; verb++ {
			m.Reset(program)
			if err := m.Poke(1, noun); err != nil {
				return 0, 0, err
			}
			if err := m.Poke(2, verb); err != nil {
				return 0, 0, err
			}
			_, err := Collect(ctx, m)
			if err != nil {
				var fault *intvm.Fault
				if errors.As(err, &fault) || errors.Is(err, ErrInputExhausted) {
					continue
				}
				return 0, 0, err
			}
			if m.Peek(0) == target {
				return noun, verb, nil
			}
		}
	}
	return 0, 0, ErrNotFound
}
