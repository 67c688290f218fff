package hosts

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/reusee/intcode/intvm"
	"github.com/reusee/intcode/logs"
	"github.com/reusee/intcode/syncs"
)

var ErrNoOutput = errors.New("no output")

// Amplify runs one machine per phase setting in series. Every machine receives its phase first,
// the first one then receives signal 0. Returns the last signal of the last machine.
func Amplify(
	ctx context.Context,
	newMachine intvm.NewMachine,
	logger logs.Logger,
	program []int64,
	phases []int64,
	feedback bool,
) (int64, error) {
	machines := make([]*intvm.Machine, len(phases))
	for i, phase := range phases {
		machines[i] = newMachine(program)
		machines[i].Push(phase)
	}
	if len(machines) > 0 {
		machines[0].Push(0)
	}

	outputs, err := (&Pipeline{
		Machines: machines,
		Feedback: feedback,
		Logger:   logger,
	}).Run(ctx)
	if err != nil {
		return 0, err
	}
	if len(outputs) == 0 {
		return 0, ErrNoOutput
	}
	return outputs[len(outputs)-1], nil
}

type PhaseResult struct {
	Signal int64
	Phases []int64
}

// SearchPhases tries every ordering of phases and returns the one producing the highest signal.
// Among equal signals the ordering generated first by Permutations wins.
type SearchPhases func(ctx context.Context, program []int64, phases []int64, feedback bool) (PhaseResult, error)

func (Module) SearchPhases(
	newMachine intvm.NewMachine,
	parallelism Parallelism,
	logger logs.Logger,
	newSpan logs.NewSpan,
) SearchPhases {
	return func(ctx context.Context, program []int64, phases []int64, feedback bool) (ret PhaseResult, err error) {
		ctx, _ = newSpan(ctx, fmt.Sprintf("search phases %v", phases))
		ctx, cancel := context.WithCancelCause(ctx)
		defer cancel(nil)

		sem := syncs.NewSemaphore(int(max(parallelism, 1)))
		var wg sync.WaitGroup
		var l sync.Mutex
		best := -1

		i := -1
		for perm := range Permutations(phases) {
			i++
			index := i
			if ctx.Err() != nil {
				break
			}
			sem.Acquire()
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer sem.Release()
				signal, err := Amplify(ctx, newMachine, logger, program, perm, feedback)
				if err != nil {
					cancel(fmt.Errorf("phases %v: %w", perm, err))
					return
				}
				l.Lock()
				defer l.Unlock()
				if best < 0 || signal > ret.Signal || (signal == ret.Signal && index < best) {
					best = index
					ret = PhaseResult{
						Signal: signal,
						Phases: perm,
					}
				}
			}()
		}
		wg.Wait()

		if err := context.Cause(ctx); err != nil {
			return PhaseResult{}, logs.WrapSpan(ctx, err)
		}
		logger.InfoContext(ctx, "phase search done",
			"signal", ret.Signal,
			"phases", ret.Phases,
		)
		return ret, nil
	}
}

// Permutations yields every ordering of values. Each yielded slice is fresh.
func Permutations(values []int64) iter.Seq[[]int64] {
	return func(yield func([]int64) bool) {
		perm := slices.Clone(values)
		var gen func(k int) bool
		gen = func(k int) bool {
			if k == len(perm) {
				return yield(slices.Clone(perm))
			}
			for i := k; i < len(perm); i++ {
				perm[k], perm[i] = perm[i], perm[k]
				if !gen(k + 1) {
					return false
				}
				perm[k], perm[i] = perm[i], perm[k]
			}
			return true
		}
		gen(0)
	}
}
