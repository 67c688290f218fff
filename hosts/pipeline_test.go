package hosts

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/intvm"
	"github.com/reusee/intcode/logs"
	"github.com/reusee/intcode/modes"
)

func TestPipeline(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		newMachine intvm.NewMachine,
		logger logs.Logger,
	) {
		// each stage adds one to every value it reads, forever
		stage := []int64{3, 20, 1001, 20, 1, 20, 4, 20, 1105, 1, 0}
		first := newMachine([]int64{104, 1, 104, 10, 99})
		second := newMachine(stage)
		third := newMachine(stage)

		outputs, err := (&Pipeline{
			Machines: []*intvm.Machine{first, second, third},
			Logger:   logger,
		}).Run(context.Background())
		if !errors.Is(err, ErrDeadlock) {
			t.Fatalf("got %v", err)
		}
		if !slices.Equal(outputs, []int64{3, 12}) {
			t.Fatalf("got %v", outputs)
		}
		if !first.Halted() || !second.Blocked() || !third.Blocked() {
			t.Fatal()
		}
	})
}

func TestPipelineEmpty(t *testing.T) {
	outputs, err := new(Pipeline).Run(context.Background())
	if err != nil || outputs != nil {
		t.Fatalf("got %v %v", outputs, err)
	}
}

func TestPipelineFault(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		logger logs.Logger,
	) {
		_, err := (&Pipeline{
			Machines: []*intvm.Machine{
				intvm.New([]int64{104, 1, 99}),
				intvm.New([]int64{3, 0, 7}),
			},
			Logger: logger,
		}).Run(context.Background())
		if !errors.Is(err, intvm.ErrUnknownOpcode) {
			t.Fatalf("got %v", err)
		}
	})
}
