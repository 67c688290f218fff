package intvm

import (
	"github.com/reusee/dscope"
	"github.com/reusee/intcode/configs"
	"github.com/reusee/intcode/logs"
	"github.com/reusee/intcode/modes"
	"github.com/reusee/intcode/vars"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs configs.Module
}

// MaxSteps bounds every machine built by NewMachine. Zero means unbounded.
type MaxSteps int64

func (MaxSteps) ConfigPath() string {
	return "max_steps"
}

var _ configs.Configurable = MaxSteps(0)

// DevelopmentMaxSteps keeps runaway programs from hanging tests.
const DevelopmentMaxSteps = 100_000_000

func (Module) MaxSteps(
	mode modes.Mode,
	loader configs.Loader,
) MaxSteps {
	var fallback MaxSteps
	if mode == modes.ModeDevelopment {
		fallback = DevelopmentMaxSteps
	}
	return vars.FirstNonZero(
		configs.Get[MaxSteps](loader),
		fallback,
	)
}

// Profiling enables access profiles on machines built by NewMachine.
type Profiling bool

func (Module) Profiling() Profiling {
	return false
}

type NewMachine func(program []int64) *Machine

func (Module) NewMachine(
	maxSteps MaxSteps,
	profiling Profiling,
	logger logs.Logger,
) NewMachine {
	return func(program []int64) *Machine {
		m := New(program)
		m.MaxSteps = int64(maxSteps)
		if profiling {
			m.Profile = NewProfile()
		}
		logger.Debug("new machine",
			"cells", len(program),
			"max_steps", m.MaxSteps,
			"profiling", bool(profiling),
		)
		return m
	}
}
