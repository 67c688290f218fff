package hosts

import (
	"runtime"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/configs"
	"github.com/reusee/intcode/intvm"
	"github.com/reusee/intcode/vars"
)

type Module struct {
	dscope.Module
	VM intvm.Module
}

// Parallelism bounds concurrent runs in searches.
type Parallelism int

func (Parallelism) ConfigPath() string {
	return "parallelism"
}

var _ configs.Configurable = Parallelism(0)

func (Module) Parallelism(
	loader configs.Loader,
) Parallelism {
	return vars.FirstNonZero(
		configs.Get[Parallelism](loader),
		Parallelism(runtime.NumCPU()),
	)
}
