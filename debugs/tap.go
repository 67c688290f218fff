package debugs

import (
	"context"

	"github.com/reusee/intcode/intvm"
	"github.com/reusee/intcode/logs"
	"github.com/reusee/intcode/scripts"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens an interactive starlark session on stdin driving m.
type Tap func(ctx context.Context, what string, m *intvm.Machine)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, m *intvm.Machine) {
		logger.InfoContext(ctx, "tap: "+what,
			"ip", m.IP,
			"steps", m.Steps,
			"halted", m.Halted(),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "tap",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, scripts.Builtins(m))
	}
}
