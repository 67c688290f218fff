package scripts

import (
	"context"

	"github.com/reusee/intcode/intvm"
	"github.com/reusee/intcode/logs"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
	Recursion:       true,
}

// Exec runs a script driving m. src is anything starlark.ExecFileOptions accepts.
type Exec func(ctx context.Context, filename string, src any, m *intvm.Machine) (starlark.StringDict, error)

func (Module) Exec(
	logger logs.Logger,
) Exec {
	return func(ctx context.Context, filename string, src any, m *intvm.Machine) (starlark.StringDict, error) {
		thread := &starlark.Thread{
			Name: filename,
			Print: func(_ *starlark.Thread, msg string) {
				logger.InfoContext(ctx, msg, "script", filename)
			},
		}
		thread.SetLocal(contextKey, ctx)
		stop := context.AfterFunc(ctx, func() {
			thread.Cancel(context.Cause(ctx).Error())
		})
		defer stop()

		globals, err := starlark.ExecFileOptions(fileOptions, thread, filename, src, Builtins(m))
		if err != nil {
			return nil, logs.WrapSpan(ctx, err)
		}
		return globals, nil
	}
}
