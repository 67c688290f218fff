package scripts

import (
	"context"
	"fmt"

	"github.com/reusee/intcode/intvm"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

// contextKey holds the context.Context of the executing script in thread locals.
const contextKey = "context"

type snapshot struct {
	IP           int64
	RelativeBase int64
	Steps        int64
	Inputs       []int64
	Waiting      bool
	Halted       bool
	Cells        []int64
}

func toInt64(v starlark.Value) (int64, error) {
	var ret int64
	if err := starlark.AsInt(v, &ret); err != nil {
		return 0, err
	}
	return ret, nil
}

func toInts(values starlark.Tuple) ([]int64, error) {
	ret := make([]int64, 0, len(values))
	for i, v := range values {
		x, err := toInt64(v)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		ret = append(ret, x)
	}
	return ret, nil
}

func interruptValue(intr intvm.Interrupt) starlark.Value {
	return starlark.Tuple{
		starlark.String(intr.Reason.String()),
		starlark.MakeInt64(intr.Value),
	}
}

// Builtins exposes m to scripts.
func Builtins(m *intvm.Machine) starlark.StringDict {
	return starlark.StringDict{

		"load_program": starlark.NewBuiltin("load_program", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var cells *starlark.List
			if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &cells); err != nil {
				return nil, err
			}
			program := make(starlark.Tuple, 0, cells.Len())
			for i := range cells.Len() {
				program = append(program, cells.Index(i))
			}
			ints, err := toInts(program)
			if err != nil {
				return nil, err
			}
			m.Reset(ints)
			return starlark.None, nil
		}),

		"reset": starlarkutil.MakeFunc("reset", func() {
			m.Restart()
		}),

		"push": starlark.NewBuiltin("push", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if len(kwargs) > 0 {
				return nil, fmt.Errorf("%s: unexpected keyword arguments", b.Name())
			}
			values, err := toInts(args)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", b.Name(), err)
			}
			m.Push(values...)
			return starlark.None, nil
		}),

		"resume": starlark.NewBuiltin("resume", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var input starlark.Value = starlark.None
			if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0, &input); err != nil {
				return nil, err
			}
			var ptr *int64
			if input != starlark.None {
				x, err := toInt64(input)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", b.Name(), err)
				}
				ptr = &x
			}
			intr, err := m.Resume(ptr)
			if err != nil {
				return nil, err
			}
			return interruptValue(intr), nil
		}),

		"run": starlark.NewBuiltin("run", func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if len(kwargs) > 0 {
				return nil, fmt.Errorf("%s: unexpected keyword arguments", b.Name())
			}
			inputs, err := toInts(args)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", b.Name(), err)
			}
			m.Push(inputs...)
			var outputs []starlark.Value
			for !m.Halted() && !m.Blocked() {
				if ctx, ok := thread.Local(contextKey).(context.Context); ok && ctx.Err() != nil {
					return nil, fmt.Errorf("%s: %w", b.Name(), context.Cause(ctx))
				}
				intr, err := m.Resume(nil)
				if err != nil {
					return nil, err
				}
				if intr.Reason == intvm.Output {
					outputs = append(outputs, starlark.MakeInt64(intr.Value))
				}
			}
			return starlark.NewList(outputs), nil
		}),

		"peek": starlarkutil.MakeFunc("peek", func(addr int64) int64 {
			return m.Peek(addr)
		}),

		"poke": starlarkutil.MakeFunc("poke", func(addr int64, value int64) error {
			return m.Poke(addr, value)
		}),

		"ip": starlarkutil.MakeFunc("ip", func() int64 {
			return m.IP
		}),

		"relative_base": starlarkutil.MakeFunc("relative_base", func() int64 {
			return m.RelativeBase
		}),

		"halted": starlarkutil.MakeFunc("halted", func() bool {
			return m.Halted()
		}),

		"state": starlark.NewBuiltin("state", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
				return nil, err
			}
			return ToValue(snapshot{
				IP:           m.IP,
				RelativeBase: m.RelativeBase,
				Steps:        m.Steps,
				Inputs:       m.Inputs,
				Waiting:      m.Waiting(),
				Halted:       m.Halted(),
				Cells:        m.Tape.Cells(),
			}), nil
		}),
	}
}
