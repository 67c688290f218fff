package scripts

import (
	"context"
	"errors"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/intvm"
	"github.com/reusee/intcode/modes"
	"go.starlark.net/starlark"
)

func TestExec(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		exec Exec,
		newMachine intvm.NewMachine,
	) {
		m := newMachine([]int64{3, 0, 4, 0, 99})
		globals, err := exec(t.Context(), "echo.star", `
reason, _ = resume()
assert_input = reason == "needs input"
reason, value = resume(42)
echoed = value
reason, _ = resume()
done = halted()

reset()
poke(0, 104)
poke(1, 7)
poke(2, 99)
outputs = run()
first = peek(0)

load_program([109, 5, 204, -5, 99])
state_before = state()
run_outputs = run()
base = relative_base()
pc = ip()
print("done", run_outputs)
`, m)
		if err != nil {
			t.Fatal(err)
		}

		expect := func(name string, want starlark.Value) {
			t.Helper()
			ok, err := starlark.Equal(globals[name], want)
			if err != nil {
				t.Fatal(err)
			}
			if !ok {
				t.Fatalf("%s: got %v, want %v", name, globals[name], want)
			}
		}
		expect("assert_input", starlark.True)
		expect("echoed", starlark.MakeInt(42))
		expect("done", starlark.True)
		expect("outputs", starlark.NewList([]starlark.Value{starlark.MakeInt(7)}))
		expect("first", starlark.MakeInt(104))
		expect("run_outputs", starlark.NewList([]starlark.Value{starlark.MakeInt(109)}))
		expect("base", starlark.MakeInt(5))
		expect("pc", starlark.MakeInt(4))

		state, ok := globals["state_before"].(*starlark.Dict)
		if !ok {
			t.Fatalf("got %T", globals["state_before"])
		}
		ipValue, found, err := state.Get(starlark.String("IP"))
		if err != nil || !found {
			t.Fatal(err)
		}
		if ipValue.(starlark.Int).BigInt().Int64() != 0 {
			t.Fatalf("got %v", ipValue)
		}
	})
}

func TestExecFault(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		exec Exec,
	) {
		m := intvm.New([]int64{42})
		_, err := exec(t.Context(), "fault.star", `run()`, m)
		if !errors.Is(err, intvm.ErrUnknownOpcode) {
			t.Fatalf("got %v", err)
		}

		_, err = exec(t.Context(), "bad.star", `poke(-1, 0)`, m)
		if !errors.Is(err, intvm.ErrNegativeAddress) {
			t.Fatalf("got %v", err)
		}

		_, err = exec(t.Context(), "syntax.star", `run(`, m)
		if err == nil {
			t.Fatal()
		}
	})
}

func TestExecCancel(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		exec Exec,
	) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		m := intvm.New([]int64{99})
		_, err := exec(ctx, "loop.star", `
while True:
    pass
`, m)
		if err == nil {
			t.Fatal()
		}
	})
}
