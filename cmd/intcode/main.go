package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/cmds"
	"github.com/reusee/intcode/configs"
	"github.com/reusee/intcode/debugs"
	"github.com/reusee/intcode/hosts"
	"github.com/reusee/intcode/intvm"
	"github.com/reusee/intcode/logs"
	"github.com/reusee/intcode/modes"
	"github.com/reusee/intcode/programs"
	"github.com/reusee/intcode/scripts"
	"github.com/reusee/intcode/vars"
)

var (
	programFile = cmds.Var[string]("-file")
	inputArgs   = cmds.Collect[int64]("-input")
	phaseArgs   = cmds.Var[[]int64]("-phases")
	amplify     = cmds.Switch("-amplify")
	feedback    = cmds.Switch("-feedback")
	scriptFile  = cmds.Var[string]("-script")
	profiling   = cmds.Switch("-profile")
	tapOnExit   = cmds.Switch("-tap")
	dump        = cmds.Switch("-dump")
)

var (
	pokes          [][2]int64
	nounVerbTarget *int64
	maxSteps       *int64
)

func init() {
	cmds.Define("-poke", cmds.Func(func(addr, value int64) {
		pokes = append(pokes, [2]int64{addr, value})
	}).Desc("set a cell before running"))
	cmds.Define("-noun-verb", cmds.Func(func(target int64) {
		nounVerbTarget = &target
	}).Desc("search cells 1 and 2 for a run leaving target in cell 0"))
	cmds.Define("-max-steps", cmds.Func(func(n int64) {
		maxSteps = &n
	}).Desc("bound instructions per machine, 0 for none"))
	cmds.Define("-help", cmds.Func(func() {
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(0)
	}).Alias("-h"))
}

func main() {
	cmds.Execute(os.Args[1:])
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var defs []any
	if *profiling {
		defs = append(defs, func() intvm.Profiling {
			return true
		})
	}
	if maxSteps != nil {
		defs = append(defs, dscope.Provide(intvm.MaxSteps(*maxSteps)))
	}
	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	).Fork(defs...)

	scope.Call(func(
		loader configs.Loader,
		logger logs.Logger,
		newSpan logs.NewSpan,
		newMachine intvm.NewMachine,
		searchPhases hosts.SearchPhases,
		exec scripts.Exec,
		tap debugs.Tap,
	) {
		ctx, _ := newSpan(ctx, "main")

		path := vars.FirstNonZero(*programFile, string(configs.Get[ProgramFile](loader)))
		if path == "" {
			cmds.GlobalExecutor.PrintUsage()
			ce(fmt.Errorf("no program given"))
		}
		program, err := programs.Load(path)
		ce(err)
		logger.InfoContext(ctx, "program loaded",
			"path", path,
			"cells", len(program),
		)

		inputs := *inputArgs
		if len(inputs) == 0 {
			merged, err := configs.Merged[Inputs](loader)
			ce(err)
			inputs = merged
		}

		switch {

		case nounVerbTarget != nil:
			noun, verb, err := hosts.SearchNounVerb(ctx, newMachine(program), program, *nounVerbTarget)
			ce(err)
			fmt.Printf("noun %d verb %d answer %d\n", noun, verb, 100*noun+verb)

		case *amplify:
			fb := *feedback || bool(configs.Get[Feedback](loader))
			phases := *phaseArgs
			if len(phases) == 0 {
				phases = configs.Get[Phases](loader)
			}
			if len(phases) == 0 {
				phases = []int64{0, 1, 2, 3, 4}
				if fb {
					phases = []int64{5, 6, 7, 8, 9}
				}
			}
			result, err := searchPhases(ctx, program, phases, fb)
			ce(err)
			fmt.Printf("signal %d phases %s\n", result.Signal, programs.Format(result.Phases))

		case *scriptFile != "":
			m := prepare(newMachine(program), inputs)
			_, err := exec(ctx, *scriptFile, nil, m)
			if err != nil {
				logger.ErrorContext(ctx, "script", "error", err)
			}
			if !finish(ctx, logger, tap, m) || err != nil {
				os.Exit(1)
			}

		default:
			m := prepare(newMachine(program), inputs)
			stdin := bufio.NewScanner(os.Stdin)
		loop:
			for intr, err := range m.Run {
				if err != nil {
					logger.ErrorContext(ctx, "fault", "error", err)
					break
				}
				switch intr.Reason {
				case intvm.NeedsInput:
					value, err := readInput(stdin)
					if err != nil {
						logger.ErrorContext(ctx, "read input", "error", err)
						break loop
					}
					m.Push(value)
				case intvm.Output:
					fmt.Println(intr.Value)
				}
			}
			if !finish(ctx, logger, tap, m) {
				os.Exit(1)
			}

		}
	})
}

func prepare(m *intvm.Machine, inputs []int64) *intvm.Machine {
	for _, poke := range pokes {
		ce(m.Poke(poke[0], poke[1]))
	}
	m.Push(inputs...)
	return m
}

func readInput(scanner *bufio.Scanner) (int64, error) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		return strconv.ParseInt(line, 10, 64)
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	return 0, hosts.ErrInputExhausted
}

// finish reports the stopped machine and returns whether it halted cleanly.
func finish(ctx context.Context, logger logs.Logger, tap debugs.Tap, m *intvm.Machine) bool {
	args := []any{
		"steps", m.Steps,
		"ip", m.IP,
		"halted", m.Halted(),
	}
	if m.Profile != nil {
		args = append(args,
			"code_cells", m.Profile.Count(intvm.UsageOpcode),
			"read_cells", m.Profile.Count(intvm.UsageRead),
			"written_cells", m.Profile.Count(intvm.UsageWrite),
		)
	}
	logger.InfoContext(ctx, "machine stopped", args...)
	if *dump {
		fmt.Println(programs.Format(m.Tape.Cells()))
	}
	if *tapOnExit {
		tap(ctx, "machine stopped", m)
	}
	return m.Halted() && m.Err() == nil
}

func ce(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
