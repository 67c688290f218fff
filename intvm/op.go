package intvm

import "fmt"

type OpCode int64

const (
	OpAdd OpCode = iota + 1
	OpMultiply
	OpInput
	OpOutput
	OpJumpIfTrue
	OpJumpIfFalse
	OpLessThan
	OpEquals
	OpAdjustRelativeBase
	OpHalt OpCode = 99
)

var opNames = map[OpCode]string{
	OpAdd:                "add",
	OpMultiply:           "mul",
	OpInput:              "in",
	OpOutput:             "out",
	OpJumpIfTrue:         "jnz",
	OpJumpIfFalse:        "jz",
	OpLessThan:           "lt",
	OpEquals:             "eq",
	OpAdjustRelativeBase: "arb",
	OpHalt:               "halt",
}

func (o OpCode) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return fmt.Sprintf("op(%d)", int64(o))
}

// Arity returns the number of parameters the opcode consumes.
func (o OpCode) Arity() int {
	switch o {
	case OpAdd, OpMultiply, OpLessThan, OpEquals:
		return 3
	case OpJumpIfTrue, OpJumpIfFalse:
		return 2
	case OpInput, OpOutput, OpAdjustRelativeBase:
		return 1
	}
	return 0
}

type Mode int64

const (
	ModePosition Mode = iota
	ModeImmediate
	ModeRelative
)

func (m Mode) String() string {
	switch m {
	case ModePosition:
		return "position"
	case ModeImmediate:
		return "immediate"
	case ModeRelative:
		return "relative"
	}
	return fmt.Sprintf("mode(%d)", int64(m))
}

type Instruction struct {
	Op    OpCode
	Modes [3]Mode
}

func (i Instruction) String() string {
	ret := i.Op.String()
	for n := range i.Op.Arity() {
		switch i.Modes[n] {
		case ModeImmediate:
			ret += " #"
		case ModeRelative:
			ret += " ~"
		default:
			ret += " @"
		}
	}
	return ret
}

// Decode splits a cell into opcode and parameter modes.
// Only the modes of parameters the opcode consumes are checked.
func Decode(cell int64) (inst Instruction, err error) {
	inst.Op = OpCode(cell % 100)
	if _, ok := opNames[inst.Op]; !ok {
		return inst, fmt.Errorf("%w: %d", ErrUnknownOpcode, cell)
	}
	digits := cell / 100
	for n := range inst.Op.Arity() {
		mode := Mode(digits % 10)
		digits /= 10
		switch mode {
		case ModePosition, ModeImmediate, ModeRelative:
		default:
			return inst, fmt.Errorf("%w: %d for parameter %d of %s", ErrUnknownMode, int64(mode), n+1, inst.Op)
		}
		inst.Modes[n] = mode
	}
	return inst, nil
}
