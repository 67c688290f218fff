package intvm

import (
	"slices"

	"github.com/reusee/intcode/tapes"
)

type Machine struct {
	Tape         *tapes.Tape
	IP           int64
	RelativeBase int64
	Inputs       []int64 // pending input, oldest first
	Steps        int64   // instructions dispatched since the last reset
	MaxSteps     int64   // zero means unbounded
	Profile      *Profile

	source  []int64
	waiting bool
	halted  bool
	err     error
}

func New(program []int64) *Machine {
	m := new(Machine)
	m.Reset(program)
	return m
}

// Reset loads program into a fresh tape and clears registers, pending input and faults.
// MaxSteps is kept. An enabled profile is restarted.
func (m *Machine) Reset(program []int64) {
	m.source = slices.Clone(program)
	m.Restart()
}

// Restart resets to the program last passed to New or Reset.
func (m *Machine) Restart() {
	m.Tape = tapes.New(m.source)
	m.IP = 0
	m.RelativeBase = 0
	m.Inputs = nil
	m.Steps = 0
	m.waiting = false
	m.halted = false
	m.err = nil
	if m.Profile != nil {
		m.Profile = NewProfile()
	}
}

func (m *Machine) Push(values ...int64) {
	m.Inputs = append(m.Inputs, values...)
}

func (m *Machine) Pending() int {
	return len(m.Inputs)
}

// Waiting reports whether the last resume suspended on an input instruction.
func (m *Machine) Waiting() bool {
	return m.waiting
}

// Blocked reports whether resuming now would be an input protocol violation.
func (m *Machine) Blocked() bool {
	return m.waiting && len(m.Inputs) == 0
}

func (m *Machine) Halted() bool {
	return m.halted
}

func (m *Machine) Err() error {
	return m.err
}

func (m *Machine) Peek(addr int64) int64 {
	return m.Tape.Read(addr)
}

func (m *Machine) Poke(addr int64, value int64) error {
	return m.Tape.Write(addr, value)
}

// Clone returns an independent copy sharing no mutable state with m.
func (m *Machine) Clone() *Machine {
	ret := *m
	ret.Tape = m.Tape.Clone()
	ret.Inputs = slices.Clone(m.Inputs)
	ret.source = slices.Clone(m.source)
	if m.Profile != nil {
		ret.Profile = m.Profile.Clone()
	}
	return &ret
}
