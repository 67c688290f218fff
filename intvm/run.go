package intvm

import "fmt"

// Run yields every suspend point until halt or fault. A host that receives NeedsInput must
// push input before continuing the iteration.
func (m *Machine) Run(yield func(Interrupt, error) bool) {
	for {
		intr, err := m.Resume(nil)
		if err != nil {
			yield(intr, err)
			return
		}
		if !yield(intr, nil) {
			return
		}
		if intr.Reason == Halted {
			return
		}
	}
}

// Resume executes until the next suspend point. A non-nil input is appended to the pending queue first,
// also on a halted or faulted machine, where it stays pending until Reset or Restart.
func (m *Machine) Resume(input *int64) (Interrupt, error) {
	if input != nil {
		m.Inputs = append(m.Inputs, *input)
	}
	if m.err != nil {
		return Interrupt{}, m.err
	}
	if m.halted {
		return InterruptHalted, nil
	}
	if m.waiting && len(m.Inputs) == 0 {
		return Interrupt{}, m.fail(ErrInputRequired)
	}
	m.waiting = false
	return m.exec()
}

func (m *Machine) fail(err error) error {
	m.err = &Fault{
		IP:   m.IP,
		Cell: m.Tape.Read(m.IP),
		Err:  err,
	}
	return m.err
}

func (m *Machine) exec() (Interrupt, error) {
	for {
		if m.MaxSteps > 0 && m.Steps >= m.MaxSteps {
			return Interrupt{}, m.fail(fmt.Errorf("%w: %d", ErrStepLimit, m.MaxSteps))
		}
		if m.IP < 0 {
			return Interrupt{}, m.fail(fmt.Errorf("%w: instruction pointer %d", ErrNegativeAddress, m.IP))
		}

		inst, err := Decode(m.Tape.Read(m.IP))
		if err != nil {
			return Interrupt{}, m.fail(err)
		}
		m.Steps++
		if m.Profile != nil {
			m.Profile.mark(m.IP, UsageOpcode)
			for n := range inst.Op.Arity() {
				m.Profile.mark(m.IP+1+int64(n), UsageParam)
			}
		}

		switch inst.Op {

		case OpAdd, OpMultiply, OpLessThan, OpEquals:
			a, err := m.load(inst, 0)
			if err != nil {
				return Interrupt{}, m.fail(err)
			}
			b, err := m.load(inst, 1)
			if err != nil {
				return Interrupt{}, m.fail(err)
			}
			var value int64
			switch inst.Op {
			case OpAdd:
				value, err = add(a, b)
			case OpMultiply:
				value, err = mul(a, b)
			case OpLessThan:
				if a < b {
					value = 1
				}
			case OpEquals:
				if a == b {
					value = 1
				}
			}
			if err != nil {
				return Interrupt{}, m.fail(err)
			}
			if err := m.store(inst, 2, value); err != nil {
				return Interrupt{}, m.fail(err)
			}
			m.IP += 4

		case OpInput:
			if len(m.Inputs) == 0 {
				// ip stays on this instruction so it re-executes once input arrives
				m.waiting = true
				return InterruptNeedsInput, nil
			}
			if err := m.store(inst, 0, m.Inputs[0]); err != nil {
				return Interrupt{}, m.fail(err)
			}
			m.Inputs = m.Inputs[1:]
			m.IP += 2

		case OpOutput:
			a, err := m.load(inst, 0)
			if err != nil {
				return Interrupt{}, m.fail(err)
			}
			m.IP += 2
			return Interrupt{
				Reason: Output,
				Value:  a,
			}, nil

		case OpJumpIfTrue, OpJumpIfFalse:
			a, err := m.load(inst, 0)
			if err != nil {
				return Interrupt{}, m.fail(err)
			}
			b, err := m.load(inst, 1)
			if err != nil {
				return Interrupt{}, m.fail(err)
			}
			if (a != 0) == (inst.Op == OpJumpIfTrue) {
				m.IP = b
			} else {
				m.IP += 3
			}

		case OpAdjustRelativeBase:
			a, err := m.load(inst, 0)
			if err != nil {
				return Interrupt{}, m.fail(err)
			}
			base, err := add(m.RelativeBase, a)
			if err != nil {
				return Interrupt{}, m.fail(err)
			}
			m.RelativeBase = base
			m.IP += 2

		case OpHalt:
			m.halted = true
			return InterruptHalted, nil

		}
	}
}

func (m *Machine) param(n int) int64 {
	return m.Tape.Read(m.IP + 1 + int64(n))
}

func (m *Machine) address(inst Instruction, n int) (int64, error) {
	addr := m.param(n)
	if inst.Modes[n] == ModeRelative {
		var err error
		addr, err = add(m.RelativeBase, addr)
		if err != nil {
			return 0, err
		}
	}
	if addr < 0 {
		return 0, fmt.Errorf("%w: %d (parameter %d of %s)", ErrNegativeAddress, addr, n+1, inst.Op)
	}
	return addr, nil
}

func (m *Machine) load(inst Instruction, n int) (int64, error) {
	if inst.Modes[n] == ModeImmediate {
		return m.param(n), nil
	}
	addr, err := m.address(inst, n)
	if err != nil {
		return 0, err
	}
	if m.Profile != nil {
		m.Profile.mark(addr, UsageRead)
	}
	return m.Tape.Read(addr), nil
}

func (m *Machine) store(inst Instruction, n int, value int64) error {
	if inst.Modes[n] == ModeImmediate {
		return fmt.Errorf("%w: parameter %d of %s", ErrImmediateWrite, n+1, inst.Op)
	}
	addr, err := m.address(inst, n)
	if err != nil {
		return err
	}
	if err := m.Tape.Write(addr, value); err != nil {
		return err
	}
	if m.Profile != nil {
		m.Profile.mark(addr, UsageWrite)
	}
	return nil
}
