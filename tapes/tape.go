package tapes

import (
	"errors"
	"fmt"
	"slices"
)

// Slack is the number of extra zero cells allocated past a write beyond the frontier.
const Slack = 100

// MaxLen bounds tape growth.
const MaxLen = 1 << 20

var (
	ErrNegativeAddress = errors.New("negative address")
	ErrAddressRange    = errors.New("address out of range")
)

// Tape is the flat integer memory of a machine. Cells past the end read as zero.
type Tape struct {
	cells []int64
}

func New(program []int64) *Tape {
	return &Tape{
		cells: slices.Clone(program),
	}
}

func (t *Tape) Len() int {
	return len(t.cells)
}

func (t *Tape) Read(addr int64) int64 {
	if addr < 0 || addr >= int64(len(t.cells)) {
		return 0
	}
	return t.cells[addr]
}

func (t *Tape) Write(addr int64, value int64) error {
	if addr < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeAddress, addr)
	}
	if addr >= MaxLen {
		return fmt.Errorf("%w: %d", ErrAddressRange, addr)
	}
	if addr >= int64(len(t.cells)) {
		t.grow(int(addr) + 1 + Slack)
	}
	t.cells[addr] = value
	return nil
}

func (t *Tape) grow(n int) {
	n = min(n, MaxLen)
	old := len(t.cells)
	t.cells = slices.Grow(t.cells, n-old)[:n]
	clear(t.cells[old:])
}

// Cells returns a copy of the tape contents, including grown slack.
func (t *Tape) Cells() []int64 {
	return slices.Clone(t.cells)
}

func (t *Tape) Clone() *Tape {
	return &Tape{
		cells: slices.Clone(t.cells),
	}
}
