package intvm

import (
	"errors"
	"fmt"

	"github.com/reusee/intcode/tapes"
)

var (
	ErrUnknownOpcode   = errors.New("unknown opcode")
	ErrUnknownMode     = errors.New("unknown parameter mode")
	ErrImmediateWrite  = errors.New("immediate mode write target")
	ErrNegativeAddress = tapes.ErrNegativeAddress
	ErrAddressRange    = tapes.ErrAddressRange
	ErrOverflow        = errors.New("integer overflow")
	ErrInputRequired   = errors.New("resumed while waiting for input without supplying any")
	ErrStepLimit       = errors.New("step limit exceeded")
)

// Fault is a fatal error raised by a machine. A faulted machine stays faulted until reset.
type Fault struct {
	IP   int64
	Cell int64
	Err  error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("fault at ip %d (cell %d): %v", f.IP, f.Cell, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}
