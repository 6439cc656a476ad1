package vm

import (
	"errors"
	"fmt"
)

var (
	ErrTypeMismatch     = errors.New("type mismatch")
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	ErrUnboundProcedure = errors.New("unbound procedure")
	ErrStackOverflow    = errors.New("stack overflow")
	ErrStackUnderflow   = errors.New("stack underflow")
	ErrArityMismatch    = errors.New("arity mismatch")
	ErrInvalidOpcode    = errors.New("invalid opcode")
	ErrMaxStepsExceeded = errors.New("maximum steps exceeded")
)

// Fault is a fatal runtime error raised while executing an instruction.
type Fault struct {
	Proc  string
	Depth int
	PC    int
	Op    OpCode
	Err   error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s (frame %d) at %d: %s: %v", f.Proc, f.Depth, f.PC, f.Op, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}
