package vm

import "fmt"

func (c *Context) Run(yield func(*Interrupt, error) bool) {
	for {
		if c.err != nil {
			yield(nil, c.err)
			return
		}
		if c.Halted() {
			return
		}
		if c.maxSteps > 0 && c.steps >= c.maxSteps {
			c.err = fmt.Errorf("%w: %d", ErrMaxStepsExceeded, c.maxSteps)
			continue
		}

		if err := c.Step(); err != nil {
			continue
		}

		if c.stepping && !c.Halted() {
			if !yield(InterruptStep, nil) {
				return
			}
		}
	}
}

// Step executes one instruction of the current frame.
// Faults are sticky: once Step fails, every later call returns the same error.
func (c *Context) Step() error {
	if c.err != nil {
		return c.err
	}
	if c.Halted() {
		return nil
	}

	frame := &c.frames[len(c.frames)-1]
	depth := len(c.frames)
	pc := frame.PC
	fault := func(op OpCode, err error) error {
		c.err = &Fault{
			Proc:  frame.Name(),
			Depth: depth,
			PC:    pc,
			Op:    op,
			Err:   err,
		}
		return c.err
	}

	if pc >= len(frame.Code) {
		return fault(0, fmt.Errorf("%w: procedure ran past its end without return", ErrIndexOutOfBounds))
	}
	inst, err := decodeAt(frame.Code, pc)
	if err != nil {
		return fault(0, err)
	}

	if c.config.Trace {
		c.logger.Debug("step",
			"proc", frame.Name(),
			"depth", depth,
			"pc", pc,
			"op", inst.Format(frame.Env),
			"sp", c.sp,
		)
	}

	frame.PC = pc + inst.Op.Width()
	c.steps++

	if err := c.exec(frame, inst); err != nil {
		return fault(inst.Op, err)
	}
	return nil
}

// exec applies one instruction. frame must not be used after a call pushes a
// new frame, since the call stack may be reallocated.
func (c *Context) exec(frame *Frame, inst Instruction) error {
	switch inst.Op {

	case OpPushConstant:
		v, err := frame.Env.Constant(inst.Args[0])
		if err != nil {
			return err
		}
		return c.push(v)

	case OpGet:
		idx := inst.Args[0]
		slot := frame.Base + idx
		if idx < 0 || slot >= c.sp {
			return fmt.Errorf("%w: local %d with %d live slots", ErrIndexOutOfBounds, idx, c.sp-frame.Base)
		}
		return c.push(c.stack[slot])

	case OpPop:
		if c.sp <= frame.Base {
			return fmt.Errorf("%w: pop on empty frame", ErrStackUnderflow)
		}
		c.truncate(c.sp - 1)
		return nil

	case OpDispatch:
		return c.dispatch(frame, inst.Args[0], inst.Args[1])

	case OpJump:
		return c.jump(frame, inst.Args[0])

	case OpJumpFalse:
		if c.sp <= frame.Base {
			return fmt.Errorf("%w: jump false on empty frame", ErrStackUnderflow)
		}
		cond := c.stack[c.sp-1]
		c.truncate(c.sp - 1)
		// only Bool(false) jumps; every other value falls through
		if b, ok := cond.AsBool(); ok && !b {
			return c.jump(frame, inst.Args[0])
		}
		return nil

	case OpReturn:
		return c.ret(frame)

	}
	return fmt.Errorf("%w: %d", ErrInvalidOpcode, inst.Op)
}

func (c *Context) jump(frame *Frame, target int) error {
	if target < 0 || target > len(frame.Code) {
		return fmt.Errorf("%w: jump target %d outside code of length %d", ErrIndexOutOfBounds, target, len(frame.Code))
	}
	frame.PC = target
	return nil
}

func (c *Context) dispatch(frame *Frame, symIdx int, argc int) error {
	sym, err := frame.Env.Constant(symIdx)
	if err != nil {
		return err
	}
	name, ok := sym.AsSymbol()
	if !ok {
		return fmt.Errorf("%w: call target %s is not a symbol", ErrTypeMismatch, sym)
	}
	if argc < 0 || argc > c.sp-frame.Base {
		return fmt.Errorf("%w: %s wants %d arguments, frame holds %d", ErrStackUnderflow, name, argc, c.sp-frame.Base)
	}

	if builtin, ok := LookupBuiltin(name, argc); ok {
		base := c.sp - argc
		ret, err := builtin.Func(c, c.stack[base:c.sp])
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if argc == 0 {
			return c.push(ret)
		}
		c.stack[base] = ret
		c.truncate(base + 1)
		return nil
	}

	overload, ok := frame.Env.Lookup(name)
	if !ok {
		if c.config.Permissive {
			return nil
		}
		return fmt.Errorf("%w: %s (%d)", ErrUnboundProcedure, name, argc)
	}
	if !c.config.Permissive && overload.Argc != argc {
		return fmt.Errorf("%w: %s declares %d arguments, called with %d", ErrArityMismatch, name, overload.Argc, argc)
	}
	if len(c.frames) >= c.config.MaxFrames {
		return fmt.Errorf("%w: call depth exceeds %d frames", ErrStackOverflow, c.config.MaxFrames)
	}

	c.frames = append(c.frames, Frame{
		Overload: overload,
		Code:     overload.Code,
		Env:      overload.Env,
		Base:     c.sp - argc,
	})
	return nil
}

func (c *Context) ret(frame *Frame) error {
	if c.sp <= frame.Base {
		return fmt.Errorf("%w: return without a value", ErrStackUnderflow)
	}
	v := c.stack[c.sp-1]
	c.stack[frame.Base] = v
	c.truncate(frame.Base + 1)
	c.frames = c.frames[:len(c.frames)-1]
	if len(c.frames) == 0 {
		c.result = v
		c.hasResult = true
	}
	return nil
}
