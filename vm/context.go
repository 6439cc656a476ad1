package vm

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
)

// Program is a loaded top-level unit: the root scope, the top-level code, and
// the number of Null local slots reserved at the base of the top-level frame.
type Program struct {
	Env    *LexicalEnv
	Code   Code
	Locals int
}

// Context owns the call stack and the shared operand stack of one run.
// It is not safe for concurrent use.
type Context struct {
	frames []Frame
	stack  []Value
	sp     int // number of live slots; stack[sp-1] is the top

	config   Config
	out      io.Writer
	logger   *slog.Logger
	maxSteps int
	steps    int
	stepping bool

	err       error
	result    Value
	hasResult bool
}

func NewContext(prog *Program, opts ...Option) *Context {
	c := &Context{
		config: DefaultConfig(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.out == nil {
		c.out = os.Stdout
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}

	c.frames = make([]Frame, 0, min(c.config.MaxFrames, 64))
	c.stack = make([]Value, min(c.config.MaxStack, 1024))

	if prog != nil {
		c.load(prog)
	}
	return c
}

func (c *Context) load(prog *Program) {
	env := prog.Env
	if env == nil {
		env = NewLexicalEnv(nil)
	}
	if prog.Locals < 0 {
		c.err = fmt.Errorf("%w: negative local count %d", ErrIndexOutOfBounds, prog.Locals)
		return
	}
	if prog.Locals > c.config.MaxStack {
		c.err = fmt.Errorf("%w: %d locals exceed stack size %d", ErrStackOverflow, prog.Locals, c.config.MaxStack)
		return
	}
	c.frames = append(c.frames, Frame{
		Code: prog.Code,
		Env:  env,
	})
	for c.sp < prog.Locals {
		if err := c.push(Null()); err != nil {
			c.err = err
			return
		}
	}
}

func (c *Context) push(v Value) error {
	if c.sp >= len(c.stack) {
		if err := c.growStack(); err != nil {
			return err
		}
	}
	c.stack[c.sp] = v
	c.sp++
	return nil
}

func (c *Context) growStack() error {
	newCap := min(max(len(c.stack)*2, 8), c.config.MaxStack)
	if newCap <= len(c.stack) {
		return fmt.Errorf("%w: operand stack exceeds %d slots", ErrStackOverflow, c.config.MaxStack)
	}
	newStack := make([]Value, newCap)
	copy(newStack, c.stack[:c.sp])
	c.stack = newStack
	return nil
}

// truncate drops every slot at or above sp.
func (c *Context) truncate(sp int) {
	clear(c.stack[sp:c.sp])
	c.sp = sp
}

// Halted reports whether the outermost frame has run past its code or returned.
func (c *Context) Halted() bool {
	switch len(c.frames) {
	case 0:
		return true
	case 1:
		return c.frames[0].PC >= len(c.frames[0].Code)
	}
	return false
}

// Err returns the fault that stopped the context, if any.
func (c *Context) Err() error {
	return c.err
}

// Result returns the value left by a Return executed in the outermost frame.
func (c *Context) Result() (Value, bool) {
	return c.result, c.hasResult
}

// SetStepping makes Run yield InterruptStep after every instruction.
func (c *Context) SetStepping(stepping bool) {
	c.stepping = stepping
}

func (c *Context) Depth() int {
	return len(c.frames)
}

func (c *Context) StackPointer() int {
	return c.sp
}

func (c *Context) Steps() int {
	return c.steps
}

// Stack returns a copy of the live operand stack, bottom first.
func (c *Context) Stack() []Value {
	return slices.Clone(c.stack[:c.sp])
}

// Frames returns a copy of the call stack, outermost first.
func (c *Context) Frames() []Frame {
	return slices.Clone(c.frames)
}

// Frame returns the frame up levels below the current one.
func (c *Context) Frame(up int) (Frame, bool) {
	idx := len(c.frames) - 1 - up
	if up < 0 || idx < 0 {
		return Frame{}, false
	}
	return c.frames[idx], true
}
