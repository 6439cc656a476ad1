package vm

import "fmt"

// Label is a jump target resolved when the builder finishes.
type Label struct {
	offset int
	marked bool
}

// Builder emits code for procedures compiled under one lexical environment.
// Constants and call symbols are interned into that environment's constant table.
type Builder struct {
	env    *LexicalEnv
	code   Code
	fixups map[*Label][]int
}

func NewBuilder(env *LexicalEnv) *Builder {
	return &Builder{
		env:    env,
		fixups: make(map[*Label][]int),
	}
}

func (b *Builder) Env() *LexicalEnv {
	return b.env
}

func (b *Builder) emit(inst Instruction) *Builder {
	b.code = append(b.code, Encode(inst)...)
	return b
}

func (b *Builder) PushConstant(v Value) *Builder {
	return b.emit(OpPushConstant.With(b.env.Intern(v)))
}

func (b *Builder) PushInt(i int64) *Builder {
	return b.PushConstant(Int(i))
}

func (b *Builder) Get(idx int) *Builder {
	return b.emit(OpGet.With(idx))
}

func (b *Builder) Pop() *Builder {
	return b.emit(OpPop.With())
}

func (b *Builder) Dispatch(name string, argc int) *Builder {
	return b.emit(OpDispatch.With(b.env.Intern(Symbol(name)), argc))
}

func (b *Builder) Return() *Builder {
	return b.emit(OpReturn.With())
}

func (b *Builder) Jump(l *Label) *Builder {
	return b.jump(OpJump, l)
}

func (b *Builder) JumpFalse(l *Label) *Builder {
	return b.jump(OpJumpFalse, l)
}

func (b *Builder) jump(op OpCode, l *Label) *Builder {
	b.emit(op.With(l.offset))
	if !l.marked {
		b.fixups[l] = append(b.fixups[l], len(b.code)-1)
	}
	return b
}

// Mark binds l to the current end of the code.
func (b *Builder) Mark(l *Label) *Builder {
	l.offset = len(b.code)
	l.marked = true
	for _, pos := range b.fixups[l] {
		b.code[pos] = l.offset
	}
	delete(b.fixups, l)
	return b
}

// Code returns the emitted code, failing if a referenced label was never marked.
func (b *Builder) Code() (Code, error) {
	if n := len(b.fixups); n > 0 {
		return nil, fmt.Errorf("%d unmarked labels", n)
	}
	return append(Code(nil), b.code...), nil
}

// Overload finishes the builder as a procedure definition.
func (b *Builder) Overload(name string, argc int) (*Overload, error) {
	code, err := b.Code()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return NewOverload(name, b.env, argc, code), nil
}
