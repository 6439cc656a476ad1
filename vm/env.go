package vm

import "fmt"

// LexicalEnv is one scope in a parent-linked chain.
// It holds named procedure definitions and the constant table referenced by
// PushConstant and Dispatch operands of code compiled under it.
type LexicalEnv struct {
	Parent    *LexicalEnv
	Procs     map[string]*Overload
	Constants []Value
}

func NewLexicalEnv(parent *LexicalEnv) *LexicalEnv {
	return &LexicalEnv{
		Parent: parent,
	}
}

func (e *LexicalEnv) NewChild() *LexicalEnv {
	return NewLexicalEnv(e)
}

// Define binds name in this scope, replacing any previous binding.
func (e *LexicalEnv) Define(name string, overload *Overload) {
	if e.Procs == nil {
		e.Procs = make(map[string]*Overload)
	}
	e.Procs[name] = overload
}

// ProcEnv returns the nearest scope, starting at e, that defines name.
func (e *LexicalEnv) ProcEnv(name string) (*LexicalEnv, bool) {
	for env := e; env != nil; env = env.Parent {
		if _, ok := env.Procs[name]; ok {
			return env, true
		}
	}
	return nil, false
}

// Lookup resolves name to the definition in the nearest enclosing scope.
func (e *LexicalEnv) Lookup(name string) (*Overload, bool) {
	env, ok := e.ProcEnv(name)
	if !ok {
		return nil, false
	}
	return env.Procs[name], true
}

// AddConstant appends v to the constant table and returns its index.
func (e *LexicalEnv) AddConstant(v Value) int {
	e.Constants = append(e.Constants, v)
	return len(e.Constants) - 1
}

// Intern returns the index of a constant equal to v, adding it if absent.
func (e *LexicalEnv) Intern(v Value) int {
	for i, c := range e.Constants {
		if c.Equal(v) {
			return i
		}
	}
	return e.AddConstant(v)
}

func (e *LexicalEnv) Constant(idx int) (Value, error) {
	if idx < 0 || idx >= len(e.Constants) {
		return Value{}, fmt.Errorf("%w: constant %d of %d", ErrIndexOutOfBounds, idx, len(e.Constants))
	}
	return e.Constants[idx], nil
}
