package vm

import (
	"fmt"
	"slices"
	"strings"
)

type Builtin struct {
	Name string
	Argc int
	Func func(c *Context, args []Value) (Value, error)
}

type builtinKey struct {
	name string
	argc int
}

var builtins = map[builtinKey]Builtin{}

func defineBuiltin(b Builtin) {
	builtins[builtinKey{b.Name, b.Argc}] = b
}

func init() {
	defineBuiltin(Builtin{
		Name: "+",
		Argc: 2,
		Func: func(_ *Context, args []Value) (Value, error) {
			lhs, rhs, err := intOperands(args)
			if err != nil {
				return Value{}, err
			}
			return Int(lhs + rhs), nil
		},
	})
	defineBuiltin(Builtin{
		Name: "-",
		Argc: 2,
		Func: func(_ *Context, args []Value) (Value, error) {
			lhs, rhs, err := intOperands(args)
			if err != nil {
				return Value{}, err
			}
			return Int(lhs - rhs), nil
		},
	})
	defineBuiltin(Builtin{
		Name: "<",
		Argc: 2,
		Func: func(_ *Context, args []Value) (Value, error) {
			lhs, rhs, err := intOperands(args)
			if err != nil {
				return Value{}, err
			}
			return Bool(lhs < rhs), nil
		},
	})
	defineBuiltin(Builtin{
		Name: "print",
		Argc: 1,
		Func: func(c *Context, args []Value) (Value, error) {
			if _, err := fmt.Fprintln(c.out, args[0].String()); err != nil {
				return Value{}, err
			}
			return Null(), nil
		},
	})
}

func intOperands(args []Value) (lhs, rhs int64, err error) {
	lhs, ok1 := args[0].AsInt()
	rhs, ok2 := args[1].AsInt()
	if !ok1 || !ok2 {
		return 0, 0, fmt.Errorf("%w: operands must be int, got %s and %s", ErrTypeMismatch, args[0].Kind(), args[1].Kind())
	}
	return lhs, rhs, nil
}

// LookupBuiltin matches a builtin by name and arity.
func LookupBuiltin(name string, argc int) (Builtin, bool) {
	b, ok := builtins[builtinKey{name, argc}]
	return b, ok
}

func Builtins() []Builtin {
	ret := make([]Builtin, 0, len(builtins))
	for _, b := range builtins {
		ret = append(ret, b)
	}
	slices.SortFunc(ret, func(a, b Builtin) int {
		return strings.Compare(a.Name, b.Name)
	})
	return ret
}
