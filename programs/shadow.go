package programs

import "github.com/reusee/stackvm/vm"

// Shadowed builds two nested scopes that both define f, each returning a
// distinct constant, and a procedure g in the inner scope whose body calls f.
// The top-level code calls g and returns its result, which is the inner f's.
func Shadowed(outerResult, innerResult int64) (*vm.Program, error) {
	outer := vm.NewLexicalEnv(nil)
	inner := outer.NewChild()

	outerF, err := constantProc(outer.NewChild(), "f", outerResult)
	if err != nil {
		return nil, err
	}
	outer.Define("f", outerF)

	innerF, err := constantProc(inner.NewChild(), "f", innerResult)
	if err != nil {
		return nil, err
	}
	inner.Define("f", innerF)

	g, err := vm.NewBuilder(inner.NewChild()).
		Dispatch("f", 0).
		Return().
		Overload("g", 0)
	if err != nil {
		return nil, err
	}
	inner.Define("g", g)

	code, err := vm.NewBuilder(inner).
		Dispatch("g", 0).
		Return().
		Code()
	if err != nil {
		return nil, err
	}

	return &vm.Program{
		Env:  inner,
		Code: code,
	}, nil
}

func constantProc(env *vm.LexicalEnv, name string, result int64) (*vm.Overload, error) {
	return vm.NewBuilder(env).
		PushInt(result).
		Return().
		Overload(name, 0)
}
