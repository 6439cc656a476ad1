package programs

import "github.com/reusee/stackvm/vm"

// Fib builds a program printing fib(n), computed by a recursive procedure
// defined in the root scope with its body compiled under a child scope.
//
//	fib:
//	  get 0; push 2; call < (2); jump false else
//	  get 0; return
//	else:
//	  get 0; push 1; call - (2); call fib (1)
//	  get 0; push 2; call - (2); call fib (1)
//	  call + (2); return
//
//	top:
//	  push n; call fib (1); call print (1); pop
func Fib(n int64) (*vm.Program, error) {
	root := vm.NewLexicalEnv(nil)

	fib, err := FibOverload(root.NewChild())
	if err != nil {
		return nil, err
	}
	root.Define("fib", fib)

	code, err := vm.NewBuilder(root).
		PushInt(n).
		Dispatch("fib", 1).
		Dispatch("print", 1).
		Pop().
		Code()
	if err != nil {
		return nil, err
	}

	return &vm.Program{
		Env:  root,
		Code: code,
	}, nil
}

// FibOverload compiles the recursive fib procedure under env.
// The body calls fib by name, so some enclosing scope must define it.
func FibOverload(env *vm.LexicalEnv) (*vm.Overload, error) {
	var otherwise vm.Label
	return vm.NewBuilder(env).
		Get(0).
		PushInt(2).
		Dispatch("<", 2).
		JumpFalse(&otherwise).
		Get(0).
		Return().
		Mark(&otherwise).
		Get(0).
		PushInt(1).
		Dispatch("-", 2).
		Dispatch("fib", 1).
		Get(0).
		PushInt(2).
		Dispatch("-", 2).
		Dispatch("fib", 1).
		Dispatch("+", 2).
		Return().
		Overload("fib", 1)
}
