package vm

import (
	"io"
	"testing"
)

func BenchmarkContext_Fib(b *testing.B) {
	root := NewLexicalEnv(nil)
	var otherwise Label
	fib, err := NewBuilder(root.NewChild()).
		Get(0).PushInt(2).Dispatch("<", 2).JumpFalse(&otherwise).
		Get(0).Return().
		Mark(&otherwise).
		Get(0).PushInt(1).Dispatch("-", 2).Dispatch("fib", 1).
		Get(0).PushInt(2).Dispatch("-", 2).Dispatch("fib", 1).
		Dispatch("+", 2).Return().
		Overload("fib", 1)
	if err != nil {
		b.Fatal(err)
	}
	root.Define("fib", fib)
	code, err := NewBuilder(root).PushInt(20).Dispatch("fib", 1).Dispatch("print", 1).Pop().Code()
	if err != nil {
		b.Fatal(err)
	}
	prog := &Program{Env: root, Code: code}

	b.ResetTimer()
	for b.Loop() {
		c := NewContext(prog, WithWriter(io.Discard))
		for _, err := range c.Run {
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}
