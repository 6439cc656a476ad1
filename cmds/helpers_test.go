package cmds

import (
	"testing"
)

func TestVar(t *testing.T) {
	a := Var[int]("TestVar-int")
	b := Var[string]("TestVar-string")
	GlobalExecutor.MustExecute([]string{
		"TestVar-int", "42",
		"TestVar-string", "fib",
	})
	if *a != 42 {
		t.Fatalf("got %v", *a)
	}
	if *b != "fib" {
		t.Fatalf("got %v", *b)
	}
}

func TestSwitch(t *testing.T) {
	foo := Switch("TestSwitch")
	GlobalExecutor.MustExecute([]string{
		"TestSwitch",
	})
	if !*foo {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{
		"!TestSwitch",
	})
	if *foo {
		t.Fatal()
	}
}

func TestTypedVar(t *testing.T) {
	type Depth int
	v := Var[Depth]("TestTypedVar")
	GlobalExecutor.MustExecute([]string{
		"TestTypedVar", "16",
	})
	if *v != 16 {
		t.Fatalf("got %v", *v)
	}
}
