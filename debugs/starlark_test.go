package debugs

import (
	"testing"

	"github.com/reusee/stackvm/programs"
	"github.com/reusee/stackvm/vm"
	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	frameDict := func(proc string, pc, base int) starlark.Value {
		d := starlark.NewDict(3)
		d.SetKey(starlark.String("proc"), starlark.String(proc))
		d.SetKey(starlark.String("pc"), starlark.MakeInt(pc))
		d.SetKey(starlark.String("base"), starlark.MakeInt(base))
		return d
	}

	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"string", "foo", starlark.String("foo")},
		{"int", 42, starlark.MakeInt(42)},
		{"null", vm.Null(), starlark.None},
		{"vm bool", vm.Bool(false), starlark.False},
		{"vm int", vm.Int(-3), starlark.MakeInt64(-3)},
		{"symbol", vm.Symbol("fib"), starlark.String("fib")},
		{"stack", []vm.Value{vm.Int(1), vm.Null()}, starlark.NewList([]starlark.Value{
			starlark.MakeInt(1), starlark.None,
		})},
		{"top frame", vm.Frame{PC: 4}, frameDict("<top>", 4, 0)},
		{"frame pointer", &vm.Frame{PC: 2, Base: 1}, frameDict("<top>", 2, 1)},
		{"nil frame pointer", (*vm.Frame)(nil), starlark.None},
		{"frames", []vm.Frame{{}}, starlark.NewList([]starlark.Value{
			frameDict("<top>", 0, 0),
		})},
		{"map", map[string]any{"sp": 3}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.String("sp"), starlark.MakeInt(3))
			return d
		}()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("toStarlarkValue(%#v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}

	t.Run("panic on unsupported type", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("toStarlarkValue did not panic on unsupported type")
			}
		}()
		toStarlarkValue(make(chan bool))
	})
}

func TestToStarlarkFrameOfRunningContext(t *testing.T) {
	prog, err := programs.Fib(3)
	if err != nil {
		t.Fatal(err)
	}
	c := vm.NewContext(prog)
	for range 3 {
		if err := c.Step(); err != nil {
			t.Fatal(err)
		}
	}
	frame, ok := c.Frame(0)
	if !ok {
		t.Fatal("no frame")
	}
	d, ok := toStarlarkValue(frame).(*starlark.Dict)
	if !ok {
		t.Fatalf("got %T", toStarlarkValue(frame))
	}
	proc, found, err := d.Get(starlark.String("proc"))
	if err != nil || !found {
		t.Fatalf("got %v %v", found, err)
	}
	if proc != starlark.String("fib") {
		t.Fatalf("got %v", proc)
	}
}
