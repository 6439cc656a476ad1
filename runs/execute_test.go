package runs

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/stackvm/configs"
	"github.com/reusee/stackvm/logs"
	"github.com/reusee/stackvm/modes"
	"github.com/reusee/stackvm/programs"
	"github.com/reusee/stackvm/vm"
)

type testEnv struct {
	out  *bytes.Buffer
	logs *bytes.Buffer
}

func testScope(t *testing.T, defs ...any) (dscope.Scope, testEnv) {
	env := testEnv{
		out:  new(bytes.Buffer),
		logs: new(bytes.Buffer),
	}
	scope := dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() Output {
			return env.out
		},
		func() logs.Writer {
			return env.logs
		},
		func() configs.Loader {
			return configs.NewLoader(nil, "")
		},
	)
	if len(defs) > 0 {
		scope = scope.Fork(defs...)
	}
	return scope, env
}

func TestExecuteFib(t *testing.T) {
	scope, env := testScope(t)
	scope.Call(func(
		execute Execute,
	) {
		prog, err := programs.Fib(10)
		if err != nil {
			t.Fatal(err)
		}
		c, err := execute(t.Context(), prog)
		if err != nil {
			t.Fatal(err)
		}
		if env.out.String() != "55\n" {
			t.Fatalf("got %q", env.out.String())
		}
		if !c.Halted() {
			t.Fatal("should halt")
		}
		if !strings.Contains(env.logs.String(), "halted") {
			t.Fatalf("got %q", env.logs.String())
		}
	})
}

func TestExecuteFault(t *testing.T) {
	scope, env := testScope(t, func() vm.Config {
		return vm.Config{MaxFrames: 8}
	})
	scope.Call(func(
		execute Execute,
	) {
		prog, err := programs.Fib(10)
		if err != nil {
			t.Fatal(err)
		}
		_, err = execute(context.Background(), prog)
		if !errors.Is(err, vm.ErrStackOverflow) {
			t.Fatalf("got %v", err)
		}
		if !strings.Contains(err.Error(), "span: ") {
			t.Fatalf("got %v", err)
		}
		if !strings.Contains(env.logs.String(), "fault") {
			t.Fatalf("got %q", env.logs.String())
		}
		if env.out.Len() != 0 {
			t.Fatalf("got %q", env.out.String())
		}
	})
}

func TestStepLimit(t *testing.T) {
	scope, _ := testScope(t)
	scope.Call(func(
		limit StepLimit,
	) {
		if limit != DevelopmentStepLimit {
			t.Fatalf("got %v", limit)
		}
	})
	dscope.New(new(Module), modes.ForProduction()).Call(func(
		limit StepLimit,
	) {
		if limit != 0 {
			t.Fatalf("got %v", limit)
		}
	})
}

func TestExecuteResult(t *testing.T) {
	scope, env := testScope(t)
	scope.Call(func(
		execute Execute,
	) {
		prog, err := programs.Shadowed(1, 2)
		if err != nil {
			t.Fatal(err)
		}
		c, err := execute(t.Context(), prog)
		if err != nil {
			t.Fatal(err)
		}
		if res, ok := c.Result(); !ok || !res.Equal(vm.Int(2)) {
			t.Fatalf("got %v", res)
		}
		if !strings.Contains(env.logs.String(), "result=2") {
			t.Fatalf("got %q", env.logs.String())
		}
	})
}
