package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/stackvm/logs"
	"github.com/reusee/stackvm/vm"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a starlark REPL on stdin with globals bound by name.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		names := slices.Sorted(maps.Keys(globals))
		logger.InfoContext(ctx, "tap: "+what,
			"globals", names,
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		mappings := make(starlark.StringDict, len(globals))
		for _, name := range names {
			mappings[name] = toStarlarkValue(globals[name])
		}

		thread := &starlark.Thread{
			Name: "tap",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, mappings)
	}
}

// TapContext binds the state of c for inspection.
func TapContext(tap Tap, ctx context.Context, what string, c *vm.Context) {
	globals := map[string]any{
		"stack":  c.Stack(),
		"frames": c.Frames(),
		"sp":     c.StackPointer(),
		"depth":  c.Depth(),
		"steps":  c.Steps(),
		"halted": c.Halted(),
	}
	if res, ok := c.Result(); ok {
		globals["result"] = res
	}
	if err := c.Err(); err != nil {
		globals["error"] = err.Error()
	}
	tap(ctx, what, globals)
}
