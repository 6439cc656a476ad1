package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/e5"
	"github.com/reusee/stackvm/cmds"
	"github.com/reusee/stackvm/debugs"
	"github.com/reusee/stackvm/logs"
	"github.com/reusee/stackvm/modes"
	"github.com/reusee/stackvm/programs"
	"github.com/reusee/stackvm/runs"
	"github.com/reusee/stackvm/vm"
)

var (
	wrap = e5.Wrap.With(e5.WrapStacktrace)

	stepFlag = cmds.Switch("-step")
	tapFlag  = cmds.Switch("-tap")

	program *vm.Program
	name    string
)

func init() {
	cmds.Define("fib", cmds.Func(func(n int) error {
		prog, err := programs.Fib(int64(n))
		if err != nil {
			return err
		}
		program = prog
		name = fmt.Sprintf("fib(%d)", n)
		return nil
	}).Desc("print the n-th fibonacci number"))

	cmds.Define("shadow", cmds.Func(func() error {
		prog, err := programs.Shadowed(1, 2)
		if err != nil {
			return err
		}
		program = prog
		name = "shadow"
		return nil
	}).Desc("run the lexical shadowing demo, halting with 2"))
}

func ce(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, wrap(err))
		os.Exit(1)
	}
}

func main() {
	cmds.Execute(os.Args[1:])
	if program == nil {
		cmds.GlobalExecutor.PrintUsage(os.Stderr)
		os.Exit(2)
	}
	ctx := context.Background()

	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		config vm.Config,
		logger logs.Logger,
		newContext runs.NewContext,
		execute runs.Execute,
		tap debugs.Tap,
	) {
		if config.Trace {
			logs.SetLevel(slog.LevelDebug)
		}
		logger.DebugContext(ctx, "config",
			"program", name,
			"max_stack", config.MaxStack,
			"max_frames", config.MaxFrames,
			"permissive", config.Permissive,
		)

		var c *vm.Context
		var err error
		if *stepFlag {
			c = newContext(program)
			err = runStepper(ctx, c, os.Stdout)
		} else {
			c, err = execute(ctx, program)
		}

		if *tapFlag {
			debugs.TapContext(tap, ctx, name, c)
		}
		ce(err)
	})
}
