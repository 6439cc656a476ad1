package runs

import (
	"context"
	"time"

	"github.com/reusee/stackvm/logs"
	"github.com/reusee/stackvm/vm"
)

// NewContext prepares a context for prog with the configured limits, output and logger.
type NewContext func(prog *vm.Program) *vm.Context

func (Module) NewContext(
	config vm.Config,
	out Output,
	logger logs.Logger,
	stepLimit StepLimit,
) NewContext {
	return func(prog *vm.Program) *vm.Context {
		return vm.NewContext(prog,
			vm.WithConfig(config),
			vm.WithWriter(out),
			vm.WithLogger(logger),
			vm.WithMaxSteps(int(stepLimit)),
		)
	}
}

// Execute runs prog until it halts and returns the context for inspection.
// A fault is logged and returned annotated with the run's span.
type Execute func(ctx context.Context, prog *vm.Program) (*vm.Context, error)

func (Module) Execute(
	newContext NewContext,
	newSpan logs.NewSpan,
	logger logs.Logger,
) Execute {
	return func(ctx context.Context, prog *vm.Program) (*vm.Context, error) {
		ctx, _ = newSpan(ctx, "")
		c := newContext(prog)

		start := time.Now()
		for _, err := range c.Run {
			if err != nil {
				logger.ErrorContext(ctx, "fault",
					"error", err,
					"steps", c.Steps(),
					"depth", c.Depth(),
				)
				return c, logs.WrapSpan(ctx, err)
			}
		}

		args := []any{
			"steps", c.Steps(),
			"duration", time.Since(start),
		}
		if res, ok := c.Result(); ok {
			args = append(args, "result", res.String())
		}
		logger.InfoContext(ctx, "halted", args...)
		return c, nil
	}
}
