package runs

import "github.com/reusee/stackvm/modes"

// StepLimit bounds instructions per run; 0 means unlimited.
type StepLimit int

const DevelopmentStepLimit = 100_000_000

func (Module) StepLimit(
	mode modes.Mode,
) StepLimit {
	if mode == modes.ModeDevelopment {
		return DevelopmentStepLimit
	}
	return 0
}
