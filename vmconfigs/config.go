package vmconfigs

import (
	"github.com/reusee/stackvm/cmds"
	"github.com/reusee/stackvm/configs"
	"github.com/reusee/stackvm/vars"
	"github.com/reusee/stackvm/vm"
)

var (
	maxStackFlag   = cmds.Var[int]("-max-stack")
	maxFramesFlag  = cmds.Var[int]("-max-frames")
	permissiveFlag = cmds.Switch("-permissive")
	traceFlag      = cmds.Switch("-trace")
)

// Config resolves limits and dispatch policy: flags first, then config files,
// then defaults.
func (Module) Config(
	loader configs.Loader,
) vm.Config {
	defaults := vm.DefaultConfig()
	return vm.Config{
		MaxStack: vars.FirstNonZero(
			*maxStackFlag,
			configs.First[int](loader, "max_stack"),
			defaults.MaxStack,
		),
		MaxFrames: vars.FirstNonZero(
			*maxFramesFlag,
			configs.First[int](loader, "max_frames"),
			defaults.MaxFrames,
		),
		Permissive: *permissiveFlag || configs.First[bool](loader, "permissive"),
		Trace:      *traceFlag || configs.First[bool](loader, "trace"),
	}
}
