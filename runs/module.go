package runs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/stackvm/logs"
	"github.com/reusee/stackvm/vmconfigs"
)

type Module struct {
	dscope.Module
	Logs      logs.Module
	VMConfigs vmconfigs.Module
}
