package vmconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/stackvm/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
