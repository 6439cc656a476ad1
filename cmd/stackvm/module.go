package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/stackvm/debugs"
	"github.com/reusee/stackvm/runs"
)

type Module struct {
	dscope.Module
	Runs   runs.Module
	Debugs debugs.Module
}
