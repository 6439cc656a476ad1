package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ModuleForProduction is loaded by the stackvm binary.
// It provides a nil *testing.T so providers may depend on it unconditionally.
type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

func (ModuleForProduction) T() *testing.T {
	return nil
}

func (ModuleForProduction) Mode() Mode {
	return ModeProduction
}
