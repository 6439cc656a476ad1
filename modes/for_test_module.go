package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ModuleForTest runs providers in development mode, which enables the
// step limit guarding against programs that never halt.
type ModuleForTest struct {
	dscope.Module
	t *testing.T
}

func ForTest(t *testing.T) ModuleForTest {
	return ModuleForTest{
		t: t,
	}
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}

func (ModuleForTest) Mode() Mode {
	return ModeDevelopment
}
