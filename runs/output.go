package runs

import (
	"io"
	"os"
)

// Output receives print output of executed programs.
type Output io.Writer

func (Module) Output() Output {
	return os.Stdout
}
