package vm

type Frame struct {
	Overload *Overload // nil for the top-level frame
	Code     Code
	Env      *LexicalEnv
	PC       int
	Base     int // first operand stack slot owned by this activation
}

func (f *Frame) Name() string {
	if f.Overload == nil {
		return "<top>"
	}
	return f.Overload.Name
}
