package vm

type Interrupt struct {
	Step bool
}

var InterruptStep = &Interrupt{
	Step: true,
}
