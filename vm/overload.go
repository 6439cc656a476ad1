package vm

// Overload is a procedure definition.
// It is created at load time and never mutated afterwards.
type Overload struct {
	Name string
	Env  *LexicalEnv
	Argc int
	Code Code
}

func NewOverload(name string, env *LexicalEnv, argc int, code Code) *Overload {
	return &Overload{
		Name: name,
		Env:  env,
		Argc: argc,
		Code: code,
	}
}
