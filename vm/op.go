package vm

import (
	"fmt"
	"strconv"
	"strings"
)

type OpCode int

const (
	OpPushConstant OpCode = iota + 1
	OpGet
	OpPop
	OpDispatch
	OpJump
	OpJumpFalse
	OpReturn
)

var opNames = [...]string{
	OpPushConstant: "push",
	OpGet:          "get",
	OpPop:          "pop",
	OpDispatch:     "call",
	OpJump:         "jump",
	OpJumpFalse:    "jump false",
	OpReturn:       "return",
}

var opWidths = [...]int{
	OpPushConstant: 2,
	OpGet:          2,
	OpPop:          1,
	OpDispatch:     3,
	OpJump:         2,
	OpJumpFalse:    2,
	OpReturn:       1,
}

func (o OpCode) Valid() bool {
	return o >= OpPushConstant && o <= OpReturn
}

// Width is the number of code words the instruction occupies, opcode included.
func (o OpCode) Width() int {
	if !o.Valid() {
		return 0
	}
	return opWidths[o]
}

func (o OpCode) String() string {
	if !o.Valid() {
		return "op(" + strconv.Itoa(int(o)) + ")"
	}
	return opNames[o]
}

// With builds an instruction with its operands.
func (o OpCode) With(args ...int) Instruction {
	return Instruction{
		Op:   o,
		Args: args,
	}
}

// Code is a flat stream of opcode and operand words.
// Jump targets are word offsets into the stream.
type Code []int

type Instruction struct {
	Op   OpCode
	Args []int
}

func (i Instruction) String() string {
	var b strings.Builder
	b.WriteString(i.Op.String())
	for _, arg := range i.Args {
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(arg))
	}
	return b.String()
}

// Format renders the instruction with constant operands resolved against env.
func (i Instruction) Format(env *LexicalEnv) string {
	if env == nil || len(i.Args) != i.Op.Width()-1 {
		return i.String()
	}
	switch i.Op {
	case OpPushConstant:
		if v, err := env.Constant(i.Args[0]); err == nil {
			return "push " + v.String()
		}
	case OpDispatch:
		if v, err := env.Constant(i.Args[0]); err == nil {
			name, ok := v.AsSymbol()
			if !ok {
				name = v.String()
			}
			return fmt.Sprintf("call %s (%d)", name, i.Args[1])
		}
	}
	return i.String()
}

// Encode flattens instructions into a code stream.
// It panics if an instruction carries the wrong number of operands.
func Encode(insts ...Instruction) Code {
	var code Code
	for _, inst := range insts {
		if !inst.Op.Valid() {
			panic(fmt.Errorf("%w: %d", ErrInvalidOpcode, inst.Op))
		}
		if len(inst.Args) != inst.Op.Width()-1 {
			panic(fmt.Errorf("%s takes %d operands, got %d", inst.Op, inst.Op.Width()-1, len(inst.Args)))
		}
		code = append(code, int(inst.Op))
		code = append(code, inst.Args...)
	}
	return code
}

// Decoded is an instruction with its word offset.
type Decoded struct {
	Offset int
	Instruction
}

func Decode(code Code) ([]Decoded, error) {
	var ret []Decoded
	for pc := 0; pc < len(code); {
		inst, err := decodeAt(code, pc)
		if err != nil {
			return ret, err
		}
		ret = append(ret, Decoded{
			Offset:      pc,
			Instruction: inst,
		})
		pc += inst.Op.Width()
	}
	return ret, nil
}

func decodeAt(code Code, pc int) (Instruction, error) {
	if pc < 0 || pc >= len(code) {
		return Instruction{}, fmt.Errorf("%w: pc %d outside code of length %d", ErrIndexOutOfBounds, pc, len(code))
	}
	op := OpCode(code[pc])
	if !op.Valid() {
		return Instruction{}, fmt.Errorf("%w: %d at %d", ErrInvalidOpcode, code[pc], pc)
	}
	end := pc + op.Width()
	if end > len(code) {
		return Instruction{}, fmt.Errorf("%w: truncated %s at %d", ErrIndexOutOfBounds, op, pc)
	}
	return Instruction{
		Op:   op,
		Args: code[pc+1 : end],
	}, nil
}
