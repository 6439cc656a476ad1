package vm

import (
	"strconv"
)

type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindSymbol
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindSymbol:
		return "symbol"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is an immutable tagged scalar.
// The zero Value is Null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	s    string
}

func Null() Value {
	return Value{}
}

func Bool(b bool) Value {
	return Value{
		kind: KindBool,
		b:    b,
	}
}

func Int(i int64) Value {
	return Value{
		kind: KindInt,
		i:    i,
	}
}

// Symbol carries operator and procedure names through constant tables.
func Symbol(s string) Value {
	return Value{
		kind: KindSymbol,
		s:    s,
	}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNull() bool {
	return v.kind == KindNull
}

func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

func (v Value) AsInt() (int64, bool) {
	return v.i, v.kind == KindInt
}

func (v Value) AsSymbol() (string, bool) {
	return v.s, v.kind == KindSymbol
}

// Equal reports whether two values have the same kind and payload.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == w.b
	case KindInt:
		return v.i == w.i
	case KindSymbol:
		return v.s == w.s
	}
	return true
}

func (v Value) String() string {
	switch v.kind {
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindSymbol:
		return strconv.Quote(v.s)
	}
	return "NULL"
}
