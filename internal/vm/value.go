package vm

import (
	"fmt"
	"strings"
)

// ValueKind identifies the variant stored in a Value
type ValueKind uint8

const (
	ValBool ValueKind = iota
	ValInt
	ValUnit
	ValTuple
	ValFunc
)

// Value is the runtime representation of a Lyre value. Values have copy
// semantics: every operation that duplicates a value (OP_DUP, OP_GET_ARG,
// OP_GET_ENV, closure capture) goes through Clone, so no two holders ever
// share mutable state.
type Value struct {
	Kind ValueKind

	Bool  bool
	Int   int64
	Elems []Value // Tuple elements

	Entry int          // Function entry point
	Env   *Environment // Function captured environment
}

// Constructors

func BoolVal(v bool) Value {
	return Value{Kind: ValBool, Bool: v}
}

func IntVal(v int64) Value {
	return Value{Kind: ValInt, Int: v}
}

func UnitVal() Value {
	return Value{Kind: ValUnit}
}

func TupleVal(elems []Value) Value {
	return Value{Kind: ValTuple, Elems: elems}
}

func FuncVal(entry int, env *Environment) Value {
	return Value{Kind: ValFunc, Entry: entry, Env: env}
}

// Kind checking helpers

func (v Value) IsBool() bool  { return v.Kind == ValBool }
func (v Value) IsInt() bool   { return v.Kind == ValInt }
func (v Value) IsUnit() bool  { return v.Kind == ValUnit }
func (v Value) IsTuple() bool { return v.Kind == ValTuple }
func (v Value) IsFunc() bool  { return v.Kind == ValFunc }

// Accessors

func (v Value) AsBool() bool {
	return v.Bool
}

func (v Value) AsInt() int64 {
	return v.Int
}

// Clone returns a deep copy: tuple elements and captured environments are
// copied all the way down, so the clone shares no storage with the original.
func (v Value) Clone() Value {
	switch v.Kind {
	case ValTuple:
		elems := make([]Value, len(v.Elems))
		for i, e := range v.Elems {
			elems[i] = e.Clone()
		}
		return TupleVal(elems)
	case ValFunc:
		return FuncVal(v.Entry, v.Env.Clone())
	default:
		return v
	}
}

// Equals reports structural equality. Values of different kinds are never
// equal; tuples compare elementwise; functions compare by entry point and
// captured environment. Comparing functions is semantically unusual but the
// front end's type checker is what keeps such comparisons out of programs,
// not the engine.
func (v Value) Equals(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case ValBool:
		return v.Bool == other.Bool
	case ValInt:
		return v.Int == other.Int
	case ValUnit:
		return true
	case ValTuple:
		if len(v.Elems) != len(other.Elems) {
			return false
		}
		for i := range v.Elems {
			if !v.Elems[i].Equals(other.Elems[i]) {
				return false
			}
		}
		return true
	case ValFunc:
		return v.Entry == other.Entry && v.Env.Equals(other.Env)
	default:
		return false
	}
}

// Inspect returns the display form: true, 42, (), (1, 2), (lambda @12)
func (v Value) Inspect() string {
	switch v.Kind {
	case ValBool:
		return fmt.Sprintf("%t", v.Bool)
	case ValInt:
		return fmt.Sprintf("%d", v.Int)
	case ValUnit:
		return "()"
	case ValTuple:
		parts := make([]string, len(v.Elems))
		for i, e := range v.Elems {
			parts[i] = e.Inspect()
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case ValFunc:
		return fmt.Sprintf("(lambda @%d)", v.Entry)
	default:
		return "<?>"
	}
}

func (v Value) String() string {
	return v.Inspect()
}
