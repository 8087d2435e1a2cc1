// Package typesystem defines the static type vocabulary the front end
// attaches to bindings and programs. The runtime stores these alongside
// captured values and compares them structurally; all inference and
// checking happens upstream.
package typesystem

import "strings"

// Type is the interface for all types in the system.
type Type interface {
	String() string
}

// TCon represents a concrete type constant (e.g. Bool, Int, Unit).
type TCon struct {
	Name string
}

func (t TCon) String() string {
	return t.Name
}

// TTuple represents a tuple type.
type TTuple struct {
	Elems []Type
}

func (t TTuple) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// TFunc represents a function type.
type TFunc struct {
	Params     []Type
	ReturnType Type
}

func (t TFunc) String() string {
	parts := make([]string, len(t.Params))
	for i, p := range t.Params {
		parts[i] = p.String()
	}
	return "(" + strings.Join(parts, ", ") + ") -> " + t.ReturnType.String()
}

// Builtin type constants.
var (
	Bool = TCon{Name: "Bool"}
	Int  = TCon{Name: "Int"}
	Unit = TCon{Name: "Unit"}
)

// Equal reports whether two types are structurally equal.
// Two nil types are equal; nil never equals a non-nil type.
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch at := a.(type) {
	case TCon:
		bt, ok := b.(TCon)
		return ok && at.Name == bt.Name
	case TTuple:
		bt, ok := b.(TTuple)
		if !ok || len(at.Elems) != len(bt.Elems) {
			return false
		}
		for i := range at.Elems {
			if !Equal(at.Elems[i], bt.Elems[i]) {
				return false
			}
		}
		return true
	case TFunc:
		bt, ok := b.(TFunc)
		if !ok || len(at.Params) != len(bt.Params) {
			return false
		}
		for i := range at.Params {
			if !Equal(at.Params[i], bt.Params[i]) {
				return false
			}
		}
		return Equal(at.ReturnType, bt.ReturnType)
	default:
		return false
	}
}
