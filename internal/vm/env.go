package vm

import "github.com/lyre-lang/lyre/internal/typesystem"

// Environment stores lexically scoped bindings: each name maps to a value
// and to the static type the front end assigned to it. Environments cover
// what stack-offset addressing does not — top-level declarations and
// closure upvalues.
//
// Environments are never shared: closure creation deep-copies the innermost
// active environment, so mutation after capture does not propagate to
// previously created closures.
type Environment struct {
	values map[string]Value
	types  map[string]typesystem.Type
}

// NewEnvironment creates an empty environment.
func NewEnvironment() *Environment {
	return &Environment{
		values: make(map[string]Value),
		types:  make(map[string]typesystem.Type),
	}
}

// Get returns the value bound to name.
func (e *Environment) Get(name string) (Value, bool) {
	v, ok := e.values[name]
	return v, ok
}

// Type returns the static type recorded for name.
func (e *Environment) Type(name string) (typesystem.Type, bool) {
	t, ok := e.types[name]
	return t, ok
}

// Set binds a value to name, leaving any recorded type untouched.
func (e *Environment) Set(name string, v Value) {
	e.values[name] = v
}

// Define binds a value together with its static type. Used by closure
// capture, which carries the type alongside the captured value.
func (e *Environment) Define(name string, v Value, t typesystem.Type) {
	e.values[name] = v
	e.types[name] = t
}

// Len returns the number of bound names.
func (e *Environment) Len() int {
	return len(e.values)
}

// Clone returns a deep copy. The clone aliases no storage with the
// original: values are cloned recursively and both maps are fresh.
func (e *Environment) Clone() *Environment {
	clone := &Environment{
		values: make(map[string]Value, len(e.values)),
		types:  make(map[string]typesystem.Type, len(e.types)),
	}
	for name, v := range e.values {
		clone.values[name] = v.Clone()
	}
	for name, t := range e.types {
		clone.types[name] = t
	}
	return clone
}

// Equals reports structural equality: same names, elementwise-equal values,
// and equal recorded types.
func (e *Environment) Equals(other *Environment) bool {
	if e == nil || other == nil {
		return e == other
	}
	if len(e.values) != len(other.values) || len(e.types) != len(other.types) {
		return false
	}
	for name, v := range e.values {
		ov, ok := other.values[name]
		if !ok || !v.Equals(ov) {
			return false
		}
	}
	for name, t := range e.types {
		ot, ok := other.types[name]
		if !ok || !typesystem.Equal(t, ot) {
			return false
		}
	}
	return true
}
