package vm

import (
	"testing"

	"github.com/lyre-lang/lyre/internal/typesystem"
)

func TestEnvironmentBindings(t *testing.T) {
	env := NewEnvironment()

	if _, ok := env.Get("x"); ok {
		t.Error("empty environment resolved x")
	}

	env.Define("x", IntVal(1), typesystem.Int)
	v, ok := env.Get("x")
	if !ok {
		t.Fatal("environment did not resolve x")
	}
	testIntegerValue(t, v, 1)

	typ, ok := env.Type("x")
	if !ok {
		t.Fatal("environment did not record a type for x")
	}
	if !typesystem.Equal(typ, typesystem.Int) {
		t.Errorf("recorded type = %s, want %s", typ, typesystem.Int)
	}

	// Set rebinds the value but leaves the recorded type alone.
	env.Set("x", IntVal(2))
	v, _ = env.Get("x")
	testIntegerValue(t, v, 2)
	if _, ok := env.Type("x"); !ok {
		t.Error("Set dropped the recorded type")
	}

	if env.Len() != 1 {
		t.Errorf("Len = %d, want 1", env.Len())
	}
}

func TestEnvironmentCloneIsDeep(t *testing.T) {
	env := NewEnvironment()
	env.Define("t", TupleVal([]Value{IntVal(1)}), typesystem.TTuple{Elems: []typesystem.Type{typesystem.Int}})

	clone := env.Clone()

	// Rebinding in the original must not show through.
	env.Set("t", IntVal(99))
	v, ok := clone.Get("t")
	if !ok {
		t.Fatal("clone is missing t")
	}
	if !v.Equals(TupleVal([]Value{IntVal(1)})) {
		t.Errorf("clone value changed with the original. got=%s", v.Inspect())
	}

	// New bindings in the clone must not leak back.
	clone.Define("y", IntVal(5), typesystem.Int)
	if _, ok := env.Get("y"); ok {
		t.Error("binding added to the clone is visible in the original")
	}
}

func TestEnvironmentEquals(t *testing.T) {
	a := NewEnvironment()
	a.Define("x", IntVal(1), typesystem.Int)

	b := NewEnvironment()
	b.Define("x", IntVal(1), typesystem.Int)

	if !a.Equals(b) {
		t.Error("structurally equal environments compared unequal")
	}
	if !a.Equals(a.Clone()) {
		t.Error("environment compared unequal to its own clone")
	}

	b.Set("x", IntVal(2))
	if a.Equals(b) {
		t.Error("environments with different values compared equal")
	}

	c := NewEnvironment()
	c.Define("y", IntVal(1), typesystem.Int)
	if a.Equals(c) {
		t.Error("environments with different names compared equal")
	}

	d := NewEnvironment()
	d.Define("x", IntVal(1), typesystem.Bool)
	if a.Equals(d) {
		t.Error("environments with different recorded types compared equal")
	}

	var nilEnv *Environment
	if nilEnv.Equals(a) || a.Equals(nilEnv) {
		t.Error("nil environment compared equal to a non-nil one")
	}
	if !nilEnv.Equals(nil) {
		t.Error("two nil environments compared unequal")
	}
}
