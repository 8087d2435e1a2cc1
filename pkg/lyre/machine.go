// Package lyre is the public embedding API for the Lyre runtime: a Program
// builder for compiled bytecode and a Machine that evaluates it.
//
// The runtime executes bytecode only. Lexing, parsing, type checking, and
// code generation live in the front end; it hands the runtime instruction
// sequences plus the static types it computed for bindings and results.
package lyre

import (
	"io"
	"os"

	_ "github.com/tliron/commonlog/simple"

	"github.com/lyre-lang/lyre/internal/config"
	"github.com/lyre-lang/lyre/internal/typesystem"
	"github.com/lyre-lang/lyre/internal/vm"
)

// Re-exported static type vocabulary.
type Type = typesystem.Type

var (
	BoolType Type = typesystem.Bool
	IntType  Type = typesystem.Int
	UnitType Type = typesystem.Unit
)

// TupleType builds the static type of a tuple value.
func TupleType(elems ...Type) Type {
	return typesystem.TTuple{Elems: elems}
}

// FuncType builds the static type of a function value.
func FuncType(ret Type, params ...Type) Type {
	return typesystem.TFunc{Params: params, ReturnType: ret}
}

// Machine wraps the underlying Lyre engine and provides a high-level
// embedding API. A Machine is single-threaded: one evaluation at a time.
type Machine struct {
	machine *vm.VM
	cfg     *config.Config
}

// New creates a Machine with default configuration.
func New() *Machine {
	return newMachine(config.Default())
}

// NewFromConfig creates a Machine configured from a lyre.yaml file. An empty
// path means search upward from the working directory; defaults are used when
// no file is found.
func NewFromConfig(path string) (*Machine, error) {
	if path == "" {
		found, err := config.Find(".")
		if err != nil {
			return nil, err
		}
		if found == "" {
			return New(), nil
		}
		path = found
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return newMachine(cfg), nil
}

func newMachine(cfg *config.Config) *Machine {
	m := &Machine{
		machine: vm.NewWithConfig(cfg),
		cfg:     cfg,
	}
	if cfg.Trace {
		m.machine.SetTrace(os.Stderr)
	}
	return m
}

// Eval appends the program's instructions to the live engine, runs them, and
// returns the result. typ is the static type the front end computed for the
// whole program; pass nil to skip the result check.
//
// Earlier instructions stay in place, so a session can evaluate a sequence
// of programs against shared global bindings. After an error, call Reset
// before evaluating again.
func (m *Machine) Eval(p *Program, typ Type) (Value, error) {
	return m.machine.Eval(p.Instructions(), typ)
}

// Reset discards all engine state: instructions, stacks, and globals.
func (m *Machine) Reset() {
	m.machine.Reset()
}

// SetTrace enables per-instruction execution tracing to w; nil disables it.
func (m *Machine) SetTrace(w io.Writer) {
	m.machine.SetTrace(w)
}

// Disassemble returns a listing of every instruction evaluated so far.
func (m *Machine) Disassemble(name string) string {
	return m.machine.Disassemble(name)
}

// ID returns the engine's instance id, used to correlate log lines.
func (m *Machine) ID() string {
	return m.machine.ID()
}

// Len returns the number of instructions held by the engine. Code generators
// targeting a live session use this as the base for closure entry points in
// the next program.
func (m *Machine) Len() int {
	return m.machine.Len()
}

// StackDepth returns the operand-stack depth.
func (m *Machine) StackDepth() int {
	return m.machine.StackDepth()
}

// FrameDepth returns the live call-stack depth.
func (m *Machine) FrameDepth() int {
	return m.machine.FrameDepth()
}
