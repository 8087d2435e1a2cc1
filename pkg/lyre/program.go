package lyre

import (
	"github.com/lyre-lang/lyre/internal/vm"
)

// Re-exported engine types, so front ends depend on this package alone.
type (
	Instruction  = vm.Instruction
	Capture      = vm.Capture
	Value        = vm.Value
	Environment  = vm.Environment
	RuntimeError = vm.RuntimeError
)

// Program accumulates a bytecode sequence for evaluation. Builder methods
// append one instruction each and return the program, so code generators can
// chain them:
//
//	p := lyre.NewProgram().ConstInt(2).ConstInt(1).Add()
//
// Jump offsets are relative to the jump instruction itself; closure entry
// points are absolute indices into the engine's full sequence, so a code
// generator targeting a live engine must offset them by the engine's current
// length (see Machine.Len).
type Program struct {
	code []vm.Instruction
}

// NewProgram creates an empty program.
func NewProgram() *Program {
	return &Program{}
}

func (p *Program) emit(in vm.Instruction) *Program {
	p.code = append(p.code, in)
	return p
}

// Len returns the number of instructions emitted so far.
func (p *Program) Len() int {
	return len(p.code)
}

// Instructions returns the built sequence.
func (p *Program) Instructions() []vm.Instruction {
	return p.code
}

// Disassemble returns a human-readable listing of the program.
func (p *Program) Disassemble(name string) string {
	return vm.Disassemble(p.code, name)
}

// Constants

func (p *Program) ConstBool(v bool) *Program {
	return p.emit(vm.Instruction{Op: vm.OP_CONST_BOOL, Bool: v})
}

func (p *Program) ConstInt(v int64) *Program {
	return p.emit(vm.Instruction{Op: vm.OP_CONST_INT, Int: v})
}

func (p *Program) ConstUnit() *Program {
	return p.emit(vm.Instruction{Op: vm.OP_CONST_UNIT})
}

// Arithmetic. Operands are popped left-first, so generators emit the
// right-hand subexpression before the left-hand one.

func (p *Program) Add() *Program { return p.emit(vm.Instruction{Op: vm.OP_ADD}) }
func (p *Program) Sub() *Program { return p.emit(vm.Instruction{Op: vm.OP_SUB}) }
func (p *Program) Mul() *Program { return p.emit(vm.Instruction{Op: vm.OP_MUL}) }
func (p *Program) Div() *Program { return p.emit(vm.Instruction{Op: vm.OP_DIV}) }
func (p *Program) Mod() *Program { return p.emit(vm.Instruction{Op: vm.OP_MOD}) }

// Comparisons and logic

func (p *Program) Greater() *Program      { return p.emit(vm.Instruction{Op: vm.OP_GT}) }
func (p *Program) GreaterEqual() *Program { return p.emit(vm.Instruction{Op: vm.OP_GE}) }
func (p *Program) Less() *Program         { return p.emit(vm.Instruction{Op: vm.OP_LT}) }
func (p *Program) LessEqual() *Program    { return p.emit(vm.Instruction{Op: vm.OP_LE}) }
func (p *Program) And() *Program          { return p.emit(vm.Instruction{Op: vm.OP_AND}) }
func (p *Program) Or() *Program           { return p.emit(vm.Instruction{Op: vm.OP_OR}) }
func (p *Program) Not() *Program          { return p.emit(vm.Instruction{Op: vm.OP_NOT}) }
func (p *Program) Equal() *Program        { return p.emit(vm.Instruction{Op: vm.OP_EQ}) }
func (p *Program) NotEqual() *Program     { return p.emit(vm.Instruction{Op: vm.OP_NE}) }

// Stack shaping

func (p *Program) Dup() *Program { return p.emit(vm.Instruction{Op: vm.OP_DUP}) }
func (p *Program) Pop() *Program { return p.emit(vm.Instruction{Op: vm.OP_POP}) }
func (p *Program) Rot() *Program { return p.emit(vm.Instruction{Op: vm.OP_ROT}) }

// Control flow

func (p *Program) Jump(off int) *Program {
	return p.emit(vm.Instruction{Op: vm.OP_JUMP, Off: off})
}

func (p *Program) JumpIfFalse(off int) *Program {
	return p.emit(vm.Instruction{Op: vm.OP_JUMP_IF_FALSE, Off: off})
}

// Bindings

func (p *Program) GetEnv(name string) *Program {
	return p.emit(vm.Instruction{Op: vm.OP_GET_ENV, Name: name})
}

func (p *Program) SetEnv(name string) *Program {
	return p.emit(vm.Instruction{Op: vm.OP_SET_ENV, Name: name})
}

// Functions

func (p *Program) Closure(entry int, captures ...vm.Capture) *Program {
	return p.emit(vm.Instruction{Op: vm.OP_CLOSURE, Entry: entry, Captures: captures})
}

func (p *Program) Call() *Program {
	return p.emit(vm.Instruction{Op: vm.OP_CALL})
}

func (p *Program) TailCall(n int) *Program {
	return p.emit(vm.Instruction{Op: vm.OP_TAIL_CALL, Off: n})
}

func (p *Program) Return(n int) *Program {
	return p.emit(vm.Instruction{Op: vm.OP_RETURN, Off: n})
}

func (p *Program) Arg(off int) *Program {
	return p.emit(vm.Instruction{Op: vm.OP_GET_ARG, Off: off})
}

// Diagnostics

func (p *Program) SrcPos(line, col int) *Program {
	return p.emit(vm.Instruction{Op: vm.OP_SRCPOS, Line: line, Col: col})
}
