// Package vm implements the bytecode virtual machine for Lyre
package vm

import "github.com/lyre-lang/lyre/internal/typesystem"

// Opcode represents a single VM instruction
type Opcode uint8

const (
	// Constants
	OP_CONST_BOOL Opcode = iota // Push boolean literal
	OP_CONST_INT                // Push integer literal
	OP_CONST_UNIT               // Push unit

	// Arithmetic (Int × Int → Int)
	OP_ADD // +
	OP_SUB // -
	OP_MUL // *
	OP_DIV // /
	OP_MOD // %

	// Comparison (Int × Int → Bool)
	OP_GT // >
	OP_GE // >=
	OP_LT // <
	OP_LE // <=

	// Logic (Bool × Bool → Bool), non-short-circuiting
	OP_AND // &&
	OP_OR  // ||
	OP_NOT // ! (unary)

	// Equality, structural over any pair of kinds
	OP_EQ // ==
	OP_NE // !=

	// Stack shaping
	OP_DUP // Duplicate top of stack
	OP_POP // Discard top of stack
	OP_ROT // Rotate three topmost: [a, b, c] -> [c, a, b]

	// Control flow; offsets are relative to the jumping instruction
	OP_JUMP          // Unconditional jump
	OP_JUMP_IF_FALSE // Pop a boolean, jump if false

	// Named bindings in the innermost active environment
	OP_GET_ENV // Push a binding's value
	OP_SET_ENV // Pop a value and store it

	// Closures and calls
	OP_CLOSURE   // Build a closure from an entry point and capture list
	OP_CALL      // Pop a function value and push a call frame
	OP_TAIL_CALL // Rewrite the current frame's argument slots and jump to its entry
	OP_RETURN    // Pop the current frame and drop its argument slots
	OP_GET_ARG   // Push a copy of an argument slot, offset from the frame base

	// Diagnostics
	OP_SRCPOS // Record the current source position
)

// OpcodeNames maps opcodes to their string names (for debugging)
var OpcodeNames = map[Opcode]string{
	OP_CONST_BOOL: "CONST_BOOL",
	OP_CONST_INT:  "CONST_INT",
	OP_CONST_UNIT: "CONST_UNIT",

	OP_ADD: "ADD",
	OP_SUB: "SUB",
	OP_MUL: "MUL",
	OP_DIV: "DIV",
	OP_MOD: "MOD",

	OP_GT: "GT",
	OP_GE: "GE",
	OP_LT: "LT",
	OP_LE: "LE",

	OP_AND: "AND",
	OP_OR:  "OR",
	OP_NOT: "NOT",

	OP_EQ: "EQ",
	OP_NE: "NE",

	OP_DUP: "DUP",
	OP_POP: "POP",
	OP_ROT: "ROT",

	OP_JUMP:          "JUMP",
	OP_JUMP_IF_FALSE: "JUMP_IF_FALSE",

	OP_GET_ENV: "GET_ENV",
	OP_SET_ENV: "SET_ENV",

	OP_CLOSURE:   "CLOSURE",
	OP_CALL:      "CALL",
	OP_TAIL_CALL: "TAIL_CALL",
	OP_RETURN:    "RETURN",
	OP_GET_ARG:   "GET_ARG",

	OP_SRCPOS: "SRCPOS",
}

// Capture names an enclosing-frame stack slot whose value is copied into a
// closure's environment when OP_CLOSURE executes.
type Capture struct {
	Name   string
	Offset int // Slots below the enclosing frame's base
	Type   typesystem.Type
}

// Instruction is a single operation together with its immediate operands.
// Which fields are meaningful depends on Op; the rest stay zero.
//
// The code generator is responsible for operand order: for every binary
// operator the right-hand subexpression is emitted before the left-hand one,
// so the engine's first pop yields the left operand. This is an observable
// contract (it fixes evaluation order), not an implementation accident.
type Instruction struct {
	Op Opcode

	Bool bool  // OP_CONST_BOOL literal
	Int  int64 // OP_CONST_INT literal

	// Off is the relative offset for OP_JUMP and OP_JUMP_IF_FALSE, the
	// argument-slot offset for OP_GET_ARG, and the arity for OP_TAIL_CALL
	// and OP_RETURN.
	Off int

	Name string // OP_GET_ENV / OP_SET_ENV binding name

	Entry    int       // OP_CLOSURE entry point
	Captures []Capture // OP_CLOSURE capture list

	Line, Col int // OP_SRCPOS source position
}
