package vm

import (
	"fmt"
	"strings"
)

// String returns the mnemonic rendering of an instruction: add, const 5,
// jmp -3, lambda @12, getenv x. Output-only; nothing re-parses it.
func (in Instruction) String() string {
	switch in.Op {
	case OP_CONST_BOOL:
		return fmt.Sprintf("const %t", in.Bool)
	case OP_CONST_INT:
		return fmt.Sprintf("const %d", in.Int)
	case OP_CONST_UNIT:
		return "uconst"
	case OP_ADD:
		return "add"
	case OP_SUB:
		return "sub"
	case OP_MUL:
		return "mul"
	case OP_DIV:
		return "div"
	case OP_MOD:
		return "mod"
	case OP_GT:
		return "gt"
	case OP_GE:
		return "ge"
	case OP_LT:
		return "lt"
	case OP_LE:
		return "le"
	case OP_AND:
		return "and"
	case OP_OR:
		return "or"
	case OP_NOT:
		return "not"
	case OP_EQ:
		return "eq"
	case OP_NE:
		return "neq"
	case OP_DUP:
		return "dup"
	case OP_POP:
		return "pop"
	case OP_ROT:
		return "rot"
	case OP_JUMP:
		return fmt.Sprintf("jmp %d", in.Off)
	case OP_JUMP_IF_FALSE:
		return fmt.Sprintf("jz %d", in.Off)
	case OP_GET_ENV:
		return fmt.Sprintf("getenv %s", in.Name)
	case OP_SET_ENV:
		return fmt.Sprintf("setenv %s", in.Name)
	case OP_CLOSURE:
		if len(in.Captures) == 0 {
			return fmt.Sprintf("lambda @%d", in.Entry)
		}
		names := make([]string, len(in.Captures))
		for i, c := range in.Captures {
			names[i] = fmt.Sprintf("%s:%d", c.Name, c.Offset)
		}
		return fmt.Sprintf("lambda @%d [%s]", in.Entry, strings.Join(names, " "))
	case OP_CALL:
		return "call"
	case OP_TAIL_CALL:
		return fmt.Sprintf("recur %d", in.Off)
	case OP_RETURN:
		return fmt.Sprintf("ret %d", in.Off)
	case OP_GET_ARG:
		return fmt.Sprintf("arg %d", in.Off)
	case OP_SRCPOS:
		return fmt.Sprintf("srcpos %d %d", in.Line, in.Col)
	default:
		return fmt.Sprintf("unknown opcode %d", in.Op)
	}
}

// Disassemble returns a human-readable listing of an instruction sequence,
// one line per instruction with its index.
func Disassemble(code []Instruction, name string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("== %s ==\n", name))
	for i, in := range code {
		sb.WriteString(fmt.Sprintf("%04d %s\n", i, in.String()))
	}

	return sb.String()
}

// Disassemble returns the listing of everything appended to the engine.
func (vm *VM) Disassemble(name string) string {
	return Disassemble(vm.code, name)
}
