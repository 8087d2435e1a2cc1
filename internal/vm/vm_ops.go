package vm

// Binary operators pop the top of stack first; the code generator emits the
// right-hand operand before the left-hand one, so the first pop yields the
// left operand.

// arithOp executes an integer arithmetic instruction. Division and modulo
// are the only operations with a runtime-checked precondition: a zero
// right-hand operand reports a failure at the last marked source position.
func (vm *VM) arithOp(op Opcode) error {
	x := vm.popInt() // left operand
	y := vm.popInt() // right operand

	switch op {
	case OP_ADD:
		vm.push(IntVal(x + y))
	case OP_SUB:
		vm.push(IntVal(x - y))
	case OP_MUL:
		vm.push(IntVal(x * y))
	case OP_DIV:
		if y == 0 {
			return vm.runtimeError("division by zero")
		}
		vm.push(IntVal(x / y))
	case OP_MOD:
		if y == 0 {
			return vm.runtimeError("division by zero")
		}
		vm.push(IntVal(x % y))
	default:
		vm.fatalf("arithOp called with %s", OpcodeNames[op])
	}
	return nil
}

// compareOp executes an integer comparison instruction.
func (vm *VM) compareOp(op Opcode) {
	x := vm.popInt()
	y := vm.popInt()

	switch op {
	case OP_GT:
		vm.push(BoolVal(x > y))
	case OP_GE:
		vm.push(BoolVal(x >= y))
	case OP_LT:
		vm.push(BoolVal(x < y))
	case OP_LE:
		vm.push(BoolVal(x <= y))
	default:
		vm.fatalf("compareOp called with %s", OpcodeNames[op])
	}
}

// logicOp executes a boolean connective. Both operands are already on the
// stack, so there is no short-circuiting at the engine level.
func (vm *VM) logicOp(op Opcode) {
	x := vm.popBool()
	y := vm.popBool()

	switch op {
	case OP_AND:
		vm.push(BoolVal(x && y))
	case OP_OR:
		vm.push(BoolVal(x || y))
	default:
		vm.fatalf("logicOp called with %s", OpcodeNames[op])
	}
}
