package vm

// Run executes instructions until the program counter reaches the end of the
// sequence or a runtime failure halts it. Instruction effects are never
// rolled back: after a failure the stack, frames, and program counter stay
// in their partial state.
func (vm *VM) Run() error {
	for vm.ip < len(vm.code) {
		in := &vm.code[vm.ip]
		if vm.tracer != nil {
			vm.tracer.instruction(vm.ip, in, len(vm.stack), len(vm.frames))
		}

		switch in.Op {
		case OP_CONST_BOOL:
			vm.push(BoolVal(in.Bool))

		case OP_CONST_INT:
			vm.push(IntVal(in.Int))

		case OP_CONST_UNIT:
			vm.push(UnitVal())

		case OP_ADD, OP_SUB, OP_MUL, OP_DIV, OP_MOD:
			if err := vm.arithOp(in.Op); err != nil {
				return err
			}

		case OP_GT, OP_GE, OP_LT, OP_LE:
			vm.compareOp(in.Op)

		case OP_AND, OP_OR:
			vm.logicOp(in.Op)

		case OP_NOT:
			vm.push(BoolVal(!vm.popBool()))

		case OP_EQ:
			x := vm.pop()
			y := vm.pop()
			vm.push(BoolVal(x.Equals(y)))

		case OP_NE:
			x := vm.pop()
			y := vm.pop()
			vm.push(BoolVal(!x.Equals(y)))

		case OP_DUP:
			v := vm.pop()
			vm.push(v.Clone())
			vm.push(v)

		case OP_POP:
			vm.pop()

		case OP_ROT:
			vm.rot()

		case OP_JUMP:
			vm.ip += in.Off
			continue

		case OP_JUMP_IF_FALSE:
			if !vm.popBool() {
				vm.ip += in.Off
				continue
			}

		case OP_GET_ENV:
			v, ok := vm.activeEnv().Get(in.Name)
			if !ok {
				vm.fatalf("undefined binding %q", in.Name)
			}
			vm.push(v.Clone())

		case OP_SET_ENV:
			vm.activeEnv().Set(in.Name, vm.pop())

		case OP_CLOSURE:
			vm.makeClosure(in)

		case OP_CALL:
			if err := vm.call(); err != nil {
				return err
			}
			continue

		case OP_TAIL_CALL:
			vm.tailCall(in.Off)

		case OP_RETURN:
			vm.ret(in.Off)

		case OP_GET_ARG:
			vm.loadArg(in.Off)

		case OP_SRCPOS:
			vm.line, vm.col = in.Line, in.Col

		default:
			vm.fatalf("unknown opcode %d", in.Op)
		}

		vm.ip++
	}
	return nil
}

// rot cyclically rotates the three topmost values so the former top becomes
// third-from-top: [a, b, c] -> [c, a, b]
func (vm *VM) rot() {
	n := len(vm.stack)
	if n < 3 {
		vm.fatalf("rot needs three stacked values, have %d", n)
	}
	top := vm.stack[n-1]
	copy(vm.stack[n-2:], vm.stack[n-3:n-1])
	vm.stack[n-3] = top
}
