package vm

// makeClosure builds a Function value. Its environment starts as a deep copy
// of the innermost active environment; each capture then copies one stack
// slot of the currently active frame into it, addressed downward from the
// frame base like OP_GET_ARG.
//
// With no frame active there is no base to read captures from, so they are
// skipped and the closure keeps only the copied environment. A top-level
// closure can therefore silently lose upvalues; this matches the original
// engine and front ends must not rely on top-level captures.
func (vm *VM) makeClosure(in *Instruction) {
	env := vm.activeEnv().Clone()

	if len(vm.frames) > 0 {
		base := vm.frames[len(vm.frames)-1].base
		for _, c := range in.Captures {
			idx := base - c.Offset
			if idx < 0 || idx >= len(vm.stack) {
				vm.fatalf("capture %q reads stack slot %d of %d", c.Name, idx, len(vm.stack))
			}
			env.Define(c.Name, vm.stack[idx].Clone(), c.Type)
		}
	} else if len(in.Captures) > 0 {
		log.Debugf("engine %s: ip %d: no active frame, %d capture(s) skipped",
			vm.id, vm.ip, len(in.Captures))
	}

	vm.push(FuncVal(in.Entry, env))
}

// call pops a Function value and pushes a call frame for it. The frame base
// is the stack index of the last value pushed before the call, i.e. the
// rightmost argument.
func (vm *VM) call() error {
	fn := vm.pop()
	if !fn.IsFunc() {
		vm.fatalf("call of non-function %s", fn.Inspect())
	}
	if len(vm.frames) >= vm.cfg.MaxFrames {
		return vm.runtimeError("call depth limit exceeded (%d)", vm.cfg.MaxFrames)
	}

	vm.frames = append(vm.frames, Frame{
		entry: fn.Entry,
		env:   fn.Env,
		base:  len(vm.stack) - 1,
		ret:   vm.ip,
	})
	vm.ip = fn.Entry
	return nil
}

// tailCall pops n freshly computed argument values and writes them into the
// current frame's argument slots — the same slots OP_GET_ARG addresses —
// then jumps back to the frame's entry point. The frame itself is reused:
// no push, no base change, so self-recursion in tail position runs at
// constant call-stack depth.
func (vm *VM) tailCall(n int) {
	if len(vm.frames) == 0 {
		vm.fatalf("tail call outside a call frame")
	}
	fr := &vm.frames[len(vm.frames)-1]

	for i := 0; i < n; i++ {
		v := vm.pop()
		idx := fr.base - (n - i - 1)
		if idx < 0 || idx >= len(vm.stack) {
			vm.fatalf("tail call writes stack slot %d of %d", idx, len(vm.stack))
		}
		vm.stack[idx] = v
	}

	vm.ip = fr.entry
}

// ret pops the current call frame, removes the n slots starting at the
// frame base, and resumes after the saved call instruction. Values the
// function body left above those slots keep their relative order and land
// directly atop the caller's pre-call stack.
func (vm *VM) ret(n int) {
	if len(vm.frames) == 0 {
		vm.fatalf("return outside a call frame")
	}
	fr := vm.frames[len(vm.frames)-1]
	vm.frames = vm.frames[:len(vm.frames)-1]

	if n > 0 {
		if fr.base < 0 || fr.base+n > len(vm.stack) {
			vm.fatalf("return drops stack slots [%d, %d) of %d", fr.base, fr.base+n, len(vm.stack))
		}
		vm.stack = append(vm.stack[:fr.base], vm.stack[fr.base+n:]...)
	}

	vm.ip = fr.ret
}

// loadArg pushes a copy of the argument slot at the given offset below the
// current frame's base: offset 0 is the last-pushed (rightmost) argument.
func (vm *VM) loadArg(off int) {
	if len(vm.frames) == 0 {
		vm.fatalf("argument load outside a call frame")
	}
	fr := &vm.frames[len(vm.frames)-1]
	idx := fr.base - off
	if idx < 0 || idx >= len(vm.stack) {
		vm.fatalf("argument load reads stack slot %d of %d", idx, len(vm.stack))
	}
	vm.push(vm.stack[idx].Clone())
}
