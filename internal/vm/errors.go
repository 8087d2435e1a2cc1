package vm

import "fmt"

// RuntimeError is the reported failure class: a domain error raised during
// execution, carrying the most recently marked source position. After a
// RuntimeError the engine's stack, frames, and program counter are left in
// whatever partial state execution reached; callers must Reset or discard
// the engine before reusing it.
//
// Every other unmet precondition — wrong value kind, stack underflow,
// missing frame, undefined binding — indicates a bug in the upstream
// compiler and panics instead (see fatalf).
type RuntimeError struct {
	Message string
	Line    int
	Col     int
}

func (e *RuntimeError) Error() string {
	if e.Line == 0 && e.Col == 0 {
		return e.Message
	}
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Message)
}

// runtimeError builds a RuntimeError at the engine's current source position.
func (vm *VM) runtimeError(format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{
		Message: fmt.Sprintf(format, args...),
		Line:    vm.line,
		Col:     vm.col,
	}
}

// fatalf aborts on an internal-invariant violation. Reaching it means the
// front end handed over ill-formed bytecode; there is nothing to recover.
func (vm *VM) fatalf(format string, args ...interface{}) {
	panic("lyre/vm: ip " + fmt.Sprintf("%d", vm.ip) + ": " + fmt.Sprintf(format, args...))
}
