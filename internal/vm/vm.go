package vm

import (
	"io"

	"github.com/google/uuid"
	"github.com/tliron/commonlog"

	"github.com/lyre-lang/lyre/internal/config"
	"github.com/lyre-lang/lyre/internal/typesystem"
)

var log = commonlog.GetLogger("lyre.vm")

// Frame represents a single ongoing function call
type Frame struct {
	entry int          // Entry point of the function being executed
	env   *Environment // The closure's captured environment
	base  int          // Stack index of the last argument; OP_GET_ARG addresses down from here
	ret   int          // Index of the OP_CALL instruction to resume after
}

// VM is the virtual machine that executes Lyre bytecode. One VM owns its
// instruction sequence, operand stack, call stack, and global environment
// exclusively; execution is single-threaded and synchronous.
type VM struct {
	code   []Instruction
	ip     int
	stack  []Value
	frames []Frame

	// Global environment, active whenever no call frame is
	globals *Environment

	// Most recently marked source position, consulted when raising
	// the division-by-zero failure
	line, col int

	id     string
	cfg    *config.Config
	tracer *tracer
}

// New creates a VM with default configuration.
func New() *VM {
	return NewWithConfig(nil)
}

// NewWithConfig creates a VM with the given configuration.
// A nil config means defaults.
func NewWithConfig(cfg *config.Config) *VM {
	if cfg == nil {
		cfg = config.Default()
	}
	vm := &VM{
		code:    make([]Instruction, 0, 256),
		stack:   make([]Value, 0, cfg.InitialStack),
		frames:  make([]Frame, 0, 16),
		globals: NewEnvironment(),
		id:      uuid.NewString(),
		cfg:     cfg,
	}
	log.Debugf("engine %s: created (max_frames=%d)", vm.id, cfg.MaxFrames)
	return vm
}

// ID returns the engine's instance id, used to correlate log lines when
// several engines run in one process.
func (vm *VM) ID() string {
	return vm.id
}

// SetTrace enables per-instruction tracing to w; a nil writer disables it.
func (vm *VM) SetTrace(w io.Writer) {
	if w == nil {
		vm.tracer = nil
		return
	}
	vm.tracer = newTracer(w, vm.cfg.TraceColor)
}

// Len returns the number of appended instructions.
func (vm *VM) Len() int {
	return len(vm.code)
}

// StackDepth returns the current operand-stack depth.
func (vm *VM) StackDepth() int {
	return len(vm.stack)
}

// FrameDepth returns the current call-stack depth, i.e. the live non-tail
// call nesting depth.
func (vm *VM) FrameDepth() int {
	return len(vm.frames)
}

// Globals returns the global environment.
func (vm *VM) Globals() *Environment {
	return vm.globals
}

// Reset discards all engine state: instructions, stacks, globals, and the
// recorded source position. Required before reusing an engine that reported
// a runtime failure.
func (vm *VM) Reset() {
	vm.code = vm.code[:0]
	vm.ip = 0
	vm.stack = vm.stack[:0]
	vm.frames = vm.frames[:0]
	vm.globals = NewEnvironment()
	vm.line, vm.col = 0, 0
	log.Debugf("engine %s: reset", vm.id)
}

// Append adds instructions to the end of the sequence and returns the index
// at which they begin. Earlier instructions keep their indices, so entry
// points and jump targets inside them stay valid.
func (vm *VM) Append(code []Instruction) int {
	start := len(vm.code)
	vm.code = append(vm.code, code...)
	return start
}

// Eval appends a compiled instruction sequence, runs the engine from the
// append point, and returns the resulting top-of-stack value. typ is the
// static type the front end computed for the whole expression; a nil typ
// skips the result check.
//
// On a reported failure the engine halts mid-state; callers should Reset
// before evaluating again.
func (vm *VM) Eval(code []Instruction, typ typesystem.Type) (Value, error) {
	vm.ip = vm.Append(code)
	if err := vm.Run(); err != nil {
		log.Debugf("engine %s: run failed: %s", vm.id, err)
		return Value{}, err
	}
	if len(vm.stack) == 0 {
		return Value{}, vm.runtimeError("stack underflow")
	}
	result := vm.pop()
	if typ != nil && !kindMatches(result, typ) {
		vm.fatalf("result kind %s does not match declared type %s", result.Inspect(), typ)
	}
	return result, nil
}

// kindMatches checks a value's kind against a front-end type. Only the
// outermost constructor is compared; the front end guarantees the rest.
func kindMatches(v Value, typ typesystem.Type) bool {
	switch t := typ.(type) {
	case typesystem.TCon:
		switch t.Name {
		case typesystem.Bool.Name:
			return v.IsBool()
		case typesystem.Int.Name:
			return v.IsInt()
		case typesystem.Unit.Name:
			return v.IsUnit()
		}
		return true
	case typesystem.TTuple:
		return v.IsTuple()
	case typesystem.TFunc:
		return v.IsFunc()
	default:
		return true
	}
}

// push/pop

func (vm *VM) push(v Value) {
	vm.stack = append(vm.stack, v)
}

func (vm *VM) pop() Value {
	if len(vm.stack) == 0 {
		vm.fatalf("stack underflow")
	}
	v := vm.stack[len(vm.stack)-1]
	vm.stack = vm.stack[:len(vm.stack)-1]
	return v
}

func (vm *VM) popBool() bool {
	v := vm.pop()
	if !v.IsBool() {
		vm.fatalf("expected boolean, got %s", v.Inspect())
	}
	return v.Bool
}

func (vm *VM) popInt() int64 {
	v := vm.pop()
	if !v.IsInt() {
		vm.fatalf("expected integer, got %s", v.Inspect())
	}
	return v.Int
}

// activeEnv returns the innermost active environment: the current frame's
// captured environment if a frame is live, the global environment otherwise.
func (vm *VM) activeEnv() *Environment {
	if len(vm.frames) > 0 {
		return vm.frames[len(vm.frames)-1].env
	}
	return vm.globals
}
