package vm

import (
	"errors"
	"testing"
)

func evalExpectError(t *testing.T, code []Instruction) *RuntimeError {
	t.Helper()
	vm := New()
	_, err := vm.Eval(code, nil)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	var rerr *RuntimeError
	if !errors.As(err, &rerr) {
		t.Fatalf("error is not a RuntimeError. got=%T (%s)", err, err)
	}
	return rerr
}

func TestDivisionByZero(t *testing.T) {
	tests := []struct {
		name string
		code []Instruction
	}{
		{"1 / 0", []Instruction{srcpos(3, 7), iconst(0), iconst(1), op(OP_DIV)}},
		{"1 % 0", []Instruction{srcpos(3, 7), iconst(0), iconst(1), op(OP_MOD)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rerr := evalExpectError(t, tt.code)
			if rerr.Message != "division by zero" {
				t.Errorf("wrong message. got=%q", rerr.Message)
			}
			if rerr.Line != 3 || rerr.Col != 7 {
				t.Errorf("wrong position. got=%d:%d, want=3:7", rerr.Line, rerr.Col)
			}
			if rerr.Error() != "3:7: division by zero" {
				t.Errorf("wrong rendering. got=%q", rerr.Error())
			}
		})
	}
}

func TestDivisionByZeroWithoutPosition(t *testing.T) {
	rerr := evalExpectError(t, []Instruction{iconst(0), iconst(1), op(OP_DIV)})
	if rerr.Error() != "division by zero" {
		t.Errorf("wrong rendering. got=%q", rerr.Error())
	}
}

func TestFailureCarriesLatestPosition(t *testing.T) {
	code := []Instruction{
		srcpos(1, 1),
		iconst(4),
		iconst(8),
		op(OP_DIV), // fine: 8 / 4
		op(OP_POP),
		srcpos(5, 12),
		iconst(0),
		iconst(2),
		op(OP_DIV), // fails: 2 / 0
	}

	rerr := evalExpectError(t, code)
	if rerr.Line != 5 || rerr.Col != 12 {
		t.Errorf("wrong position. got=%d:%d, want=5:12", rerr.Line, rerr.Col)
	}
}

func TestFailureHaltsExecution(t *testing.T) {
	vm := New()

	code := []Instruction{
		iconst(0),
		iconst(1),
		op(OP_DIV),
		iconst(99), // never reached
	}

	if _, err := vm.Eval(code, nil); err == nil {
		t.Fatal("expected a runtime error")
	}

	// Both operands were consumed and nothing was pushed afterwards.
	if vm.StackDepth() != 0 {
		t.Errorf("stack depth after failure = %d, want 0", vm.StackDepth())
	}

	vm.Reset()
	if vm.Len() != 0 {
		t.Errorf("instruction count after reset = %d, want 0", vm.Len())
	}
	result, err := vm.Eval([]Instruction{iconst(7)}, nil)
	if err != nil {
		t.Fatalf("eval after reset failed: %s", err)
	}
	testIntegerValue(t, result, 7)
}

func TestUndefinedBindingPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic reading an undefined binding")
		}
	}()

	vm := New()
	_, _ = vm.Eval([]Instruction{getenv("nope")}, nil)
}
