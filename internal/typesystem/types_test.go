package typesystem

import "testing"

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ      Type
		expected string
	}{
		{Bool, "Bool"},
		{Int, "Int"},
		{Unit, "Unit"},
		{TTuple{Elems: []Type{Int, Bool}}, "(Int, Bool)"},
		{TFunc{Params: []Type{Int}, ReturnType: Int}, "(Int) -> Int"},
		{TFunc{Params: []Type{Int, Bool}, ReturnType: Unit}, "(Int, Bool) -> Unit"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Type
		expected bool
	}{
		{"same con", Int, TCon{Name: "Int"}, true},
		{"different con", Int, Bool, false},
		{"con vs tuple", Int, TTuple{Elems: []Type{Int}}, false},
		{"both nil", nil, nil, true},
		{"nil vs con", nil, Int, false},
		{"equal tuples", TTuple{Elems: []Type{Int, Bool}}, TTuple{Elems: []Type{Int, Bool}}, true},
		{"tuple length mismatch", TTuple{Elems: []Type{Int}}, TTuple{Elems: []Type{Int, Int}}, false},
		{"tuple elem mismatch", TTuple{Elems: []Type{Int}}, TTuple{Elems: []Type{Bool}}, false},
		{
			"equal funcs",
			TFunc{Params: []Type{Int}, ReturnType: Bool},
			TFunc{Params: []Type{Int}, ReturnType: Bool},
			true,
		},
		{
			"func return mismatch",
			TFunc{Params: []Type{Int}, ReturnType: Bool},
			TFunc{Params: []Type{Int}, ReturnType: Int},
			false,
		},
		{
			"func param mismatch",
			TFunc{Params: []Type{Int}, ReturnType: Bool},
			TFunc{Params: []Type{Bool}, ReturnType: Bool},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.expected {
				t.Errorf("Equal(%v, %v) = %t, want %t", tt.a, tt.b, got, tt.expected)
			}
			if got := Equal(tt.b, tt.a); got != tt.expected {
				t.Errorf("Equal(%v, %v) = %t, want %t", tt.b, tt.a, got, tt.expected)
			}
		})
	}
}
