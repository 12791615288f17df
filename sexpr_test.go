package main

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestToSExpr(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1", "1"},
		{"1.5", "(float 1.5)"},
		{"3.0", "(float 3.0)"},
		{"1 - 2", `(binary "-" 1 2)`},
		{"vec2(1, 0.5)", "(vec2 1 (float 0.5))"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			be.Equal(t, ToSExpr(parseExpr(t, tt.input)), tt.want)
		})
	}
}

func TestToSExprNonConstant(t *testing.T) {
	types := NewTypeRegistry()
	be.Equal(t, ToSExpr(&Literal{Value: types.NewInt(1, false)}), "(value int)")
	be.Equal(t, ToSExpr(&Literal{Value: types.NewFloat(1e20, true)}), "(float 1e+20)")
}

func TestUnitToSExpr(t *testing.T) {
	unit := parseUnit(t, `main() { vec2 v = vec2(1, 2); gl_Position = v; } float f() { return 0.5; }`)
	be.Equal(t, UnitToSExpr(unit),
		`(unit (func "main" void (block (declare "v" vec2 (vec2 1 2)) (store "gl_Position" (load "v"))))`+
			` (func "f" float (block (return (float 0.5)))))`)
}

func TestQuote(t *testing.T) {
	be.Equal(t, quote(`a"b\c`), `"a\"b\\c"`)
}
