package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func TestPrintReturnLiteral(t *testing.T) {
	types := NewTypeRegistry()
	seq := &Sequence{Children: []Node{&Return{Value: intLit(types, 10)}}}
	be.Equal(t, PrintString(seq), "{\n return 10;\n}\n")
}

func TestPrintIndentWidth(t *testing.T) {
	unit := parseUnit(t, "main() { int a = 1; { a = 2; } }")

	var sb strings.Builder
	be.Err(t, NewPrinter(&sb, 4).Print(unit.Functions[0].Body), nil)
	be.Equal(t, sb.String(), "{\n    int a = 1;\n    {\n        a = 2;\n    }\n}\n")

	sb.Reset()
	be.Err(t, NewPrinter(&sb, 0).Print(unit.Functions[0].Body), nil)
	be.Equal(t, sb.String(), "{\n int a = 1;\n {\n  a = 2;\n }\n}\n")
}

func TestPrintExpressions(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1+2", "1 + 2"},
		{"1 - 2 - 3", "1 - 2 - 3"},
		{"(1 - 2) - 3", "(1 - 2) - 3"},
		{"((1 + 2) + 3) + 4", "((1 + 2) + 3) + 4"},
		{"1.25 + 3.0f", "1.25 + 3"},
		{"vec3(1, 2, 3)", "vec3(1, 2, 3)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			be.Equal(t, PrintString(parseExpr(t, tt.input)), tt.want)
		})
	}
}

func TestPrintNonConstantLiteral(t *testing.T) {
	types := NewTypeRegistry()
	be.Equal(t, PrintString(&Literal{Value: types.NewFloat(1, false)}), "Type[float]")
}

func TestPrintUnit(t *testing.T) {
	unit := parseUnit(t, "vec2 pos() { return vec2(0, 1); } main() { vec2 p = vec2(2, 3); gl_Position = p; }")

	var sb strings.Builder
	be.Err(t, NewPrinter(&sb, 2).PrintUnit(unit), nil)
	be.Equal(t, sb.String(), "vec2 pos()\n{\n  return vec2(0, 1);\n}\n\nvoid main()\n{\n  vec2 p = vec2(2, 3);\n  gl_Position = p;\n}\n")
}

type failingWriter struct{ n int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errors.New("disk full")
	}
	w.n--
	return len(p), nil
}

func TestPrintWriteError(t *testing.T) {
	unit := parseUnit(t, "main() { return 1; }")
	err := NewPrinter(&failingWriter{n: 2}, 1).PrintUnit(unit)
	be.Err(t, err, "disk full")
}
