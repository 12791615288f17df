package main

import (
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func evalString(t *testing.T, input string, cfg *Config) string {
	t.Helper()
	var out strings.Builder
	be.Err(t, evalLine(input, cfg, &out), nil)
	return out.String()
}

func TestEvalLineExpression(t *testing.T) {
	cfg := DefaultConfig()
	be.Equal(t, evalString(t, "1 + 2", cfg), "1 + 2\n")

	cfg.Fold.Enabled = true
	be.Equal(t, evalString(t, "1 + 2 + 3", cfg), "6\n")

	cfg.Printer.Format = FormatSExpr
	be.Equal(t, evalString(t, "1.5 + 2", cfg), "(binary \"+\" (float 1.5) 2)\n")
}

func TestEvalLineFunction(t *testing.T) {
	cfg := DefaultConfig()
	be.Equal(t, evalString(t, "float f() { return 1 - 1; }", cfg), "float f()\n{\n return 1 - 1;\n}\n")

	cfg.Fold.Enabled = true
	cfg.Printer.Format = FormatSExpr
	be.Equal(t, evalString(t, "float f() { return 1 - 1; }", cfg), "(unit (func \"f\" float (block (return 0))))\n")
}

func TestEvalLineErrors(t *testing.T) {
	var out strings.Builder
	err := evalLine("x + 1", DefaultConfig(), &out)
	be.Err(t, err, ErrName)

	err = evalLine("main() { return 1 }", DefaultConfig(), &out)
	be.Err(t, err, ErrSyntax)
	be.Equal(t, out.String(), "")
}

func TestEvalLineFreshScopes(t *testing.T) {
	cfg := DefaultConfig()
	evalString(t, "main() { int a = 1; }", cfg)
	// a does not leak into the next line.
	err := evalLine("a", cfg, &strings.Builder{})
	be.Err(t, err, `undefined local "a"`)
}

func TestIncomplete(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"main() {", true},
		{"main() {\n int a", true},
		{"main() { { return 1; }", true},
		{"main() { return 1; }", false},
		{"main() { y = 1;", false},
		{"1 +", false},
		{"", false},
	}

	for _, tt := range tests {
		be.Equal(t, incomplete(tt.src), tt.want)
	}
}
