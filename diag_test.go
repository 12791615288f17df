package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func TestRenderCompileError(t *testing.T) {
	source := []byte("main() {\n\ty = 1;\n}")
	_, err := NewParser(source, NewTypeRegistry()).ParseUnit()
	be.Err(t, err, ErrName)

	got := NewDiagnosticRenderer(false).Render("shader.glsl", source, err)
	want := "shader.glsl:2:2: name error: undefined local \"y\"\n" +
		"   2 | \ty = 1;\n" +
		"     | \t^\n"
	be.Equal(t, got, want)
}

func TestRenderCaretColumn(t *testing.T) {
	source := []byte("float main() { return 1 }\r\n")
	_, err := NewParser(source, NewTypeRegistry()).ParseUnit()

	got := NewDiagnosticRenderer(false).Render("a.glsl", source, err)
	lines := strings.Split(got, "\n")
	be.Equal(t, len(lines), 4)
	be.Equal(t, lines[1], "   1 | float main() { return 1 }")
	be.Equal(t, strings.Index(lines[2], "^"), len("   1 | ")+24)
}

func TestRenderRowOutOfRange(t *testing.T) {
	err := &CompileError{Kind: SyntaxError, Pos: Position{Row: 9, Column: 1}, Msg: "boom"}
	got := NewDiagnosticRenderer(false).Render("x", []byte("one line"), err)
	be.Equal(t, got, "x:9:1: syntax error: boom\n")
}

func TestRenderPlainError(t *testing.T) {
	got := NewDiagnosticRenderer(false).Render("x", nil, errors.New("read failed"))
	be.Equal(t, got, "error: read failed\n")
}

func TestRenderColorKeepsText(t *testing.T) {
	source := []byte("main(){ y = 1; }")
	_, err := NewParser(source, NewTypeRegistry()).ParseUnit()

	got := NewDiagnosticRenderer(true).Render("c.glsl", source, err)
	be.True(t, strings.Contains(got, `undefined local "y"`))
	be.True(t, strings.Contains(got, "^"))
}

func TestSourceLine(t *testing.T) {
	src := []byte("a\r\nb\nc")
	line, ok := sourceLine(src, 1)
	be.True(t, ok)
	be.Equal(t, line, "a")
	line, ok = sourceLine(src, 3)
	be.True(t, ok)
	be.Equal(t, line, "c")
	_, ok = sourceLine(src, 0)
	be.True(t, !ok)
	_, ok = sourceLine(src, 4)
	be.True(t, !ok)
}
