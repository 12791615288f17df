package main

import (
	"errors"
	"testing"

	"github.com/nalgeon/be"
)

func TestCompileErrorMessage(t *testing.T) {
	tok := Token{Text: "}", Kind: RBRACE, Pos: Position{Row: 4, Column: 2}}

	be.Equal(t, expected(tok, "';'").Error(), `4:2: syntax error: unexpected '}' "}", expected ';'`)
	be.Equal(t, newError(NameError, tok, "duplicate local %q", "x").Error(), `4:2: name error: duplicate local "x"`)

	eof := Token{Kind: EOF, Pos: Position{Row: 1, Column: 9}}
	be.Equal(t, expected(eof, "expression").Error(), "1:9: syntax error: unexpected end of input, expected expression")
}

func TestCompileErrorUnwrap(t *testing.T) {
	tests := []struct {
		kind     ErrorKind
		sentinel error
	}{
		{LexError, ErrLex},
		{SyntaxError, ErrSyntax},
		{NameError, ErrName},
		{UnsupportedOperation, ErrUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			var err error = &CompileError{Kind: tt.kind}
			be.True(t, errors.Is(err, tt.sentinel))
			be.Equal(t, tt.kind.String(), tt.sentinel.Error())
		})
	}

	var err error = &CompileError{}
	be.True(t, errors.Unwrap(err) == nil)
	be.Equal(t, ErrorKind(0).String(), "error")
}
