package main

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a compile error.
type ErrorKind int

const (
	LexError ErrorKind = iota + 1
	SyntaxError
	NameError
	UnsupportedOperation
)

func (k ErrorKind) String() string {
	switch k {
	case LexError:
		return "lex error"
	case SyntaxError:
		return "syntax error"
	case NameError:
		return "name error"
	case UnsupportedOperation:
		return "unsupported operation"
	default:
		return "error"
	}
}

// Sentinels for errors.Is; a CompileError unwraps to the one matching its kind.
var (
	ErrLex         = errors.New("lex error")
	ErrSyntax      = errors.New("syntax error")
	ErrName        = errors.New("name error")
	ErrUnsupported = errors.New("unsupported operation")
)

// CompileError is the structured error returned by every lexer and parser
// operation. Token is the offending token and Expected, when set, describes
// what the parser wanted instead.
type CompileError struct {
	Kind     ErrorKind
	Token    Token
	Pos      Position
	Expected string
	Msg      string
}

func (e *CompileError) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = "unexpected " + e.Token.Kind.Describe()
		if e.Token.Text != "" && e.Token.Kind != EOF {
			msg += fmt.Sprintf(" %q", e.Token.Text)
		}
	}
	if e.Expected != "" {
		msg += ", expected " + e.Expected
	}
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, msg)
}

func (e *CompileError) Unwrap() error {
	switch e.Kind {
	case LexError:
		return ErrLex
	case SyntaxError:
		return ErrSyntax
	case NameError:
		return ErrName
	case UnsupportedOperation:
		return ErrUnsupported
	}
	return nil
}

func newError(kind ErrorKind, tok Token, format string, args ...any) *CompileError {
	return &CompileError{
		Kind:  kind,
		Token: tok,
		Pos:   tok.Pos,
		Msg:   fmt.Sprintf(format, args...),
	}
}

// expected builds a SyntaxError for tok when the parser wanted something else.
func expected(tok Token, what string) *CompileError {
	return &CompileError{
		Kind:     SyntaxError,
		Token:    tok,
		Pos:      tok.Pos,
		Expected: what,
	}
}
