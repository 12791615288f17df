package main

import "fmt"

// TokenKind is the kind of token (symbol, keyword, literal, etc.).
// Symbol kinds are spelled exactly as they appear in source.
type TokenKind string

const (
	// Special tokens
	EOF     TokenKind = "EOF"
	INVALID TokenKind = "INVALID"

	// Identifiers + literals
	IDENT  TokenKind = "IDENT"  // main, color, _tmp
	NUMBER TokenKind = "NUMBER" // 12, 1.5, 2.0f
	STRING TokenKind = "STRING" // "text"

	// Symbols
	ASSIGN    TokenKind = "="
	COMMA     TokenKind = ","
	PLUS      TokenKind = "+"
	MINUS     TokenKind = "-"
	ASTERISK  TokenKind = "*"
	SLASH     TokenKind = "/"
	LBRACE    TokenKind = "{"
	RBRACE    TokenKind = "}"
	LPAREN    TokenKind = "("
	RPAREN    TokenKind = ")"
	SEMICOLON TokenKind = ";"

	// Keywords
	RETURN TokenKind = "RETURN"
	VEC2   TokenKind = "VEC2"
	VEC3   TokenKind = "VEC3"
	VEC4   TokenKind = "VEC4"
)

// TokenClass is the coarse category of a token kind.
type TokenClass string

const (
	ClassSymbol     TokenClass = "symbol"
	ClassKeyword    TokenClass = "keyword"
	ClassNumber     TokenClass = "literal-number"
	ClassString     TokenClass = "literal-string"
	ClassIdentifier TokenClass = "identifier"
	ClassEOF        TokenClass = "eof"
	ClassInvalid    TokenClass = "invalid"
)

var symbols = map[byte]TokenKind{
	'=': ASSIGN,
	',': COMMA,
	'+': PLUS,
	'-': MINUS,
	'*': ASTERISK,
	'/': SLASH,
	'{': LBRACE,
	'}': RBRACE,
	'(': LPAREN,
	')': RPAREN,
	';': SEMICOLON,
}

var keywords = map[string]TokenKind{
	"return": RETURN,
	"vec2":   VEC2,
	"vec3":   VEC3,
	"vec4":   VEC4,
}

// Class reports the coarse category of k.
func (k TokenKind) Class() TokenClass {
	switch k {
	case EOF:
		return ClassEOF
	case IDENT:
		return ClassIdentifier
	case NUMBER:
		return ClassNumber
	case STRING:
		return ClassString
	case RETURN, VEC2, VEC3, VEC4:
		return ClassKeyword
	case INVALID:
		return ClassInvalid
	}
	for _, sym := range symbols {
		if sym == k {
			return ClassSymbol
		}
	}
	return ClassInvalid
}

// Describe returns a human readable description of k for diagnostics.
func (k TokenKind) Describe() string {
	switch k.Class() {
	case ClassSymbol:
		return "'" + string(k) + "'"
	case ClassKeyword:
		for text, kw := range keywords {
			if kw == k {
				return "keyword '" + text + "'"
			}
		}
	case ClassNumber:
		return "number literal"
	case ClassString:
		return "string literal"
	case ClassIdentifier:
		return "identifier"
	case ClassEOF:
		return "end of input"
	}
	return "invalid token"
}

// Position is a 1-based row/column location in the source buffer.
type Position struct {
	Row    int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Column)
}

// Token is a single lexical unit. Tokens are values and never mutated
// after the lexer produces them.
type Token struct {
	Text string
	Kind TokenKind
	Pos  Position
}

func (t Token) String() string {
	if t.Kind == EOF {
		return "EOF@" + t.Pos.String()
	}
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Text, t.Pos)
}

func isSymbolChar(c byte) bool {
	_, ok := symbols[c]
	return ok
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
