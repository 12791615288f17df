package main

import "strings"

// Lexer turns a source buffer into tokens. It holds the whole buffer in
// memory and never looks behind the cursor.
type Lexer struct {
	input []byte
	pos   int
	row   int
	col   int
}

// NewLexer initializes a lexer over the given input.
func NewLexer(input []byte) *Lexer {
	return &Lexer{input: input, row: 1, col: 1}
}

func (l *Lexer) peekChar() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) advance() byte {
	c := l.input[l.pos]
	l.pos++
	if c == '\n' {
		l.row++
		l.col = 1
	} else {
		l.col++
	}
	return c
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.input)
}

func (l *Lexer) skipWhitespace() {
	for !l.atEnd() && isSpace(l.input[l.pos]) {
		l.advance()
	}
}

// Next scans the next token, discarding leading whitespace first.
// The only error it reports is an unterminated string literal.
func (l *Lexer) Next() (Token, error) {
	l.skipWhitespace()
	start := Position{Row: l.row, Column: l.col}

	if l.atEnd() {
		return Token{Kind: EOF, Pos: start}, nil
	}

	c := l.peekChar()
	if kind, ok := symbols[c]; ok {
		l.advance()
		return Token{Text: string(c), Kind: kind, Pos: start}, nil
	}
	if c == '"' {
		return l.readString(start)
	}
	if isDigit(c) || c == '.' {
		return Token{Text: l.readNumber(), Kind: NUMBER, Pos: start}, nil
	}
	return l.readWord(start), nil
}

// readString reads a double-quoted literal. \" and \\ are unescaped,
// any other backslash pair is kept verbatim.
func (l *Lexer) readString(start Position) (Token, error) {
	l.advance() // opening quote
	var sb strings.Builder
	for {
		if l.atEnd() {
			tok := Token{Text: sb.String(), Kind: INVALID, Pos: start}
			return tok, &CompileError{
				Kind:     LexError,
				Token:    tok,
				Pos:      start,
				Expected: "closing '\"'",
				Msg:      "unterminated string literal",
			}
		}
		c := l.advance()
		switch {
		case c == '"':
			return Token{Text: sb.String(), Kind: STRING, Pos: start}, nil
		case c == '\\' && !l.atEnd():
			esc := l.advance()
			if esc != '"' && esc != '\\' {
				sb.WriteByte('\\')
			}
			sb.WriteByte(esc)
		default:
			sb.WriteByte(c)
		}
	}
}

// readNumber greedily consumes digits, '.', 'f' and 'F'. The text is not
// validated here; the parser rejects malformed literals at conversion.
func (l *Lexer) readNumber() string {
	start := l.pos
	for !l.atEnd() {
		c := l.peekChar()
		if !isDigit(c) && c != '.' && c != 'f' && c != 'F' {
			break
		}
		l.advance()
	}
	return string(l.input[start:l.pos])
}

// readWord accumulates characters until whitespace or a symbol. After every
// appended character the text so far is checked against the keyword table
// and emitted as soon as it matches, so "returnx" scans as the keyword
// "return" followed by the identifier "x".
func (l *Lexer) readWord(start Position) Token {
	var sb strings.Builder
	for !l.atEnd() {
		c := l.peekChar()
		if isSpace(c) || isSymbolChar(c) {
			break
		}
		sb.WriteByte(l.advance())
		if kind, ok := keywords[sb.String()]; ok {
			return Token{Text: sb.String(), Kind: kind, Pos: start}
		}
	}
	return Token{Text: sb.String(), Kind: IDENT, Pos: start}
}

// TokenStream is a lookahead cursor over a Lexer with a capacity of
// exactly one token. Peek is idempotent: repeated calls without an
// intervening Next return the same token.
type TokenStream struct {
	lexer    *Lexer
	buffered bool
	tok      Token
	err      error
}

// NewTokenStream creates a token stream over the given input.
func NewTokenStream(input []byte) *TokenStream {
	return &TokenStream{lexer: NewLexer(input)}
}

// Peek returns the next token without consuming it.
func (s *TokenStream) Peek() (Token, error) {
	if !s.buffered {
		s.tok, s.err = s.lexer.Next()
		s.buffered = true
	}
	return s.tok, s.err
}

// Next consumes and returns the next token.
func (s *TokenStream) Next() (Token, error) {
	if s.buffered {
		s.buffered = false
		return s.tok, s.err
	}
	return s.lexer.Next()
}

// Tokenize scans the whole input. The returned slice always ends with the
// EOF token unless an error is returned.
func Tokenize(input []byte) ([]Token, error) {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			return tokens, nil
		}
	}
}
