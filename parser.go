package main

import (
	"errors"
	"strconv"
	"strings"
)

// Parser is a recursive-descent parser producing a CodeUnit. It pulls
// tokens on demand and builds the scope tree as blocks are entered.
// The first error aborts parsing; callers decide what to do with it.
type Parser struct {
	tokens *TokenStream
	types  *TypeRegistry
	scopes *ScopeArena
	root   ScopeID
	scope  ScopeID
	tracer Tracer
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithTracer installs a tracer notified on every grammar rule.
func WithTracer(t Tracer) ParserOption {
	return func(p *Parser) {
		p.tracer = t
	}
}

// NewParser creates a parser over input. types must be the registry the
// caller built at startup; it is shared, not copied.
func NewParser(input []byte, types *TypeRegistry, opts ...ParserOption) *Parser {
	p := &Parser{
		tokens: NewTokenStream(input),
		types:  types,
		scopes: NewScopeArena(),
		tracer: discardTracer{},
	}
	p.root = p.scopes.New(NoScope)
	p.scope = p.root
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Scopes returns the scope arena built while parsing.
func (p *Parser) Scopes() *ScopeArena { return p.scopes }

// Scope returns the scope statements are currently parsed in.
func (p *Parser) Scope() ScopeID { return p.scope }

func (p *Parser) enter(rule string) {
	tok, _ := p.tokens.Peek()
	p.tracer.Enter(rule, tok)
}

// expect checks an already consumed token against the expected kind.
func (p *Parser) expect(tok Token, kind TokenKind) (Token, error) {
	if tok.Kind != kind {
		return tok, expected(tok, kind.Describe())
	}
	return tok, nil
}

// nextExpect consumes the next token and expects it to be of kind.
func (p *Parser) nextExpect(kind TokenKind) (Token, error) {
	tok, err := p.tokens.Next()
	if err != nil {
		return tok, err
	}
	return p.expect(tok, kind)
}

// ParseUnit parses function definitions until EOF:
//
//	[type] name ( ) { block }
func (p *Parser) ParseUnit() (*CodeUnit, error) {
	p.enter("unit")
	defer p.tracer.Leave("unit")

	unit := &CodeUnit{Scopes: p.scopes, Types: p.types}
	for {
		tok, err := p.tokens.Next()
		if err != nil {
			p.tracer.Error("unit", err)
			return nil, err
		}
		if tok.Kind == EOF {
			return unit, nil
		}

		fn, err := p.parseFunction(tok)
		if err != nil {
			p.tracer.Error("function", err)
			return nil, err
		}
		if _, ok := unit.Lookup(fn.Name); ok {
			return nil, newError(NameError, Token{Text: fn.Name, Kind: IDENT, Pos: fn.At}, "duplicate function %q", fn.Name)
		}
		unit.Functions = append(unit.Functions, fn)
	}
}

func (p *Parser) parseFunction(first Token) (*Function, error) {
	p.enter("function")
	defer p.tracer.Leave("function")

	if first.Kind != IDENT && !isVectorKeyword(first.Kind) {
		return nil, expected(first, "function result type")
	}

	fn := &Function{At: first.Pos}
	next, err := p.tokens.Peek()
	if err != nil {
		return nil, err
	}
	if first.Kind == IDENT && next.Kind == LPAREN {
		// The result type was omitted.
		fn.Name = first.Text
		fn.Result = p.types.Void
	} else {
		fn.Result, err = p.resolveType(first)
		if err != nil {
			return nil, err
		}
		name, err := p.nextExpect(IDENT)
		if err != nil {
			return nil, err
		}
		fn.Name = name.Text
	}

	if _, err := p.nextExpect(LPAREN); err != nil {
		return nil, err
	}
	if _, err := p.nextExpect(RPAREN); err != nil {
		return nil, err
	}
	open, err := p.nextExpect(LBRACE)
	if err != nil {
		return nil, err
	}
	fn.Body, err = p.parseBlock(open)
	if err != nil {
		return nil, err
	}
	return fn, nil
}

func (p *Parser) resolveType(tok Token) (*Type, error) {
	t, ok := p.types.Lookup(tok.Text)
	if !ok {
		return nil, newError(NameError, tok, "unknown type %q", tok.Text)
	}
	return t, nil
}

// ParseBlock parses the statements of a block whose '{' has already been
// consumed, up to and including the closing '}'. The block gets its own
// scope, child of the current one.
func (p *Parser) ParseBlock(open Token) (*Sequence, error) {
	return p.parseBlock(open)
}

func (p *Parser) parseBlock(open Token) (*Sequence, error) {
	p.enter("block")
	defer p.tracer.Leave("block")

	seq := NewSequence(p.scopes, p.types, p.scope)
	seq.At = open.Pos

	parent := p.scope
	p.scope = seq.Scope
	defer func() { p.scope = parent }()

	for {
		tok, err := p.tokens.Next()
		if err != nil {
			return nil, err
		}

		var stmt Node
		switch tok.Kind {
		case RBRACE:
			return seq, nil
		case EOF:
			return nil, expected(tok, RBRACE.Describe())
		case RETURN:
			stmt, err = p.parseReturn(tok)
		case LBRACE:
			stmt, err = p.parseBlock(tok)
		case IDENT:
			stmt, err = p.parseIdentStatement(tok)
		case VEC2, VEC3, VEC4:
			stmt, err = p.parseDeclaration(tok)
		default:
			err = expected(tok, "statement")
		}
		if err != nil {
			return nil, err
		}
		seq.Add(stmt)
	}
}

// return <expr> ;
func (p *Parser) parseReturn(tok Token) (Node, error) {
	p.enter("return")
	defer p.tracer.Leave("return")

	value, err := p.parseBinaryExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.nextExpect(SEMICOLON); err != nil {
		return nil, err
	}
	return &Return{Value: value, At: tok.Pos}, nil
}

// parseIdentStatement handles a statement starting with an identifier:
// an assignment "name = expr ;" or a declaration "type name = expr ;".
func (p *Parser) parseIdentStatement(tok Token) (Node, error) {
	next, err := p.tokens.Peek()
	if err != nil {
		return nil, err
	}
	if next.Kind == IDENT {
		return p.parseDeclaration(tok)
	}

	p.enter("assignment")
	defer p.tracer.Leave("assignment")

	local, ok := p.scopes.Lookup(p.scope, tok.Text)
	if !ok {
		return nil, newError(NameError, tok, "undefined local %q", tok.Text)
	}
	if _, err := p.nextExpect(ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseBinaryExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.nextExpect(SEMICOLON); err != nil {
		return nil, err
	}
	return &StoreLocal{Local: local, Value: value, At: tok.Pos}, nil
}

// type name = expr ;
//
// The name is declared after its initializer is parsed, so the initializer
// cannot refer to it.
func (p *Parser) parseDeclaration(typeTok Token) (Node, error) {
	p.enter("declaration")
	defer p.tracer.Leave("declaration")

	t, err := p.resolveType(typeTok)
	if err != nil {
		return nil, err
	}
	name, err := p.nextExpect(IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.nextExpect(ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseBinaryExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.nextExpect(SEMICOLON); err != nil {
		return nil, err
	}

	local := NewLocalVariable(name.Text, t)
	if IsConstant(value) {
		if v, err := EvalConstant(p.types, value); err == nil {
			local.Value = v
		}
	}
	if err := p.scopes.Declare(p.scope, local, name); err != nil {
		return nil, err
	}
	return &StoreLocal{Local: local, Value: value, Declare: true, At: typeTok.Pos}, nil
}

// ParseExpression parses a single expression spanning the whole input.
func (p *Parser) ParseExpression() (Node, error) {
	expr, err := p.parseBinaryExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.nextExpect(EOF); err != nil {
		return nil, err
	}
	return expr, nil
}

// parseBinaryExpr parses "unary ((+|-) binary)*". The right operand is a
// full recursive parse, so operators group to the right:
// 1 - 2 - 3 is 1 - (2 - 3).
func (p *Parser) parseBinaryExpr() (Node, error) {
	p.enter("binary")
	defer p.tracer.Leave("binary")

	expr, err := p.parseUnaryExpr()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.tokens.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind != PLUS && tok.Kind != MINUS {
			return expr, nil
		}
		p.tokens.Next()

		right, err := p.parseBinaryExpr()
		if err != nil {
			return nil, err
		}
		expr = &BinaryOp{
			Op:    binaryKindOf(tok.Kind),
			Left:  expr,
			Right: right,
			At:    tok.Pos,
		}
	}
}

func (p *Parser) parseUnaryExpr() (Node, error) {
	tok, err := p.tokens.Next()
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case NUMBER:
		v, err := p.parseNumber(tok)
		if err != nil {
			return nil, err
		}
		return &Literal{Value: v, At: tok.Pos}, nil
	case VEC2, VEC3, VEC4:
		return p.parseVector(tok)
	case IDENT:
		local, ok := p.scopes.Lookup(p.scope, tok.Text)
		if !ok {
			return nil, newError(NameError, tok, "undefined local %q", tok.Text)
		}
		return &LoadLocal{Local: local, At: tok.Pos}, nil
	case LPAREN:
		expr, err := p.parseBinaryExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.nextExpect(RPAREN); err != nil {
			return nil, err
		}
		return expr, nil
	default:
		return nil, &CompileError{
			Kind:     UnsupportedOperation,
			Token:    tok,
			Pos:      tok.Pos,
			Expected: "expression",
		}
	}
}

// parseNumber converts a number token. Text containing '.' is a float and
// may carry one trailing f/F; anything else must be a decimal int.
func (p *Parser) parseNumber(tok Token) (*Value, error) {
	text := tok.Text
	if strings.Contains(text, ".") {
		if strings.HasSuffix(text, "f") || strings.HasSuffix(text, "F") {
			text = text[:len(text)-1]
		}
		f, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return nil, numberError(tok, err)
		}
		return p.types.NewFloat(float32(f), true), nil
	}
	i, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return nil, numberError(tok, err)
	}
	return p.types.NewInt(int32(i), true), nil
}

func numberError(tok Token, err error) *CompileError {
	if errors.Is(err, strconv.ErrRange) {
		return newError(SyntaxError, tok, "numeric literal %q out of range", tok.Text)
	}
	return newError(SyntaxError, tok, "malformed numeric literal %q", tok.Text)
}

// vecN ( number , ... )
func (p *Parser) parseVector(kw Token) (Node, error) {
	p.enter("vector")
	defer p.tracer.Leave("vector")

	t, err := p.resolveType(kw)
	if err != nil {
		return nil, err
	}
	if _, err := p.nextExpect(LPAREN); err != nil {
		return nil, err
	}

	var elems []*Value
	for {
		tok, err := p.tokens.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind != NUMBER {
			return nil, &CompileError{
				Kind:     UnsupportedOperation,
				Token:    tok,
				Pos:      tok.Pos,
				Expected: "scalar number literal",
			}
		}
		v, err := p.parseNumber(tok)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)

		sep, err := p.tokens.Next()
		if err != nil {
			return nil, err
		}
		if sep.Kind == RPAREN {
			break
		}
		if sep.Kind != COMMA {
			return nil, expected(sep, "',' or ')'")
		}
	}

	if len(elems) != t.Size() {
		return nil, newError(UnsupportedOperation, kw, "%s literal needs %d components, got %d", t, t.Size(), len(elems))
	}
	v, err := p.types.NewVector(elems...)
	if err != nil {
		return nil, newError(UnsupportedOperation, kw, "%v", err)
	}
	return &Literal{Value: v, At: kw.Pos}, nil
}

func isVectorKeyword(k TokenKind) bool {
	return k == VEC2 || k == VEC3 || k == VEC4
}
