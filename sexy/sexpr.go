package sexy

import (
	"fmt"
	"strings"
	"unicode"
)

// NodeType represents the type of a Node
type NodeType int

const (
	NodeSymbol NodeType = iota
	NodeString
	NodeNumber
	NodeEllipsis
	NodeList
)

func (t NodeType) String() string {
	switch t {
	case NodeSymbol:
		return "symbol"
	case NodeString:
		return "string"
	case NodeNumber:
		return "number"
	case NodeEllipsis:
		return "ellipsis"
	case NodeList:
		return "list"
	default:
		return fmt.Sprintf("node type %d", int(t))
	}
}

// Node is a single s-expression datum.
type Node struct {
	Type NodeType

	Text  string  // NodeSymbol, NodeString, NodeNumber
	Items []*Node // NodeList
}

func (n *Node) String() string {
	switch n.Type {
	case NodeSymbol, NodeNumber:
		return n.Text
	case NodeString:
		escaped := strings.ReplaceAll(n.Text, "\\", "\\\\")
		escaped = strings.ReplaceAll(escaped, "\"", "\\\"")
		return "\"" + escaped + "\""
	case NodeEllipsis:
		return "..."
	case NodeList:
		parts := make([]string, len(n.Items))
		for i, item := range n.Items {
			parts[i] = item.String()
		}
		return "(" + strings.Join(parts, " ") + ")"
	default:
		return fmt.Sprintf("UNKNOWN_NODE_TYPE_%d", n.Type)
	}
}

func NewSymbol(name string) *Node {
	return &Node{Type: NodeSymbol, Text: name}
}

func NewString(value string) *Node {
	return &Node{Type: NodeString, Text: value}
}

func NewNumber(text string) *Node {
	return &Node{Type: NodeNumber, Text: text}
}

func NewEllipsis() *Node {
	return &Node{Type: NodeEllipsis}
}

func NewList(items ...*Node) *Node {
	return &Node{Type: NodeList, Items: items}
}

// IsAtom checks if the node is an atomic value
func (n *Node) IsAtom() bool {
	return n.Type != NodeList
}

// IsWildcard reports whether n is the symbol _, which matches any datum.
func (n *Node) IsWildcard() bool {
	return n.Type == NodeSymbol && n.Text == "_"
}

// Head returns the first item of a list when it is a symbol.
func (n *Node) Head() string {
	if n.Type != NodeList || len(n.Items) == 0 || n.Items[0].Type != NodeSymbol {
		return ""
	}
	return n.Items[0].Text
}

type parser struct {
	lexer        *lexer
	currentToken token
}

// Parse parses the entire input and returns the top-level datum
func Parse(input string) (*Node, error) {
	p := &parser{lexer: newLexer(input)}
	if err := p.nextToken(); err != nil {
		return nil, err
	}

	result, err := p.parseDatum()
	if err != nil {
		return nil, err
	}
	if p.currentToken.Type != tokenEOF {
		return nil, fmt.Errorf("offset %d: expected EOF but got %s", p.currentToken.Position, p.currentToken.Type)
	}
	return result, nil
}

func (p *parser) nextToken() error {
	tok, err := p.lexer.nextToken()
	if err != nil {
		return err
	}
	p.currentToken = tok
	return nil
}

func (p *parser) parseDatum() (*Node, error) {
	var node *Node
	switch p.currentToken.Type {
	case tokenSymbol:
		node = NewSymbol(p.currentToken.Value)
	case tokenString:
		node = NewString(p.currentToken.Value)
	case tokenNumber:
		node = NewNumber(p.currentToken.Value)
	case tokenEllipsis:
		node = NewEllipsis()
	case tokenLParen:
		return p.parseList()
	default:
		return nil, fmt.Errorf("offset %d: unexpected token: %s", p.currentToken.Position, p.currentToken.Type)
	}
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	return node, nil
}

func (p *parser) parseList() (*Node, error) {
	open := p.currentToken.Position
	if err := p.nextToken(); err != nil { // consume '('
		return nil, err
	}

	var items []*Node
	for p.currentToken.Type != tokenRParen {
		if p.currentToken.Type == tokenEOF {
			return nil, fmt.Errorf("offset %d: unclosed '('", open)
		}
		item, err := p.parseDatum()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := p.nextToken(); err != nil { // consume ')'
		return nil, err
	}
	return NewList(items...), nil
}

type tokenType int

const (
	tokenEOF tokenType = iota
	tokenSymbol
	tokenString
	tokenNumber
	tokenEllipsis
	tokenLParen
	tokenRParen
)

func (t tokenType) String() string {
	switch t {
	case tokenEOF:
		return "EOF"
	case tokenSymbol:
		return "symbol"
	case tokenString:
		return "string"
	case tokenNumber:
		return "number"
	case tokenEllipsis:
		return "ellipsis"
	case tokenLParen:
		return "'('"
	case tokenRParen:
		return "')'"
	default:
		return fmt.Sprintf("unknown token %d", int(t))
	}
}

type token struct {
	Type     tokenType
	Value    string
	Position int
}

type lexer struct {
	input    string
	position int
}

func newLexer(input string) *lexer {
	return &lexer{input: input}
}

func (l *lexer) current() byte {
	if l.position >= len(l.input) {
		return 0
	}
	return l.input[l.position]
}

func (l *lexer) peek() byte {
	if l.position+1 >= len(l.input) {
		return 0
	}
	return l.input[l.position+1]
}

func (l *lexer) skipWhitespaceAndComments() {
	for l.position < len(l.input) {
		c := l.current()
		switch {
		case unicode.IsSpace(rune(c)):
			l.position++
		case c == ';':
			for l.position < len(l.input) && l.current() != '\n' {
				l.position++
			}
		default:
			return
		}
	}
}

func (l *lexer) readString() (string, error) {
	start := l.position
	l.position++ // opening quote

	var sb strings.Builder
	for {
		if l.position >= len(l.input) {
			return "", fmt.Errorf("offset %d: unterminated string", start)
		}
		c := l.current()
		l.position++
		switch c {
		case '"':
			return sb.String(), nil
		case '\\':
			esc := l.current()
			if esc != '"' && esc != '\\' {
				return "", fmt.Errorf("offset %d: invalid escape sequence: \\%c", l.position-1, esc)
			}
			sb.WriteByte(esc)
			l.position++
		default:
			sb.WriteByte(c)
		}
	}
}

// readNumber accepts an optional sign, digits, an optional fraction and an
// optional exponent: -3, 1.5, 1e+10.
func (l *lexer) readNumber() string {
	start := l.position
	if c := l.current(); c == '+' || c == '-' {
		l.position++
	}
	l.readDigits()
	if l.current() == '.' && isDigit(l.peek()) {
		l.position++
		l.readDigits()
	}
	if c := l.current(); c == 'e' || c == 'E' {
		next := l.peek()
		if isDigit(next) || next == '+' || next == '-' {
			l.position += 2
			l.readDigits()
		}
	}
	return l.input[start:l.position]
}

func (l *lexer) readDigits() {
	for isDigit(l.current()) {
		l.position++
	}
}

func (l *lexer) readSymbol() string {
	start := l.position
	for l.position < len(l.input) && isSymbolChar(rune(l.current())) {
		l.position++
	}
	return l.input[start:l.position]
}

func (l *lexer) nextToken() (token, error) {
	l.skipWhitespaceAndComments()
	pos := l.position

	c := l.current()
	switch {
	case l.position >= len(l.input):
		return token{Type: tokenEOF, Position: pos}, nil
	case c == '(':
		l.position++
		return token{Type: tokenLParen, Value: "(", Position: pos}, nil
	case c == ')':
		l.position++
		return token{Type: tokenRParen, Value: ")", Position: pos}, nil
	case c == '"':
		s, err := l.readString()
		if err != nil {
			return token{}, err
		}
		return token{Type: tokenString, Value: s, Position: pos}, nil
	case strings.HasPrefix(l.input[l.position:], "..."):
		l.position += 3
		return token{Type: tokenEllipsis, Value: "...", Position: pos}, nil
	case isDigit(c), (c == '+' || c == '-') && isDigit(l.peek()):
		return token{Type: tokenNumber, Value: l.readNumber(), Position: pos}, nil
	case isSymbolChar(rune(c)), c == '+', c == '-':
		if c == '+' || c == '-' {
			l.position++
			return token{Type: tokenSymbol, Value: string(c), Position: pos}, nil
		}
		return token{Type: tokenSymbol, Value: l.readSymbol(), Position: pos}, nil
	default:
		return token{}, fmt.Errorf("offset %d: unexpected character '%c'", pos, c)
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSymbolChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_'
}
