package main

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestInspectOrder(t *testing.T) {
	unit := parseUnit(t, "main() { int a = 1 + 2; return a; }")

	var got []NodeKind
	Inspect(unit.Functions[0].Body, func(n Node) bool {
		got = append(got, n.Kind())
		return true
	})
	be.Equal(t, got, []NodeKind{
		NodeSequence,
		NodeStoreLocal, NodeBinaryOp, NodeLiteral, NodeLiteral,
		NodeReturn, NodeLoadLocal,
	})
}

func TestInspectSkipsChildren(t *testing.T) {
	unit := parseUnit(t, "main() { int a = 1 + 2; { return a; } }")

	var got []NodeKind
	Inspect(unit.Functions[0].Body, func(n Node) bool {
		got = append(got, n.Kind())
		return n.Kind() == NodeSequence
	})
	be.Equal(t, got, []NodeKind{NodeSequence, NodeStoreLocal, NodeSequence, NodeReturn})
}

// literalCounter handles one node kind and relies on BaseVisitor for the rest.
type literalCounter struct {
	BaseVisitor
	count int
}

func (c *literalCounter) VisitLiteral(*Literal) error {
	c.count++
	return nil
}

func (c *literalCounter) VisitBinaryOp(n *BinaryOp) error {
	return n.VisitChildren(c)
}

func TestBaseVisitorDoesNotRecurse(t *testing.T) {
	expr := parseExpr(t, "1 + (2 - 3)")

	c := &literalCounter{}
	be.Err(t, expr.Accept(c), nil)
	be.Equal(t, c.count, 3)

	c = &literalCounter{}
	be.Err(t, (&Return{Value: expr}).Accept(c), nil)
	be.Equal(t, c.count, 0)
}

func TestNodePositions(t *testing.T) {
	unit := parseUnit(t, "main() {\n  int a = 1;\n  return a - 2;\n}")
	body := unit.Functions[0].Body
	be.Equal(t, body.Pos(), Position{Row: 1, Column: 8})

	store := body.Children[0]
	be.Equal(t, store.Kind(), NodeStoreLocal)
	be.Equal(t, store.Pos(), Position{Row: 2, Column: 3})

	ret := body.Children[1].(*Return)
	be.Equal(t, ret.Pos(), Position{Row: 3, Column: 3})
	be.Equal(t, ret.Value.Pos(), Position{Row: 3, Column: 12})
	be.Equal(t, ret.Value.(*BinaryOp).Left.Pos(), Position{Row: 3, Column: 10})
}

func TestBinaryKind(t *testing.T) {
	tests := []struct {
		tok    TokenKind
		kind   BinaryKind
		name   string
		symbol string
	}{
		{PLUS, OpAdd, "add", "+"},
		{MINUS, OpSubtract, "subtract", "-"},
		{ASTERISK, OpMultiply, "multiply", "*"},
		{SLASH, OpDivide, "divide", "/"},
		{SEMICOLON, OpUnknown, "unknown", "?"},
	}

	for _, tt := range tests {
		be.Equal(t, binaryKindOf(tt.tok), tt.kind)
		be.Equal(t, tt.kind.String(), tt.name)
		be.Equal(t, tt.kind.Symbol(), tt.symbol)
	}
}
