package main

import (
	"fmt"
	"io"
	"strings"
)

// Printer renders an AST as indented source-like text. Statements start on
// their own line; each nesting level is indented by Width spaces.
type Printer struct {
	w      io.Writer
	width  int
	indent int
	err    error
}

// NewPrinter returns a printer writing to w with the given indent width.
// A width below 1 means 1.
func NewPrinter(w io.Writer, width int) *Printer {
	if width < 1 {
		width = 1
	}
	return &Printer{w: w, width: width}
}

func (p *Printer) write(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *Printer) pad() {
	p.write(strings.Repeat(" ", p.indent*p.width))
}

// Print renders n and returns the first write error.
func (p *Printer) Print(n Node) error {
	if err := n.Accept(p); err != nil {
		return err
	}
	return p.err
}

// PrintUnit renders every function of u as "type name()" followed by its body.
func (p *Printer) PrintUnit(u *CodeUnit) error {
	for i, fn := range u.Functions {
		if i > 0 {
			p.write("\n")
		}
		p.write(fmt.Sprintf("%s %s()\n", fn.Result, fn.Name))
		if err := p.Print(fn.Body); err != nil {
			return err
		}
	}
	return p.err
}

func (p *Printer) VisitSequence(n *Sequence) error {
	p.pad()
	p.write("{\n")
	p.indent++
	if err := n.VisitChildren(p); err != nil {
		return err
	}
	p.indent--
	p.pad()
	p.write("}\n")
	return p.err
}

func (p *Printer) VisitLiteral(n *Literal) error {
	p.write(n.Value.String())
	return p.err
}

func (p *Printer) VisitReturn(n *Return) error {
	p.pad()
	p.write("return ")
	if err := n.VisitChildren(p); err != nil {
		return err
	}
	p.write(";\n")
	return p.err
}

// VisitBinaryOp parenthesizes a left operand that is itself a BinaryOp;
// operators group to the right, so only that side needs it.
func (p *Printer) VisitBinaryOp(n *BinaryOp) error {
	_, nested := n.Left.(*BinaryOp)
	if nested {
		p.write("(")
	}
	if err := n.Left.Accept(p); err != nil {
		return err
	}
	if nested {
		p.write(")")
	}
	p.write(" " + n.Op.Symbol() + " ")
	return n.Right.Accept(p)
}

func (p *Printer) VisitLoadLocal(n *LoadLocal) error {
	p.write(n.Local.Name)
	return p.err
}

func (p *Printer) VisitStoreLocal(n *StoreLocal) error {
	p.pad()
	if n.Declare {
		p.write(n.Local.Type.Name() + " ")
	}
	p.write(n.Local.Name + " = ")
	if err := n.VisitChildren(p); err != nil {
		return err
	}
	p.write(";\n")
	return p.err
}

// PrintString renders n with a one-space indent.
func PrintString(n Node) string {
	var sb strings.Builder
	_ = NewPrinter(&sb, 1).Print(n)
	return sb.String()
}
