package main

import "strings"

type sexprWriter struct {
	sb strings.Builder
}

// ToSExpr converts an AST node to its s-expression representation, the
// form the markdown test suites match against.
func ToSExpr(node Node) string {
	var w sexprWriter
	_ = node.Accept(&w)
	return w.sb.String()
}

// UnitToSExpr converts every function of u:
//
//	(unit (func "main" float (block ...)) ...)
func UnitToSExpr(u *CodeUnit) string {
	var w sexprWriter
	w.sb.WriteString("(unit")
	for _, fn := range u.Functions {
		w.sb.WriteString(" (func " + quote(fn.Name) + " " + fn.Result.Name() + " ")
		_ = fn.Body.Accept(&w)
		w.sb.WriteString(")")
	}
	w.sb.WriteString(")")
	return w.sb.String()
}

func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

func valueSExpr(v *Value) string {
	switch {
	case v.IsVector():
		parts := []string{v.Type().Name()}
		for i := 0; i < v.Len(); i++ {
			parts = append(parts, valueSExpr(v.At(i)))
		}
		return "(" + strings.Join(parts, " ") + ")"
	case !v.IsConstant():
		return "(value " + v.Type().Name() + ")"
	case v.IsFloat():
		s := formatFloat(v.AsFloat())
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return "(float " + s + ")"
	default:
		return v.String()
	}
}

func (w *sexprWriter) VisitSequence(n *Sequence) error {
	w.sb.WriteString("(block")
	for _, child := range n.Children {
		w.sb.WriteString(" ")
		if err := child.Accept(w); err != nil {
			return err
		}
	}
	w.sb.WriteString(")")
	return nil
}

func (w *sexprWriter) VisitLiteral(n *Literal) error {
	w.sb.WriteString(valueSExpr(n.Value))
	return nil
}

func (w *sexprWriter) VisitReturn(n *Return) error {
	w.sb.WriteString("(return ")
	if err := n.VisitChildren(w); err != nil {
		return err
	}
	w.sb.WriteString(")")
	return nil
}

func (w *sexprWriter) VisitBinaryOp(n *BinaryOp) error {
	w.sb.WriteString("(binary " + quote(n.Op.Symbol()) + " ")
	if err := n.Left.Accept(w); err != nil {
		return err
	}
	w.sb.WriteString(" ")
	if err := n.Right.Accept(w); err != nil {
		return err
	}
	w.sb.WriteString(")")
	return nil
}

func (w *sexprWriter) VisitLoadLocal(n *LoadLocal) error {
	w.sb.WriteString("(load " + quote(n.Local.Name) + ")")
	return nil
}

func (w *sexprWriter) VisitStoreLocal(n *StoreLocal) error {
	if n.Declare {
		w.sb.WriteString("(declare " + quote(n.Local.Name) + " " + n.Local.Type.Name() + " ")
	} else {
		w.sb.WriteString("(store " + quote(n.Local.Name) + " ")
	}
	if err := n.VisitChildren(w); err != nil {
		return err
	}
	w.sb.WriteString(")")
	return nil
}
