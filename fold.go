package main

// IsConstant reports whether n is a constant expression: a Literal whose
// value is flagged constant, or a BinaryOp with two constant operands.
func IsConstant(n Node) bool {
	switch n := n.(type) {
	case *Literal:
		return n.Value.IsConstant()
	case *BinaryOp:
		return IsConstant(n.Left) && IsConstant(n.Right)
	default:
		return false
	}
}

// EvalConstant computes the value of a constant expression. Only add and
// subtract are folded, and only when both operands are int or both are
// float; anything else is an UnsupportedOperation error.
func EvalConstant(types *TypeRegistry, n Node) (*Value, error) {
	switch n := n.(type) {
	case *Literal:
		if !n.Value.IsConstant() {
			return nil, &CompileError{Kind: UnsupportedOperation, Pos: n.At, Msg: "literal is not constant"}
		}
		return n.Value, nil
	case *BinaryOp:
		return evalBinary(types, n)
	default:
		return nil, &CompileError{Kind: UnsupportedOperation, Pos: n.Pos(), Msg: "not a constant expression"}
	}
}

func evalBinary(types *TypeRegistry, n *BinaryOp) (*Value, error) {
	left, err := EvalConstant(types, n.Left)
	if err != nil {
		return nil, err
	}
	right, err := EvalConstant(types, n.Right)
	if err != nil {
		return nil, err
	}

	if n.Op != OpAdd && n.Op != OpSubtract {
		return nil, foldError(n, "cannot fold %s", n.Op)
	}

	switch {
	case left.IsInt() && right.IsInt():
		if n.Op == OpAdd {
			return types.NewInt(left.AsInt()+right.AsInt(), true), nil
		}
		return types.NewInt(left.AsInt()-right.AsInt(), true), nil
	case left.IsFloat() && right.IsFloat():
		if n.Op == OpAdd {
			return types.NewFloat(left.AsFloat()+right.AsFloat(), true), nil
		}
		return types.NewFloat(left.AsFloat()-right.AsFloat(), true), nil
	default:
		return nil, foldError(n, "cannot fold %s of %s and %s", n.Op, left.Type(), right.Type())
	}
}

func foldError(n *BinaryOp, format string, args ...any) *CompileError {
	tok := Token{Text: n.Op.Symbol(), Kind: TokenKind(n.Op.Symbol()), Pos: n.At}
	return newError(UnsupportedOperation, tok, format, args...)
}

// Folder rebuilds a tree with every foldable subexpression replaced by a
// constant Literal. The input tree is left untouched; nodes without
// foldable parts are shared between the two trees.
type Folder struct {
	types  *TypeRegistry
	result Node

	// Unfolded collects the reasons constant subexpressions were kept.
	Unfolded []error
}

func NewFolder(types *TypeRegistry) *Folder {
	return &Folder{types: types}
}

// Fold returns the folded copy of n.
func (f *Folder) Fold(n Node) Node {
	_ = n.Accept(f)
	return f.result
}

func (f *Folder) VisitSequence(n *Sequence) error {
	seq := &Sequence{Scope: n.Scope, At: n.At}
	for _, child := range n.Children {
		seq.Add(f.Fold(child))
	}
	f.result = seq
	return nil
}

func (f *Folder) VisitLiteral(n *Literal) error {
	f.result = n
	return nil
}

func (f *Folder) VisitReturn(n *Return) error {
	f.result = &Return{Value: f.Fold(n.Value), At: n.At}
	return nil
}

func (f *Folder) VisitBinaryOp(n *BinaryOp) error {
	op := &BinaryOp{
		Op:    n.Op,
		Left:  f.Fold(n.Left),
		Right: f.Fold(n.Right),
		At:    n.At,
	}
	f.result = op
	// Operands that stayed BinaryOps after folding already failed to fold.
	if !isConstantLiteral(op.Left) || !isConstantLiteral(op.Right) {
		return nil
	}
	v, err := EvalConstant(f.types, op)
	if err != nil {
		f.Unfolded = append(f.Unfolded, err)
		return nil
	}
	f.result = &Literal{Value: v, At: n.At}
	return nil
}

func isConstantLiteral(n Node) bool {
	lit, ok := n.(*Literal)
	return ok && lit.Value.IsConstant()
}

func (f *Folder) VisitLoadLocal(n *LoadLocal) error {
	f.result = n
	return nil
}

func (f *Folder) VisitStoreLocal(n *StoreLocal) error {
	f.result = &StoreLocal{
		Local:   n.Local,
		Value:   f.Fold(n.Value),
		Declare: n.Declare,
		At:      n.At,
	}
	return nil
}

// FoldUnit returns a copy of u whose function bodies are folded.
func FoldUnit(u *CodeUnit) (*CodeUnit, []error) {
	f := NewFolder(u.Types)
	out := &CodeUnit{Scopes: u.Scopes, Types: u.Types}
	for _, fn := range u.Functions {
		body := f.Fold(fn.Body).(*Sequence)
		out.Functions = append(out.Functions, &Function{
			Name:   fn.Name,
			Result: fn.Result,
			Body:   body,
			At:     fn.At,
		})
	}
	return out, f.Unfolded
}
