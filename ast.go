package main

// NodeKind represents the different kinds of AST nodes. The set is closed.
type NodeKind string

const (
	NodeSequence   NodeKind = "NodeSequence"
	NodeLiteral    NodeKind = "NodeLiteral"
	NodeReturn     NodeKind = "NodeReturn"
	NodeBinaryOp   NodeKind = "NodeBinaryOp"
	NodeLoadLocal  NodeKind = "NodeLoadLocal"
	NodeStoreLocal NodeKind = "NodeStoreLocal"
)

// OutputVariable is the built-in vec2 local every function body can assign.
const OutputVariable = "gl_Position"

// Node is implemented by every AST node.
//
// Accept dispatches to the Visitor method for the node's kind.
// VisitChildren dispatches every direct child, in traversal order.
type Node interface {
	Kind() NodeKind
	Pos() Position
	Accept(v Visitor) error
	VisitChildren(v Visitor) error
}

// Visitor has one method per node kind, so a visitor that forgets a kind
// does not compile. Embed BaseVisitor to opt into no-op defaults.
type Visitor interface {
	VisitSequence(n *Sequence) error
	VisitLiteral(n *Literal) error
	VisitReturn(n *Return) error
	VisitBinaryOp(n *BinaryOp) error
	VisitLoadLocal(n *LoadLocal) error
	VisitStoreLocal(n *StoreLocal) error
}

// BaseVisitor ignores every node. Its methods do not recurse: an embedding
// visitor must call VisitChildren itself for the kinds it handles.
type BaseVisitor struct{}

func (BaseVisitor) VisitSequence(*Sequence) error     { return nil }
func (BaseVisitor) VisitLiteral(*Literal) error       { return nil }
func (BaseVisitor) VisitReturn(*Return) error         { return nil }
func (BaseVisitor) VisitBinaryOp(*BinaryOp) error     { return nil }
func (BaseVisitor) VisitLoadLocal(*LoadLocal) error   { return nil }
func (BaseVisitor) VisitStoreLocal(*StoreLocal) error { return nil }

// Sequence is an ordered block of statements owning one scope.
type Sequence struct {
	Children []Node
	Scope    ScopeID
	At       Position
}

// NewSequence creates a block with a fresh scope under parent. The scope
// is seeded with the vec2 OutputVariable unless an enclosing scope already
// makes it visible.
func NewSequence(scopes *ScopeArena, types *TypeRegistry, parent ScopeID) *Sequence {
	id := scopes.New(parent)
	if _, ok := scopes.Lookup(id, OutputVariable); !ok {
		scopes.AddLocal(id, NewLocalVariable(OutputVariable, types.Vec2))
	}
	return &Sequence{Scope: id}
}

func (n *Sequence) Add(child Node) {
	n.Children = append(n.Children, child)
}

func (n *Sequence) Kind() NodeKind         { return NodeSequence }
func (n *Sequence) Pos() Position          { return n.At }
func (n *Sequence) Accept(v Visitor) error { return v.VisitSequence(n) }

func (n *Sequence) VisitChildren(v Visitor) error {
	for _, child := range n.Children {
		if err := child.Accept(v); err != nil {
			return err
		}
	}
	return nil
}

// Literal holds a single value.
type Literal struct {
	Value *Value
	At    Position
}

func (n *Literal) Kind() NodeKind              { return NodeLiteral }
func (n *Literal) Pos() Position               { return n.At }
func (n *Literal) Accept(v Visitor) error      { return v.VisitLiteral(n) }
func (n *Literal) VisitChildren(Visitor) error { return nil }

// Return yields the value of its expression.
type Return struct {
	Value Node
	At    Position
}

func (n *Return) Kind() NodeKind                { return NodeReturn }
func (n *Return) Pos() Position                 { return n.At }
func (n *Return) Accept(v Visitor) error        { return v.VisitReturn(n) }
func (n *Return) VisitChildren(v Visitor) error { return n.Value.Accept(v) }

// BinaryKind is the operator of a BinaryOp.
type BinaryKind int

const (
	OpUnknown BinaryKind = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

func (k BinaryKind) String() string {
	switch k {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	default:
		return "unknown"
	}
}

// Symbol is the source spelling of the operator.
func (k BinaryKind) Symbol() string {
	switch k {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	default:
		return "?"
	}
}

// binaryKindOf maps an operator token to its BinaryKind.
func binaryKindOf(kind TokenKind) BinaryKind {
	switch kind {
	case PLUS:
		return OpAdd
	case MINUS:
		return OpSubtract
	case ASTERISK:
		return OpMultiply
	case SLASH:
		return OpDivide
	default:
		return OpUnknown
	}
}

// BinaryOp combines two operands.
type BinaryOp struct {
	Op    BinaryKind
	Left  Node
	Right Node
	At    Position
}

func (n *BinaryOp) Kind() NodeKind         { return NodeBinaryOp }
func (n *BinaryOp) Pos() Position          { return n.At }
func (n *BinaryOp) Accept(v Visitor) error { return v.VisitBinaryOp(n) }

func (n *BinaryOp) VisitChildren(v Visitor) error {
	if err := n.Left.Accept(v); err != nil {
		return err
	}
	return n.Right.Accept(v)
}

// LoadLocal reads a local variable.
type LoadLocal struct {
	Local *LocalVariable
	At    Position
}

func (n *LoadLocal) Kind() NodeKind              { return NodeLoadLocal }
func (n *LoadLocal) Pos() Position               { return n.At }
func (n *LoadLocal) Accept(v Visitor) error      { return v.VisitLoadLocal(n) }
func (n *LoadLocal) VisitChildren(Visitor) error { return nil }

// StoreLocal assigns Value to a local variable. Declare is set when the
// statement also declared the variable.
type StoreLocal struct {
	Local   *LocalVariable
	Value   Node
	Declare bool
	At      Position
}

func (n *StoreLocal) Kind() NodeKind                { return NodeStoreLocal }
func (n *StoreLocal) Pos() Position                 { return n.At }
func (n *StoreLocal) Accept(v Visitor) error        { return v.VisitStoreLocal(n) }
func (n *StoreLocal) VisitChildren(v Visitor) error { return n.Value.Accept(v) }

// inspector adapts a callback to the Visitor interface.
type inspector func(Node) bool

func (f inspector) visit(n Node) error {
	if f(n) {
		return n.VisitChildren(f)
	}
	return nil
}

func (f inspector) VisitSequence(n *Sequence) error     { return f.visit(n) }
func (f inspector) VisitLiteral(n *Literal) error       { return f.visit(n) }
func (f inspector) VisitReturn(n *Return) error         { return f.visit(n) }
func (f inspector) VisitBinaryOp(n *BinaryOp) error     { return f.visit(n) }
func (f inspector) VisitLoadLocal(n *LoadLocal) error   { return f.visit(n) }
func (f inspector) VisitStoreLocal(n *StoreLocal) error { return f.visit(n) }

// Inspect traverses the tree rooted at n in depth-first order, calling fn
// for each node. Children are skipped when fn returns false.
func Inspect(n Node, fn func(Node) bool) {
	_ = n.Accept(inspector(fn))
}

// Function is a named function with a declared result type.
type Function struct {
	Name   string
	Result *Type
	Body   *Sequence
	At     Position
}

// CodeUnit is the result of parsing one source buffer.
type CodeUnit struct {
	Functions []*Function
	Scopes    *ScopeArena
	Types     *TypeRegistry
}

// Lookup returns the first function named name.
func (u *CodeUnit) Lookup(name string) (*Function, bool) {
	for _, f := range u.Functions {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}
