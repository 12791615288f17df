package main

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestScopeLookupWalksChain(t *testing.T) {
	types := NewTypeRegistry()
	a := NewScopeArena()
	root := a.New(NoScope)
	child := a.New(root)
	grandchild := a.New(child)

	be.True(t, a.AddLocal(root, NewLocalVariable("outer", types.Int)))
	be.True(t, a.AddLocal(child, NewLocalVariable("middle", types.Float)))

	v, ok := a.Lookup(grandchild, "outer")
	be.True(t, ok)
	be.Equal(t, v.Owner, root)

	_, ok = a.LookupLocal(grandchild, "outer")
	be.True(t, !ok)

	_, ok = a.Lookup(root, "middle")
	be.True(t, !ok)

	be.Equal(t, a.Parent(grandchild), child)
	be.Equal(t, a.Parent(root), NoScope)
	be.Equal(t, a.Len(), 3)
}

func TestScopeShadowingRejectedAtAnyDepth(t *testing.T) {
	types := NewTypeRegistry()
	a := NewScopeArena()
	root := a.New(NoScope)
	child := a.New(root)
	grandchild := a.New(child)

	be.True(t, a.AddLocal(root, NewLocalVariable("x", types.Int)))
	be.True(t, !a.AddLocal(root, NewLocalVariable("x", types.Float)))
	be.True(t, !a.AddLocal(child, NewLocalVariable("x", types.Int)))
	be.True(t, !a.AddLocal(grandchild, NewLocalVariable("x", types.Int)))
	be.Equal(t, len(a.Locals(root)), 1)
	be.Equal(t, len(a.Locals(grandchild)), 0)
}

func TestScopeSiblingsAreIndependent(t *testing.T) {
	types := NewTypeRegistry()
	a := NewScopeArena()
	root := a.New(NoScope)
	left := a.New(root)
	right := a.New(root)

	be.True(t, a.AddLocal(left, NewLocalVariable("x", types.Int)))
	be.True(t, a.AddLocal(right, NewLocalVariable("x", types.Int)))

	lx, _ := a.Lookup(left, "x")
	rx, _ := a.Lookup(right, "x")
	be.True(t, lx != rx)
	be.Equal(t, lx.Owner, left)
	be.Equal(t, rx.Owner, right)
}

func TestScopeDeclareReportsNameError(t *testing.T) {
	types := NewTypeRegistry()
	a := NewScopeArena()
	root := a.New(NoScope)
	tok := Token{Text: "x", Kind: IDENT, Pos: Position{Row: 3, Column: 7}}

	be.Err(t, a.Declare(root, NewLocalVariable("x", types.Int), tok), nil)
	err := a.Declare(root, NewLocalVariable("x", types.Int), tok)
	be.Err(t, err, ErrName)
	be.Equal(t, err.Error(), `3:7: name error: duplicate local "x"`)
}

func TestLocalVariableConstant(t *testing.T) {
	types := NewTypeRegistry()
	v := NewLocalVariable("x", types.Int)
	be.True(t, !v.IsConstant())
	be.Equal(t, v.Owner, NoScope)

	v.Value = types.NewInt(3, true)
	be.True(t, v.IsConstant())
}

func TestNewSequenceSeedsOutputOnce(t *testing.T) {
	types := NewTypeRegistry()
	a := NewScopeArena()
	root := a.New(NoScope)

	outer := NewSequence(a, types, root)
	inner := NewSequence(a, types, outer.Scope)

	v, ok := a.LookupLocal(outer.Scope, OutputVariable)
	be.True(t, ok)
	be.Equal(t, v.Type, types.Vec2)

	_, ok = a.LookupLocal(inner.Scope, OutputVariable)
	be.True(t, !ok)
	found, ok := a.Lookup(inner.Scope, OutputVariable)
	be.True(t, ok)
	be.True(t, found == v)
}
