package main

// ScopeID addresses a scope inside a ScopeArena.
type ScopeID int

// NoScope is the parent of a root scope.
const NoScope ScopeID = -1

// LocalVariable is a named, typed slot declared in a scope. Value is set
// when the variable is known to hold a constant.
type LocalVariable struct {
	Name  string
	Type  *Type
	Value *Value
	Owner ScopeID
}

func NewLocalVariable(name string, t *Type) *LocalVariable {
	return &LocalVariable{Name: name, Type: t, Owner: NoScope}
}

// IsConstant reports whether the variable carries a constant value.
func (v *LocalVariable) IsConstant() bool {
	return v.Value != nil
}

type scope struct {
	parent ScopeID
	locals []*LocalVariable
}

// ScopeArena stores the scope tree. Scopes refer to their parent by index,
// so lookups walk the chain in O(depth).
type ScopeArena struct {
	scopes []scope
}

func NewScopeArena() *ScopeArena {
	return &ScopeArena{}
}

// New creates a scope whose parent is parent (NoScope for a root).
func (a *ScopeArena) New(parent ScopeID) ScopeID {
	a.scopes = append(a.scopes, scope{parent: parent})
	return ScopeID(len(a.scopes) - 1)
}

// Parent returns the parent of id, or NoScope.
func (a *ScopeArena) Parent(id ScopeID) ScopeID {
	return a.scopes[id].parent
}

// Locals returns the variables declared directly in id, in declaration order.
func (a *ScopeArena) Locals(id ScopeID) []*LocalVariable {
	return a.scopes[id].locals
}

// Len is the number of scopes in the arena.
func (a *ScopeArena) Len() int {
	return len(a.scopes)
}

// LookupLocal searches only the variables declared directly in id.
func (a *ScopeArena) LookupLocal(id ScopeID, name string) (*LocalVariable, bool) {
	for _, v := range a.scopes[id].locals {
		if v.Name == name {
			return v, true
		}
	}
	return nil, false
}

// Lookup walks from id to the root and returns the first variable named name.
func (a *ScopeArena) Lookup(id ScopeID, name string) (*LocalVariable, bool) {
	for cur := id; cur != NoScope; cur = a.scopes[cur].parent {
		if v, ok := a.LookupLocal(cur, name); ok {
			return v, true
		}
	}
	return nil, false
}

// AddLocal appends v to id. It fails when v.Name is already visible
// anywhere on the chain from id to the root: shadowing an outer variable
// is not allowed at any depth.
func (a *ScopeArena) AddLocal(id ScopeID, v *LocalVariable) bool {
	if _, ok := a.Lookup(id, v.Name); ok {
		return false
	}
	a.scopes[id].locals = append(a.scopes[id].locals, v)
	if v.Owner == NoScope {
		v.Owner = id
	}
	return true
}

// Declare is AddLocal reporting a NameError for tok when the name is taken.
func (a *ScopeArena) Declare(id ScopeID, v *LocalVariable, tok Token) error {
	if !a.AddLocal(id, v) {
		return newError(NameError, tok, "duplicate local %q", v.Name)
	}
	return nil
}
