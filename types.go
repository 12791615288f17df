package main

import (
	"fmt"
	"strconv"
	"strings"
)

// Type is one of the primitive types of the language. Types are compared
// structurally: see Compatible.
type Type struct {
	name    string
	size    int
	numeric bool
}

func (t *Type) Name() string    { return t.name }
func (t *Type) Size() int       { return t.size }
func (t *Type) IsNumeric() bool { return t.numeric }
func (t *Type) String() string  { return t.name }

// Compatible reports whether t and other have the same component count and
// numeric-ness, regardless of their names.
func (t *Type) Compatible(other *Type) bool {
	return t.size == other.size && t.numeric == other.numeric
}

// TypeRegistry owns the seven primitive types. Build it once with
// NewTypeRegistry before parsing and pass it to every consumer; it is
// read-only afterwards.
type TypeRegistry struct {
	Float *Type
	Int   *Type
	Vec2  *Type
	Vec3  *Type
	Vec4  *Type
	Void  *Type
	Error *Type

	byName map[string]*Type
}

func NewTypeRegistry() *TypeRegistry {
	r := &TypeRegistry{
		Float: &Type{name: "float", size: 1, numeric: false},
		Int:   &Type{name: "int", size: 1, numeric: true},
		Vec2:  &Type{name: "vec2", size: 2, numeric: false},
		Vec3:  &Type{name: "vec3", size: 3, numeric: false},
		Vec4:  &Type{name: "vec4", size: 4, numeric: false},
		Void:  &Type{name: "void", size: 0, numeric: true},
		Error: &Type{name: "__ERROR__", size: 0, numeric: true},
	}
	r.byName = make(map[string]*Type)
	for _, t := range []*Type{r.Float, r.Int, r.Vec2, r.Vec3, r.Vec4, r.Void} {
		r.byName[t.name] = t
	}
	return r
}

// Lookup resolves a type by its source spelling. The error type has no
// spelling and is never returned.
func (r *TypeRegistry) Lookup(name string) (*Type, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// Vector returns the vector type with n components.
func (r *TypeRegistry) Vector(n int) (*Type, bool) {
	switch n {
	case 2:
		return r.Vec2, true
	case 3:
		return r.Vec3, true
	case 4:
		return r.Vec4, true
	}
	return nil, false
}

// All returns every registered type, the error type last.
func (r *TypeRegistry) All() []*Type {
	return []*Type{r.Float, r.Int, r.Vec2, r.Vec3, r.Vec4, r.Void, r.Error}
}

type valueKind int

const (
	valueInt valueKind = iota
	valueFloat
	valueVector
)

// Value is either an int or float scalar, optionally flagged constant, or
// a vector of 2, 3 or 4 component values. Vectors are never constant.
type Value struct {
	typ      *Type
	kind     valueKind
	constant bool
	i        int32
	f        float32
	elems    []*Value
}

func (r *TypeRegistry) NewInt(v int32, constant bool) *Value {
	return &Value{typ: r.Int, kind: valueInt, constant: constant, i: v}
}

func (r *TypeRegistry) NewFloat(v float32, constant bool) *Value {
	return &Value{typ: r.Float, kind: valueFloat, constant: constant, f: v}
}

// NewVector builds a vector value from its components. Only arities 2, 3
// and 4 exist and every component must be a scalar.
func (r *TypeRegistry) NewVector(elems ...*Value) (*Value, error) {
	t, ok := r.Vector(len(elems))
	if !ok {
		return nil, fmt.Errorf("%w: no vector type with %d components", ErrUnsupported, len(elems))
	}
	for i, e := range elems {
		if e == nil || e.IsVector() {
			return nil, fmt.Errorf("%w: vector component %d is not a scalar", ErrUnsupported, i)
		}
	}
	return &Value{typ: t, kind: valueVector, elems: elems}, nil
}

func (v *Value) Type() *Type      { return v.typ }
func (v *Value) IsConstant() bool { return v.constant }
func (v *Value) IsInt() bool      { return v.kind == valueInt }
func (v *Value) IsFloat() bool    { return v.kind == valueFloat }
func (v *Value) IsVector() bool   { return v.kind == valueVector }
func (v *Value) AsInt() int32     { return v.i }
func (v *Value) AsFloat() float32 { return v.f }

// Len is the number of vector components, 0 for scalars.
func (v *Value) Len() int { return len(v.elems) }

// At returns the i-th vector component.
func (v *Value) At(i int) *Value { return v.elems[i] }

func (v *Value) String() string {
	switch {
	case v.constant && v.kind == valueFloat:
		return formatFloat(v.f)
	case v.constant && v.kind == valueInt:
		return strconv.FormatInt(int64(v.i), 10)
	case v.kind == valueVector:
		parts := make([]string, len(v.elems))
		for i, e := range v.elems {
			parts[i] = e.String()
		}
		return v.typ.name + "(" + strings.Join(parts, ", ") + ")"
	default:
		return "Type[" + v.typ.name + "]"
	}
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
