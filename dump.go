package main

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// yamlBuilder turns an AST into a yaml.Node tree.
type yamlBuilder struct {
	scopes *ScopeArena
	result *yaml.Node
}

func yamlStr(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func yamlInt(i int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(i)}
}

func yamlBool(b bool) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(b)}
}

func yamlMap(kv ...any) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i := 0; i+1 < len(kv); i += 2 {
		m.Content = append(m.Content, yamlStr(kv[i].(string)), kv[i+1].(*yaml.Node))
	}
	return m
}

func yamlSeq(items ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: items}
}

func (b *yamlBuilder) build(n Node) *yaml.Node {
	_ = n.Accept(b)
	return b.result
}

func yamlValue(v *Value) *yaml.Node {
	if v.IsVector() {
		items := make([]*yaml.Node, v.Len())
		for i := range items {
			items[i] = yamlValue(v.At(i))
		}
		return yamlMap("type", yamlStr(v.Type().Name()), "components", yamlSeq(items...))
	}
	return yamlMap(
		"type", yamlStr(v.Type().Name()),
		"constant", yamlBool(v.IsConstant()),
		"value", yamlStr(v.String()),
	)
}

func (b *yamlBuilder) local(v *LocalVariable) *yaml.Node {
	m := yamlMap("name", yamlStr(v.Name), "type", yamlStr(v.Type.Name()), "owner", yamlInt(int(v.Owner)))
	if v.IsConstant() {
		m.Content = append(m.Content, yamlStr("constant"), yamlStr(v.Value.String()))
	}
	return m
}

func (b *yamlBuilder) VisitSequence(n *Sequence) error {
	var locals []*yaml.Node
	if b.scopes != nil {
		for _, v := range b.scopes.Locals(n.Scope) {
			locals = append(locals, b.local(v))
		}
	}
	children := make([]*yaml.Node, 0, len(n.Children))
	for _, child := range n.Children {
		children = append(children, b.build(child))
	}
	b.result = yamlMap(
		"node", yamlStr("sequence"),
		"scope", yamlInt(int(n.Scope)),
		"locals", yamlSeq(locals...),
		"children", yamlSeq(children...),
	)
	return nil
}

func (b *yamlBuilder) VisitLiteral(n *Literal) error {
	b.result = yamlMap("node", yamlStr("literal"), "value", yamlValue(n.Value))
	return nil
}

func (b *yamlBuilder) VisitReturn(n *Return) error {
	b.result = yamlMap("node", yamlStr("return"), "value", b.build(n.Value))
	return nil
}

func (b *yamlBuilder) VisitBinaryOp(n *BinaryOp) error {
	left := b.build(n.Left)
	right := b.build(n.Right)
	b.result = yamlMap(
		"node", yamlStr("binary"),
		"op", yamlStr(n.Op.String()),
		"constant", yamlBool(IsConstant(n)),
		"left", left,
		"right", right,
	)
	return nil
}

func (b *yamlBuilder) VisitLoadLocal(n *LoadLocal) error {
	b.result = yamlMap("node", yamlStr("load"), "local", yamlStr(n.Local.Name))
	return nil
}

func (b *yamlBuilder) VisitStoreLocal(n *StoreLocal) error {
	b.result = yamlMap(
		"node", yamlStr("store"),
		"local", yamlStr(n.Local.Name),
		"declare", yamlBool(n.Declare),
		"value", b.build(n.Value),
	)
	return nil
}

// DumpYAML writes u as a YAML document.
func DumpYAML(w io.Writer, u *CodeUnit) error {
	b := &yamlBuilder{scopes: u.Scopes}
	var fns []*yaml.Node
	for _, fn := range u.Functions {
		fns = append(fns, yamlMap(
			"name", yamlStr(fn.Name),
			"result", yamlStr(fn.Result.Name()),
			"position", yamlStr(fn.At.String()),
			"body", b.build(fn.Body),
		))
	}
	doc := yamlMap("functions", yamlSeq(fns...))

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
