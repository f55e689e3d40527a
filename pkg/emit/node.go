// Package emit holds the render tree produced by widget resolution. Binders
// return constructed nodes instead of threading positional counters; node
// identity is structural and renderers walk the tree in document order.
package emit

import (
	"github.com/goliatone/go-formwidgets/pkg/attrs"
	"github.com/goliatone/go-formwidgets/pkg/model"
)

// NodeKind distinguishes widget nodes from the structural elements that wrap
// them.
type NodeKind uint8

const (
	// KindWidget marks a node that emits a concrete typed widget
	// instantiation.
	KindWidget NodeKind = iota
	// KindElement marks a generic structural element (fieldset, legend,
	// div).
	KindElement
	// KindText marks literal text content, e.g. a legend caption.
	KindText
)

// Node is one emitted entry in the render tree.
type Node struct {
	Kind NodeKind

	// Name identifies the widget kind (for KindWidget) or the structural
	// element (for KindElement).
	Name string

	// Field names the bound property for widget nodes.
	Field string

	// Label is the resolved display label for the bound property. Empty
	// when the renderer should derive one from Field.
	Label string

	// Description carries the property's help text, unsanitized. Renderers
	// that inline it as markup sanitize first.
	Description string

	// Type records the declared-type instantiation the binder selected.
	Type model.DeclaredType

	// Attrs carries the serialized widget configuration, including the
	// Value/ValueChanged (or Checked/CheckedChanged) binding entries.
	Attrs attrs.Map

	// Text holds literal content for KindText nodes.
	Text string

	Children []*Node
}

// Widget constructs a widget node bound to the named property.
func Widget(name, field string, typ model.DeclaredType, attributes attrs.Map) *Node {
	return &Node{
		Kind:  KindWidget,
		Name:  name,
		Field: field,
		Type:  typ,
		Attrs: attributes,
	}
}

// Element constructs a structural element node.
func Element(name string, children ...*Node) *Node {
	return &Node{
		Kind:     KindElement,
		Name:     name,
		Children: children,
	}
}

// Text constructs a literal text node.
func Text(content string) *Node {
	return &Node{Kind: KindText, Text: content}
}

// Append adds children to the node, skipping nils, and returns the node.
func (n *Node) Append(children ...*Node) *Node {
	for _, child := range children {
		if child == nil {
			continue
		}
		n.Children = append(n.Children, child)
	}
	return n
}

// Attr returns the named attribute, or nil when absent.
func (n *Node) Attr(name string) any {
	if n == nil || n.Attrs == nil {
		return nil
	}
	return n.Attrs[name]
}

// StringAttr returns the named attribute when it is a string.
func (n *Node) StringAttr(name string) string {
	if value, ok := n.Attr(name).(string); ok {
		return value
	}
	return ""
}

// BoolAttr returns the named attribute when it is a bool.
func (n *Node) BoolAttr(name string) bool {
	value, _ := n.Attr(name).(bool)
	return value
}

// Walk visits n and every descendant in document order. Returning false from
// the visitor stops the walk.
func (n *Node) Walk(visit func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !visit(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(visit) {
			return false
		}
	}
	return true
}

// Widgets returns every widget node in the subtree, in document order.
func (n *Node) Widgets() []*Node {
	var out []*Node
	n.Walk(func(node *Node) bool {
		if node.Kind == KindWidget {
			out = append(out, node)
		}
		return true
	})
	return out
}
