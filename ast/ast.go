// Package ast defines the tree produced by parsing one JEX document.
package ast

import (
	"slices"

	"github.com/jex-lang/go-jex/token"
)

// Kind identifies a node variant.
type Kind int

const (
	KindNumber Kind = iota
	KindBoolean
	KindString
	KindNull
	KindObject
	KindArray
)

// String returns the display name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "Number"
	case KindBoolean:
		return "Boolean"
	case KindString:
		return "String"
	case KindNull:
		return "Null"
	case KindObject:
		return "Object"
	case KindArray:
		return "Array"
	}
	return "?"
}

// Node is the interface implemented by every JEX tree node. The set of
// implementations is closed: Number, Boolean, String, Null, Object and
// Array. A node exclusively owns its children; trees are never shared
// between nodes.
type Node interface {
	// Kind reports which variant this node is.
	Kind() Kind
	// Pos returns the token the node was parsed from. Synthesized nodes
	// carry a zero token.
	Pos() token.Token
}

// Number is a numeric literal. All numbers share one float64
// representation, so integers above 2^53 lose precision.
type Number struct {
	Token token.Token
	Value float64
}

func (n *Number) Kind() Kind       { return KindNumber }
func (n *Number) Pos() token.Token { return n.Token }

// Boolean is a true or false literal.
type Boolean struct {
	Token token.Token
	Value bool
}

func (n *Boolean) Kind() Kind       { return KindBoolean }
func (n *Boolean) Pos() token.Token { return n.Token }

// String is a string literal.
type String struct {
	Token token.Token
	Value string
}

func (n *String) Kind() Kind       { return KindString }
func (n *String) Pos() token.Token { return n.Token }

// Null is the null literal.
type Null struct {
	Token token.Token
}

func (n *Null) Kind() Kind       { return KindNull }
func (n *Null) Pos() token.Token { return n.Token }

// Object is a string-keyed collection of child nodes. Keys are unique;
// iteration through Keys is always in lexicographic key order, regardless
// of insertion order.
type Object struct {
	Token   token.Token
	members map[string]Node
}

func (n *Object) Kind() Kind       { return KindObject }
func (n *Object) Pos() token.Token { return n.Token }

// Set adds or replaces the member named key.
func (n *Object) Set(key string, child Node) {
	if n.members == nil {
		n.members = make(map[string]Node)
	}
	n.members[key] = child
}

// Get returns the member named key.
func (n *Object) Get(key string) (Node, bool) {
	child, ok := n.members[key]
	return child, ok
}

// Has reports whether a member named key exists.
func (n *Object) Has(key string) bool {
	_, ok := n.members[key]
	return ok
}

// Len returns the number of members.
func (n *Object) Len() int {
	return len(n.members)
}

// Keys returns the member keys in lexicographic order.
func (n *Object) Keys() []string {
	keys := make([]string, 0, len(n.members))
	for k := range n.members {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Array is an ordered sequence of child nodes.
type Array struct {
	Token token.Token
	Elems []Node
}

func (n *Array) Kind() Kind       { return KindArray }
func (n *Array) Pos() token.Token { return n.Token }
