// Package template implements declarative, bidirectional binding between
// native Go values and JEX trees. A Template is bound once to a set of
// native values through explicit constructors and composition calls, then
// converts trees to those values (extraction) and back (synthesis)
// without reflection or per-call tree walking.
package template

import (
	"fmt"

	"github.com/jex-lang/go-jex/ast"
	"github.com/jex-lang/go-jex/errors"
)

// Kind identifies the capability behind a bound Template.
type Kind int

const (
	KindUser Kind = iota
	KindScalar
	KindPOD
	KindRaw
	KindVector
	KindMap
	KindObject
	KindArray
)

// String returns the display name of the kind.
func (k Kind) String() string {
	switch k {
	case KindUser:
		return "User"
	case KindScalar:
		return "Scalar"
	case KindPOD:
		return "POD"
	case KindRaw:
		return "Raw"
	case KindVector:
		return "Vector"
	case KindMap:
		return "Map"
	case KindObject:
		return "Object"
	case KindArray:
		return "Array"
	}
	return "?"
}

// Element is the capability interface behind a Template. An Element
// converts between one native value and one tree shape. One Element may
// be referenced by several enclosing Templates at once; it stays usable
// as long as any of them holds it.
//
// Custom capabilities implement Element and are attached with Custom.
type Element interface {
	// Kind reports the capability variant.
	Kind() Kind
	// Extract reads node into the bound native value.
	Extract(node ast.Node) error
	// Synthetize builds a tree from the bound native value.
	Synthetize() (ast.Node, error)
	// Const reports whether the element is bound to an immutable source.
	// Const elements are synthesis-only: Extract always fails.
	Const() bool
}

func fromElem(e Element) *Template {
	return &Template{elem: e}
}

func constError(node ast.Node, what string) error {
	return &errors.NodeError{Node: node, Message: "extracting into a const " + what + " binding"}
}

func typeMismatch(node ast.Node, want string) error {
	return &errors.NodeError{
		Node:    node,
		Message: fmt.Sprintf("expecting a %s node, got %s", want, node.Kind()),
	}
}
