package template

import (
	"fmt"
	"slices"

	"github.com/jex-lang/go-jex/ast"
	"github.com/jex-lang/go-jex/errors"
)

// objectElem is a fixed named schema of independently bound elements,
// assembled through Template.Bind.
type objectElem struct {
	fields map[string]Element
}

func (e *objectElem) Kind() Kind  { return KindObject }
func (e *objectElem) Const() bool { return false }

// Extract requires every bound name to be present in the source object.
// Source members without a binding are ignored.
func (e *objectElem) Extract(node ast.Node) error {
	obj, ok := node.(*ast.Object)
	if !ok {
		return typeMismatch(node, "Object")
	}
	for _, name := range e.names() {
		child, present := obj.Get(name)
		if !present {
			return &errors.NodeError{Node: node, Message: fmt.Sprintf("missing object member %q", name)}
		}
		if err := e.fields[name].Extract(child); err != nil {
			return err
		}
	}
	return nil
}

// Synthetize emits exactly the bound names.
func (e *objectElem) Synthetize() (ast.Node, error) {
	obj := &ast.Object{}
	for name, field := range e.fields {
		child, err := field.Synthetize()
		if err != nil {
			return nil, err
		}
		obj.Set(name, child)
	}
	return obj, nil
}

func (e *objectElem) names() []string {
	names := make([]string, 0, len(e.fields))
	for name := range e.fields {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// arrayElem is a fixed positional schema of independently bound, possibly
// heterogeneous elements, assembled through Template.BindItem.
type arrayElem struct {
	elems []Element
}

func (e *arrayElem) Kind() Kind  { return KindArray }
func (e *arrayElem) Const() bool { return false }

// Extract requires the source array to have at least as many elements as
// the schema has positions; trailing extras are ignored.
func (e *arrayElem) Extract(node ast.Node) error {
	arr, ok := node.(*ast.Array)
	if !ok {
		return typeMismatch(node, "Array")
	}
	if len(arr.Elems) < len(e.elems) {
		return &errors.NodeError{
			Node:    node,
			Message: fmt.Sprintf("array too short (expecting at least %d elements, got %d)", len(e.elems), len(arr.Elems)),
		}
	}
	for i, elem := range e.elems {
		if err := elem.Extract(arr.Elems[i]); err != nil {
			return err
		}
	}
	return nil
}

func (e *arrayElem) Synthetize() (ast.Node, error) {
	arr := &ast.Array{Elems: make([]ast.Node, len(e.elems))}
	for i, elem := range e.elems {
		child, err := elem.Synthetize()
		if err != nil {
			return nil, err
		}
		arr.Elems[i] = child
	}
	return arr, nil
}
