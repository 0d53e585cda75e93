package template

import (
	"github.com/jex-lang/go-jex/ast"
	"github.com/jex-lang/go-jex/errors"
)

// BindFunc produces the sub-template binding one collection element.
// Scalar element types pass a constructor directly:
//
//	template.Vector(&xs, template.Scalar[int32])
//
// Nested collections compose through a closure:
//
//	template.Vector(&xss, func(row *[]int32) *template.Template {
//		return template.Vector(row, template.Scalar[int32])
//	})
type BindFunc[T any] func(*T) *Template

type vectorElem[T any] struct {
	ref     *[]T
	bind    BindFunc[T]
	isConst bool
}

// Vector binds a mutable slice of homogeneous elements, each bound
// through bind. Extraction replaces the destination wholesale: elements
// are decoded into a fresh slice that is swapped in only once every
// element succeeded, so a failing element leaves the destination
// unchanged.
func Vector[T any](ref *[]T, bind BindFunc[T]) *Template {
	return fromElem(&vectorElem[T]{ref: ref, bind: bind})
}

// ConstVector binds a snapshot of values for synthesis only.
func ConstVector[T any](values []T, bind BindFunc[T]) *Template {
	snapshot := make([]T, len(values))
	copy(snapshot, values)
	return fromElem(&vectorElem[T]{ref: &snapshot, bind: bind, isConst: true})
}

func (e *vectorElem[T]) Kind() Kind  { return KindVector }
func (e *vectorElem[T]) Const() bool { return e.isConst }

func (e *vectorElem[T]) Extract(node ast.Node) error {
	if e.isConst {
		return constError(node, "vector")
	}
	arr, ok := node.(*ast.Array)
	if !ok {
		return typeMismatch(node, "Array")
	}
	out := make([]T, len(arr.Elems))
	for i, child := range arr.Elems {
		sub := e.bind(&out[i])
		if sub == nil || !sub.Bound() {
			return &errors.NodeError{Node: child, Message: "element binder returned an unbound template"}
		}
		if err := sub.Extract(child); err != nil {
			return err
		}
	}
	*e.ref = out
	return nil
}

func (e *vectorElem[T]) Synthetize() (ast.Node, error) {
	src := *e.ref
	arr := &ast.Array{Elems: make([]ast.Node, len(src))}
	for i := range src {
		child, err := e.bind(&src[i]).Synthetize()
		if err != nil {
			return nil, err
		}
		arr.Elems[i] = child
	}
	return arr, nil
}

type mapElem[T any] struct {
	ref     *map[string]T
	bind    BindFunc[T]
	isConst bool
}

// Map binds a mutable string-keyed mapping of homogeneous values, each
// bound through bind. Extraction replaces the destination wholesale,
// swapping in a fresh map only once every value succeeded.
func Map[T any](ref *map[string]T, bind BindFunc[T]) *Template {
	return fromElem(&mapElem[T]{ref: ref, bind: bind})
}

// ConstMap binds a snapshot of values for synthesis only.
func ConstMap[T any](values map[string]T, bind BindFunc[T]) *Template {
	snapshot := make(map[string]T, len(values))
	for k, v := range values {
		snapshot[k] = v
	}
	return fromElem(&mapElem[T]{ref: &snapshot, bind: bind, isConst: true})
}

func (e *mapElem[T]) Kind() Kind  { return KindMap }
func (e *mapElem[T]) Const() bool { return e.isConst }

func (e *mapElem[T]) Extract(node ast.Node) error {
	if e.isConst {
		return constError(node, "map")
	}
	obj, ok := node.(*ast.Object)
	if !ok {
		return typeMismatch(node, "Object")
	}
	out := make(map[string]T, obj.Len())
	for _, key := range obj.Keys() {
		child, _ := obj.Get(key)
		var value T
		sub := e.bind(&value)
		if sub == nil || !sub.Bound() {
			return &errors.NodeError{Node: child, Message: "element binder returned an unbound template"}
		}
		if err := sub.Extract(child); err != nil {
			return err
		}
		out[key] = value
	}
	*e.ref = out
	return nil
}

func (e *mapElem[T]) Synthetize() (ast.Node, error) {
	obj := &ast.Object{}
	for key, value := range *e.ref {
		child, err := e.bind(&value).Synthetize()
		if err != nil {
			return nil, err
		}
		obj.Set(key, child)
	}
	return obj, nil
}
