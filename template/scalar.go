package template

import (
	"fmt"

	"github.com/jex-lang/go-jex/ast"
)

// Value enumerates the native types a scalar Template binds directly.
// Anything outside this closed set is rejected at compile time.
type Value interface {
	int32 | uint32 | int64 | uint64 | float32 | float64 | bool | string
}

type scalarElem[T Value] struct {
	ref     *T
	isConst bool
}

// Scalar binds a mutable reference to one primitive value. Extraction
// type-checks the node kind against T and fails on mismatch; numeric
// values pass through float64, truncating toward zero for integer T.
func Scalar[T Value](ref *T) *Template {
	return fromElem(&scalarElem[T]{ref: ref})
}

// Const binds a copy of value for synthesis only.
func Const[T Value](value T) *Template {
	return fromElem(&scalarElem[T]{ref: &value, isConst: true})
}

func (e *scalarElem[T]) Kind() Kind  { return KindScalar }
func (e *scalarElem[T]) Const() bool { return e.isConst }

func (e *scalarElem[T]) Extract(node ast.Node) error {
	if e.isConst {
		return constError(node, "scalar")
	}
	switch ref := any(e.ref).(type) {
	case *bool:
		b, ok := node.(*ast.Boolean)
		if !ok {
			return typeMismatch(node, "Boolean")
		}
		*ref = b.Value
	case *string:
		s, ok := node.(*ast.String)
		if !ok {
			return typeMismatch(node, "String")
		}
		*ref = s.Value
	default:
		n, ok := node.(*ast.Number)
		if !ok {
			return typeMismatch(node, "Number")
		}
		switch ref := ref.(type) {
		case *int32:
			*ref = int32(n.Value)
		case *uint32:
			*ref = uint32(n.Value)
		case *int64:
			*ref = int64(n.Value)
		case *uint64:
			*ref = uint64(n.Value)
		case *float32:
			*ref = float32(n.Value)
		case *float64:
			*ref = n.Value
		}
	}
	return nil
}

func (e *scalarElem[T]) Synthetize() (ast.Node, error) {
	switch v := any(*e.ref).(type) {
	case bool:
		return &ast.Boolean{Value: v}, nil
	case string:
		return &ast.String{Value: v}, nil
	case int32:
		return &ast.Number{Value: float64(v)}, nil
	case uint32:
		return &ast.Number{Value: float64(v)}, nil
	case int64:
		return &ast.Number{Value: float64(v)}, nil
	case uint64:
		return &ast.Number{Value: float64(v)}, nil
	case float32:
		return &ast.Number{Value: float64(v)}, nil
	case float64:
		return &ast.Number{Value: v}, nil
	}
	// The Value constraint makes this unreachable.
	return nil, fmt.Errorf("jex: template: unsupported scalar type %T", *e.ref)
}
