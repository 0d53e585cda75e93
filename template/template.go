package template

import (
	"fmt"

	"github.com/jex-lang/go-jex/ast"
	"github.com/jex-lang/go-jex/errors"
)

// Template is a handle holding zero or one Element. Binding is one-shot:
// binding an already-bound handle is an error, and a handle is reused
// only after Reset.
//
// Copying a Template copies the handle; both copies share the underlying
// Element. Likewise, Bind and BindItem store the sub-template's Element,
// so the same sub-template may sit under several parents: resetting or
// dropping one parent leaves the Element usable through the others.
type Template struct {
	elem Element
}

// New returns an unbound template.
func New() *Template {
	return &Template{}
}

// Custom binds elem, a user-provided Element implementation.
func Custom(elem Element) *Template {
	return fromElem(elem)
}

// Bound reports whether the template holds an element.
func (t *Template) Bound() bool {
	return t.elem != nil
}

// Reset drops the template's reference to its element, returning the
// handle to the unbound state.
func (t *Template) Reset() {
	t.elem = nil
}

// Element returns the underlying element, or nil for an unbound handle.
func (t *Template) Element() Element {
	return t.elem
}

// Bind attaches sub under name, making t a named-schema (object) binding.
// The first Bind on an unbound template creates the object element; later
// calls add members. Binding a name twice, or calling Bind on a template
// already bound to a non-object capability, is an error.
func (t *Template) Bind(name string, sub *Template) error {
	if sub == nil || !sub.Bound() {
		return fmt.Errorf("jex: template: cannot bind unbound template under %q", name)
	}
	if t.elem == nil {
		t.elem = &objectElem{fields: make(map[string]Element)}
	}
	obj, ok := t.elem.(*objectElem)
	if !ok {
		return fmt.Errorf("jex: template: template is already bound (%s)", t.elem.Kind())
	}
	if _, dup := obj.fields[name]; dup {
		return fmt.Errorf("jex: template: member %q is already bound", name)
	}
	obj.fields[name] = sub.elem
	return nil
}

// BindItem appends sub to the positional (array) schema. The first
// BindItem on an unbound template creates the array element. Calling
// BindItem on a template bound to a non-array capability is an error.
func (t *Template) BindItem(sub *Template) error {
	if sub == nil || !sub.Bound() {
		return fmt.Errorf("jex: template: cannot bind unbound template item")
	}
	if t.elem == nil {
		t.elem = &arrayElem{}
	}
	arr, ok := t.elem.(*arrayElem)
	if !ok {
		return fmt.Errorf("jex: template: template is already bound (%s)", t.elem.Kind())
	}
	arr.elems = append(arr.elems, sub.elem)
	return nil
}

// Extract reads node into the template's bound native values.
func (t *Template) Extract(node ast.Node) error {
	if t.elem == nil {
		return &errors.NodeError{Node: node, Message: "template is not bound"}
	}
	return t.elem.Extract(node)
}

// Synthetize builds a tree from the template's bound native values.
func (t *Template) Synthetize() (ast.Node, error) {
	if t.elem == nil {
		return nil, fmt.Errorf("jex: template: synthetize on unbound template")
	}
	return t.elem.Synthetize()
}
