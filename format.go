package jex

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jex-lang/go-jex/ast"
)

// formatter writes a JEX tree to an output stream.
//
// In indented mode a container is laid out over several lines only when
// one of its members is itself an object or array; a container holding
// only leaves collapses to one line. The member separator is ", " in both
// modes; indented mode additionally breaks the line after every member.
type formatter struct {
	w    io.Writer
	unit string // one indentation step; empty in compact mode
}

func newFormatter(w io.Writer, o *options) *formatter {
	var unit string
	if o.indent > 0 {
		unit = strings.Repeat(" ", o.indent)
	}
	return &formatter{w: w, unit: unit}
}

func (f *formatter) format(node ast.Node) error {
	return f.writeNode(node, 0, f.unit != "")
}

func (f *formatter) write(s string) error {
	_, err := io.WriteString(f.w, s)
	return err
}

func (f *formatter) writePrefix(level int, indent bool) error {
	if !indent {
		return nil
	}
	for i := 0; i < level; i++ {
		if err := f.write(f.unit); err != nil {
			return err
		}
	}
	return nil
}

func (f *formatter) writeNode(node ast.Node, level int, indent bool) error {
	switch n := node.(type) {
	case *ast.Number:
		return f.writeLeaf(formatNumber(n.Value), level, indent)
	case *ast.Boolean:
		return f.writeLeaf(strconv.FormatBool(n.Value), level, indent)
	case *ast.String:
		return f.writeLeaf(quote(n.Value), level, indent)
	case *ast.Null:
		return f.writeLeaf("null", level, indent)
	case *ast.Object:
		return f.writeObject(n, level, indent)
	case *ast.Array:
		return f.writeArray(n, level, indent)
	default:
		return fmt.Errorf("jex: unsupported node type for serialization: %T", n)
	}
}

func (f *formatter) writeLeaf(text string, level int, indent bool) error {
	if err := f.writePrefix(level, indent); err != nil {
		return err
	}
	return f.write(text)
}

func (f *formatter) writeObject(obj *ast.Object, level int, indent bool) error {
	if err := f.writePrefix(level, indent); err != nil {
		return err
	}
	if err := f.write("{"); err != nil {
		return err
	}

	keys := obj.Keys()
	if indent && hasContainer(obj) {
		if err := f.write("\n"); err != nil {
			return err
		}
		for i, key := range keys {
			if err := f.writePrefix(level+1, true); err != nil {
				return err
			}
			if err := f.write(quote(key) + ": "); err != nil {
				return err
			}
			child, _ := obj.Get(key)
			if multiline(child) {
				if err := f.write("\n"); err != nil {
					return err
				}
				if err := f.writeNode(child, level+1, true); err != nil {
					return err
				}
			} else {
				if err := f.writeNode(child, 0, false); err != nil {
					return err
				}
			}
			if i < len(keys)-1 {
				if err := f.write(", "); err != nil {
					return err
				}
			}
			if err := f.write("\n"); err != nil {
				return err
			}
		}
		if err := f.writePrefix(level, true); err != nil {
			return err
		}
	} else {
		for i, key := range keys {
			if i > 0 {
				if err := f.write(", "); err != nil {
					return err
				}
			}
			if err := f.write(quote(key) + ": "); err != nil {
				return err
			}
			child, _ := obj.Get(key)
			if err := f.writeNode(child, 0, false); err != nil {
				return err
			}
		}
	}

	return f.write("}")
}

func (f *formatter) writeArray(arr *ast.Array, level int, indent bool) error {
	if err := f.writePrefix(level, indent); err != nil {
		return err
	}
	if err := f.write("["); err != nil {
		return err
	}

	if indent && hasContainer(arr) {
		if err := f.write("\n"); err != nil {
			return err
		}
		for i, child := range arr.Elems {
			if err := f.writeNode(child, level+1, true); err != nil {
				return err
			}
			if i < len(arr.Elems)-1 {
				if err := f.write(", "); err != nil {
					return err
				}
			}
			if err := f.write("\n"); err != nil {
				return err
			}
		}
		if err := f.writePrefix(level, true); err != nil {
			return err
		}
	} else {
		for i, child := range arr.Elems {
			if i > 0 {
				if err := f.write(", "); err != nil {
					return err
				}
			}
			if err := f.writeNode(child, 0, false); err != nil {
				return err
			}
		}
	}

	return f.write("]")
}

// multiline reports whether node is a container that lays out over
// several lines in indented mode.
func multiline(node ast.Node) bool {
	return isContainer(node) && hasContainer(node)
}

func isContainer(node ast.Node) bool {
	k := node.Kind()
	return k == ast.KindObject || k == ast.KindArray
}

// hasContainer reports whether any immediate child of node is itself an
// object or array.
func hasContainer(node ast.Node) bool {
	switch n := node.(type) {
	case *ast.Object:
		for _, key := range n.Keys() {
			child, _ := n.Get(key)
			if isContainer(child) {
				return true
			}
		}
	case *ast.Array:
		for _, child := range n.Elems {
			if isContainer(child) {
				return true
			}
		}
	}
	return false
}

// formatNumber renders v in the shortest form that parses back to the
// same float64. Positive exponent signs are dropped because the number
// grammar does not accept them.
func formatNumber(v float64) string {
	return strings.ReplaceAll(strconv.FormatFloat(v, 'g', -1, 64), "e+", "e")
}

// quote renders a string literal with the output escapes the format
// defines: newline, tab and double quote.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
