package jex_test

import (
	"strings"
	"testing"

	"github.com/jex-lang/go-jex"
	"github.com/jex-lang/go-jex/ast"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, node ast.Node, opts ...jex.Option) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, jex.Serialize(node, &sb, opts...))
	return sb.String()
}

func object(members map[string]ast.Node) *ast.Object {
	obj := &ast.Object{}
	for key, child := range members {
		obj.Set(key, child)
	}
	return obj
}

func numbers(values ...float64) *ast.Array {
	arr := &ast.Array{}
	for _, v := range values {
		arr.Elems = append(arr.Elems, &ast.Number{Value: v})
	}
	return arr
}

func TestSerializeCompact(t *testing.T) {
	tests := []struct {
		name string
		node ast.Node
		want string
	}{
		{"empty object", &ast.Object{}, "{}"},
		{"empty array", &ast.Array{}, "[]"},
		{
			"object keys sorted",
			object(map[string]ast.Node{
				"b": &ast.Number{Value: 2},
				"a": &ast.Number{Value: 1},
			}),
			`{"a": 1, "b": 2}`,
		},
		{
			"keywords",
			&ast.Array{Elems: []ast.Node{
				&ast.Boolean{Value: true},
				&ast.Boolean{Value: false},
				&ast.Null{},
			}},
			"[true, false, null]",
		},
		{
			"nested",
			object(map[string]ast.Node{
				"a": object(map[string]ast.Node{"b": numbers(1, 2)}),
			}),
			`{"a": {"b": [1, 2]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, render(t, tt.node, jex.Compact()))
		})
	}
}

func TestSerializeIndented(t *testing.T) {
	tests := []struct {
		name string
		node ast.Node
		want string
	}{
		{"empty object", &ast.Object{}, "{}"},
		{"empty array", &ast.Array{}, "[]"},
		{
			// A container holding only leaves stays on one line even in
			// indented mode.
			"leaf-only object",
			object(map[string]ast.Node{"a": &ast.Number{Value: 1}}),
			`{"a": 1}`,
		},
		{
			"leaf-only array",
			numbers(1, 2, 3),
			"[1, 2, 3]",
		},
		{
			"object with container member",
			object(map[string]ast.Node{
				"a": &ast.Number{Value: 1},
				"b": numbers(1, 2, 3),
			}),
			"{\n    \"a\": 1, \n    \"b\": [1, 2, 3]\n}",
		},
		{
			"deep nesting",
			object(map[string]ast.Node{
				"a": object(map[string]ast.Node{
					"b": object(map[string]ast.Node{"c": &ast.Number{Value: 1}}),
				}),
			}),
			"{\n    \"a\": \n    {\n        \"b\": {\"c\": 1}\n    }\n}",
		},
		{
			"array of arrays",
			&ast.Array{Elems: []ast.Node{numbers(1, 2), numbers(3)}},
			"[\n    [1, 2], \n    [3]\n]",
		},
		{
			"array of objects",
			&ast.Array{Elems: []ast.Node{
				object(map[string]ast.Node{"a": &ast.Number{Value: 1}}),
				object(map[string]ast.Node{"b": numbers(2)}),
			}},
			"[\n    {\"a\": 1}, \n    {\n        \"b\": [2]\n    }\n]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, render(t, tt.node))
		})
	}
}

func TestSerializeIndentWidth(t *testing.T) {
	node := object(map[string]ast.Node{
		"a": &ast.Number{Value: 1},
		"b": numbers(1, 2, 3),
	})
	require.Equal(t, "{\n  \"a\": 1, \n  \"b\": [1, 2, 3]\n}", render(t, node, jex.Indent(2)))
}

func TestSerializeNumbers(t *testing.T) {
	node := numbers(0, 123, -4.5, 0.1, 1e100, 1e-7, 6.626e-34)
	require.Equal(t, "[0, 123, -4.5, 0.1, 1e100, 1e-07, 6.626e-34]",
		render(t, node, jex.Compact()),
		"exponents never carry a '+' sign")
}

func TestSerializeStrings(t *testing.T) {
	node := &ast.Array{Elems: []ast.Node{
		&ast.String{Value: "plain"},
		&ast.String{Value: "a\nb\tc\"d"},
		&ast.String{Value: ""},
	}}
	require.Equal(t, `["plain", "a\nb\tc\"d", ""]`, render(t, node, jex.Compact()))
}

func TestSerializeOptionsErrors(t *testing.T) {
	err := jex.Serialize(&ast.Object{}, &strings.Builder{}, jex.Indent(-1))
	require.Error(t, err)
	require.Contains(t, err.Error(), "indent")
}
