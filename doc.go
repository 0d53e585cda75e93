/*
Package jex parses, renders and binds JEX documents. JEX is a JSON
superset adding '#' line comments, @"path" file includes spliced in at
parse time, and binary payloads embedded as lowercase hex strings.

The package offers two workflows.

1. Tree manipulation

Parse builds an in-memory tree from a stream or file; Serialize renders a
tree back to text, indented or compact. Object members always serialize
in lexicographic key order.

	node, err := jex.ParseFile("config.jex")
	if err != nil {
		// handle error
	}
	err = jex.Serialize(node, os.Stdout, jex.Compact())

2. Template binding

The template package converts between trees and native Go values through
explicitly bound templates, with no reflection. Extract parses a document
and fills the bound values; Synthetize builds a document from them.

	var a int32
	var b []int32

	tpl := template.New()
	tpl.Bind("a", template.Scalar(&a))
	tpl.Bind("b", template.Vector(&b, template.Scalar[int32]))

	err := jex.Extract(tpl, strings.NewReader(`{"a": 456, "b": [33, 578]}`))

Parsing failures are reported as *errors.ParseError carrying the
offending token and position; binding failures as *errors.NodeError
carrying the offending node. Failures to open a named file wrap the
underlying os error instead.
*/
package jex
