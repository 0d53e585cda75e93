package jex

import (
	"fmt"
	"io"

	"github.com/jex-lang/go-jex/ast"
	"github.com/jex-lang/go-jex/lexer"
	"github.com/jex-lang/go-jex/parser"
	"github.com/jex-lang/go-jex/template"
)

// Parse reads one document from r and returns its tree. Include
// directives are resolved by opening the named document (see Opener) and
// parsing it recursively, up to the configured depth limit.
func Parse(r io.Reader, opts ...Option) (ast.Node, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return parseStream(r, o, o.maxIncludeDepth)
}

func parseStream(r io.Reader, o *options, depth int) (ast.Node, error) {
	p := parser.New(lexer.New(r), parser.WithResolver(func(path string) (ast.Node, error) {
		return parseInclude(path, o, depth)
	}))
	return p.Parse()
}

func parseInclude(path string, o *options, depth int) (ast.Node, error) {
	if depth <= 0 {
		return nil, fmt.Errorf("jex: include depth limit (%d) exceeded at %q", o.maxIncludeDepth, path)
	}
	rc, err := o.open(path)
	if err != nil {
		return nil, fmt.Errorf("jex: unable to open %q: %w", path, err)
	}
	defer rc.Close()
	return parseStream(rc, o, depth-1)
}

// Serialize writes the tree rooted at node to w. The default layout is
// indented; pass Compact for the single-line layout.
func Serialize(node ast.Node, w io.Writer, opts ...Option) error {
	o, err := buildOptions(opts)
	if err != nil {
		return err
	}
	return newFormatter(w, o).format(node)
}

// Extract parses one document from r and extracts it through tpl into
// the template's bound native values.
func Extract(tpl *template.Template, r io.Reader, opts ...Option) error {
	node, err := Parse(r, opts...)
	if err != nil {
		return err
	}
	return tpl.Extract(node)
}

// Synthetize builds a tree from tpl's bound native values and writes it
// to w.
func Synthetize(tpl *template.Template, w io.Writer, opts ...Option) error {
	node, err := tpl.Synthetize()
	if err != nil {
		return err
	}
	return Serialize(node, w, opts...)
}
