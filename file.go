package jex

import (
	"fmt"
	"os"

	"github.com/jex-lang/go-jex/ast"
	"github.com/jex-lang/go-jex/template"
)

// ParseFile opens path and parses it as one document. A failure to open
// the file is reported as a wrapped os error, distinct from parse
// failures.
func ParseFile(path string, opts ...Option) (ast.Node, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	rc, err := o.open(path)
	if err != nil {
		return nil, fmt.Errorf("jex: unable to open %q: %w", path, err)
	}
	defer rc.Close()
	return parseStream(rc, o, o.maxIncludeDepth)
}

// SerializeFile writes the tree rooted at node to the file at path,
// creating or truncating it.
func SerializeFile(node ast.Node, path string, opts ...Option) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("jex: unable to create %q: %w", path, err)
	}
	if err := Serialize(node, f, opts...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ExtractFile parses the document at path and extracts it through tpl.
func ExtractFile(tpl *template.Template, path string, opts ...Option) error {
	node, err := ParseFile(path, opts...)
	if err != nil {
		return err
	}
	return tpl.Extract(node)
}

// SynthetizeFile builds a tree from tpl and writes it to the file at
// path.
func SynthetizeFile(tpl *template.Template, path string, opts ...Option) error {
	node, err := tpl.Synthetize()
	if err != nil {
		return err
	}
	return SerializeFile(node, path, opts...)
}
