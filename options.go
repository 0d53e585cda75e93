package jex

import (
	"fmt"
	"io"
	"os"
)

const (
	defaultIndent          = 4
	defaultMaxIncludeDepth = 16
)

type options struct {
	indent          int // columns per nesting level; 0 selects the compact layout
	maxIncludeDepth int
	open            func(path string) (io.ReadCloser, error)
}

// Option configures parsing and serialization.
type Option func(*options) error

func buildOptions(opts []Option) (*options, error) {
	o := &options{
		indent:          defaultIndent,
		maxIncludeDepth: defaultMaxIncludeDepth,
		open: func(path string) (io.ReadCloser, error) {
			return os.Open(path)
		},
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// Indent sets the number of columns added per nesting level when
// serializing. Zero selects the compact single-line layout.
func Indent(n int) Option {
	return func(o *options) error {
		if n < 0 {
			return fmt.Errorf("jex: indent must not be negative")
		}
		o.indent = n
		return nil
	}
}

// Compact selects the single-line layout. It is shorthand for Indent(0).
func Compact() Option {
	return Indent(0)
}

// MaxIncludeDepth bounds how deeply @"path" includes may nest, which also
// stops include cycles. The depth n must be a positive integer.
func MaxIncludeDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("jex: max include depth must be a positive integer")
		}
		o.maxIncludeDepth = n
		return nil
	}
}

// Opener replaces how named documents are opened, both for ParseFile and
// for @"path" include directives. The default uses os.Open with the path
// taken verbatim.
func Opener(open func(path string) (io.ReadCloser, error)) Option {
	return func(o *options) error {
		if open == nil {
			return fmt.Errorf("jex: opener must not be nil")
		}
		o.open = open
		return nil
	}
}
