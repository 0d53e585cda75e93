// Package errors defines the error values reported by the jex packages.
package errors

import (
	"fmt"

	"github.com/jex-lang/go-jex/ast"
	"github.com/jex-lang/go-jex/token"
)

// ParseError is a lexical or structural error found while parsing. It
// carries the offending token; parsing stops at the first error and no
// partial tree is returned.
type ParseError struct {
	Token   token.Token
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("jex: parse error at %d:%d: %s", e.Token.Line, e.Token.Column, e.Message)
}

// NodeError is a binding failure during extraction or synthesis, carrying
// the offending tree node when one is available.
type NodeError struct {
	Node    ast.Node
	Message string
}

func (e *NodeError) Error() string {
	if e.Node != nil {
		if tok := e.Node.Pos(); tok.Line > 0 {
			return fmt.Sprintf("jex: bind error at %d:%d: %s", tok.Line, tok.Column, e.Message)
		}
	}
	return "jex: bind error: " + e.Message
}
