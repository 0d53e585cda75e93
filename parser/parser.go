// Package parser builds a JEX tree from a token stream.
package parser

import (
	"fmt"
	"strconv"

	"github.com/jex-lang/go-jex/ast"
	"github.com/jex-lang/go-jex/errors"
	"github.com/jex-lang/go-jex/lexer"
	"github.com/jex-lang/go-jex/token"
)

// Resolver loads and parses the document referenced by an @"path" include
// directive, returning the subtree to splice in at the inclusion point.
// Errors from the resolver are returned to the caller unchanged, so a
// failure to open the named document stays distinguishable from a parse
// failure.
type Resolver func(path string) (ast.Node, error)

// Option configures a Parser.
type Option func(*Parser)

// WithResolver sets the resolver invoked for include directives. Without
// one, any include directive is a parse error.
func WithResolver(resolve Resolver) Option {
	return func(p *Parser) { p.resolve = resolve }
}

// Parser holds the state of the parser. Parsing is fail-fast: the first
// lexical or structural error aborts with no error recovery.
type Parser struct {
	l       *lexer.Lexer
	resolve Resolver
}

// New creates a new parser reading tokens from l.
func New(l *lexer.Lexer, opts ...Option) *Parser {
	p := &Parser{l: l}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses one document. The top level of a document must be an
// object or an array; a bare scalar document is rejected.
func (p *Parser) Parse() (ast.Node, error) {
	var root ast.Node
	var err error
	switch tok := p.l.Peek(); tok.Type {
	case token.LBRACE:
		root, err = p.parseObject()
	case token.LBRACK:
		root, err = p.parseArray()
	default:
		return nil, p.errorf(tok, "expected '{' or '[' at start of document, got %s", describe(tok))
	}
	if err != nil {
		return nil, err
	}
	if tok := p.l.Peek(); tok.Type != token.EOF {
		return nil, p.errorf(tok, "unexpected token after document value: %s", describe(tok))
	}
	return root, nil
}

func (p *Parser) parseValue() (ast.Node, error) {
	tok := p.l.Peek()
	switch tok.Type {
	case token.BAD:
		return nil, p.errorf(tok, "bad token %s", describe(tok))
	case token.TRUE, token.FALSE:
		p.l.Next()
		return &ast.Boolean{Token: tok, Value: tok.Type == token.TRUE}, nil
	case token.NULL:
		p.l.Next()
		return &ast.Null{Token: tok}, nil
	case token.NUMBER:
		p.l.Next()
		value, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			// Out-of-range literals degrade to zero.
			value = 0
		}
		return &ast.Number{Token: tok, Value: value}, nil
	case token.STRING:
		p.l.Next()
		return &ast.String{Token: tok, Value: tok.Literal}, nil
	case token.LBRACE:
		return p.parseObject()
	case token.LBRACK:
		return p.parseArray()
	case token.INCLUDE:
		p.l.Next()
		if p.resolve == nil {
			return nil, p.errorf(tok, "include %q is not supported here (no resolver configured)", tok.Literal)
		}
		sub, err := p.resolve(tok.Literal)
		if err != nil {
			return nil, err
		}
		return sub, nil
	default:
		return nil, p.errorf(tok, "expected a value, got %s", describe(tok))
	}
}

func (p *Parser) parseObject() (ast.Node, error) {
	obj := &ast.Object{Token: p.l.Next()} // consume '{'

	for p.l.Peek().Type != token.RBRACE {
		keyTok := p.l.Peek()
		if keyTok.Type != token.STRING {
			return nil, p.errorf(keyTok, "expected a string key, got %s", describe(keyTok))
		}
		p.l.Next()
		if obj.Has(keyTok.Literal) {
			return nil, p.errorf(keyTok, "redefinition of object member %q", keyTok.Literal)
		}

		if colon := p.l.Peek(); colon.Type != token.COLON {
			return nil, p.errorf(colon, "expected ':' after object key, got %s", describe(colon))
		}
		p.l.Next()

		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		obj.Set(keyTok.Literal, value)

		if p.l.Peek().Type != token.COMMA {
			break
		}
		p.l.Next()
	}

	if tok := p.l.Peek(); tok.Type != token.RBRACE {
		return nil, p.errorf(tok, "expected '}' at end of object, got %s", describe(tok))
	}
	p.l.Next()
	return obj, nil
}

func (p *Parser) parseArray() (ast.Node, error) {
	arr := &ast.Array{Token: p.l.Next()} // consume '['

	for p.l.Peek().Type != token.RBRACK {
		elem, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr.Elems = append(arr.Elems, elem)

		if p.l.Peek().Type != token.COMMA {
			break
		}
		p.l.Next()
	}

	if tok := p.l.Peek(); tok.Type != token.RBRACK {
		return nil, p.errorf(tok, "expected ']' at end of array, got %s", describe(tok))
	}
	p.l.Next()
	return arr, nil
}

func (p *Parser) errorf(tok token.Token, format string, args ...any) error {
	return &errors.ParseError{Token: tok, Message: fmt.Sprintf(format, args...)}
}

func describe(tok token.Token) string {
	if tok.Literal == "" {
		return string(tok.Type)
	}
	return fmt.Sprintf("%s (%q)", tok.Type, tok.Literal)
}
