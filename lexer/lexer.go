// Package lexer turns a character stream into JEX tokens.
package lexer

import (
	"bufio"
	"bytes"
	"io"
	"unicode"

	"github.com/jex-lang/go-jex/token"
)

// Lexer holds the state for tokenizing JEX source. It keeps one token of
// lookahead: Peek inspects the upcoming token without consuming it, Next
// consumes it and scans the following one.
//
// The lexer never fails. Malformed input becomes a token.BAD token whose
// handling is the parser's responsibility.
type Lexer struct {
	r      *bufio.Reader
	buf    bytes.Buffer
	ch     rune // current lookahead character, -1 at end of input
	line   int
	column int
	next   token.Token
}

// New creates and returns a new Lexer reading from r.
func New(r io.Reader) *Lexer {
	l := &Lexer{
		r:      bufio.NewReader(r),
		line:   1,
		column: 1,
	}
	l.readRune()
	l.next = l.scan()
	return l
}

// Next consumes and returns the next token.
func (l *Lexer) Next() token.Token {
	tok := l.next
	l.next = l.scan()
	return tok
}

// Peek returns the upcoming token without consuming it.
func (l *Lexer) Peek() token.Token {
	return l.next
}

func (l *Lexer) readRune() {
	r, _, err := l.r.ReadRune()
	if err != nil {
		l.ch = -1
		return
	}
	l.ch = r
}

func (l *Lexer) advance() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	l.readRune()
	l.column++
}

func (l *Lexer) skipSpace() {
	for l.ch != -1 && unicode.IsSpace(l.ch) {
		l.advance()
	}
}

// skip discards whitespace and '#' comments until neither remains, so a
// comment line directly followed by another comment line fully vanishes.
func (l *Lexer) skip() {
	l.skipSpace()
	for l.ch == '#' {
		for l.ch != '\n' && l.ch != -1 {
			l.advance()
		}
		l.skipSpace()
	}
	l.skipSpace()
}

func (l *Lexer) scan() token.Token {
	l.skip()
	tok := token.Token{Type: token.BAD, Line: l.line, Column: l.column}

	switch {
	case l.ch == -1:
		tok.Type = token.EOF
	case l.ch == '{' || l.ch == '}' || l.ch == '[' || l.ch == ']' || l.ch == ',' || l.ch == ':':
		tok.Type = token.Type(l.ch)
		tok.Literal = string(l.ch)
		l.advance()
	case l.ch == 't':
		return l.scanKeyword(tok, token.TRUE, "true")
	case l.ch == 'f':
		return l.scanKeyword(tok, token.FALSE, "false")
	case l.ch == 'n':
		return l.scanKeyword(tok, token.NULL, "null")
	case l.ch == '@':
		return l.scanInclude(tok)
	case l.ch == '"':
		return l.scanString(tok)
	case l.ch == '-' || l.ch == '.' || isDigit(l.ch):
		return l.scanNumber(tok)
	default:
		tok.Literal = string(l.ch)
		l.advance()
	}
	return tok
}

// scanKeyword matches kw character by character. A mismatch at any
// position immediately yields a BAD token, leaving the offending
// character for the next scan.
func (l *Lexer) scanKeyword(tok token.Token, typ token.Type, kw string) token.Token {
	for _, c := range kw {
		if l.ch != c {
			return tok
		}
		l.advance()
	}
	tok.Type = typ
	tok.Literal = kw
	return tok
}

// scanString reads a double-quoted string literal, decoding the escapes
// \\, \" and \n. The \t escape decodes to the letter 't', not a tab;
// existing documents rely on that mapping. Any other escape, or end of
// input before the closing quote, yields a BAD token.
func (l *Lexer) scanString(tok token.Token) token.Token {
	l.advance() // consume opening quote
	l.buf.Reset()
	for l.ch != '"' {
		if l.ch == -1 {
			return tok
		}
		if l.ch == '\\' {
			l.advance()
			switch l.ch {
			case '\\':
				l.buf.WriteByte('\\')
			case '"':
				l.buf.WriteByte('"')
			case 'n':
				l.buf.WriteByte('\n')
			case 't':
				l.buf.WriteByte('t')
			default:
				return tok
			}
		} else {
			l.buf.WriteRune(l.ch)
		}
		l.advance()
	}
	l.advance() // consume closing quote
	tok.Type = token.STRING
	tok.Literal = l.buf.String()
	return tok
}

// scanInclude reads an @"path" directive. The path is taken verbatim
// between the quotes, with no escape processing.
func (l *Lexer) scanInclude(tok token.Token) token.Token {
	l.advance() // consume '@'
	if l.ch != '"' {
		return tok
	}
	l.advance()
	l.buf.Reset()
	for l.ch != '"' {
		if l.ch == -1 {
			return tok
		}
		l.buf.WriteRune(l.ch)
		l.advance()
	}
	l.advance()
	tok.Type = token.INCLUDE
	tok.Literal = l.buf.String()
	return tok
}

// scanNumber reads a numeric literal: an optional '-', a digit run that
// may be empty only when a fraction follows, an optional '.' requiring at
// least one digit after it, and an optional exponent with an optional '-'
// and at least one digit. End of input in the middle of the literal, or a
// missing required digit, yields a BAD token.
func (l *Lexer) scanNumber(tok token.Token) token.Token { //nolint:gocognit
	l.buf.Reset()

	if l.ch == '-' {
		l.buf.WriteRune(l.ch)
		l.advance()
		if l.ch == -1 {
			return tok
		}
	}

	digits := 0
	for isDigit(l.ch) {
		l.buf.WriteRune(l.ch)
		l.advance()
		digits++
		if l.ch == -1 {
			return tok
		}
	}

	if l.ch == '.' {
		l.buf.WriteRune(l.ch)
		l.advance()
		if l.ch == -1 || !isDigit(l.ch) {
			return tok
		}
		for isDigit(l.ch) {
			l.buf.WriteRune(l.ch)
			l.advance()
			if l.ch == -1 {
				return tok
			}
		}
	} else if digits == 0 {
		// A lone sign is not a number.
		return tok
	}

	if l.ch == 'e' || l.ch == 'E' {
		l.buf.WriteRune(l.ch)
		l.advance()
		if l.ch == -1 {
			return tok
		}
		if l.ch == '-' {
			l.buf.WriteRune(l.ch)
			l.advance()
			if l.ch == -1 {
				return tok
			}
		}
		if !isDigit(l.ch) {
			return tok
		}
		for isDigit(l.ch) {
			l.buf.WriteRune(l.ch)
			l.advance()
			if l.ch == -1 {
				return tok
			}
		}
	}

	tok.Type = token.NUMBER
	tok.Literal = l.buf.String()
	return tok
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
