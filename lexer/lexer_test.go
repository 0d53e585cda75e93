package lexer_test

import (
	"strings"
	"testing"

	"github.com/jex-lang/go-jex/lexer"
	"github.com/jex-lang/go-jex/token"
	"github.com/stretchr/testify/require"
)

func TestNextToken(t *testing.T) {
	input := "# first\n# second\n{\n  \"key\": 1.5,\n  \"arr\": [true, false, null],\n  \"inc\": @\"sub.jex\"\n}\n"

	expectedTokens := []struct {
		expectedType    token.Type
		expectedLiteral string
		expectedLine    int
		expectedColumn  int
	}{
		{token.LBRACE, "{", 3, 1},
		{token.STRING, "key", 4, 3},
		{token.COLON, ":", 4, 8},
		{token.NUMBER, "1.5", 4, 10},
		{token.COMMA, ",", 4, 13},
		{token.STRING, "arr", 5, 3},
		{token.COLON, ":", 5, 8},
		{token.LBRACK, "[", 5, 10},
		{token.TRUE, "true", 5, 11},
		{token.COMMA, ",", 5, 15},
		{token.FALSE, "false", 5, 17},
		{token.COMMA, ",", 5, 22},
		{token.NULL, "null", 5, 24},
		{token.RBRACK, "]", 5, 28},
		{token.COMMA, ",", 5, 29},
		{token.STRING, "inc", 6, 3},
		{token.COLON, ":", 6, 8},
		{token.INCLUDE, "sub.jex", 6, 10},
		{token.RBRACE, "}", 7, 1},
		{token.EOF, "", 8, 1},
	}

	l := lexer.New(strings.NewReader(input))
	for i, expected := range expectedTokens {
		tok := l.Next()
		require.Equal(t, expected.expectedType, tok.Type, "token %d: type", i)
		require.Equal(t, expected.expectedLiteral, tok.Literal, "token %d: literal", i)
		require.Equal(t, expected.expectedLine, tok.Line, "token %d: line", i)
		require.Equal(t, expected.expectedColumn, tok.Column, "token %d: column", i)
	}
}

func TestPeek(t *testing.T) {
	l := lexer.New(strings.NewReader("[1]"))

	require.Equal(t, token.LBRACK, l.Peek().Type)
	require.Equal(t, token.LBRACK, l.Peek().Type, "peek must not consume")
	require.Equal(t, token.LBRACK, l.Next().Type)
	require.Equal(t, token.NUMBER, l.Peek().Type)
	require.Equal(t, token.NUMBER, l.Next().Type)
	require.Equal(t, token.RBRACK, l.Next().Type)
	require.Equal(t, token.EOF, l.Next().Type)
	require.Equal(t, token.EOF, l.Next().Type, "EOF repeats")
}

func TestStrings(t *testing.T) {
	tests := []struct {
		name            string
		input           string
		expectedType    token.Type
		expectedLiteral string
	}{
		{"empty", `""`, token.STRING, ""},
		{"plain", `"hello"`, token.STRING, "hello"},
		{"escaped quote", `"a\"b"`, token.STRING, `a"b`},
		{"escaped backslash", `"a\\b"`, token.STRING, `a\b`},
		{"escaped newline", `"a\nb"`, token.STRING, "a\nb"},
		{"tab escape decodes to letter t", `"a\tb"`, token.STRING, "atb"},
		{"unknown escape", `"a\rb"`, token.BAD, ""},
		{"unterminated", `"abc`, token.BAD, ""},
		{"unterminated after escape", `"a\`, token.BAD, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := lexer.New(strings.NewReader(tt.input)).Next()
			require.Equal(t, tt.expectedType, tok.Type)
			require.Equal(t, tt.expectedLiteral, tok.Literal)
		})
	}
}

func TestNumbers(t *testing.T) {
	// A trailing space terminates the literal; end of input inside a
	// numeric literal is malformed, even directly after a digit run.
	tests := []struct {
		name            string
		input           string
		expectedType    token.Type
		expectedLiteral string
	}{
		{"zero", "0 ", token.NUMBER, "0"},
		{"integer", "12345 ", token.NUMBER, "12345"},
		{"negative", "-1 ", token.NUMBER, "-1"},
		{"fraction", "3.14 ", token.NUMBER, "3.14"},
		{"leading dot", ".5 ", token.NUMBER, ".5"},
		{"negative leading dot", "-.5 ", token.NUMBER, "-.5"},
		{"exponent", "6.626e-34 ", token.NUMBER, "6.626e-34"},
		{"upper exponent", "1E2 ", token.NUMBER, "1E2"},
		{"plain exponent", "1e2 ", token.NUMBER, "1e2"},
		{"eof after digits", "123", token.BAD, ""},
		{"dot without digits", "1. ", token.BAD, ""},
		{"lone minus", "- ", token.BAD, ""},
		{"lone dot", ". ", token.BAD, ""},
		{"empty exponent", "1e ", token.BAD, ""},
		{"positive exponent sign", "1e+2 ", token.BAD, ""},
		{"exponent sign without digits", "1e- ", token.BAD, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := lexer.New(strings.NewReader(tt.input)).Next()
			require.Equal(t, tt.expectedType, tok.Type)
			require.Equal(t, tt.expectedLiteral, tok.Literal)
		})
	}
}

func TestKeywords(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectedType token.Type
	}{
		{"true", "true ", token.TRUE},
		{"false", "false ", token.FALSE},
		{"null", "null ", token.NULL},
		{"truncated true", "tru}", token.BAD},
		{"truncated null", "nul,", token.BAD},
		{"misspelled false", "fals3 ", token.BAD},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := lexer.New(strings.NewReader(tt.input)).Next()
			require.Equal(t, tt.expectedType, tok.Type)
		})
	}
}

func TestIncludes(t *testing.T) {
	tests := []struct {
		name            string
		input           string
		expectedType    token.Type
		expectedLiteral string
	}{
		{"simple", `@"other.jex"`, token.INCLUDE, "other.jex"},
		{"path kept verbatim", `@"dir\sub.jex"`, token.INCLUDE, `dir\sub.jex`},
		{"missing quote", "@other", token.BAD, ""},
		{"unterminated", `@"other`, token.BAD, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := lexer.New(strings.NewReader(tt.input)).Next()
			require.Equal(t, tt.expectedType, tok.Type)
			require.Equal(t, tt.expectedLiteral, tok.Literal)
		})
	}
}

func TestComments(t *testing.T) {
	// Consecutive comment lines collapse entirely, including a comment on
	// the line directly after another comment.
	input := "# one\n# two\n   # three\n[] # trailing"

	l := lexer.New(strings.NewReader(input))
	tok := l.Next()
	require.Equal(t, token.LBRACK, tok.Type)
	require.Equal(t, 4, tok.Line)
	require.Equal(t, 1, tok.Column)
	require.Equal(t, token.RBRACK, l.Next().Type)
	require.Equal(t, token.EOF, l.Next().Type)
}

func TestBadRunes(t *testing.T) {
	l := lexer.New(strings.NewReader("*"))
	tok := l.Next()
	require.Equal(t, token.BAD, tok.Type)
	require.Equal(t, "*", tok.Literal)
	require.Equal(t, token.EOF, l.Next().Type, "lexer keeps going after a bad token")
}
