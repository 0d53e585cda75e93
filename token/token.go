package token

// Type is the type of a token.
type Type string

// Token represents a lexical token and its position in the source.
// Line and Column are 1-based; Column is the column of the token's first
// character.
type Token struct {
	Type    Type
	Literal string
	Line    int
	Column  int
}

const (
	// Special tokens
	BAD Type = "BAD" // malformed input; reported by the parser, never fatal in the lexer
	EOF Type = "EOF" // end of input

	// Literals
	NUMBER  Type = "NUMBER"  // 123, -4.5, 6.626e-34
	STRING  Type = "STRING"  // "hello"
	INCLUDE Type = "INCLUDE" // @"other.jex"; Literal holds the verbatim path

	// Delimiters
	LBRACE Type = "{"
	RBRACE Type = "}"
	LBRACK Type = "["
	RBRACK Type = "]"
	COMMA  Type = ","
	COLON  Type = ":"

	// Keywords
	TRUE  Type = "TRUE"
	FALSE Type = "FALSE"
	NULL  Type = "NULL"
)
