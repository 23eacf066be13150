// Package token defines language keywords and tokens used when lexing source code.
package token

import "fmt"

// Type describes the type of a token as a string.
type Type string

// Position points to a particular location in an input string.
type Position struct {
	Char      int    // byte offset within the input
	LineStart int    // byte offset of the start of the current line
	Line      int    // 0-indexed line number
	Column    int    // 0-indexed column number
	File      string // filename
}

// LineNumber returns the 1-indexed line number for this position in the input.
func (p Position) LineNumber() int {
	return p.Line + 1
}

// ColumnNumber returns the 1-indexed column number for this position in the input.
func (p Position) ColumnNumber() int {
	return p.Column + 1
}

// Advance returns a new Position advanced by n bytes.
// Note: This assumes the advance does not cross line boundaries.
func (p Position) Advance(n int) Position {
	return Position{
		Char:      p.Char + n,
		LineStart: p.LineStart,
		Line:      p.Line,
		Column:    p.Column + n,
		File:      p.File,
	}
}

// IsValid returns true if this position has been set.
func (p Position) IsValid() bool {
	return p.File != "" || p.Line > 0 || p.Column > 0 || p.Char > 0
}

// String renders the position as "line:column" (1-indexed), prefixed with the
// filename when one is known.
func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.LineNumber(), p.ColumnNumber())
	}
	return fmt.Sprintf("%d:%d", p.LineNumber(), p.ColumnNumber())
}

// NoPos is the zero value Position, representing an invalid/unset position.
var NoPos = Position{}

// Token represents one token lexed from the input source code.
type Token struct {
	Type          Type
	Literal       string
	StartPosition Position
	EndPosition   Position
}

func (t Token) String() string {
	if t.Literal == "" || string(t.Type) == t.Literal {
		return fmt.Sprintf("(%s @ %s)", t.Type, t.StartPosition)
	}
	return fmt.Sprintf("(%s %q @ %s)", t.Type, t.Literal, t.StartPosition)
}

// Token types
const (
	AMPERSAND       Type = "&"
	AND             Type = "&&"
	ARROW           Type = "->"
	ASSIGN          Type = "="
	ASTERISK        Type = "*"
	ASTERISK_EQUALS Type = "*="
	BANG            Type = "!"
	BAR             Type = "|"
	COLON           Type = ":"
	COMMA           Type = ","
	DECLARE         Type = ":="
	EOF             Type = "EOF"
	EQ              Type = "=="
	FLOAT           Type = "FLOAT"
	GT              Type = ">"
	GT_EQUALS       Type = ">="
	IDENT           Type = "IDENT"
	ILLEGAL         Type = "ILLEGAL"
	IMPORT          Type = "IMPORT"
	INT             Type = "INT"
	LBRACE          Type = "{"
	LBRACKET        Type = "["
	LPAREN          Type = "("
	LT              Type = "<"
	LT_EQUALS       Type = "<="
	MATCH           Type = "MATCH"
	MINUS           Type = "-"
	MINUS_EQUALS    Type = "-="
	MOD             Type = "%"
	NOT_EQ          Type = "!="
	OR              Type = "||"
	PERIOD          Type = "."
	PLUS            Type = "+"
	PLUS_EQUALS     Type = "+="
	RBRACE          Type = "}"
	RBRACKET        Type = "]"
	RETURN          Type = "RETURN"
	RPAREN          Type = ")"
	SLASH           Type = "/"
	SLASH_EQUALS    Type = "/="
	STRING          Type = "STRING"
	UNDERSCORE      Type = "_"
)

// types lists every token type. New types must be added here so the parser's
// rule coverage test sees them.
var types = []Type{
	AMPERSAND, AND, ARROW, ASSIGN, ASTERISK, ASTERISK_EQUALS, BANG, BAR,
	COLON, COMMA, DECLARE, EOF, EQ, FLOAT, GT, GT_EQUALS, IDENT, ILLEGAL,
	IMPORT, INT, LBRACE, LBRACKET, LPAREN, LT, LT_EQUALS, MATCH, MINUS,
	MINUS_EQUALS, MOD, NOT_EQ, OR, PERIOD, PLUS, PLUS_EQUALS, RBRACE,
	RBRACKET, RETURN, RPAREN, SLASH, SLASH_EQUALS, STRING, UNDERSCORE,
}

// Types returns every token type known to the lexer.
func Types() []Type {
	out := make([]Type, len(types))
	copy(out, types)
	return out
}

// Reserved keywords
var keywords = map[string]Type{
	"import": IMPORT,
	"match":  MATCH,
	"return": RETURN,
}

// LookupIdentifier used to determinate whether identifier is keyword nor not
func LookupIdentifier(identifier string) Type {
	if tok, ok := keywords[identifier]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword reports whether the given word is reserved.
func IsKeyword(word string) bool {
	_, ok := keywords[word]
	return ok
}

// Keywords returns the reserved words in a stable order.
func Keywords() []string {
	return []string{"import", "match", "return"}
}
