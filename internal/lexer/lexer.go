// Package lexer turns Clay source text into a stream of tokens.
//
// A Lexer is created with New and then drained with Next, or lazily through
// the Tokens sequence. Tokenize is a shorthand that materializes the whole
// stream into a slice, which is what the parser consumes.
package lexer

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/claylang/clay/errors"
	"github.com/claylang/clay/internal/token"
)

// Lexer holds our object-state.
type Lexer struct {
	// The input being tokenized
	input string

	// Current position within the input
	pos token.Position

	// The name of the file being tokenized
	file string
}

// Option is a configuration function for a Lexer.
type Option func(*Lexer)

// WithFile sets the file name for the Lexer.
func WithFile(file string) Option {
	return func(l *Lexer) {
		l.file = file
	}
}

// New creates a Lexer instance for the given input.
func New(input string, options ...Option) *Lexer {
	l := &Lexer{input: input}
	for _, opt := range options {
		opt(l)
	}
	l.pos.File = l.file
	return l
}

// Filename returns the name of the file being lexed.
func (l *Lexer) Filename() string {
	return l.file
}

// SetFilename sets the name of the file being lexed.
func (l *Lexer) SetFilename(file string) {
	l.file = file
	l.pos.File = file
}

// Position returns the current position of the lexer in the input.
func (l *Lexer) Position() token.Position {
	return l.pos
}

// State is an opaque snapshot of the lexer cursor.
type State struct {
	pos token.Position
}

// SaveState captures the cursor so that it can be restored later.
func (l *Lexer) SaveState() State {
	return State{pos: l.pos}
}

// RestoreState rewinds the cursor to a previously saved state.
func (l *Lexer) RestoreState(s State) {
	l.pos = s.pos
}

// Next returns the next token in the input. Once the input is exhausted an
// EOF token is returned on every call.
func (l *Lexer) Next() (token.Token, error) {
	l.skipWhitespace()
	if l.pos.Char >= len(l.input) {
		return token.Token{Type: token.EOF, StartPosition: l.pos, EndPosition: l.pos}, nil
	}
	ch := l.input[l.pos.Char]
	peek := l.peekChar()
	switch ch {
	case '(':
		return l.single(token.LPAREN), nil
	case ')':
		return l.single(token.RPAREN), nil
	case '[':
		return l.single(token.LBRACKET), nil
	case ']':
		return l.single(token.RBRACKET), nil
	case '{':
		return l.single(token.LBRACE), nil
	case '}':
		return l.single(token.RBRACE), nil
	case ',':
		return l.single(token.COMMA), nil
	case '.':
		return l.single(token.PERIOD), nil
	case '%':
		return l.single(token.MOD), nil
	case '!':
		if peek == '=' {
			return l.double(token.NOT_EQ), nil
		}
		return l.single(token.BANG), nil
	case '=':
		if peek == '=' {
			return l.double(token.EQ), nil
		}
		return l.single(token.ASSIGN), nil
	case '&':
		if peek == '&' {
			return l.double(token.AND), nil
		}
		return l.single(token.AMPERSAND), nil
	case '|':
		if peek == '|' {
			return l.double(token.OR), nil
		}
		return l.single(token.BAR), nil
	case '+':
		if peek == '=' {
			return l.double(token.PLUS_EQUALS), nil
		}
		return l.single(token.PLUS), nil
	case '-':
		switch peek {
		case '=':
			return l.double(token.MINUS_EQUALS), nil
		case '>':
			return l.double(token.ARROW), nil
		}
		return l.single(token.MINUS), nil
	case '*':
		if peek == '=' {
			return l.double(token.ASTERISK_EQUALS), nil
		}
		return l.single(token.ASTERISK), nil
	case '/':
		if peek == '=' {
			return l.double(token.SLASH_EQUALS), nil
		}
		return l.single(token.SLASH), nil
	case '<':
		if peek == '=' {
			return l.double(token.LT_EQUALS), nil
		}
		return l.single(token.LT), nil
	case '>':
		if peek == '=' {
			return l.double(token.GT_EQUALS), nil
		}
		return l.single(token.GT), nil
	case ':':
		if peek == '=' {
			return l.double(token.DECLARE), nil
		}
		return l.single(token.COLON), nil
	case '"':
		return l.readString()
	}
	if isDigit(ch) {
		return l.readNumber()
	}
	if isLetter(ch) {
		return l.readWord(), nil
	}
	r, size := utf8.DecodeRuneInString(l.input[l.pos.Char:])
	start := l.pos
	l.advance(size)
	return token.Token{Type: token.ILLEGAL, Literal: string(r), StartPosition: start, EndPosition: l.last()},
		l.newError(errors.E1011, start, fmt.Sprintf("illegal character %q", r))
}

// Tokens returns a lazy, single-pass sequence over the remaining tokens. The
// sequence ends at end of input (the EOF token is not yielded) or right after
// yielding the first error.
func (l *Lexer) Tokens() iter.Seq2[token.Token, error] {
	return func(yield func(token.Token, error) bool) {
		for {
			tok, err := l.Next()
			if err != nil {
				yield(tok, err)
				return
			}
			if tok.Type == token.EOF {
				return
			}
			if !yield(tok, nil) {
				return
			}
		}
	}
}

// Tokenize lexes the entire input and returns every token followed by a
// trailing EOF token. The first lexical error aborts tokenization.
func Tokenize(input string, options ...Option) ([]token.Token, error) {
	l := New(input, options...)
	var tokens []token.Token
	for tok, err := range l.Tokens() {
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return append(tokens, token.Token{Type: token.EOF, StartPosition: l.pos, EndPosition: l.pos}), nil
}

// GetLineText returns the full line of source text containing the token.
func (l *Lexer) GetLineText(tok token.Token) string {
	return LineText(l.input, tok.StartPosition)
}

// LineText returns the line of input that contains the given position.
func LineText(input string, pos token.Position) string {
	start := pos.LineStart
	if start < 0 || start > len(input) {
		return ""
	}
	end := strings.IndexByte(input[start:], '\n')
	if end < 0 {
		return strings.TrimRight(input[start:], "\r")
	}
	return strings.TrimRight(input[start:start+end], "\r")
}

func (l *Lexer) peekChar() byte {
	if l.pos.Char+1 >= len(l.input) {
		return 0
	}
	return l.input[l.pos.Char+1]
}

// advance moves the cursor forward n bytes on the current line.
func (l *Lexer) advance(n int) {
	l.pos.Char += n
	l.pos.Column += n
}

// newline moves the cursor past a '\n' and starts a new line.
func (l *Lexer) newline() {
	l.pos.Char++
	l.pos.Line++
	l.pos.Column = 0
	l.pos.LineStart = l.pos.Char
}

func (l *Lexer) skipWhitespace() {
	for l.pos.Char < len(l.input) {
		switch l.input[l.pos.Char] {
		case ' ', '\t', '\r':
			l.advance(1)
		case '\n':
			l.newline()
		default:
			return
		}
	}
}

// last returns the position of the byte just before the cursor. Tokens end
// on their final character, so this is only valid when the token did not
// end with a newline.
func (l *Lexer) last() token.Position {
	return l.pos.Advance(-1)
}

func (l *Lexer) single(t token.Type) token.Token {
	start := l.pos
	l.advance(1)
	return token.Token{Type: t, Literal: l.input[start.Char:l.pos.Char], StartPosition: start, EndPosition: start}
}

func (l *Lexer) double(t token.Type) token.Token {
	start := l.pos
	l.advance(2)
	return token.Token{Type: t, Literal: l.input[start.Char:l.pos.Char], StartPosition: start, EndPosition: l.last()}
}

// readNumber consumes a run of digits, continuing into a fractional part only
// when the '.' is immediately followed by another digit.
func (l *Lexer) readNumber() (token.Token, error) {
	start := l.pos
	typ := token.INT
	for l.pos.Char < len(l.input) {
		ch := l.input[l.pos.Char]
		if isDigit(ch) {
			l.advance(1)
			continue
		}
		if ch == '.' && typ == token.INT && isDigit(l.peekChar()) {
			typ = token.FLOAT
			l.advance(1)
			continue
		}
		break
	}
	lit := l.input[start.Char:l.pos.Char]
	tok := token.Token{Type: typ, Literal: lit, StartPosition: start, EndPosition: l.last()}
	var err error
	if typ == token.INT {
		_, err = strconv.ParseUint(lit, 10, 64)
	} else {
		_, err = strconv.ParseFloat(lit, 64)
	}
	if err != nil {
		tok.Type = token.ILLEGAL
		return tok, l.newError(errors.E1008, start, fmt.Sprintf("invalid number literal: %s", lit))
	}
	return tok, nil
}

// readString consumes a double-quoted string. The literal holds the raw text
// between the quotes. A backslash keeps the following character inside the
// string but no escape sequences are decoded.
func (l *Lexer) readString() (token.Token, error) {
	start := l.pos
	l.advance(1) // opening quote
	contentStart := l.pos.Char
	for l.pos.Char < len(l.input) {
		switch l.input[l.pos.Char] {
		case '"':
			lit := l.input[contentStart:l.pos.Char]
			end := l.pos
			l.advance(1)
			return token.Token{Type: token.STRING, Literal: lit, StartPosition: start, EndPosition: end}, nil
		case '\n':
			l.newline()
		case '\\':
			if l.peekChar() == '\n' {
				l.advance(1)
				l.newline()
			} else if l.pos.Char+1 < len(l.input) {
				l.advance(2)
			} else {
				l.advance(1)
			}
		default:
			l.advance(1)
		}
	}
	tok := token.Token{Type: token.ILLEGAL, Literal: l.input[start.Char:], StartPosition: start, EndPosition: l.pos}
	return tok, l.newError(errors.E1002, start, "unterminated string literal")
}

// readWord consumes a run of letters and underscores and classifies it as a
// keyword, the lone underscore, or an identifier.
func (l *Lexer) readWord() token.Token {
	start := l.pos
	for l.pos.Char < len(l.input) && isLetter(l.input[l.pos.Char]) {
		l.advance(1)
	}
	lit := l.input[start.Char:l.pos.Char]
	typ := token.LookupIdentifier(lit)
	if lit == "_" {
		typ = token.UNDERSCORE
	}
	return token.Token{Type: typ, Literal: lit, StartPosition: start, EndPosition: l.last()}
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
