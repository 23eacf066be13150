package lexer

import (
	"fmt"

	"github.com/claylang/clay/errors"
	"github.com/claylang/clay/internal/token"
)

// Error describes malformed input found while tokenizing.
type Error struct {
	Code     errors.ErrorCode
	Message  string
	Position token.Position
	Line     string // source line containing Position
}

func (e *Error) Error() string {
	return e.Message
}

// Location renders the message followed by the position it refers to.
func (e *Error) Location() string {
	return fmt.Sprintf("%s (%s)", e.Message, e.Position)
}

// ToFormatted converts the error for display with an errors.Formatter.
func (e *Error) ToFormatted() *errors.FormattedError {
	fe := &errors.FormattedError{
		Code:     e.Code,
		Kind:     "syntax error",
		Message:  e.Message,
		Filename: e.Position.File,
		Line:     e.Position.LineNumber(),
		Column:   e.Position.ColumnNumber(),
	}
	if e.Line != "" {
		fe.SourceLines = []errors.SourceLineEntry{
			{Number: e.Position.LineNumber(), Text: e.Line, IsMain: true},
		}
	}
	return fe
}

func (l *Lexer) newError(code errors.ErrorCode, pos token.Position, msg string) *Error {
	return &Error{Code: code, Message: msg, Position: pos, Line: LineText(l.input, pos)}
}
