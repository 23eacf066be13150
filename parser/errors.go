package parser

import (
	"fmt"
	"strings"

	"github.com/claylang/clay/errors"
	"github.com/claylang/clay/internal/token"
	"github.com/hashicorp/go-multierror"
)

// ErrorOpts is a struct that holds a variety of error data.
// All fields are optional, although one of `Cause` or `Message`
// are recommended. If `Cause` is set, `Message` will be ignored.
type ErrorOpts struct {
	ErrType       string
	Code          errors.ErrorCode
	Message       string
	Cause         error
	File          string
	StartPosition token.Position
	EndPosition   token.Position
	SourceCode    string
	Context       string
	Expected      string
	Found         token.Token
	Hint          string
}

// NewParserError returns a new BaseParserError populated with
// the given error data.
func NewParserError(opts ErrorOpts) *BaseParserError {
	if opts.ErrType == "" {
		opts.ErrType = "parse error"
	}
	return &BaseParserError{
		errType:       opts.ErrType,
		code:          opts.Code,
		message:       opts.Message,
		cause:         opts.Cause,
		file:          opts.File,
		startPosition: opts.StartPosition,
		endPosition:   opts.EndPosition,
		sourceCode:    opts.SourceCode,
		context:       opts.Context,
		expected:      opts.Expected,
		found:         opts.Found,
		hint:          opts.Hint,
	}
}

// ParserError is an interface that all parser errors implement.
type ParserError interface {
	Type() string
	Code() errors.ErrorCode
	Message() string
	Cause() error
	File() string
	StartPosition() token.Position
	EndPosition() token.Position
	SourceCode() string
	Context() string
	Expected() string
	Found() token.Token
	Error() string
	errors.FriendlyError
	errors.FormattableError
}

// BaseParserError is the simplest implementation of ParserError.
type BaseParserError struct {
	// Type of the error, e.g. "syntax error"
	errType string
	// Error code, e.g. E1001
	code errors.ErrorCode
	// The error message
	message string
	// The wrapped error
	cause error
	// File where the error occurred
	file string
	// Start position of the error in the input string
	startPosition token.Position
	// End position of the error in the input string
	endPosition token.Position
	// Relevant line of source code text
	sourceCode string
	// What was being parsed, e.g. "map literal"
	context string
	// Description of what would have been accepted
	expected string
	// The offending token
	found token.Token
	// Optional suggestion
	hint string
}

func (e *BaseParserError) Error() string {
	var msg string
	if e.cause != nil {
		msg = e.cause.Error()
	} else if e.message != "" {
		msg = e.message
	}
	if e.found.Type != "" || e.startPosition.IsValid() || e.file != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.startPosition)
	}
	if e.errType != "" {
		msg = fmt.Sprintf("%s: %s", e.errType, msg)
	}
	return msg
}

func (e *BaseParserError) FriendlyErrorMessage() string {
	formatter := errors.NewFormatter(false)
	return formatter.Format(e.ToFormatted())
}

// ToFormatted converts the parser error to a FormattedError for display.
func (e *BaseParserError) ToFormatted() *errors.FormattedError {
	start := e.StartPosition()
	end := e.EndPosition()

	message := e.message
	if e.cause != nil {
		message = e.cause.Error()
	}
	endColumn := 0
	if end.Line == start.Line {
		endColumn = end.ColumnNumber()
	}
	fe := &errors.FormattedError{
		Code:      e.code,
		Kind:      e.errType,
		Message:   message,
		Filename:  e.file,
		Line:      start.LineNumber(),
		Column:    start.ColumnNumber(),
		EndColumn: endColumn,
		Hint:      e.hint,
	}
	if e.sourceCode != "" {
		fe.SourceLines = []errors.SourceLineEntry{
			{Number: start.LineNumber(), Text: e.sourceCode, IsMain: true},
		}
	}
	return fe
}

func (e *BaseParserError) Cause() error {
	return e.cause
}

func (e *BaseParserError) Code() errors.ErrorCode {
	return e.code
}

func (e *BaseParserError) Message() string {
	if e.cause != nil && e.message == "" {
		return e.cause.Error()
	}
	return e.message
}

func (e *BaseParserError) Line() int {
	return e.startPosition.Line
}

func (e *BaseParserError) StartPosition() token.Position {
	return e.startPosition
}

func (e *BaseParserError) EndPosition() token.Position {
	return e.endPosition
}

func (e *BaseParserError) File() string {
	return e.file
}

func (e *BaseParserError) SourceCode() string {
	return e.sourceCode
}

func (e *BaseParserError) Context() string {
	return e.context
}

func (e *BaseParserError) Expected() string {
	return e.expected
}

func (e *BaseParserError) Found() token.Token {
	return e.found
}

func (e *BaseParserError) Hint() string {
	return e.hint
}

func (e *BaseParserError) Unwrap() error {
	return e.cause
}

func (e *BaseParserError) Type() string {
	return e.errType
}

// NewSyntaxError returns a new SyntaxError populated with the given error data
func NewSyntaxError(opts ErrorOpts) *SyntaxError {
	opts.ErrType = "syntax error"
	return &SyntaxError{BaseParserError: NewParserError(opts)}
}

// SyntaxError reports malformed input found by the lexer.
type SyntaxError struct {
	*BaseParserError
}

func tokenTypeDescription(t token.Type) string {
	switch t {
	case token.EOF:
		return "end of file"
	case token.IDENT:
		return "identifier"
	case token.INT:
		return "integer"
	case token.FLOAT:
		return "float"
	case token.STRING:
		return "string"
	case token.IMPORT, token.MATCH, token.RETURN:
		return strings.ToLower(string(t))
	default:
		return string(t)
	}
}

func tokenDescription(t token.Token) string {
	switch t.Type {
	case token.EOF:
		return "end of file"
	case token.STRING:
		return fmt.Sprintf("%q", t.Literal)
	default:
		if t.Literal == "" {
			return string(t.Type)
		}
		return t.Literal
	}
}

// newMultiError returns an empty aggregate whose message lists every error
// on its own line.
func newMultiError() *multierror.Error {
	return &multierror.Error{ErrorFormat: listFormat}
}

func listFormat(errs []error) string {
	if len(errs) == 1 {
		return errs[0].Error()
	}
	lines := make([]string, 0, len(errs)+1)
	lines = append(lines, fmt.Sprintf("%d errors occurred:", len(errs)))
	for _, err := range errs {
		lines = append(lines, "\t* "+err.Error())
	}
	return strings.Join(lines, "\n")
}
