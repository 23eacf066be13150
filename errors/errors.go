// Package errors defines error codes and the formatted representation shared
// by every Clay diagnostic.
package errors

import (
	"fmt"
)

// SourceLocation represents a position in source code.
type SourceLocation struct {
	Filename string
	Line     int    // 1-based line number
	Column   int    // 1-based column number
	Source   string // The line of source code
}

// String returns a formatted string representation of the source location.
func (s SourceLocation) String() string {
	if s.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", s.Filename, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// IsZero returns true if the location has not been set.
func (s SourceLocation) IsZero() bool {
	return s.Line == 0 && s.Column == 0
}

// FriendlyError is an interface for errors that have a human friendly message
// in addition to a the lower level default error message.
type FriendlyError interface {
	Error() string
	FriendlyErrorMessage() string
}

// FormattableError is an interface for errors that can be formatted with
// the enhanced error formatter (with colors, source context, etc).
type FormattableError interface {
	Error() string
	ToFormatted() *FormattedError
}

// Collect flattens err into the formatted errors it carries. Errors that
// wrap several others (via an Unwrap() []error method) contribute each of
// their children, as do aggregates exposing WrappedErrors() []error. Errors
// that are not formattable are rendered as a bare message.
func Collect(err error) []*FormattedError {
	if err == nil {
		return nil
	}
	var children []error
	switch multi := err.(type) {
	case interface{ WrappedErrors() []error }:
		children = multi.WrappedErrors()
	case interface{ Unwrap() []error }:
		children = multi.Unwrap()
	}
	if children != nil {
		var out []*FormattedError
		for _, e := range children {
			out = append(out, Collect(e)...)
		}
		return out
	}
	if fe, ok := err.(FormattableError); ok {
		return []*FormattedError{fe.ToFormatted()}
	}
	return []*FormattedError{{Kind: "error", Message: err.Error()}}
}
