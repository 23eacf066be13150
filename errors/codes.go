package errors

// ErrorCode represents a unique identifier for error types.
// Codes are organized by category:
//   - E10xx: Lexical and parse errors
type ErrorCode string

const (
	E1001 ErrorCode = "E1001" // Unexpected token
	E1002 ErrorCode = "E1002" // Unterminated string literal
	E1003 ErrorCode = "E1003" // Invalid syntax
	E1004 ErrorCode = "E1004" // Missing expression
	E1005 ErrorCode = "E1005" // Invalid assignment target
	E1006 ErrorCode = "E1006" // Expected identifier
	E1007 ErrorCode = "E1007" // Unclosed delimiter
	E1008 ErrorCode = "E1008" // Invalid number literal
	E1009 ErrorCode = "E1009" // Maximum nesting depth exceeded
	E1011 ErrorCode = "E1011" // Illegal character
	E1012 ErrorCode = "E1012" // Duplicate map key
	E1013 ErrorCode = "E1013" // Duplicate default clause
)

// codeDescriptions maps error codes to their short descriptions.
var codeDescriptions = map[ErrorCode]string{
	E1001: "unexpected token",
	E1002: "unterminated string literal",
	E1003: "invalid syntax",
	E1004: "missing expression",
	E1005: "invalid assignment target",
	E1006: "expected identifier",
	E1007: "unclosed delimiter",
	E1008: "invalid number literal",
	E1009: "maximum nesting depth exceeded",
	E1011: "illegal character",
	E1012: "duplicate map key",
	E1013: "duplicate default clause",
}

// Description returns the short description for an error code.
func (c ErrorCode) Description() string {
	if desc, ok := codeDescriptions[c]; ok {
		return desc
	}
	return "unknown error"
}

// String returns the error code as a string.
func (c ErrorCode) String() string {
	return string(c)
}

// Category returns the error category based on the code.
func (c ErrorCode) Category() string {
	switch c {
	case E1002, E1008, E1011:
		return "lexical"
	}
	if len(c) >= 2 && c[1] == '1' {
		return "parse"
	}
	return "unknown"
}
