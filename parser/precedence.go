package parser

import "github.com/claylang/clay/internal/token"

// Precedence order for operators
const (
	_ int = iota
	LOWEST
	AND         // &&
	OR          // ||
	EQUALS      // == or !=
	LESSGREATER // > or <
	SUM         // + or -
	PRODUCT     // * or /
	PREFIX      // -X or !X
	CALL        // myFunction(X)
	INDEX       // array[index]
	MATCH       // x match { ... }
)

// Precedences for each token type
var precedences = map[token.Type]int{
	token.AND:       AND,
	token.OR:        OR,
	token.EQ:        EQUALS,
	token.NOT_EQ:    EQUALS,
	token.LT:        LESSGREATER,
	token.LT_EQUALS: LESSGREATER,
	token.GT:        LESSGREATER,
	token.GT_EQUALS: LESSGREATER,
	token.PLUS:      SUM,
	token.MINUS:     SUM,
	token.SLASH:     PRODUCT,
	token.ASTERISK:  PRODUCT,
	token.MOD:       PRODUCT,
	token.LPAREN:    CALL,
	token.LBRACKET:  INDEX,
	token.MATCH:     MATCH,
}

// precedenceOf returns the binding power of t when it appears after an
// operand. Tokens without an entry bind at LOWEST and so never continue an
// expression.
func precedenceOf(t token.Type) int {
	if p, ok := precedences[t]; ok {
		return p
	}
	return LOWEST
}
