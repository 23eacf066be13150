package parser

import "github.com/claylang/clay/internal/token"

// prefixRule returns the parse function for a token found at the start of
// an expression, or nil if the token cannot start one.
func (p *Parser) prefixRule(t token.Type) prefixParseFn {
	switch t {
	case token.INT:
		return p.parseInt
	case token.FLOAT:
		return p.parseFloat
	case token.STRING:
		return p.parseString
	case token.UNDERSCORE:
		return p.parseUnderscore
	case token.IDENT:
		return p.parseIdent
	case token.LPAREN:
		return p.parseGroupedExpr
	case token.LBRACKET:
		return p.parseArray
	case token.LBRACE:
		return p.parseMap
	case token.BAR, token.OR:
		return p.parseFunc
	case token.BANG, token.MINUS:
		return p.parsePrefixExpr
	}
	return nil
}

// infixRule returns the parse function for a token following an operand, or
// nil if the token does not continue an expression.
func (p *Parser) infixRule(t token.Type) infixParseFn {
	switch t {
	case token.AND, token.OR,
		token.EQ, token.NOT_EQ,
		token.LT, token.LT_EQUALS, token.GT, token.GT_EQUALS,
		token.PLUS, token.MINUS,
		token.ASTERISK, token.SLASH, token.MOD:
		return p.parseInfixExpr
	case token.LPAREN:
		return p.parseCall
	case token.LBRACKET:
		return p.parseIndex
	case token.MATCH:
		return p.parseMatch
	}
	return nil
}
