package parser

import (
	"strconv"

	"github.com/claylang/clay/ast"
	"github.com/claylang/clay/errors"
	"github.com/claylang/clay/internal/token"
)

func (p *Parser) parseInt() (ast.Expr, error) {
	tok := p.curToken
	value, err := strconv.ParseUint(tok.Literal, 10, 64)
	if err != nil {
		return nil, p.setTokenError(tok, errors.E1008, "invalid integer: %s", tok.Literal)
	}
	return &ast.Int{Token: tok, Value: value}, nil
}

func (p *Parser) parseFloat() (ast.Expr, error) {
	tok := p.curToken
	value, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		return nil, p.setTokenError(tok, errors.E1008, "invalid float: %s", tok.Literal)
	}
	return &ast.Float{Token: tok, Value: value}, nil
}

func (p *Parser) parseString() (ast.Expr, error) {
	return &ast.String{Token: p.curToken, Value: p.curToken.Literal}, nil
}

func (p *Parser) parseUnderscore() (ast.Expr, error) {
	return &ast.Underscore{Token: p.curToken}, nil
}

func (p *Parser) parseArray() (ast.Expr, error) {
	lbrack := p.curToken
	items, err := p.parseExprList("array literal", token.RBRACKET)
	if err != nil {
		return nil, err
	}
	return &ast.Array{Lbrack: lbrack, Items: items, Rbrack: p.curToken}, nil
}

// parseExprList parses a comma separated list of expressions closed by end.
// curToken is the opening delimiter on entry and end on return.
func (p *Parser) parseExprList(context string, end token.Type) ([]ast.Expr, error) {
	var list []ast.Expr
	if p.peekTokenIs(end) {
		p.nextToken()
		return list, nil
	}
	if err := p.expectExpression(context); err != nil {
		return nil, err
	}
	for {
		expr, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		list = append(list, expr)
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
		if err := p.expectExpression(context); err != nil {
			return nil, err
		}
	}
	if err := p.expectPeek(context, end); err != nil {
		return nil, err
	}
	return list, nil
}

// parseMap parses `{key: value, ...}`. A trailing comma is allowed and keys
// must be structurally distinct.
func (p *Parser) parseMap() (ast.Expr, error) {
	m := &ast.Map{Lbrace: p.curToken}
	for !p.peekTokenIs(token.RBRACE) {
		if err := p.expectExpression("map literal"); err != nil {
			return nil, err
		}
		keyTok := p.curToken
		key, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		for _, item := range m.Items {
			if ast.Equal(item.Key, key) {
				return nil, p.setTokenError(keyTok, errors.E1012,
					"duplicate key %s in map literal", key.String())
			}
		}
		if err := p.expectPeek("map literal", token.COLON); err != nil {
			return nil, err
		}
		if err := p.expectExpression("map literal"); err != nil {
			return nil, err
		}
		value, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		m.Items = append(m.Items, ast.MapItem{Key: key, Value: value})
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
	}
	if err := p.expectPeek("map literal", token.RBRACE); err != nil {
		return nil, err
	}
	m.Rbrace = p.curToken
	return m, nil
}
