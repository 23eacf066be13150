package parser

import (
	"github.com/claylang/clay/ast"
	"github.com/claylang/clay/errors"
	"github.com/claylang/clay/internal/token"
)

// parseExpression is the Pratt loop. curToken is the first token of the
// expression on entry and the last token of the expression on return.
func (p *Parser) parseExpression(precedence int) (ast.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	context := p.exprContext
	p.exprContext = ""
	prefix := p.prefixRule(p.curToken.Type)
	if prefix == nil {
		return nil, p.noPrefixRuleError(context, p.curToken)
	}
	left, err := prefix()
	if err != nil {
		return nil, err
	}
	for precedence < p.peekPrecedence() {
		infix := p.infixRule(p.peekToken.Type)
		if infix == nil {
			return left, nil
		}
		p.nextToken()
		if left, err = infix(left); err != nil {
			return nil, err
		}
	}
	return left, nil
}

// noPrefixRuleError reports a token that cannot start an expression. The
// context names the construct that asked for the expression, if any.
func (p *Parser) noPrefixRuleError(context string, t token.Token) error {
	if context == "" {
		context = "expression"
	}
	if t.Type == token.EOF {
		return p.unexpected(errors.E1004, context, "expression", t)
	}
	return p.unexpected(errors.E1001, context, "", t)
}

func (p *Parser) parseIdent() (ast.Expr, error) {
	first := p.curToken
	path := []*ast.Ident{ast.NewIdent(first)}
	for p.peekTokenIs(token.PERIOD) {
		p.nextToken()
		if err := p.expectPeek("attribute access", token.IDENT); err != nil {
			return nil, err
		}
		path = append(path, ast.NewIdent(p.curToken))
	}
	return &ast.NormalIdentifier{Token: first, Path: path}, nil
}

func (p *Parser) parsePrefixExpr() (ast.Expr, error) {
	opTok := p.curToken
	if err := p.expectExpression("prefix expression"); err != nil {
		return nil, err
	}
	right, err := p.parseExpression(PREFIX)
	if err != nil {
		return nil, err
	}
	return &ast.Prefix{Token: opTok, Op: opTok.Literal, X: right}, nil
}

func (p *Parser) parseInfixExpr(left ast.Expr) (ast.Expr, error) {
	opTok := p.curToken
	precedence := p.currentPrecedence()
	if err := p.expectExpression("infix expression"); err != nil {
		return nil, err
	}
	right, err := p.parseExpression(precedence)
	if err != nil {
		return nil, err
	}
	return &ast.Infix{X: left, Token: opTok, Op: opTok.Literal, Y: right}, nil
}

func (p *Parser) parseGroupedExpr() (ast.Expr, error) {
	if err := p.expectExpression("grouped expression"); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek("grouped expression", token.RPAREN); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) parseCall(fn ast.Expr) (ast.Expr, error) {
	lparen := p.curToken
	args, err := p.parseExprList("call arguments", token.RPAREN)
	if err != nil {
		return nil, err
	}
	return &ast.Call{Fun: fn, Lparen: lparen, Args: args, Rparen: p.curToken}, nil
}

func (p *Parser) parseIndex(left ast.Expr) (ast.Expr, error) {
	lbrack := p.curToken
	if err := p.expectExpression("index expression"); err != nil {
		return nil, err
	}
	index, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek("index expression", token.RBRACKET); err != nil {
		return nil, err
	}
	return &ast.Index{X: left, Lbrack: lbrack, Index: index, Rbrack: p.curToken}, nil
}

// parseFunc parses "|a, b| -> body" and "|| -> body". curToken is the "|"
// or "||" token on entry.
func (p *Parser) parseFunc() (ast.Expr, error) {
	fn := &ast.Func{Token: p.curToken}
	if p.curTokenIs(token.BAR) && !p.peekTokenIs(token.BAR) {
		if err := p.expectPeek("function parameters", token.IDENT); err != nil {
			return nil, err
		}
		params, sep := p.scanIdentChain()
		if sep.Type == token.PERIOD {
			return nil, p.unexpected(errors.E1006, "function parameters", "identifier", sep)
		}
		fn.Params = params
	}
	if p.curTokenIs(token.BAR) || p.curTokenIs(token.IDENT) {
		if err := p.expectPeek("function parameters", token.BAR); err != nil {
			return nil, err
		}
	}
	if err := p.expectPeek("function literal", token.ARROW); err != nil {
		return nil, err
	}
	fn.Arrow = p.curToken
	body, err := p.parseBody("function body")
	if err != nil {
		return nil, err
	}
	fn.Body = body
	return fn, nil
}

// parseMatch parses "subject match { clause, ... }" with curToken on the
// match keyword.
func (p *Parser) parseMatch(subject ast.Expr) (ast.Expr, error) {
	m := &ast.Match{Subject: subject, Token: p.curToken}
	if err := p.expectPeek("match expression", token.LBRACE); err != nil {
		return nil, err
	}
	m.Lbrace = p.curToken
	for !p.peekTokenIs(token.RBRACE) {
		if p.peekTokenIs(token.EOF) {
			return nil, p.peekError("match expression", tokenTypeDescription(token.RBRACE), p.peekToken)
		}
		p.nextToken()
		if p.curTokenIs(token.UNDERSCORE) && p.peekTokenIs(token.ARROW) {
			if m.Default != nil {
				return nil, p.setTokenError(p.curToken, errors.E1013,
					"match expression has more than one default clause")
			}
			p.nextToken()
			body, err := p.parseBody("match clause")
			if err != nil {
				return nil, err
			}
			m.Default = body
		} else {
			clause, err := p.parseMatchClause()
			if err != nil {
				return nil, err
			}
			m.Clauses = append(m.Clauses, clause)
		}
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		} else if !p.peekTokenIs(token.RBRACE) {
			return nil, p.peekError("match expression", ", or }", p.peekToken)
		}
	}
	p.nextToken()
	m.Rbrace = p.curToken
	return m, nil
}

// parseMatchClause parses "p1, p2 -> body" with curToken on the first
// predicate.
func (p *Parser) parseMatchClause() (*ast.MatchClause, error) {
	clause := &ast.MatchClause{}
	p.exprContext = "match clause"
	for {
		pred, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		clause.Predicates = append(clause.Predicates, pred)
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
		if err := p.expectExpression("match clause"); err != nil {
			return nil, err
		}
	}
	if err := p.expectPeek("match clause", token.ARROW); err != nil {
		return nil, err
	}
	clause.Arrow = p.curToken
	body, err := p.parseBody("match clause")
	if err != nil {
		return nil, err
	}
	clause.Body = body
	return clause, nil
}
