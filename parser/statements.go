package parser

import (
	"github.com/claylang/clay/ast"
	"github.com/claylang/clay/errors"
	"github.com/claylang/clay/internal/token"
)

// updateOps lists the tokens that turn an identifier path into an Update.
var updateOps = map[token.Type]bool{
	token.ASSIGN:          true,
	token.PLUS_EQUALS:     true,
	token.MINUS_EQUALS:    true,
	token.ASTERISK_EQUALS: true,
	token.SLASH_EQUALS:    true,
}

// parseStatement parses the statement starting at curToken. On success
// curToken is the last token of the statement.
func (p *Parser) parseStatement() (ast.Stmt, error) {
	switch p.curToken.Type {
	case token.IMPORT:
		return p.parseImport()
	case token.RETURN:
		return p.parseReturn()
	case token.IDENT:
		return p.parseIdentStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseImport() (ast.Stmt, error) {
	importTok := p.curToken
	if p.peekTokenIs(token.EOF) {
		return nil, p.unexpected(errors.E1006, "import statement", "module name", p.peekToken)
	}
	p.nextToken()
	return &ast.Import{Token: importTok, Name: p.curToken}, nil
}

func (p *Parser) parseReturn() (ast.Stmt, error) {
	returnTok := p.curToken
	if err := p.expectExpression("return statement"); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	return &ast.Return{Token: returnTok, Value: value}, nil
}

// parseIdentStatement resolves whether a statement starting with an
// identifier is a definition, an update, or an expression. The identifier
// chain is scanned speculatively and the cursor rewound when neither ":="
// nor an assignment operator follows it.
func (p *Parser) parseIdentStatement() (ast.Stmt, error) {
	start := p.mark()
	first := p.curToken
	idents, sep := p.scanIdentChain()
	opTok := p.peekToken
	switch {
	case opTok.Type == token.DECLARE:
		if sep.Type == token.PERIOD {
			return nil, p.setTokenError(first, errors.E1005,
				"cannot define dotted name %s with :=", pathString(idents))
		}
		p.nextToken()
		if err := p.expectExpression("assignment"); err != nil {
			return nil, err
		}
		value, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		return &ast.Assign{
			Name:  &ast.DefinitionIdentifier{Token: first, Names: idents},
			Token: opTok,
			Value: value,
		}, nil
	case updateOps[opTok.Type]:
		if sep.Type == token.COMMA {
			return nil, p.setTokenError(first, errors.E1005,
				"cannot update multiple names with %s", opTok.Literal)
		}
		p.nextToken()
		if err := p.expectExpression("update"); err != nil {
			return nil, err
		}
		value, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		return &ast.Update{
			Name:  &ast.NormalIdentifier{Token: first, Path: idents},
			Token: opTok,
			Op:    opTok.Literal,
			Value: value,
		}, nil
	}
	p.reset(start)
	return p.parseExpressionStatement()
}

// scanIdentChain consumes "a.b.c" or "a, b, c" starting at the current IDENT
// token, leaving curToken on the last identifier. The chain stops at the
// first separator that is not followed by an identifier or that differs from
// the first separator seen. It never fails. The returned separator token is
// zero valued for a single identifier.
func (p *Parser) scanIdentChain() ([]*ast.Ident, token.Token) {
	idents := []*ast.Ident{ast.NewIdent(p.curToken)}
	var sep token.Token
	for {
		next := p.peekToken
		if next.Type != token.PERIOD && next.Type != token.COMMA {
			break
		}
		if sep.Type != "" && next.Type != sep.Type {
			break
		}
		if p.tokenAt(p.pos+2).Type != token.IDENT {
			break
		}
		if sep.Type == "" {
			sep = next
		}
		p.nextToken()
		p.nextToken()
		idents = append(idents, ast.NewIdent(p.curToken))
	}
	return idents, sep
}

func (p *Parser) parseExpressionStatement() (ast.Stmt, error) {
	first := p.curToken
	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Token: first, X: expr}, nil
}

// parseBlock parses "{ stmt* }" with curToken on the opening brace and
// leaves curToken on the closing brace.
func (p *Parser) parseBlock(context string) (*ast.Block, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	block := &ast.Block{Lbrace: p.curToken}
	p.nextToken()
	for !p.curTokenIs(token.RBRACE) {
		if p.curTokenIs(token.EOF) {
			return nil, p.peekError(context, tokenTypeDescription(token.RBRACE), p.curToken)
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Stmts = append(block.Stmts, stmt)
		p.nextToken()
	}
	block.Rbrace = p.curToken
	return block, nil
}

// parseBody parses what follows "->" in a function literal or match clause:
// either a braced block or a single expression, which is wrapped as the
// return value of a synthesized block. curToken is the arrow on entry.
func (p *Parser) parseBody(context string) (*ast.Block, error) {
	arrow := p.curToken
	if p.peekTokenIs(token.LBRACE) {
		p.nextToken()
		return p.parseBlock(context)
	}
	if err := p.expectExpression(context); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	pos := value.Pos()
	ret := &ast.Return{
		Token: token.Token{Type: token.RETURN, Literal: "return", StartPosition: pos, EndPosition: pos},
		Value: value,
	}
	return &ast.Block{Stmts: []ast.Stmt{ret}, Arrow: arrow}, nil
}

func pathString(idents []*ast.Ident) string {
	return (&ast.NormalIdentifier{Path: idents}).String()
}
