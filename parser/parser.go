// Package parser is used to generate the abstract syntax tree (AST) for a program.
//
// A parser is created by calling New() with the tokens produced by the lexer.
// The parser should then be used only once, by calling parser.Parse() to
// produce the AST.
package parser

import (
	"context"
	"fmt"

	"github.com/claylang/clay/ast"
	"github.com/claylang/clay/errors"
	"github.com/claylang/clay/internal/lexer"
	"github.com/claylang/clay/internal/token"
	"github.com/hashicorp/go-multierror"
)

type (
	prefixParseFn func() (ast.Expr, error)
	infixParseFn  func(ast.Expr) (ast.Expr, error)
)

// Parse the provided input as Clay source code and return the AST. This is
// shorthand way to tokenize the input and then call Parse on a new Parser.
func Parse(ctx context.Context, input string, options ...Option) (*ast.Program, error) {
	// Apply the options to a scratch parser so that lexer errors have proper
	// location context.
	var cfg Parser
	for _, opt := range options {
		opt(&cfg)
	}

	tokens, err := lexer.Tokenize(input, lexer.WithFile(cfg.filename))
	if err != nil {
		serr := syntaxError(err, cfg.filename, input)
		if cfg.recovery {
			return &ast.Program{}, multierror.Append(newMultiError(), serr)
		}
		return nil, serr
	}
	options = append([]Option{WithSource(input)}, options...)
	return New(tokens, options...).Parse(ctx)
}

// syntaxError converts a lexer failure into a SyntaxError.
func syntaxError(err error, filename, input string) *SyntaxError {
	opts := ErrorOpts{Cause: err, File: filename, Code: errors.E1003}
	if lexErr, ok := err.(*lexer.Error); ok {
		opts.Code = lexErr.Code
		opts.StartPosition = lexErr.Position
		opts.EndPosition = lexErr.Position
		opts.SourceCode = lexer.LineText(input, lexErr.Position)
		opts.Found = token.Token{Type: token.ILLEGAL, StartPosition: lexErr.Position, EndPosition: lexErr.Position}
	}
	return NewSyntaxError(opts)
}

// Option is a configuration function for a Parser.
type Option func(*Parser)

// WithFilename sets the file name reported in errors.
func WithFilename(filename string) Option {
	return func(p *Parser) {
		p.filename = filename
	}
}

// WithSource supplies the source text the tokens were produced from. It is
// only used to quote the offending line in errors.
func WithSource(source string) Option {
	return func(p *Parser) {
		p.source = source
	}
}

// WithMaxDepth sets the maximum nesting depth for the parser.
// This prevents stack overflow on deeply nested input.
// The default is 500.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// WithRecovery makes the parser keep going after a malformed statement. The
// parser skips to the first token on a later line, records a BadStmt and
// continues. Parse then returns the partial program together with a
// *multierror.Error holding every error found.
func WithRecovery() Option {
	return func(p *Parser) {
		p.recovery = true
	}
}

// DefaultMaxDepth is the default maximum nesting depth for parsing.
const DefaultMaxDepth = 500

// Parser object
type Parser struct {
	// the Context supplied in the Parse() call
	ctx context.Context

	// tokens is the materialized token stream, always ending with EOF
	tokens []token.Token

	// pos is the index of curToken within tokens
	pos int

	// prevToken holds the previous token, which we already processed.
	prevToken token.Token

	// curToken holds the token currently being examined.
	curToken token.Token

	// peekToken holds the token after curToken.
	peekToken token.Token

	// The filename of the input
	filename string

	// The source text, used to quote lines in errors
	source string

	// The construct waiting on the next parseExpression call, used to name
	// it when the expression is missing
	exprContext string

	// Current recursion depth
	depth int

	// Maximum allowed recursion depth
	maxDepth int

	// Resynchronize after errors instead of stopping at the first one
	recovery bool

	// parsing errors collected in recovery mode
	errors *multierror.Error
}

// New returns a Parser for the given tokens. A trailing EOF token is added
// when the slice does not already end with one.
func New(tokens []token.Token, options ...Option) *Parser {
	p := &Parser{maxDepth: DefaultMaxDepth}
	for _, opt := range options {
		opt(p)
	}
	if n := len(tokens); n == 0 || tokens[n-1].Type != token.EOF {
		eof := token.Token{Type: token.EOF}
		if n > 0 {
			eof.StartPosition = tokens[n-1].EndPosition.Advance(1)
			eof.EndPosition = eof.StartPosition
		}
		tokens = append(tokens[:n:n], eof)
	}
	p.tokens = tokens
	p.reset(0)
	return p
}

// Parse the program held by the parser. In the default mode the first error
// stops parsing and no program is returned. With WithRecovery the partial
// program is returned along with a *multierror.Error.
func (p *Parser) Parse(ctx context.Context) (*ast.Program, error) {
	p.ctx = ctx
	p.errors = newMultiError()
	program := &ast.Program{}
	for !p.curTokenIs(token.EOF) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := p.mark()
		stmt, err := p.parseStatement()
		if err != nil {
			if !p.recovery {
				return nil, err
			}
			p.errors = multierror.Append(p.errors, err)
			program.Stmts = append(program.Stmts, &ast.BadStmt{
				From: p.tokens[start].StartPosition,
				To:   p.curToken.EndPosition,
			})
			p.synchronize(start, err)
			continue
		}
		program.Stmts = append(program.Stmts, stmt)
		p.nextToken()
	}
	if p.recovery && len(p.errors.Errors) > 0 {
		return program, p.errors
	}
	return program, nil
}

// synchronize skips to the first token on a line after the one where the
// failed statement went wrong. It always makes progress past start.
func (p *Parser) synchronize(start int, err error) {
	line := p.tokens[start].StartPosition.Line
	if perr, ok := err.(ParserError); ok && perr.StartPosition().Line > line {
		line = perr.StartPosition().Line
	}
	for !p.curTokenIs(token.EOF) && p.curToken.StartPosition.Line <= line {
		p.nextToken()
	}
	if p.pos == start {
		p.nextToken()
	}
}

// nextToken moves to the next token, updating all of prevToken, curToken,
// and peekToken.
func (p *Parser) nextToken() {
	p.prevToken = p.curToken
	p.curToken = p.peekToken
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	p.peekToken = p.tokenAt(p.pos + 1)
}

// tokenAt returns the token at index i, or the final EOF past the end.
func (p *Parser) tokenAt(i int) token.Token {
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

// mark returns the current cursor so that it can be restored with reset.
func (p *Parser) mark() int {
	return p.pos
}

// reset moves the cursor back to a position previously returned by mark.
func (p *Parser) reset(pos int) {
	p.pos = pos
	p.curToken = p.tokenAt(pos)
	p.peekToken = p.tokenAt(pos + 1)
	if pos > 0 {
		p.prevToken = p.tokens[pos-1]
	} else {
		p.prevToken = token.Token{}
	}
}

// curTokenIs returns true if the current token has the given type.
func (p *Parser) curTokenIs(t token.Type) bool {
	return p.curToken.Type == t
}

// peekTokenIs returns true if the next token has the given type.
func (p *Parser) peekTokenIs(t token.Type) bool {
	return p.peekToken.Type == t
}

// peekPrecedence returns the precedence of the next token.
func (p *Parser) peekPrecedence() int {
	return precedenceOf(p.peekToken.Type)
}

// currentPrecedence returns the precedence of the current token.
func (p *Parser) currentPrecedence() int {
	return precedenceOf(p.curToken.Type)
}

// expectPeek validates if the next token is of the given type, and advances if
// it is. If it's a different type, then an error is returned.
func (p *Parser) expectPeek(context string, t token.Type) error {
	if p.peekTokenIs(t) {
		p.nextToken()
		return nil
	}
	return p.peekError(context, tokenTypeDescription(t), p.peekToken)
}

// expectExpression advances onto the first token of an expression, failing
// with a missing expression error if the input ends first.
func (p *Parser) expectExpression(context string) error {
	if p.peekTokenIs(token.EOF) {
		return p.unexpected(errors.E1004, context, "expression", p.peekToken)
	}
	p.nextToken()
	p.exprContext = context
	return nil
}

// closers are the expectations that, when the input runs out, mean a
// delimiter was left open.
var closers = map[string]bool{
	")":      true,
	"]":      true,
	"}":      true,
	"|":      true,
	", or }": true,
}

// peekError builds the error for a token that does not fit the construct being
// parsed. Running out of input inside a delimited construct is reported as an
// unclosed delimiter.
func (p *Parser) peekError(context, expected string, got token.Token) error {
	code := errors.E1001
	switch {
	case expected == tokenTypeDescription(token.IDENT):
		code = errors.E1006
	case got.Type == token.EOF && closers[expected]:
		code = errors.E1007
	}
	return p.unexpected(code, context, expected, got)
}

// unexpected builds an "unexpected X while parsing Y (expected Z)" error.
func (p *Parser) unexpected(code errors.ErrorCode, context, expected string, got token.Token) error {
	msg := fmt.Sprintf("unexpected %s while parsing %s", tokenDescription(got), context)
	if expected != "" {
		msg = fmt.Sprintf("%s (expected %s)", msg, expected)
	}
	opts := ErrorOpts{
		Code:     code,
		Message:  msg,
		Context:  context,
		Expected: expected,
		Found:    got,
	}
	if got.Type == token.IDENT {
		opts.Hint = errors.SuggestKeyword(got.Literal)
	}
	return p.tokenError(got, opts)
}

// tokenError fills in the location of an error from the token it concerns.
func (p *Parser) tokenError(t token.Token, opts ErrorOpts) error {
	opts.File = p.filename
	opts.StartPosition = t.StartPosition
	opts.EndPosition = t.EndPosition
	opts.SourceCode = p.lineText(t)
	if opts.Found.Type == "" {
		opts.Found = t
	}
	return NewParserError(opts)
}

// setTokenError returns a parse error with a custom message positioned at t.
func (p *Parser) setTokenError(t token.Token, code errors.ErrorCode, msg string, args ...any) error {
	return p.tokenError(t, ErrorOpts{Code: code, Message: fmt.Sprintf(msg, args...)})
}

// lineText returns the source line containing t, if the source is known.
func (p *Parser) lineText(t token.Token) string {
	if p.source == "" {
		return ""
	}
	return lexer.LineText(p.source, t.StartPosition)
}

// enter increments the nesting depth, failing once it exceeds the limit.
// Callers must pair a successful enter with leave.
func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.maxDepth {
		p.depth--
		return p.setTokenError(p.curToken, errors.E1009,
			"maximum nesting depth of %d exceeded", p.maxDepth)
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}
