// Package ast defines the abstract syntax tree representation of Clay code.
//
// Every node keeps the token that introduced it so that hosts can point
// diagnostics back at the source. Nodes are built bottom-up by the parser and
// are not mutated afterwards.
package ast

import (
	"strings"

	"github.com/claylang/clay/internal/token"
)

// Node represents a portion of the syntax tree. All nodes have position
// information indicating where they appear in the source code.
type Node interface {
	// Pos returns the position of the first character belonging to the node.
	Pos() token.Position

	// End returns the position of the first character immediately after the node.
	End() token.Position

	// String returns a human friendly representation of the Node. This should
	// be similar to the original source code, but not necessarily identical.
	String() string
}

// Stmt represents a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Expr represents an expression node. Expressions evaluate to a value
// and may be embedded within other expressions.
type Expr interface {
	Node
	exprNode()
}

// Program is the root node: the ordered statements of one source text.
type Program struct {
	Stmts []Stmt
}

func (p *Program) Pos() token.Position {
	if len(p.Stmts) == 0 {
		return token.NoPos
	}
	return p.Stmts[0].Pos()
}

func (p *Program) End() token.Position {
	if len(p.Stmts) == 0 {
		return token.NoPos
	}
	return p.Stmts[len(p.Stmts)-1].End()
}

func (p *Program) String() string {
	lines := make([]string, 0, len(p.Stmts))
	for _, s := range p.Stmts {
		lines = append(lines, s.String())
	}
	return strings.Join(lines, "\n")
}

// BadStmt stands in for a statement that failed to parse. The parser only
// produces it when running with error recovery enabled.
type BadStmt struct {
	From token.Position // start of bad statement
	To   token.Position // end of bad statement
}

func (x *BadStmt) stmtNode() {}

func (x *BadStmt) Pos() token.Position { return x.From }
func (x *BadStmt) End() token.Position { return x.To }
func (x *BadStmt) String() string      { return "<bad statement>" }

// after returns the position immediately following tok.
func after(tok token.Token) token.Position {
	return tok.EndPosition.Advance(1)
}
