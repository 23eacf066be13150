package ast

import (
	"bytes"
	"strings"

	"github.com/claylang/clay/internal/token"
)

// Ident is a single name.
type Ident struct {
	Token token.Token // the IDENT token
	Name  string
}

func (x *Ident) exprNode() {}

func (x *Ident) Pos() token.Position { return x.Token.StartPosition }
func (x *Ident) End() token.Position { return after(x.Token) }

func (x *Ident) String() string { return x.Name }

// NewIdent builds an Ident from its token.
func NewIdent(tok token.Token) *Ident {
	return &Ident{Token: tok, Name: tok.Literal}
}

// NormalIdentifier is a dotted access path such as "a.b.c". It is the target
// of an update and the form identifiers take inside expressions.
type NormalIdentifier struct {
	Token token.Token // first identifier of the path
	Path  []*Ident    // never empty
}

func (x *NormalIdentifier) exprNode() {}

func (x *NormalIdentifier) Pos() token.Position { return x.Token.StartPosition }
func (x *NormalIdentifier) End() token.Position { return x.Path[len(x.Path)-1].End() }

func (x *NormalIdentifier) String() string {
	parts := make([]string, 0, len(x.Path))
	for _, id := range x.Path {
		parts = append(parts, id.Name)
	}
	return strings.Join(parts, ".")
}

// DefinitionIdentifier is a comma separated list of names being defined,
// such as the left side of "x, y := 1, 2".
type DefinitionIdentifier struct {
	Token token.Token // first identifier of the list
	Names []*Ident    // never empty
}

func (x *DefinitionIdentifier) exprNode() {}

func (x *DefinitionIdentifier) Pos() token.Position { return x.Token.StartPosition }
func (x *DefinitionIdentifier) End() token.Position { return x.Names[len(x.Names)-1].End() }

func (x *DefinitionIdentifier) String() string {
	parts := make([]string, 0, len(x.Names))
	for _, id := range x.Names {
		parts = append(parts, id.Name)
	}
	return strings.Join(parts, ", ")
}

// Prefix is an operator expression where the operator precedes the operand.
// Examples include "!ok" and "-x".
type Prefix struct {
	Token token.Token // the operator token
	Op    string      // "!" or "-"
	X     Expr        // operand
}

func (x *Prefix) exprNode() {}

func (x *Prefix) Pos() token.Position { return x.Token.StartPosition }
func (x *Prefix) End() token.Position { return x.X.End() }

func (x *Prefix) String() string {
	return "(" + x.Op + x.X.String() + ")"
}

// Infix is an operator expression where the operator is between the operands.
// Examples include "x + y" and "5 - 1".
type Infix struct {
	X     Expr        // left operand
	Token token.Token // the operator token
	Op    string      // operator: "+", "-", "*", "/", etc.
	Y     Expr        // right operand
}

func (x *Infix) exprNode() {}

func (x *Infix) Pos() token.Position { return x.X.Pos() }
func (x *Infix) End() token.Position { return x.Y.End() }

func (x *Infix) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(x.X.String())
	out.WriteString(" " + x.Op + " ")
	out.WriteString(x.Y.String())
	out.WriteString(")")
	return out.String()
}

// If is a conditional expression with a consequence and an optional
// alternative block.
type If struct {
	Token       token.Token // the token that introduced the conditional
	Cond        Expr        // condition
	Consequence *Block      // then branch
	Alternative *Block      // else branch; nil if no else
}

func (x *If) exprNode() {}

func (x *If) Pos() token.Position { return x.Token.StartPosition }
func (x *If) End() token.Position {
	if x.Alternative != nil {
		return x.Alternative.End()
	}
	return x.Consequence.End()
}

func (x *If) String() string {
	var out bytes.Buffer
	out.WriteString("if ")
	out.WriteString(x.Cond.String())
	out.WriteString(" ")
	out.WriteString(x.Consequence.String())
	if x.Alternative != nil {
		out.WriteString(" else ")
		out.WriteString(x.Alternative.String())
	}
	return out.String()
}

// Call is a function call expression such as "f(1, 2)".
type Call struct {
	Fun    Expr        // function expression
	Lparen token.Token // the "(" token
	Args   []Expr      // function arguments
	Rparen token.Token // the ")" token
}

func (x *Call) exprNode() {}

func (x *Call) Pos() token.Position { return x.Fun.Pos() }
func (x *Call) End() token.Position { return after(x.Rparen) }

func (x *Call) String() string {
	args := make([]string, 0, len(x.Args))
	for _, a := range x.Args {
		args = append(args, a.String())
	}
	return x.Fun.String() + "(" + strings.Join(args, ", ") + ")"
}

// Index is an index expression such as "items[0]".
type Index struct {
	X      Expr        // expression being indexed
	Lbrack token.Token // the "[" token
	Index  Expr        // index expression
	Rbrack token.Token // the "]" token
}

func (x *Index) exprNode() {}

func (x *Index) Pos() token.Position { return x.X.Pos() }
func (x *Index) End() token.Position { return after(x.Rbrack) }

func (x *Index) String() string {
	return "(" + x.X.String() + "[" + x.Index.String() + "])"
}

// Func is a function literal: "|a, b| -> a + b" or "|a| -> { ... }". A
// single-expression body is stored as a block holding one Return.
type Func struct {
	Token  token.Token // the "|" or "||" token opening the parameter list
	Params []*Ident    // parameter names
	Arrow  token.Token // the "->" token
	Body   *Block      // never nil
}

func (x *Func) exprNode() {}

func (x *Func) Pos() token.Position { return x.Token.StartPosition }
func (x *Func) End() token.Position { return x.Body.End() }

func (x *Func) String() string {
	params := make([]string, 0, len(x.Params))
	for _, p := range x.Params {
		params = append(params, p.Name)
	}
	return "|" + strings.Join(params, ", ") + "| -> " + x.Body.String()
}

// MatchClause is one arm of a match expression. The body runs when the
// subject equals any of the predicates.
type MatchClause struct {
	Predicates []Expr      // never empty
	Arrow      token.Token // the "->" token
	Body       *Block
}

func (c *MatchClause) Pos() token.Position { return c.Predicates[0].Pos() }
func (c *MatchClause) End() token.Position { return c.Body.End() }

func (c *MatchClause) String() string {
	preds := make([]string, 0, len(c.Predicates))
	for _, p := range c.Predicates {
		preds = append(preds, p.String())
	}
	return strings.Join(preds, ", ") + " -> " + c.Body.String()
}

// Match is a multi-way branch on the value of Subject:
//
//	x match { 1, 2 -> "small", _ -> "large" }
type Match struct {
	Subject Expr           // the value being matched
	Token   token.Token    // the "match" keyword
	Lbrace  token.Token    // the "{" token
	Clauses []*MatchClause // ordered, non-default clauses
	Default *Block         // the "_" clause body; nil if absent
	Rbrace  token.Token    // the "}" token
}

func (x *Match) exprNode() {}

func (x *Match) Pos() token.Position { return x.Subject.Pos() }
func (x *Match) End() token.Position { return after(x.Rbrace) }

func (x *Match) String() string {
	arms := make([]string, 0, len(x.Clauses)+1)
	for _, c := range x.Clauses {
		arms = append(arms, c.String())
	}
	if x.Default != nil {
		arms = append(arms, "_ -> "+x.Default.String())
	}
	if len(arms) == 0 {
		return "(" + x.Subject.String() + " match {})"
	}
	return "(" + x.Subject.String() + " match { " + strings.Join(arms, ", ") + " })"
}
