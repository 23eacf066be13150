package ast

import (
	"strings"

	"github.com/claylang/clay/internal/token"
)

// Block is a braced sequence of statements. Blocks synthesized for a
// single-expression body have zero-valued brace tokens and keep the "->"
// that introduced them in Arrow instead.
type Block struct {
	Lbrace token.Token // the "{" token
	Stmts  []Stmt
	Rbrace token.Token // the "}" token
	Arrow  token.Token // the "->" token of a synthesized body
}

func (b *Block) stmtNode() {}

func (b *Block) Pos() token.Position {
	if b.Lbrace.Type == "" && len(b.Stmts) > 0 {
		return b.Stmts[0].Pos()
	}
	return b.Lbrace.StartPosition
}

func (b *Block) End() token.Position {
	if b.Rbrace.Type == "" && len(b.Stmts) > 0 {
		return b.Stmts[len(b.Stmts)-1].End()
	}
	return after(b.Rbrace)
}

func (b *Block) String() string {
	if len(b.Stmts) == 0 {
		return "{}"
	}
	stmts := make([]string, 0, len(b.Stmts))
	for _, s := range b.Stmts {
		stmts = append(stmts, s.String())
	}
	return "{ " + strings.Join(stmts, "; ") + " }"
}

// ExpressionStatement is an expression evaluated for its effect.
type ExpressionStatement struct {
	Token token.Token // the first token of the expression
	X     Expr
}

func (s *ExpressionStatement) stmtNode() {}

func (s *ExpressionStatement) Pos() token.Position { return s.X.Pos() }
func (s *ExpressionStatement) End() token.Position { return s.X.End() }

func (s *ExpressionStatement) String() string { return s.X.String() }

// Assign defines new names: "x, y := value".
type Assign struct {
	Name  *DefinitionIdentifier
	Token token.Token // the ":=" token
	Value Expr
}

func (s *Assign) stmtNode() {}

func (s *Assign) Pos() token.Position { return s.Name.Pos() }
func (s *Assign) End() token.Position { return s.Value.End() }

func (s *Assign) String() string {
	return s.Name.String() + " := " + s.Value.String()
}

// Update rebinds an existing path: "a.b = value" or "a.b += value".
type Update struct {
	Name  *NormalIdentifier
	Token token.Token // the assignment operator token
	Op    string      // "=", "+=", "-=", "*=" or "/="
	Value Expr
}

func (s *Update) stmtNode() {}

func (s *Update) Pos() token.Position { return s.Name.Pos() }
func (s *Update) End() token.Position { return s.Value.End() }

func (s *Update) String() string {
	return s.Name.String() + " " + s.Op + " " + s.Value.String()
}

// Return is a "return <expr>" statement.
type Return struct {
	Token token.Token // the "return" keyword
	Value Expr
}

func (s *Return) stmtNode() {}

func (s *Return) Pos() token.Position { return s.Token.StartPosition }
func (s *Return) End() token.Position { return s.Value.End() }

func (s *Return) String() string { return "return " + s.Value.String() }

// Import is an "import <name>" statement. The module name is whatever single
// token follows the keyword.
type Import struct {
	Token token.Token // the "import" keyword
	Name  token.Token // the module name
}

func (s *Import) stmtNode() {}

func (s *Import) Pos() token.Position { return s.Token.StartPosition }
func (s *Import) End() token.Position { return after(s.Name) }

func (s *Import) String() string { return "import " + s.Name.Literal }
