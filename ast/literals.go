package ast

import (
	"strings"

	"github.com/claylang/clay/internal/token"
)

// Int is an expression node that holds an unsigned integer literal.
type Int struct {
	Token token.Token // the INT token
	Value uint64      // the parsed value
}

func (x *Int) exprNode() {}

func (x *Int) Pos() token.Position { return x.Token.StartPosition }
func (x *Int) End() token.Position { return after(x.Token) }

func (x *Int) String() string { return x.Token.Literal }

// Float is an expression node that holds a floating point literal.
type Float struct {
	Token token.Token // the FLOAT token
	Value float64     // the parsed value
}

func (x *Float) exprNode() {}

func (x *Float) Pos() token.Position { return x.Token.StartPosition }
func (x *Float) End() token.Position { return after(x.Token) }

func (x *Float) String() string { return x.Token.Literal }

// String is an expression node that holds a string literal. Value is the raw
// text between the quotes.
type String struct {
	Token token.Token // the STRING token
	Value string
}

func (x *String) exprNode() {}

func (x *String) Pos() token.Position { return x.Token.StartPosition }
func (x *String) End() token.Position { return after(x.Token) }

func (x *String) String() string { return `"` + x.Value + `"` }

// Bool is an expression node that holds a boolean literal.
type Bool struct {
	Token token.Token
	Value bool
}

func (x *Bool) exprNode() {}

func (x *Bool) Pos() token.Position { return x.Token.StartPosition }
func (x *Bool) End() token.Position { return after(x.Token) }

func (x *Bool) String() string {
	if x.Value {
		return "true"
	}
	return "false"
}

// Underscore is the "_" placeholder.
type Underscore struct {
	Token token.Token
}

func (x *Underscore) exprNode() {}

func (x *Underscore) Pos() token.Position { return x.Token.StartPosition }
func (x *Underscore) End() token.Position { return after(x.Token) }

func (x *Underscore) String() string { return "_" }

// Array is an array literal such as "[1, 2, 3]".
type Array struct {
	Lbrack token.Token // the "[" token
	Items  []Expr
	Rbrack token.Token // the "]" token
}

func (x *Array) exprNode() {}

func (x *Array) Pos() token.Position { return x.Lbrack.StartPosition }
func (x *Array) End() token.Position { return after(x.Rbrack) }

func (x *Array) String() string {
	items := make([]string, 0, len(x.Items))
	for _, item := range x.Items {
		items = append(items, item.String())
	}
	return "[" + strings.Join(items, ", ") + "]"
}

// MapItem is one key/value pair of a map literal.
type MapItem struct {
	Key   Expr
	Value Expr
}

// Map is a map literal such as `{"a": 1, b: 2}`. Items keep source order and
// no two keys are structurally equal.
type Map struct {
	Lbrace token.Token // the "{" token
	Items  []MapItem
	Rbrace token.Token // the "}" token
}

func (x *Map) exprNode() {}

func (x *Map) Pos() token.Position { return x.Lbrace.StartPosition }
func (x *Map) End() token.Position { return after(x.Rbrace) }

func (x *Map) String() string {
	items := make([]string, 0, len(x.Items))
	for _, item := range x.Items {
		items = append(items, item.Key.String()+": "+item.Value.String())
	}
	return "{" + strings.Join(items, ", ") + "}"
}
