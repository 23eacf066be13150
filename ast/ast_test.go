package ast

import (
	"testing"

	"github.com/claylang/clay/internal/token"
	"github.com/stretchr/testify/require"
)

func tok(typ token.Type, lit string, line, col int) token.Token {
	pos := token.Position{Line: line, Column: col}
	return token.Token{
		Type:          typ,
		Literal:       lit,
		StartPosition: pos,
		EndPosition:   pos.Advance(len(lit) - 1),
	}
}

func ident(name string, col int) *Ident {
	return NewIdent(tok(token.IDENT, name, 0, col))
}

func intLit(v uint64, lit string, col int) *Int {
	return &Int{Token: tok(token.INT, lit, 0, col), Value: v}
}

func TestString(t *testing.T) {
	// x, y := 1 + 2
	program := &Program{
		Stmts: []Stmt{
			&Assign{
				Name: &DefinitionIdentifier{
					Token: tok(token.IDENT, "x", 0, 0),
					Names: []*Ident{ident("x", 0), ident("y", 3)},
				},
				Token: tok(token.DECLARE, ":=", 0, 5),
				Value: &Infix{
					X:     intLit(1, "1", 8),
					Token: tok(token.PLUS, "+", 0, 10),
					Op:    "+",
					Y:     intLit(2, "2", 12),
				},
			},
			&Update{
				Name: &NormalIdentifier{
					Token: tok(token.IDENT, "m", 1, 0),
					Path:  []*Ident{ident("m", 0), ident("e", 2)},
				},
				Op:    "+=",
				Value: &String{Token: tok(token.STRING, "3", 1, 7), Value: "3"},
			},
		},
	}
	require.Equal(t, "x, y := (1 + 2)\nm.e += \"3\"", program.String())
}

func TestPositions(t *testing.T) {
	infix := &Infix{
		X:     intLit(10, "10", 4),
		Token: tok(token.ASTERISK, "*", 0, 7),
		Op:    "*",
		Y:     intLit(300, "300", 9),
	}
	require.Equal(t, 4, infix.Pos().Column)
	require.Equal(t, 12, infix.End().Column)

	call := &Call{
		Fun:    &NormalIdentifier{Token: tok(token.IDENT, "f", 0, 0), Path: []*Ident{ident("f", 0)}},
		Lparen: tok(token.LPAREN, "(", 0, 1),
		Rparen: tok(token.RPAREN, ")", 0, 2),
	}
	require.Equal(t, 0, call.Pos().Column)
	require.Equal(t, 3, call.End().Column)
	require.Equal(t, "f()", call.String())
}

func TestSynthesizedBlockPosition(t *testing.T) {
	ret := &Return{
		Token: tok(token.RETURN, "return", 0, 7),
		Value: &NormalIdentifier{Token: tok(token.IDENT, "x", 0, 7), Path: []*Ident{ident("x", 7)}},
	}
	block := &Block{Stmts: []Stmt{ret}}
	require.Equal(t, 7, block.Pos().Column)
	require.Equal(t, 8, block.End().Column)
	require.Equal(t, "{ return x }", block.String())
	require.Equal(t, "{}", (&Block{}).String())
}

func TestEmptyProgram(t *testing.T) {
	p := &Program{}
	require.Equal(t, token.NoPos, p.Pos())
	require.Equal(t, token.NoPos, p.End())
	require.Equal(t, "", p.String())
}

func TestBadStmt(t *testing.T) {
	from := token.Position{Line: 2, Column: 1, File: "test.clay"}
	to := token.Position{Line: 2, Column: 20, File: "test.clay"}
	bad := &BadStmt{From: from, To: to}
	require.Equal(t, from, bad.Pos())
	require.Equal(t, to, bad.End())
	require.Equal(t, "<bad statement>", bad.String())
	var _ Stmt = bad
}

func TestMatchString(t *testing.T) {
	m := &Match{
		Subject: &NormalIdentifier{Token: tok(token.IDENT, "x", 0, 0), Path: []*Ident{ident("x", 0)}},
		Clauses: []*MatchClause{
			{
				Predicates: []Expr{intLit(1, "1", 12), intLit(2, "2", 15)},
				Body:       &Block{Stmts: []Stmt{&Return{Value: &String{Value: "small"}}}},
			},
		},
		Default: &Block{Stmts: []Stmt{&Return{Value: &String{Value: "large"}}}},
	}
	require.Equal(t, `(x match { 1, 2 -> { return "small" }, _ -> { return "large" } })`, m.String())

	empty := &Match{Subject: m.Subject}
	require.Equal(t, "(x match {})", empty.String())
}

func TestLiteralStrings(t *testing.T) {
	tests := []struct {
		node     Node
		expected string
	}{
		{&Underscore{}, "_"},
		{&Bool{Value: true}, "true"},
		{&Bool{Value: false}, "false"},
		{&Float{Token: tok(token.FLOAT, "2.5", 0, 0), Value: 2.5}, "2.5"},
		{&Prefix{Op: "-", X: intLit(3, "3", 1)}, "(-3)"},
		{&Array{Items: []Expr{intLit(1, "1", 1), intLit(2, "2", 4)}}, "[1, 2]"},
		{&Map{Items: []MapItem{{Key: &String{Value: "a"}, Value: intLit(1, "1", 6)}}}, `{"a": 1}`},
		{&Index{X: ident("xs", 0), Index: intLit(0, "0", 3)}, "(xs[0])"},
		{&Func{Params: []*Ident{ident("a", 1), ident("b", 4)}, Body: &Block{}}, "|a, b| -> {}"},
		{&Import{Name: tok(token.IDENT, "io", 0, 7)}, "import io"},
		{&If{
			Cond:        ident("ok", 0),
			Consequence: &Block{Stmts: []Stmt{&ExpressionStatement{X: intLit(1, "1", 0)}}},
			Alternative: &Block{Stmts: []Stmt{&ExpressionStatement{X: intLit(2, "2", 0)}}},
		}, "if ok { 1 } else { 2 }"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.node.String())
		})
	}
}
