package ast

import "reflect"

// Equal reports whether a and b are structurally equal: same node kinds,
// same names, operators and literal values, with equal children in the same
// order. Positions and tokens are not compared, so a single-expression
// function body equals the explicit "{ return ... }" form. A nil interface
// and a typed nil pointer are both treated as absent.
func Equal(a, b Node) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	switch x := a.(type) {
	case *Program:
		y, ok := b.(*Program)
		return ok && equalStmts(x.Stmts, y.Stmts)
	case *Block:
		y, ok := b.(*Block)
		return ok && equalBlocks(x, y)
	case *ExpressionStatement:
		y, ok := b.(*ExpressionStatement)
		return ok && Equal(x.X, y.X)
	case *Assign:
		y, ok := b.(*Assign)
		return ok && Equal(x.Name, y.Name) && Equal(x.Value, y.Value)
	case *Update:
		y, ok := b.(*Update)
		return ok && x.Op == y.Op && Equal(x.Name, y.Name) && Equal(x.Value, y.Value)
	case *Return:
		y, ok := b.(*Return)
		return ok && Equal(x.Value, y.Value)
	case *Import:
		y, ok := b.(*Import)
		return ok && x.Name.Literal == y.Name.Literal
	case *BadStmt:
		_, ok := b.(*BadStmt)
		return ok
	case *Ident:
		y, ok := b.(*Ident)
		return ok && x.Name == y.Name
	case *NormalIdentifier:
		y, ok := b.(*NormalIdentifier)
		return ok && equalIdents(x.Path, y.Path)
	case *DefinitionIdentifier:
		y, ok := b.(*DefinitionIdentifier)
		return ok && equalIdents(x.Names, y.Names)
	case *Int:
		y, ok := b.(*Int)
		return ok && x.Value == y.Value
	case *Float:
		y, ok := b.(*Float)
		return ok && x.Value == y.Value
	case *String:
		y, ok := b.(*String)
		return ok && x.Value == y.Value
	case *Bool:
		y, ok := b.(*Bool)
		return ok && x.Value == y.Value
	case *Underscore:
		_, ok := b.(*Underscore)
		return ok
	case *Prefix:
		y, ok := b.(*Prefix)
		return ok && x.Op == y.Op && Equal(x.X, y.X)
	case *Infix:
		y, ok := b.(*Infix)
		return ok && x.Op == y.Op && Equal(x.X, y.X) && Equal(x.Y, y.Y)
	case *If:
		y, ok := b.(*If)
		return ok && Equal(x.Cond, y.Cond) &&
			equalBlocks(x.Consequence, y.Consequence) &&
			equalBlocks(x.Alternative, y.Alternative)
	case *Call:
		y, ok := b.(*Call)
		return ok && Equal(x.Fun, y.Fun) && equalExprs(x.Args, y.Args)
	case *Index:
		y, ok := b.(*Index)
		return ok && Equal(x.X, y.X) && Equal(x.Index, y.Index)
	case *Func:
		y, ok := b.(*Func)
		return ok && equalIdents(x.Params, y.Params) && equalBlocks(x.Body, y.Body)
	case *MatchClause:
		y, ok := b.(*MatchClause)
		return ok && equalExprs(x.Predicates, y.Predicates) && equalBlocks(x.Body, y.Body)
	case *Match:
		y, ok := b.(*Match)
		if !ok || len(x.Clauses) != len(y.Clauses) {
			return false
		}
		for i := range x.Clauses {
			if !Equal(x.Clauses[i], y.Clauses[i]) {
				return false
			}
		}
		return Equal(x.Subject, y.Subject) && equalBlocks(x.Default, y.Default)
	case *Array:
		y, ok := b.(*Array)
		return ok && equalExprs(x.Items, y.Items)
	case *Map:
		y, ok := b.(*Map)
		if !ok || len(x.Items) != len(y.Items) {
			return false
		}
		for i := range x.Items {
			if !Equal(x.Items[i].Key, y.Items[i].Key) || !Equal(x.Items[i].Value, y.Items[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}

// equalBlocks compares two possibly nil blocks.
func equalBlocks(a, b *Block) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return equalStmts(a.Stmts, b.Stmts)
}

func equalStmts(a, b []Stmt) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalExprs(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalIdents(a, b []*Ident) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// isNil reports whether n is nil or wraps a nil pointer, as an unset
// field such as Assign.Name does once stored in a Node.
func isNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
