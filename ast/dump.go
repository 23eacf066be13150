package ast

import "fmt"

// Dump converts a node into nested maps and slices suitable for JSON
// encoding. Each map carries a "node" key naming the node kind and a "pos"
// key with its start position.
func Dump(node Node) map[string]any {
	if node == nil {
		return nil
	}
	m := map[string]any{
		"node": Kind(node),
		"pos":  node.Pos().String(),
	}
	switch n := node.(type) {
	case *Program:
		m["stmts"] = dumpStmts(n.Stmts)
	case *Block:
		m["stmts"] = dumpStmts(n.Stmts)
	case *ExpressionStatement:
		m["expr"] = Dump(n.X)
	case *Assign:
		m["names"] = Dump(n.Name)
		m["value"] = Dump(n.Value)
	case *Update:
		m["target"] = Dump(n.Name)
		m["op"] = n.Op
		m["value"] = Dump(n.Value)
	case *Return:
		m["value"] = Dump(n.Value)
	case *Import:
		m["name"] = n.Name.Literal
	case *Ident:
		m["name"] = n.Name
	case *NormalIdentifier:
		m["path"] = n.String()
	case *DefinitionIdentifier:
		names := make([]string, 0, len(n.Names))
		for _, id := range n.Names {
			names = append(names, id.Name)
		}
		m["names"] = names
	case *Int:
		m["value"] = n.Value
	case *Float:
		m["value"] = n.Value
	case *String:
		m["value"] = n.Value
	case *Bool:
		m["value"] = n.Value
	case *Prefix:
		m["op"] = n.Op
		m["operand"] = Dump(n.X)
	case *Infix:
		m["op"] = n.Op
		m["left"] = Dump(n.X)
		m["right"] = Dump(n.Y)
	case *If:
		m["cond"] = Dump(n.Cond)
		m["then"] = Dump(n.Consequence)
		if n.Alternative != nil {
			m["else"] = Dump(n.Alternative)
		}
	case *Call:
		m["func"] = Dump(n.Fun)
		m["args"] = dumpExprs(n.Args)
	case *Index:
		m["target"] = Dump(n.X)
		m["index"] = Dump(n.Index)
	case *Func:
		params := make([]string, 0, len(n.Params))
		for _, p := range n.Params {
			params = append(params, p.Name)
		}
		m["params"] = params
		m["body"] = Dump(n.Body)
	case *Match:
		m["subject"] = Dump(n.Subject)
		clauses := make([]map[string]any, 0, len(n.Clauses))
		for _, c := range n.Clauses {
			clauses = append(clauses, Dump(c))
		}
		m["clauses"] = clauses
		if n.Default != nil {
			m["default"] = Dump(n.Default)
		}
	case *MatchClause:
		m["predicates"] = dumpExprs(n.Predicates)
		m["body"] = Dump(n.Body)
	case *Array:
		m["items"] = dumpExprs(n.Items)
	case *Map:
		items := make([]map[string]any, 0, len(n.Items))
		for _, item := range n.Items {
			items = append(items, map[string]any{
				"key":   Dump(item.Key),
				"value": Dump(item.Value),
			})
		}
		m["items"] = items
	}
	return m
}

func dumpStmts(stmts []Stmt) []map[string]any {
	out := make([]map[string]any, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, Dump(s))
	}
	return out
}

func dumpExprs(exprs []Expr) []map[string]any {
	out := make([]map[string]any, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, Dump(e))
	}
	return out
}

// Kind returns the name of the node type, such as "Infix" or "Match".
func Kind(node Node) string {
	s := fmt.Sprintf("%T", node)
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '.' {
			return s[i+1:]
		}
	}
	return s
}
