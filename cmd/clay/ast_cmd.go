package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/claylang/clay/ast"
	"github.com/claylang/clay/parser"
	"github.com/spf13/cobra"
)

func newAstCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ast [file]",
		Short: "Display the syntax tree of Clay source code",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAst(cmd, args)
		},
	}
	cmd.Flags().StringP("output", "o", "text", "output format (text, json)")
	_ = cmd.RegisterFlagCompletionFunc("output", cobra.FixedCompletions(outputFormats, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

func (a *app) runAst(cmd *cobra.Command, args []string) error {
	code, filename, err := a.getCode(cmd, args)
	if err != nil {
		return err
	}
	program, err := parser.Parse(cmd.Context(), code, a.parserOptions(filename)...)
	if err != nil {
		return err
	}
	switch strings.ToLower(a.v.GetString("output")) {
	case "", "text":
		printTree(a.stdout, program, a.useColor())
		return nil
	case "json":
		return a.writeJSON(ast.Dump(program))
	default:
		return fmt.Errorf("unknown output format: %s", a.v.GetString("output"))
	}
}

// printTree draws the tree rooted at node, one node per line.
func printTree(w io.Writer, node ast.Node, useColor bool) {
	paint := func(f func(...any) string, s string) string {
		if useColor {
			return f(s)
		}
		return s
	}
	var visit func(node ast.Node, indent string, isLast, isRoot bool)
	visit = func(node ast.Node, indent string, isLast, isRoot bool) {
		connector, childIndent := "├─ ", indent+"│  "
		if isLast {
			connector, childIndent = "└─ ", indent+"   "
		}
		if isRoot {
			connector, childIndent = "", ""
		}
		line := paint(faint, indent+connector) + paint(cyan, ast.Kind(node))
		if label := nodeLabel(node); label != "" {
			line += " " + label
		}
		fmt.Fprintln(w, line)
		children := ast.Children(node)
		for i, child := range children {
			visit(child, childIndent, i == len(children)-1, false)
		}
	}
	visit(node, "", true, true)
}

// nodeLabel is the detail printed after a node's kind.
func nodeLabel(node ast.Node) string {
	switch n := node.(type) {
	case *ast.Ident:
		return n.Name
	case *ast.Int, *ast.Float, *ast.String, *ast.Bool:
		return n.String()
	case *ast.Prefix:
		return n.Op
	case *ast.Infix:
		return n.Op
	case *ast.Update:
		return n.Op
	case *ast.Import:
		return n.Name.Literal
	case *ast.Array:
		return fmt.Sprintf("(%d items)", len(n.Items))
	case *ast.Map:
		return fmt.Sprintf("(%d pairs)", len(n.Items))
	case *ast.Match:
		if n.Default != nil {
			return fmt.Sprintf("(%d clauses, default)", len(n.Clauses))
		}
		return fmt.Sprintf("(%d clauses)", len(n.Clauses))
	}
	return ""
}
