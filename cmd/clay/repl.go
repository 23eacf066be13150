package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/claylang/clay/ast"
	"github.com/claylang/clay/parser"
)

const replPrompt = ">>> "

// runRepl reads one line at a time, parses it and prints the statements it
// contains, or the errors found. It stops at end of input or when the user
// types "exit".
func (a *app) runRepl(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintf(out, "clay %s. Type \"exit\" to quit.\n", version)
	for {
		fmt.Fprint(out, replPrompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "exit":
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		opts := append(a.parserOptions(""), parser.WithRecovery())
		program, err := parser.Parse(ctx, line, opts...)
		if program != nil {
			for _, stmt := range program.Stmts {
				if _, bad := stmt.(*ast.BadStmt); bad {
					continue
				}
				fmt.Fprintln(out, stmt.String())
			}
		}
		if err != nil {
			a.log.Debug().Err(err).Msg("parse failed")
			a.printErrors(err)
		}
	}
}
