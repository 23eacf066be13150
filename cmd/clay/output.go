package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/claylang/clay/ast"
	"github.com/claylang/clay/errors"
	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
)

var outputFormats = []string{"json", "text"}

var (
	red   = color.New(color.FgRed).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
	faint = color.New(color.Faint).SprintFunc()
)

func (a *app) writeProgram(program *ast.Program, format string) error {
	switch strings.ToLower(format) {
	case "", "text":
		for _, stmt := range program.Stmts {
			fmt.Fprintln(a.stdout, stmt.String())
		}
		return nil
	case "json":
		return a.writeJSON(ast.Dump(program))
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

func (a *app) writeJSON(v any) error {
	var (
		data []byte
		err  error
	)
	if a.useColor() {
		data, err = prettyjson.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, string(data))
	return nil
}

// printErrors renders err on stderr. Parse errors are shown with their
// source line; every error collected in recovery mode is listed.
func (a *app) printErrors(err error) {
	errs := errors.Collect(err)
	formatter := errors.NewFormatter(a.useColor())
	out := formatter.FormatMultiple(errs)
	if len(errs) == 1 && errs[0].Code == "" && errs[0].Line == 0 {
		out = errs[0].Message + "\n"
		if a.useColor() {
			out = red(errs[0].Message) + "\n"
		}
	}
	fmt.Fprint(a.stderr, out)
}
