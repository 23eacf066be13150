package main

import (
	"errors"
	"io"
	"os"

	"github.com/claylang/clay/parser"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func (a *app) parserOptions(filename string) []parser.Option {
	var opts []parser.Option
	if depth := a.v.GetInt("max-depth"); depth > 0 {
		opts = append(opts, parser.WithMaxDepth(depth))
	}
	if filename != "" {
		opts = append(opts, parser.WithFilename(filename))
	}
	if a.v.GetBool("recover") {
		opts = append(opts, parser.WithRecovery())
	}
	return opts
}

func (a *app) shouldRunRepl(cmd *cobra.Command, args []string) bool {
	if a.v.GetBool("no-repl") || a.v.GetBool("stdin") {
		return false
	}
	if f := cmd.Flags().Lookup("code"); f != nil && f.Changed {
		return false
	}
	if len(args) > 0 {
		return false
	}
	return a.terminal
}

// getCode determines the code to parse and the filename to report it under.
// There are three possibilities:
//  1. --code <code>
//  2. --stdin (read code from stdin)
//  3. path as args[0]
func (a *app) getCode(cmd *cobra.Command, args []string) (string, string, error) {
	var codeFlagSet bool
	if f := cmd.Flags().Lookup("code"); f != nil && f.Changed {
		codeFlagSet = true
	}
	stdinFlagSet := a.v.GetBool("stdin")
	pathSupplied := len(args) > 0
	// Error if multiple input sources are specified
	if pathSupplied && (codeFlagSet || stdinFlagSet) {
		return "", "", errors.New("multiple input sources specified")
	} else if codeFlagSet && stdinFlagSet {
		return "", "", errors.New("multiple input sources specified")
	}
	switch {
	case stdinFlagSet:
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return "", "", err
		}
		return string(data), "<stdin>", nil
	case pathSupplied:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", err
		}
		return string(data), args[0], nil
	case codeFlagSet:
		return a.v.GetString("code"), "", nil
	}
	return "", "", errors.New("no input: pass a file, --code or --stdin")
}

func (a *app) useColor() bool {
	if a.v.GetBool("no-color") || color.NoColor {
		return false
	}
	return a.terminal
}

func isTerminalIO() bool {
	stdin := os.Stdin.Fd()
	stdout := os.Stdout.Fd()
	inTerm := isatty.IsTerminal(stdin) || isatty.IsCygwinTerminal(stdin)
	outTerm := isatty.IsTerminal(stdout) || isatty.IsCygwinTerminal(stdout)
	return inTerm && outTerm
}
