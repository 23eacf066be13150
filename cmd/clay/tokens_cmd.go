package main

import (
	"fmt"
	"strings"

	"github.com/claylang/clay/internal/lexer"
	"github.com/claylang/clay/internal/token"
	"github.com/spf13/cobra"
)

func newTokensCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the tokens of Clay source code",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTokens(cmd, args)
		},
	}
	cmd.Flags().StringP("output", "o", "text", "output format (text, json)")
	return cmd
}

// tokenJSON is the JSON form of one token.
type tokenJSON struct {
	Type    string `json:"type"`
	Literal string `json:"literal"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

func (a *app) runTokens(cmd *cobra.Command, args []string) error {
	code, filename, err := a.getCode(cmd, args)
	if err != nil {
		return err
	}
	var tokens []token.Token
	for tok, err := range lexer.New(code, lexer.WithFile(filename)).Tokens() {
		if err != nil {
			return err
		}
		tokens = append(tokens, tok)
	}
	a.log.Debug().Int("count", len(tokens)).Msg("tokenized")

	switch strings.ToLower(a.v.GetString("output")) {
	case "", "text":
		for _, tok := range tokens {
			fmt.Fprintf(a.stdout, "%-6s %-8s %q\n", tok.StartPosition.String(), tok.Type, tok.Literal)
		}
		return nil
	case "json":
		out := make([]tokenJSON, 0, len(tokens))
		for _, tok := range tokens {
			out = append(out, tokenJSON{
				Type:    string(tok.Type),
				Literal: tok.Literal,
				Start:   tok.StartPosition.String(),
				End:     tok.EndPosition.String(),
			})
		}
		return a.writeJSON(out)
	default:
		return fmt.Errorf("unknown output format: %s", a.v.GetString("output"))
	}
}
