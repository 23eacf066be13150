package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/claylang/clay/parser"
	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the state shared by every command: configuration, logging and
// the streams commands read from and write to.
type app struct {
	v        *viper.Viper
	log      zerolog.Logger
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	terminal bool
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		v:        viper.New(),
		log:      zerolog.Nop(),
		stdin:    stdin,
		stdout:   stdout,
		stderr:   stderr,
		terminal: isTerminalIO(),
	}
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clay [file]",
		Short: "Parse Clay source code",
		Long: `Parse Clay source code and print the resulting syntax tree.

The code is read from a file argument, the --code flag, or stdin. Without any
input and attached to a terminal, an interactive prompt is started.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRoot(cmd, args)
		},
	}
	cmd.SetIn(a.stdin)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	pf := cmd.PersistentFlags()
	pf.String("config", "", "config file (default is $HOME/.clay.yaml)")
	pf.StringP("code", "c", "", "code to parse")
	pf.Bool("stdin", false, "read code from stdin")
	pf.Bool("no-color", false, "disable colored output")
	pf.String("log-level", "warn", "log level (debug, info, warn, error)")
	pf.Int("max-depth", parser.DefaultMaxDepth, "maximum nesting depth")
	pf.Bool("recover", false, "report every malformed statement instead of stopping at the first")

	f := cmd.Flags()
	f.StringP("output", "o", "text", "output format (text, json)")
	f.Bool("no-repl", false, "disable the interactive prompt")

	_ = cmd.RegisterFlagCompletionFunc("output", cobra.FixedCompletions(outputFormats, cobra.ShellCompDirectiveNoFileComp))

	cmd.AddCommand(newTokensCmd(a), newAstCmd(a), newVersionCmd(a))
	return cmd
}

// setup loads configuration and sets up logging before any command runs.
// Flags take precedence over CLAY_* environment variables, which take
// precedence over the config file.
func (a *app) setup(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	a.v.SetEnvPrefix("clay")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if cfgFile := a.v.GetString("config"); cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return err
		}
		a.v.AddConfigPath(home)
		a.v.SetConfigName(".clay")
		a.v.SetConfigType("yaml")
	}
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	logger, err := newLogger(a.stderr, a.v.GetString("log-level"), a.useColor())
	if err != nil {
		return err
	}
	a.log = logger
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debug().Str("file", used).Msg("loaded config")
	}
	return nil
}

func (a *app) runRoot(cmd *cobra.Command, args []string) error {
	if a.shouldRunRepl(cmd, args) {
		return a.runRepl(cmd.Context(), a.stdin, a.stdout)
	}
	code, filename, err := a.getCode(cmd, args)
	if err != nil {
		return err
	}
	program, err := parser.Parse(cmd.Context(), code, a.parserOptions(filename)...)
	if err != nil {
		return err
	}
	a.log.Debug().Str("file", filename).Int("statements", len(program.Stmts)).Msg("parsed")
	return a.writeProgram(program, a.v.GetString("output"))
}
