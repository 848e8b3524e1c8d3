// Command lifp is the command-line entry point for the interpreter: it
// runs a source file, or drops into an interactive REPL when given none.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/shikaan/lifp/config"
	"github.com/shikaan/lifp/format"
	"github.com/shikaan/lifp/internal/arena"
	"github.com/shikaan/lifp/lexer"
	"github.com/shikaan/lifp/parser"
	"github.com/shikaan/lifp/repl"
	"github.com/shikaan/lifp/token"
	"github.com/shikaan/lifp/util"
	"github.com/shikaan/lifp/vm"
)

var logger zerolog.Logger

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lifp [file]",
	Short: "lifp is a small LISP dialect interpreter",
	Long: `lifp runs programs written in a small LISP dialect: parenthesized
expressions, closures, and a handful of built-in special forms.

With no arguments, lifp starts an interactive REPL.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runREPL()
		}
		return runFile(args[0])
	},
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive REPL",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL()
	},
}

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a lifp source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFile(args[0])
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.Version = config.ProductVersion
	rootCmd.PersistentFlags().String("log-level", config.Str(config.LogLevel), "logging verbosity: debug, info, or error")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level, _ := cmd.Flags().GetString("log-level")
		logger = util.NewLogger(os.Stderr, level)
	}
}

func newVM() *vm.VM {
	return vm.New(vm.Options{
		EnvironmentSize:  config.Int(config.EnvironmentSize),
		MaxCallStackSize: config.Int(config.MaxCallStackSize),
	})
}

func runREPL() error {
	logger.Info().Msg("starting repl session")
	machine := newVM()
	session, err := repl.New(machine)
	if err != nil {
		return fmt.Errorf("unable to start repl: %w", err)
	}
	defer session.Close()
	err = session.Run()
	logger.Debug().Msg("repl session ended")
	return err
}

func runFile(filename string) error {
	logger.Info().Str("file", filename).Msg("running file")

	source, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("cannot open '%s'", filename)
	}
	if len(strings.TrimSpace(string(source))) == 0 {
		return fmt.Errorf("provided file is empty")
	}

	machine := newVM()
	global := machine.Global()

	statements := repl.SplitStatements(string(source))
	logger.Debug().Int("statements", len(statements)).Msg("split source into statements")

	// One arena for the whole file, reset before each statement: tokens and AST
	// nodes are both charged against it as the lexer/parser build them, so a
	// runaway statement fails mid-scan instead of after building its whole
	// token slice or parse tree.
	statementArena := arena.New(config.Int(config.FileBufferSize))

	for _, statement := range statements {
		statementArena.Reset()

		tokens, err := lexer.TokenizeBounded(statement, statementArena)
		if err != nil {
			printError(err, statement, filename)
			return fmt.Errorf("lifp: failed to run '%s'", filename)
		}

		node, err := parser.ParseStatementBounded(tokens, statementArena)
		if err != nil {
			printError(err, statement, filename)
			return fmt.Errorf("lifp: failed to run '%s'", filename)
		}

		if _, err := machine.Evaluate(node, global); err != nil {
			printError(err, statement, filename)
			return fmt.Errorf("lifp: failed to run '%s'", filename)
		}
	}

	logger.Info().Str("file", filename).Msg("finished running file")
	return nil
}

func printError(err error, source, filename string) {
	pos := token.Position{Line: 1, Column: 1}
	switch e := err.(type) {
	case *lexer.Error:
		pos = e.Position
	case *parser.Error:
		pos = e.Position
	case *util.RuntimeError:
		pos = token.Position{Line: e.Position.Line, Column: e.Position.Column}
	}
	fmt.Fprintln(os.Stderr, format.ErrorMessage(err.Error(), pos, filename, source))
}
