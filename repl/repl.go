// Package repl implements lifp's interactive shell: read a line, tokenize,
// parse, evaluate against a long-lived global environment, print the
// result. It also exposes SplitStatements, the paren-depth statement
// splitter the file runner uses to feed a whole source file through the
// same one-statement-at-a-time pipeline.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/shikaan/lifp/ast"
	"github.com/shikaan/lifp/config"
	"github.com/shikaan/lifp/format"
	"github.com/shikaan/lifp/internal/arena"
	"github.com/shikaan/lifp/lexer"
	"github.com/shikaan/lifp/parser"
	"github.com/shikaan/lifp/token"
	"github.com/shikaan/lifp/util"
	"github.com/shikaan/lifp/vm"
)

const (
	commandClear = "clear"
	commandHelp  = "help"
	commandMore  = "?"
)

const helpText = `lifp is a LISP dialect. Its syntax is made of expressions enclosed in parentheses.
Here's your first program:

    (io:stdout! (+ 1 2)) ; prints 3

Type 'clear' to clear the screen, Ctrl+D to exit.
`

// REPL owns one interactive session: a VM, its own global environment,
// and the line editor reading from the terminal.
type REPL struct {
	vm    *vm.VM
	line  *readline.Instance
	arena *arena.Arena
}

// New creates a REPL backed by machine, reading from the process's
// terminal with history and multi-line editing enabled. Each line typed at
// the prompt is tokenized and parsed against the same kind of per-statement
// token/node budget the file runner uses, so an interactive line can't
// exhaust memory any more than a file statement can.
func New(machine *vm.VM) (*REPL, error) {
	line, err := readline.New("> ")
	if err != nil {
		return nil, err
	}
	return &REPL{vm: machine, line: line, arena: arena.New(config.Int(config.FileBufferSize))}, nil
}

// Close releases the line editor's terminal state.
func (r *REPL) Close() error {
	return r.line.Close()
}

// Run reads statements until EOF (Ctrl+D) or an unrecoverable I/O error,
// printing each result or diagnostic as it goes.
func (r *REPL) Run() error {
	pterm.Info.Println("lifp - type 'help' for help, Ctrl+D to exit")

	for {
		input, err := r.line.Readline()
		if err == io.EOF {
			return nil
		}
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		switch input {
		case commandClear:
			fmt.Print("\x1b[1;1H\x1b[2J")
			continue
		case commandHelp, commandMore:
			fmt.Print(helpText)
			continue
		}

		r.evalLine(input)
	}
}

func (r *REPL) evalLine(input string) {
	r.arena.Reset()

	tokens, err := lexer.TokenizeBounded(input, r.arena)
	if err != nil {
		r.printError(err, input)
		return
	}

	r.line.SaveHistory(input)

	node, err := parser.ParseStatementBounded(tokens, r.arena)
	if err != nil {
		r.printError(err, input)
		return
	}

	result, err := r.vm.Evaluate(node, r.vm.Global())
	if err != nil {
		r.printError(err, input)
		return
	}

	fmt.Printf("~> %s\n", format.Value(result))
}

func (r *REPL) printError(err error, source string) {
	pos := errorPosition(err)
	pterm.Error.Println(format.ErrorMessage(err.Error(), pos, "repl", source))
}

// errorPosition extracts a token.Position from the three error shapes the
// lex/parse/eval pipeline can produce, defaulting to the origin when an
// error carries none.
func errorPosition(err error) token.Position {
	switch e := err.(type) {
	case *lexer.Error:
		return e.Position
	case *parser.Error:
		return e.Position
	case *util.RuntimeError:
		return token.Position{Line: e.Position.Line, Column: e.Position.Column}
	default:
		return token.Position{Line: 1, Column: 1}
	}
}

// SplitStatements splits source into top-level statements: newlines at
// paren-depth zero terminate a statement, mirroring the original file
// runner's readStatement.
func SplitStatements(source string) []string {
	var statements []string
	var current strings.Builder
	depth := 0

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			statements = append(statements, s)
		}
		current.Reset()
	}

	for _, r := range source {
		if r == '\n' && depth == 0 {
			flush()
			continue
		}
		current.WriteRune(r)
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		}
	}
	flush()

	return statements
}

// AST re-exported for callers that want to type-assert the statement's
// parsed form without importing the ast package directly.
type AST = ast.Node
