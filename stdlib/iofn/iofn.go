// Package iofn implements lifp's io:* intrinsics: basic console IO.
//
//	(io:stdout! "hello")                    ; prints to stdout
//	(io:stderr! "error")                    ; prints to stderr
//	(io:printf! "Hello, {}!" (list:from "world"))
//	(io:readline! "Enter your name: ")      ; reads a line from stdin
//	(io:clear!)                             ; clears the terminal
package iofn

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shikaan/lifp/format"
	"github.com/shikaan/lifp/stdlib/argcheck"
	"github.com/shikaan/lifp/token"
	"github.com/shikaan/lifp/value"
)

// Streams bundles the input/output handles the io:* intrinsics write to
// and read from, so each VM can be wired to its own handles (tests use
// in-memory buffers; the REPL and the file runner both use the process's
// standard streams).
type Streams struct {
	Out io.Writer
	Err io.Writer
	In  *bufio.Reader
}

// Register installs the io:* intrinsics into builtins, bound to streams.
func Register(builtins *value.Map, streams *Streams) {
	builtins.Set("io:stdout!", &value.Value{Kind: value.BUILTIN, Builtin: stdoutFn(streams)})
	builtins.Set("io:stderr!", &value.Value{Kind: value.BUILTIN, Builtin: stderrFn(streams)})
	builtins.Set("io:printf!", &value.Value{Kind: value.BUILTIN, Builtin: printfFn(streams)})
	builtins.Set("io:readline!", &value.Value{Kind: value.BUILTIN, Builtin: readlineFn(streams)})
	builtins.Set("io:clear!", &value.Value{Kind: value.BUILTIN, Builtin: clearFn(streams)})
}

// streamPrint writes v to w: strings are printed raw (no surrounding
// quotes), everything else goes through the canonical formatter. Either
// way the line ends with a newline.
func streamPrint(w io.Writer, v *value.Value) {
	if v.Kind == value.STRING {
		fmt.Fprintf(w, "%s\n", v.Str)
		return
	}
	fmt.Fprintf(w, "%s\n", format.Value(v))
}

// stdoutFn returns the io:stdout! builtin: prints a single value to stdout.
func stdoutFn(streams *Streams) value.Builtin {
	return func(args []*value.Value, pos token.Position) (*value.Value, error) {
		if err := argcheck.Exactly("io:stdout!", args, 1, pos); err != nil {
			return nil, err
		}
		streamPrint(streams.Out, args[0])
		return value.Nil(pos), nil
	}
}

// stderrFn returns the io:stderr! builtin: prints a single value to stderr.
func stderrFn(streams *Streams) value.Builtin {
	return func(args []*value.Value, pos token.Position) (*value.Value, error) {
		if err := argcheck.Exactly("io:stderr!", args, 1, pos); err != nil {
			return nil, err
		}
		streamPrint(streams.Err, args[0])
		return value.Nil(pos), nil
	}
}

// printfFn returns the io:printf! builtin: prints format, substituting
// each "{}" placeholder left-to-right with the corresponding element of
// values. Strings substitute raw; everything else goes through the
// formatter. There must be at least as many values as placeholders.
func printfFn(streams *Streams) value.Builtin {
	return func(args []*value.Value, pos token.Position) (*value.Value, error) {
		if err := argcheck.AtLeast("io:printf!", args, 2, pos); err != nil {
			return nil, err
		}
		format_, err := argcheck.Str("io:printf!", args, 0)
		if err != nil {
			return nil, err
		}
		inputs, err := argcheck.List("io:printf!", args, 1)
		if err != nil {
			return nil, err
		}

		placeholders := strings.Count(format_, "{}")
		if placeholders > len(inputs) {
			return nil, argcheck.RuntimeError(args[0].Position,
				"Cannot have more placeholders than values. Got %d placeholders and %d values.",
				placeholders, len(inputs))
		}

		var b strings.Builder
		index := 0
		remaining := format_
		for {
			i := strings.Index(remaining, "{}")
			if i < 0 {
				b.WriteString(remaining)
				break
			}
			b.WriteString(remaining[:i])
			value_ := inputs[index]
			if value_.Kind == value.STRING {
				b.WriteString(value_.Str)
			} else {
				b.WriteString(format.Value(value_))
			}
			index++
			remaining = remaining[i+2:]
		}

		fmt.Fprint(streams.Out, b.String())
		return value.Nil(pos), nil
	}
}

// readlineFn returns the io:readline! builtin: prints prompt and reads a
// line from stdin, stripping the trailing newline. Returns an empty
// string on EOF.
func readlineFn(streams *Streams) value.Builtin {
	return func(args []*value.Value, pos token.Position) (*value.Value, error) {
		if err := argcheck.AtLeast("io:readline!", args, 1, pos); err != nil {
			return nil, err
		}
		prompt, err := argcheck.Str("io:readline!", args, 0)
		if err != nil {
			return nil, err
		}

		fmt.Fprint(streams.Out, prompt)
		line, err := streams.In.ReadString('\n')
		if err != nil && line == "" {
			return value.Str("", pos), nil
		}
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		return value.Str(line, pos), nil
	}
}

// clearFn returns the io:clear! builtin: clears the terminal screen.
func clearFn(streams *Streams) value.Builtin {
	return func(args []*value.Value, pos token.Position) (*value.Value, error) {
		if err := argcheck.Exactly("io:clear!", args, 0, pos); err != nil {
			return nil, err
		}
		fmt.Fprint(streams.Out, "\x1b[1;1H\x1b[2J\n")
		return value.Nil(pos), nil
	}
}
