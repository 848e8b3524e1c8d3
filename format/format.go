// Package format renders runtime values and diagnostics as the text a lifp
// user sees: the REPL's echoed results, io:stdout!/io:stderr!'s arguments,
// and caret-aligned error messages pointing at source positions.
package format

import (
	"strconv"
	"strings"

	"github.com/shikaan/lifp/ast"
	"github.com/shikaan/lifp/token"
	"github.com/shikaan/lifp/value"
)

// Value renders v the way the language's own formatter does: numbers via
// %g, strings double-quoted, lists space-separated inside parens, closures
// as "(fn (<params>) <form>)", builtins/specials as "#<builtin>"/
// "#<special>", nil as "nil", booleans as "true"/"false".
func Value(v *value.Value) string {
	var b strings.Builder
	writeValue(&b, v)
	return b.String()
}

func writeValue(b *strings.Builder, v *value.Value) {
	switch v.Kind {
	case value.BOOLEAN:
		if v.Boolean {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case value.NIL:
		b.WriteString("nil")
	case value.NUMBER:
		b.WriteString(formatNumber(v.Number))
	case value.STRING:
		b.WriteByte('"')
		b.WriteString(v.Str)
		b.WriteByte('"')
	case value.BUILTIN:
		b.WriteString("#<builtin>")
	case value.SPECIAL:
		b.WriteString("#<special>")
	case value.LIST:
		b.WriteByte('(')
		for i, item := range v.List {
			if i > 0 {
				b.WriteByte(' ')
			}
			writeValue(b, item)
		}
		b.WriteByte(')')
	case value.CLOSURE:
		b.WriteString("(fn (")
		b.WriteString(strings.Join(v.Closure.Parameters, " "))
		b.WriteString(") ")
		writeNode(b, v.Closure.Form)
		b.WriteByte(')')
	}
}

// Node renders an AST node using the same textual conventions as Value;
// used to print a closure's unevaluated body.
func Node(n *ast.Node) string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

func writeNode(b *strings.Builder, n *ast.Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case ast.BOOLEAN:
		if n.Boolean {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case ast.NIL:
		b.WriteString("nil")
	case ast.NUMBER:
		b.WriteString(formatNumber(n.Number))
	case ast.SYMBOL:
		b.WriteString(n.Symbol)
	case ast.STRING:
		b.WriteByte('"')
		b.WriteString(n.Str)
		b.WriteByte('"')
	case ast.LIST:
		b.WriteByte('(')
		for i, c := range n.Children {
			if i > 0 {
				b.WriteByte(' ')
			}
			writeNode(b, c)
		}
		b.WriteByte(')')
	}
}

// formatNumber renders n the way C's "%g" would: at most six significant
// digits with trailing zeros dropped, switching to exponent notation for
// very large or very small magnitudes.
func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'g', 6, 64)
}

// ErrorMessage renders a diagnostic in the canonical form:
//
//	Error: <msg>
//
//	<line> | <source line>
//	        ^
//	  at <filename>:<line>:<col>
//
// The caret aligns to pos.Column, accounting for the "<line> | " prefix
// width.
func ErrorMessage(message string, pos token.Position, filename, source string) string {
	var b strings.Builder
	b.WriteString("Error: ")
	b.WriteString(message)
	b.WriteString("\n\n")

	prefix, line := currentLine(pos, source)
	b.WriteString(prefix)
	b.WriteString(line)
	b.WriteByte('\n')

	indent := len(prefix) + pos.Column - 1
	if indent < 0 {
		indent = 0
	}
	b.WriteString(strings.Repeat(" ", indent))
	b.WriteString("^\n")

	b.WriteString("  at ")
	b.WriteString(filename)
	b.WriteString(":")
	b.WriteString(strconv.Itoa(pos.Line))
	b.WriteString(":")
	b.WriteString(strconv.Itoa(pos.Column))
	return b.String()
}

// currentLine returns the "<n> | " prefix and the source line pos.Line
// refers to (1-indexed), or the empty string if out of range.
func currentLine(pos token.Position, source string) (prefix, line string) {
	lines := strings.Split(source, "\n")
	if pos.Line < 1 || pos.Line > len(lines) {
		return "", ""
	}
	prefix = strconv.Itoa(pos.Line) + " | "
	return prefix, lines[pos.Line-1]
}
