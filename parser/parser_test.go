package parser

import (
	"testing"

	"github.com/shikaan/lifp/ast"
	"github.com/shikaan/lifp/lexer"
)

func parse(t *testing.T, source string) *ast.Node {
	t.Helper()
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		t.Fatalf("Tokenize(%q) returned error: %v", source, err)
	}
	node, err := ParseStatement(tokens)
	if err != nil {
		t.Fatalf("ParseStatement(%q) returned error: %v", source, err)
	}
	return node
}

func TestParseList(t *testing.T) {
	node := parse(t, "(+ 1 2)")
	if node.Kind != ast.LIST {
		t.Fatalf("Kind = %v, want LIST", node.Kind)
	}
	if len(node.Children) != 3 {
		t.Fatalf("len(Children) = %d, want 3", len(node.Children))
	}
	if node.Children[0].Kind != ast.SYMBOL || node.Children[0].Symbol != "+" {
		t.Errorf("Children[0] = %+v, want symbol '+'", node.Children[0])
	}
	if node.Children[1].Number != 1 || node.Children[2].Number != 2 {
		t.Errorf("unexpected children: %+v", node.Children)
	}
}

func TestParseLiteralKeywords(t *testing.T) {
	cases := map[string]ast.Kind{
		"true":  ast.BOOLEAN,
		"false": ast.BOOLEAN,
		"nil":   ast.NIL,
	}
	for src, want := range cases {
		node := parse(t, src)
		if node.Kind != want {
			t.Errorf("parse(%q).Kind = %v, want %v", src, node.Kind, want)
		}
	}
	if !parse(t, "true").Boolean {
		t.Error("parse(\"true\").Boolean = false, want true")
	}
	if parse(t, "false").Boolean {
		t.Error("parse(\"false\").Boolean = true, want false")
	}
}

func TestParseNestedLists(t *testing.T) {
	node := parse(t, "(fn (a b) (+ a b))")
	if node.Kind != ast.LIST || len(node.Children) != 3 {
		t.Fatalf("unexpected shape: %+v", node)
	}
	params := node.Children[1]
	if params.Kind != ast.LIST || len(params.Children) != 2 {
		t.Fatalf("params shape: %+v", params)
	}
}

func TestParseUnbalancedParens(t *testing.T) {
	tokens, err := lexer.Tokenize("(+ 1 2")
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	if _, err := ParseStatement(tokens); err == nil {
		t.Fatal("expected an unbalanced-parentheses error")
	}
}

func TestParseLeadingCloseParen(t *testing.T) {
	tokens, err := lexer.Tokenize(")")
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	if _, err := ParseStatement(tokens); err == nil {
		t.Fatal("expected an unbalanced-parentheses error")
	}
}

func TestParseTrailingTokens(t *testing.T) {
	tokens, err := lexer.Tokenize("1 2")
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	if _, err := ParseStatement(tokens); err == nil {
		t.Fatal("expected an unexpected-token error for trailing input")
	}
}
