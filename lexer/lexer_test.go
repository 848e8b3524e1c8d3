package lexer

import (
	"strings"
	"testing"

	"github.com/shikaan/lifp/token"
)

func TestTokenizeAtoms(t *testing.T) {
	tokens, err := Tokenize("(+ 1 2.5 foo \"bar\")")
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}

	wantKinds := []token.Kind{
		token.LPAREN, token.SYMBOL, token.NUMBER, token.NUMBER, token.SYMBOL, token.STRING, token.RPAREN,
	}
	if len(tokens) != len(wantKinds) {
		t.Fatalf("got %d tokens, want %d: %+v", len(tokens), len(wantKinds), tokens)
	}
	for i, want := range wantKinds {
		if tokens[i].Kind != want {
			t.Errorf("token %d: kind = %v, want %v", i, tokens[i].Kind, want)
		}
	}
	if tokens[5].Text != "bar" {
		t.Errorf("string token text = %q, want %q", tokens[5].Text, "bar")
	}
}

func TestTokenizeStringEscapes(t *testing.T) {
	tokens, err := Tokenize(`"a\nb\t\"c\\d"`)
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Kind != token.STRING {
		t.Fatalf("unexpected tokens: %+v", tokens)
	}
	want := "a\nb\t\"c\\d"
	if tokens[0].Text != want {
		t.Errorf("decoded string = %q, want %q", tokens[0].Text, want)
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	_, err := Tokenize(`"unterminated`)
	if err == nil {
		t.Fatal("expected an error for an unterminated string literal")
	}
	if !strings.Contains(err.Error(), "Unterminated") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestTokenizeSymbolTooLong(t *testing.T) {
	long := strings.Repeat("a", token.MaxSymbolLength+1)
	_, err := Tokenize(long)
	if err == nil {
		t.Fatal("expected an error for an over-long symbol")
	}
}

func TestTokenizePositions(t *testing.T) {
	tokens, err := Tokenize("(foo\n  bar)")
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	// bar is on line 2.
	var bar token.Token
	for _, tok := range tokens {
		if tok.Kind == token.SYMBOL && tok.Text == "bar" {
			bar = tok
		}
	}
	if bar.Position.Line != 2 {
		t.Errorf("bar.Position.Line = %d, want 2", bar.Position.Line)
	}
}

func TestTokenizeUnexpectedCharacter(t *testing.T) {
	_, err := Tokenize("(foo \x01)")
	if err == nil {
		t.Fatal("expected an error for a non-printable, non-whitespace character")
	}
}
