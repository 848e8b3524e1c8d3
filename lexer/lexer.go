// Package lexer turns lifp source text into a flat sequence of tokens.
package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/shikaan/lifp/internal/arena"
	"github.com/shikaan/lifp/token"
	"github.com/shikaan/lifp/util"
)

// Error is a positioned lexing failure, classified by Code exactly as
// util.RuntimeError is, so callers can branch on error identity instead of
// substring-matching Error().
type Error struct {
	Code     util.ErrorCode
	Position token.Position
	Message  string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(code util.ErrorCode, pos token.Position, format string, args ...any) *Error {
	return &Error{Code: code, Position: pos, Message: fmt.Sprintf(format, args...)}
}

// Tokenize scans source into a slice of tokens, or returns a positioned
// Error on the first unexpected character, unterminated string, over-long
// symbol/number, or exhausted token budget. It is the unbounded convenience
// wrapper around TokenizeBounded.
func Tokenize(source string) ([]token.Token, error) {
	return TokenizeBounded(source, nil)
}

// TokenizeBounded behaves like Tokenize, but charges every emitted token
// against budget as it is produced, failing with a positioned Error the
// moment the budget is exhausted instead of scanning the rest of source
// first. budget may be nil for an unbounded scan, matching Tokenize.
func TokenizeBounded(source string, budget *arena.Arena) ([]token.Token, error) {
	runes := []rune(source)
	tokens := arena.NewSeq[token.Token](budget)

	currChar := token.Position{Line: 1, Column: 0}
	var buffer strings.Builder
	var bufferStart token.Position

	push := func(tok token.Token) error {
		if err := tokens.Append(tok); err != nil {
			return newError(util.ErrRuntime, tok.Position, "Token budget exceeded: %v", err)
		}
		return nil
	}

	flush := func() error {
		if buffer.Len() == 0 {
			return nil
		}
		tok, err := bufferToToken(buffer.String(), bufferStart)
		if err != nil {
			return err
		}
		if err := push(tok); err != nil {
			return err
		}
		buffer.Reset()
		return nil
	}

	for i := 0; i < len(runes); i++ {
		currChar.Column++
		c := runes[i]

		switch {
		case c == '(':
			if err := flush(); err != nil {
				return nil, err
			}
			if err := push(token.Token{Kind: token.LPAREN, Position: currChar}); err != nil {
				return nil, err
			}

		case c == ')':
			if err := flush(); err != nil {
				return nil, err
			}
			if err := push(token.Token{Kind: token.RPAREN, Position: currChar}); err != nil {
				return nil, err
			}

		case c == '"':
			start := currChar
			var str strings.Builder
			closed := false
			for i++; i < len(runes); i++ {
				currChar.Column++
				ch := runes[i]
				if ch == '\n' {
					currChar.Line++
					currChar.Column = 0
				}
				if ch == '"' {
					closed = true
					break
				}
				if ch == '\\' && i+1 < len(runes) {
					i++
					currChar.Column++
					switch runes[i] {
					case 'n':
						str.WriteRune('\n')
					case 't':
						str.WriteRune('\t')
					case '"':
						str.WriteRune('"')
					case '\\':
						str.WriteRune('\\')
					default:
						str.WriteRune(runes[i])
					}
					continue
				}
				str.WriteRune(ch)
			}
			if !closed {
				return nil, newError(util.ErrSyntaxUnexpectedToken, start, "Unterminated string literal")
			}
			if err := push(token.Token{Kind: token.STRING, Position: start, Text: str.String()}); err != nil {
				return nil, err
			}

		case unicode.IsSpace(c):
			if c == '\n' {
				currChar.Line++
				currChar.Column = 0
			}
			if err := flush(); err != nil {
				return nil, err
			}

		case unicode.IsPrint(c):
			if buffer.Len() == 0 {
				bufferStart = currChar
			}
			buffer.WriteRune(c)

		default:
			return nil, newError(util.ErrSyntaxUnexpectedToken, currChar, "Unexpected token '%c'", c)
		}
	}

	if err := flush(); err != nil {
		return nil, err
	}

	return tokens.Slice(), nil
}

// bufferToToken classifies an accumulated run of characters as a NUMBER or
// SYMBOL token, following the original tokenizer: a buffer parses as a
// number if strconv.ParseFloat consumes the whole string, otherwise it's a
// symbol, bounded to token.MaxSymbolLength.
func bufferToToken(buf string, pos token.Position) (token.Token, error) {
	if n, err := strconv.ParseFloat(buf, 64); err == nil {
		return token.Token{Kind: token.NUMBER, Position: pos, Number: n}, nil
	}

	if len(buf) > token.MaxSymbolLength {
		return token.Token{}, newError(util.ErrSyntaxUnexpectedToken, pos, "Token too long. Expected length <= %d, got %d", token.MaxSymbolLength, len(buf))
	}

	return token.Token{Kind: token.SYMBOL, Position: pos, Text: buf}, nil
}
