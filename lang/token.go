package lang

import (
	"log/slog"
	"strings"
)

// Kind classifies a [Token].
type Kind uint8

// Token kinds.
const (
	KindNumber Kind = iota
	KindOperator
	KindVariable
	KindFunction
	KindOpen
	KindClose
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindOperator:
		return "operator"
	case KindVariable:
		return "variable"
	case KindFunction:
		return "function"
	case KindOpen:
		return "open"
	case KindClose:
		return "close"
	default:
		return "invalid"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Token is a classified lexeme.
//
// Text holds the literal digits of a number, the symbol of an operator, the
// identifier of a variable or function, or the parenthesis character.
type Token struct {
	Text string `json:"text" yaml:"text"`
	Kind Kind   `json:"kind" yaml:"kind"`
}

// Number returns a number token.
func Number(text string) Token { return Token{Kind: KindNumber, Text: text} }

// Op returns an operator token.
func Op(symbol string) Token { return Token{Kind: KindOperator, Text: symbol} }

// Var returns a variable token.
func Var(name string) Token { return Token{Kind: KindVariable, Text: name} }

// Fn returns a function token.
func Fn(name string) Token { return Token{Kind: KindFunction, Text: name} }

// Open returns an open-parenthesis token.
func Open() Token { return Token{Kind: KindOpen, Text: "("} }

// Close returns a close-parenthesis token.
func Close() Token { return Token{Kind: KindClose, Text: ")"} }

func (t Token) String() string { return t.Text }

// LogValue implements slog.LogValuer.
func (t Token) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", t.Kind.String()),
		slog.String("text", t.Text),
	)
}

// Tokens is an ordered sequence of tokens in either infix or postfix order.
type Tokens []Token

// String renders the sequence as its token texts separated by single spaces.
// For a postfix sequence this is its reverse Polish notation.
func (ts Tokens) String() string {
	var sb strings.Builder

	for i, t := range ts {
		if i > 0 {
			sb.WriteByte(' ')
		}

		sb.WriteString(t.Text)
	}

	return sb.String()
}
