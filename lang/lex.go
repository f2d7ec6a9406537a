package lang

import (
	"unicode"
	"unicode/utf8"
)

// Tokenize splits text into tokens, inserting an implicit multiplication
// operator where a variable or open parenthesis directly follows a number,
// variable, or close parenthesis (as in 2x, 3(x+1), and x(y)).
//
// Tokenize never fails. Malformed numerals and unknown symbols are passed
// through as tokens and rejected by [Env.Evaluate].
func (e *Env) Tokenize(text string) Tokens {
	var toks Tokens

	implicit := func() {
		if n := len(toks); n > 0 {
			switch toks[n-1].Kind {
			case KindNumber, KindVariable, KindClose:
				toks = append(toks, Op(OpMul.Symbol()))
			}
		}
	}

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])

		switch {
		case unicode.IsSpace(r):
			i += size

		case isNumeral(r):
			j := scan(text, i, isNumeral)
			toks = append(toks, Number(text[i:j]))
			i = j

		case unicode.IsLetter(r):
			j := scan(text, i, isAlnum)
			name := text[i:j]

			if _, ok := e.funcs[name]; ok {
				toks = append(toks, Fn(name))
			} else {
				implicit()
				toks = append(toks, Var(name))
			}

			i = j

		case r == '(':
			implicit()
			toks = append(toks, Open())
			i += size

		case r == ')':
			toks = append(toks, Close())
			i += size

		default:
			toks = append(toks, Op(text[i:i+size]))
			i += size
		}
	}

	return toks
}

func isNumeral(r rune) bool { return r == '.' || unicode.IsDigit(r) }

func isAlnum(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }

// scan returns the index of the first rune at or after start in text for which
// accept returns false.
func scan(text string, start int, accept func(rune) bool) int {
	i := start
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !accept(r) {
			break
		}

		i += size
	}

	return i
}
