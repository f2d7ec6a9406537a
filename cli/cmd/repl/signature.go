package repl

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// builtinSignatures describes the functions every environment starts with.
var builtinSignatures = map[string]string{
	"sin":  "sin(degrees)",
	"cos":  "cos(degrees)",
	"sqrt": "sqrt(x)",
	"log":  "log(x) base 10",
}

// Signature hint styles.
var (
	signatureStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	signatureNameStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("6")).
				Bold(true)
)

// signature describes the function name: its definition if it was defined
// in this session, its built-in description, or "name(x)".
func (s *Session) signature(name string) string {
	for _, stmt := range s.stmts {
		if stmt.kind == stmtDefine && stmt.name == name {
			return strings.TrimPrefix(stmt.source, definePrefix)
		}
	}

	if sig, ok := builtinSignatures[name]; ok {
		return sig
	}

	return name + "(x)"
}

// enclosingCall returns the name of the function whose argument list
// contains the cursor, or "" if the cursor is not inside one.
func enclosingCall(input string, cursor int) string {
	if cursor > len(input) {
		cursor = len(input)
	}

	depth := 0
	open := -1

	for i := cursor; i > 0 && open < 0; {
		r, size := utf8.DecodeLastRuneInString(input[:i])
		i -= size

		switch r {
		case ')':
			depth++
		case '(':
			if depth == 0 {
				open = i
			} else {
				depth--
			}
		}
	}

	if open < 0 {
		return ""
	}

	start := open
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if !isIdentRune(r) {
			break
		}

		start -= size
	}

	return input[start:open]
}

func isIdentRune(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }

// renderSignatureHint renders a function signature with its name highlighted.
func renderSignatureHint(signature string) string {
	name, rest, ok := strings.Cut(signature, "(")
	if !ok {
		return signatureStyle.Render(signature)
	}

	return signatureNameStyle.Render(name) + signatureStyle.Render("("+rest)
}
