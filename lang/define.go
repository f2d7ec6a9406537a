package lang

import (
	"log/slog"
	"maps"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ParseDefinition parses a function definition of the form
//
//	name(param) = body
//
// and compiles body against a new seeded [Env]. See [Env.CompileFunc] for the
// syntax accepted in body.
func ParseDefinition(text string) (string, Func, error) {
	return NewEnv().parseDefinition(text)
}

// Define parses a function definition as [ParseDefinition] does, compiling
// its body against the functions and variables of e, and registers the
// result in e. It returns the defined name.
func (e *Env) Define(text string) (string, error) {
	name, fn, err := e.parseDefinition(text)
	if err != nil {
		return "", err
	}

	e.RegisterFunction(name, fn)

	return name, nil
}

func (e *Env) parseDefinition(text string) (string, Func, error) {
	head, body, ok := strings.Cut(text, "=")
	if !ok {
		return "", nil, ErrInvalidDefinition.With(slog.String("definition", text))
	}

	head = strings.TrimSpace(head)

	name, rest, ok := strings.Cut(head, "(")
	if !ok || !strings.HasSuffix(rest, ")") {
		return "", nil, ErrInvalidDefinition.With(slog.String("definition", text))
	}

	name = strings.TrimSpace(name)
	param := strings.TrimSpace(strings.TrimSuffix(rest, ")"))

	if !IsIdentifier(name) {
		return "", nil, ErrInvalidDefinition.
			Wrap(&NameError{Name: name}).
			With(slog.String("definition", text))
	}

	if !IsIdentifier(param) {
		return "", nil, ErrInvalidDefinition.
			Wrap(&NameError{Name: param}).
			With(slog.String("definition", text))
	}

	fn, err := e.CompileFunc(param, strings.TrimSpace(body))
	if err != nil {
		return "", nil, err
	}

	return name, fn, nil
}

// CompileFunc compiles body into a [Func] of the single parameter param.
//
// The body is an expression in the same syntax [Env.Eval] accepts. It may
// refer to param, to any variable bound in e, and to any function registered
// in e, with their values as of the call to CompileFunc. The body is
// tokenized and ordered by e, so implicit multiplication and the grouping of
// ^ follow e's settings.
func (e *Env) CompileFunc(param, body string) (Func, error) {
	if body == "" {
		return nil, ErrInvalidDefinition.With(slog.String("param", param))
	}

	scope := make(map[string]any, len(e.vars)+len(e.funcs)+1)

	for name, v := range e.vars {
		scope[name] = v
	}

	for name, fn := range e.funcs {
		scope[name] = (func(float64) float64)(fn)
	}

	scope[param] = float64(0)

	source, err := e.exprSource(param, body)
	if err != nil {
		return nil, ErrCompileFunc.Wrap(err).With(slog.String("source", body))
	}

	program, err := expr.Compile(source, expr.Env(scope), expr.AsFloat64())
	if err != nil {
		return nil, ErrCompileFunc.Wrap(err).With(slog.String("source", body))
	}

	logger := e.log().With(
		slog.String("source", body),
		slog.String("program", source),
	)

	return func(x float64) float64 {
		return run(program, scope, param, x, logger.Warn)
	}, nil
}

// exprSource rewrites body as a fully parenthesized expr-lang expression.
// The body is read by a copy of e in which param names a variable, so a
// parameter may shadow a function. Each postfix token is checked the way
// [Env.Evaluate] checks it, and fails with the same sentinel errors.
func (e *Env) exprSource(param, body string) (string, error) {
	scope := e.Clone()
	delete(scope.funcs, param)

	postfix := scope.ToPostfix(scope.Tokenize(body))
	terms := make([]string, 0, len(postfix))

	for i, tok := range postfix {
		n := len(terms)

		switch tok.Kind {
		case KindNumber:
			v, err := strconv.ParseFloat(tok.Text, 64)
			if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
				return "", ErrMalformedNumeral.With(tokenAttrs(tok, i)...)
			}

			terms = append(terms, floatLiteral(v))

		case KindVariable:
			if _, ok := scope.vars[tok.Text]; !ok && tok.Text != param {
				return "", ErrUndefinedVariable.
					Wrap(&NameError{Name: tok.Text}).
					With(tokenAttrs(tok, i)...)
			}

			terms = append(terms, tok.Text)

		case KindOperator:
			op, ok := LookupOperator(tok.Text)
			if !ok {
				return "", ErrUnknownOperator.
					Wrap(&OperatorError{Symbol: tok.Text}).
					With(tokenAttrs(tok, i)...)
			}

			if n < 2 {
				return "", ErrInsufficientOperands.With(tokenAttrs(tok, i)...)
			}

			symbol := op.Symbol()
			if op == OpPow {
				symbol = "**"
			}

			terms = append(terms[:n-2], "("+terms[n-2]+" "+symbol+" "+terms[n-1]+")")

		case KindFunction:
			if n < 1 {
				return "", ErrInsufficientArguments.With(tokenAttrs(tok, i)...)
			}

			terms[n-1] = tok.Text + "(" + terms[n-1] + ")"

		case KindOpen, KindClose:
			return "", ErrUnbalancedParentheses.With(tokenAttrs(tok, i)...)

		default:
			return "", ErrInvalidExpression.With(tokenAttrs(tok, i)...)
		}
	}

	if len(terms) != 1 {
		return "", ErrInvalidExpression.With(slog.Int("values", len(terms)))
	}

	return terms[0], nil
}

// floatLiteral formats v as an expr-lang float literal, never an integer one.
func floatLiteral(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

func run(
	program *vm.Program,
	scope map[string]any,
	param string,
	x float64,
	warn func(string, ...slog.Attr),
) float64 {
	env := maps.Clone(scope)
	env[param] = x

	out, err := expr.Run(program, env)
	if err != nil {
		warn("function failed", slog.Any("error", err))

		return math.NaN()
	}

	v, ok := out.(float64)
	if !ok {
		return math.NaN()
	}

	return v
}

// ParseBinding parses a variable binding of the form name=value, where value
// is a finite decimal floating-point literal, optionally signed and with an
// exponent.
func ParseBinding(text string) (string, float64, error) {
	name, value, ok := strings.Cut(text, "=")
	name = strings.TrimSpace(name)

	if !ok || !IsIdentifier(name) {
		return "", 0, ErrInvalidBinding.With(slog.String("binding", text))
	}

	value = strings.TrimSpace(value)

	if !isDecimal(value) {
		return "", 0, ErrInvalidBinding.With(slog.String("binding", text))
	}

	v, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsInf(v, 0) {
		return "", 0, ErrInvalidBinding.Wrap(err).With(slog.String("binding", text))
	}

	return name, v, nil
}

// Assign evaluates an assignment of the form name = expression and binds the
// result to name in e.
func (e *Env) Assign(text string) (string, float64, error) {
	name, rhs, ok := strings.Cut(text, "=")
	name = strings.TrimSpace(name)

	if !ok || !IsIdentifier(name) {
		return "", 0, ErrInvalidBinding.With(slog.String("binding", text))
	}

	if _, isFunc := e.funcs[name]; isFunc {
		return "", 0, ErrInvalidBinding.
			Wrap(&NameError{Name: name}).
			With(slog.String("binding", text))
	}

	v, err := e.Eval(rhs)
	if err != nil {
		return "", 0, err
	}

	e.BindVariable(name, v)

	return name, v, nil
}

// IsIdentifier reports whether s is a name the lexer reads as a single
// identifier: a letter followed by letters and digits.
func IsIdentifier(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || !unicode.IsLetter(r) {
		return false
	}

	return scan(s, 0, isAlnum) == len(s)
}

// isDecimal reports whether s is spelled with only a sign, decimal digits, a
// point, and an exponent, which excludes the inf, NaN, and hexadecimal forms
// that [strconv.ParseFloat] also accepts.
func isDecimal(s string) bool {
	digits := false

	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits = true
		case r == '.', r == 'e', r == 'E':
		case r == '+', r == '-':
			if i > 0 && s[i-1] != 'e' && s[i-1] != 'E' {
				return false
			}
		default:
			return false
		}
	}

	return digits
}
