package lang

import (
	"log/slog"
	"math"
	"strconv"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// Evaluate computes the value of a postfix token sequence.
//
// Numbers are parsed as decimal floating-point literals and variables are
// looked up in e. Each operator pops its right operand, then its left operand,
// and pushes the result; each function pops one argument and pushes its
// result. Exactly one value must remain when the sequence is exhausted.
//
// The returned error is an [*Error] that matches one of the evaluation
// sentinels, such as [ErrUndefinedVariable], with [errors.Is].
func (e *Env) Evaluate(postfix Tokens) (float64, error) {
	vals := arraystack.New()

	pop := func() float64 {
		v, _ := vals.Pop()

		return v.(float64)
	}

	for i, tok := range postfix {
		switch tok.Kind {
		case KindNumber:
			v, err := strconv.ParseFloat(tok.Text, 64)
			if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
				return 0, ErrMalformedNumeral.With(tokenAttrs(tok, i)...)
			}

			vals.Push(v)

		case KindVariable:
			v, ok := e.vars[tok.Text]
			if !ok {
				return 0, ErrUndefinedVariable.
					Wrap(&NameError{Name: tok.Text}).
					With(tokenAttrs(tok, i)...)
			}

			vals.Push(v)

		case KindOperator:
			op, ok := LookupOperator(tok.Text)
			if !ok {
				return 0, ErrUnknownOperator.
					Wrap(&OperatorError{Symbol: tok.Text}).
					With(tokenAttrs(tok, i)...)
			}

			if vals.Size() < 2 {
				return 0, ErrInsufficientOperands.With(tokenAttrs(tok, i)...)
			}

			b := pop()
			a := pop()
			vals.Push(op.Apply(a, b))

		case KindFunction:
			fn, ok := e.funcs[tok.Text]
			if !ok {
				return 0, ErrUndefinedFunction.
					Wrap(&NameError{Name: tok.Text}).
					With(tokenAttrs(tok, i)...)
			}

			if vals.Empty() {
				return 0, ErrInsufficientArguments.With(tokenAttrs(tok, i)...)
			}

			vals.Push(fn(pop()))

		case KindOpen, KindClose:
			return 0, ErrUnbalancedParentheses.With(tokenAttrs(tok, i)...)

		default:
			return 0, ErrInvalidExpression.With(tokenAttrs(tok, i)...)
		}
	}

	if vals.Size() != 1 {
		return 0, ErrInvalidExpression.With(slog.Int("values", vals.Size()))
	}

	return pop(), nil
}

// Eval tokenizes, converts, and evaluates text.
func (e *Env) Eval(text string) (float64, error) {
	_, v, err := e.eval(text)

	return v, err
}

func (e *Env) eval(text string) (Tokens, float64, error) {
	logger := e.log().With(slog.String("expr", text))

	tokens := e.Tokenize(text)
	logger.Trace("tokenize", slog.String("tokens", tokens.String()))

	postfix := e.ToPostfix(tokens)
	logger.Trace("postfix", slog.String("postfix", postfix.String()))

	v, err := e.Evaluate(postfix)
	if err != nil {
		logger.Trace("evaluate", slog.Any("error", err))

		return postfix, 0, err
	}

	logger.Trace("evaluate", slog.Float64("result", v))

	return postfix, v, nil
}
