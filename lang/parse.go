package lang

import "github.com/emirpasic/gods/stacks/arraystack"

// ToPostfix reorders infix tokens into postfix (reverse Polish) order using
// the Shunting-Yard algorithm.
//
// Functions bind to the parenthesized group that follows them. Binary
// operators of equal precedence group left to right, unless e was created with
// [RightAssociativePow], in which case ^ groups right to left.
//
// ToPostfix never fails. Unknown operator symbols are given the lowest
// precedence, and unmatched parentheses are copied to the output where
// [Env.Evaluate] rejects them.
func (e *Env) ToPostfix(tokens Tokens) Tokens {
	out := make(Tokens, 0, len(tokens))
	ops := arraystack.New()

	for _, tok := range tokens {
		switch tok.Kind {
		case KindNumber, KindVariable:
			out = append(out, tok)

		case KindFunction, KindOpen:
			ops.Push(tok)

		case KindOperator:
			prec := precedence(tok)
			right := e.rightPow && prec == OpPow.Precedence()

			for top, ok := peek(ops); ok; top, ok = peek(ops) {
				if top.Kind != KindFunction && top.Kind != KindOperator {
					break
				}

				if top.Kind == KindOperator {
					p := precedence(top)
					if p < prec || (right && p == prec) {
						break
					}
				}

				ops.Pop()
				out = append(out, top)
			}

			ops.Push(tok)

		case KindClose:
			matched := false

			for top, ok := peek(ops); ok; top, ok = peek(ops) {
				ops.Pop()

				if top.Kind == KindOpen {
					matched = true

					break
				}

				out = append(out, top)
			}

			if !matched {
				out = append(out, tok)

				continue
			}

			if top, ok := peek(ops); ok && top.Kind == KindFunction {
				ops.Pop()
				out = append(out, top)
			}
		}
	}

	for top, ok := peek(ops); ok; top, ok = peek(ops) {
		ops.Pop()
		out = append(out, top)
	}

	return out
}

// precedence returns the precedence of an operator token, or 0 if its symbol
// is not a known operator.
func precedence(tok Token) int {
	op, _ := LookupOperator(tok.Text)

	return op.Precedence()
}

func peek(s *arraystack.Stack) (Token, bool) {
	v, ok := s.Peek()
	if !ok {
		return Token{}, false
	}

	return v.(Token), true
}
