// Package lang evaluates infix arithmetic expressions.
//
// # Pipeline
//
// Evaluation runs in three stages, each a method of [Env]:
//
//   - [Env.Tokenize] splits text into [Tokens], inserting the implicit
//     multiplication in terms like 2x, 3(x+1), and x(y).
//   - [Env.ToPostfix] reorders the tokens into postfix order with the
//     Shunting-Yard algorithm.
//   - [Env.Evaluate] computes the postfix sequence with a value stack.
//
// [Env.Eval] runs all three, and [Env.Run] captures the outcome in a
// [Result] that can be encoded with [MarshalYAML] or [MarshalJSON].
//
// # Grammar
//
//	number     → ( digit | '.' ) { digit | '.' }
//	identifier → letter { letter | digit }
//	operator   → '+' | '-' | '*' | '/' | '^'
//
// Operators are binary. From loosest to tightest they are + and -, then * and
// /, then ^. Operators of equal precedence group left to right, including ^
// unless [RightAssociativePow] is given.
//
// An identifier registered as a function is applied to the parenthesized
// group that follows it. Any other identifier is a variable.
//
// # Environment
//
// [NewEnv] seeds the function table with sin and cos (taking degrees), sqrt,
// and log (base 10), and the variable table with pi and e. Hosts add entries
// with [Env.RegisterFunction], [Env.BindVariable], [Env.Define], and
// [Env.Assign]:
//
//	env := lang.NewEnv()
//	env.BindVariable("x", 5)
//	env.Define("cube(x) = x^3")
//
//	v, err := env.Eval("2x + cube(3)") // 37
//
// # Errors
//
// Tokenizing and reordering never fail. Every error comes from evaluation and
// matches one of the sentinel values, like [ErrUndefinedVariable] or
// [ErrInsufficientOperands], with [errors.Is].
package lang
