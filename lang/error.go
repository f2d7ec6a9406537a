package lang

import (
	"log/slog"
	"strings"
)

// Evaluation errors (sentinel values).
//
// Every failure of the pipeline is raised by [Env.Evaluate] and matches one of
// these with [errors.Is]. The lexer and parser never fail.
var (
	ErrMalformedNumeral      = NewError("malformed numeral")
	ErrUndefinedVariable     = NewError("undefined variable")
	ErrUndefinedFunction     = NewError("undefined function")
	ErrInsufficientOperands  = NewError("insufficient operands")
	ErrInsufficientArguments = NewError("insufficient arguments")
	ErrInvalidExpression     = NewError("invalid expression")
	ErrUnknownOperator       = NewError("unknown operator")
	ErrUnbalancedParentheses = NewError("unbalanced parentheses")
)

// Definition errors (sentinel values).
var (
	ErrInvalidDefinition = NewError("invalid function definition")
	ErrInvalidBinding    = NewError("invalid variable binding")
	ErrCompileFunc       = NewError("function compilation failed")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// Error implements the error interface.
func (e *Error) Error() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg>: <err>" // base and wrapped error both set
	//   2. "<msg>"        // wrapped error is nil
	//   3. "<err>"        // base error message is empty
	//   4. ""             // no fields are set
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an *Error derived from the same sentinel,
// so that errors returned by [Error.Wrap] and [Error.With] still match it.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.msg == "" {
		return false
	}

	return e.msg == t.msg
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Attrs returns the structured attributes attached to the error.
func (e *Error) Attrs() []slog.Attr {
	return append([]slog.Attr(nil), e.attrs...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

// NameError records a reference to a variable that is not bound.
//
// It is wrapped by [ErrUndefinedVariable], so the complete message reads
// "undefined variable: <name>".
type NameError struct {
	Name string
}

// Error returns the unbound name.
func (e *NameError) Error() string { return e.Name }

// OperatorError records an operator symbol outside the operator table.
//
// It is wrapped by [ErrUnknownOperator].
type OperatorError struct {
	Symbol string
}

// Error returns the unknown symbol.
func (e *OperatorError) Error() string { return e.Symbol }

// tokenAttrs returns the attributes identifying a token at position index of
// the postfix sequence being evaluated.
func tokenAttrs(tok Token, index int) []slog.Attr {
	return []slog.Attr{
		slog.String("token", tok.Text),
		slog.String("kind", tok.Kind.String()),
		slog.Int("index", index),
	}
}
