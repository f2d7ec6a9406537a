package lang

import (
	"log/slog"
	"maps"
	"math"
	"slices"

	"github.com/ardnew/infix/log"
)

// Func is a unary numeric function callable from an expression.
type Func func(float64) float64

// Seed variable values.
const (
	Pi = 3.1415926535
	E  = 2.7182818284
)

// builtinFuncs returns the functions every new [Env] starts with.
// Trigonometric functions take their argument in degrees.
func builtinFuncs() map[string]Func {
	return map[string]Func{
		"sin":  func(x float64) float64 { return math.Sin(x * math.Pi / 180) },
		"cos":  func(x float64) float64 { return math.Cos(x * math.Pi / 180) },
		"sqrt": math.Sqrt,
		"log":  math.Log10,
	}
}

// builtinVars returns the variables every new [Env] starts with.
func builtinVars() map[string]float64 {
	return map[string]float64{
		"pi": Pi,
		"e":  E,
	}
}

// Env is an evaluation environment: the function and variable tables consulted
// by each stage of the pipeline, plus settings that affect parsing.
//
// The tables may be changed between runs but not during one. Runs that only
// read an Env may proceed concurrently.
type Env struct {
	config

	funcs map[string]Func
	vars  map[string]float64
}

// NewEnv returns an Env seeded with the built-in functions (sin, cos, sqrt,
// log) and variables (pi, e).
func NewEnv(opts ...Option) *Env {
	return &Env{
		config: apply(config{}, opts...),
		funcs:  builtinFuncs(),
		vars:   builtinVars(),
	}
}

// Clone returns a copy of e whose tables can be changed independently.
// Options are applied on top of the copied settings.
func (e *Env) Clone(opts ...Option) *Env {
	return &Env{
		config: apply(e.config, opts...),
		funcs:  maps.Clone(e.funcs),
		vars:   maps.Clone(e.vars),
	}
}

// RegisterFunction adds fn to the function table as name, replacing any
// existing function of that name. A nil fn removes the entry.
func (e *Env) RegisterFunction(name string, fn Func) *Env {
	if fn == nil {
		delete(e.funcs, name)
	} else {
		e.funcs[name] = fn
	}

	e.log().Debug("register function",
		slog.String("name", name))

	return e
}

// BindVariable sets the variable name to value.
func (e *Env) BindVariable(name string, value float64) *Env {
	e.vars[name] = value

	e.log().Debug("bind variable",
		slog.String("name", name),
		slog.Float64("value", value))

	return e
}

// UnbindVariable removes the variable name, reporting whether it was bound.
func (e *Env) UnbindVariable(name string) bool {
	_, ok := e.vars[name]
	delete(e.vars, name)

	return ok
}

// Function returns the function registered as name.
func (e *Env) Function(name string) (Func, bool) {
	fn, ok := e.funcs[name]

	return fn, ok
}

// Variable returns the value bound to name.
func (e *Env) Variable(name string) (float64, bool) {
	v, ok := e.vars[name]

	return v, ok
}

// Functions returns the sorted names of all registered functions.
func (e *Env) Functions() []string {
	return slices.Sorted(maps.Keys(e.funcs))
}

// Variables returns the sorted names of all bound variables.
func (e *Env) Variables() []string {
	return slices.Sorted(maps.Keys(e.vars))
}

// RightAssociative reports whether e parses exponentiation right to left.
func (e *Env) RightAssociative() bool {
	return e.rightPow
}

func (e *Env) log() log.Logger {
	if e.logger != nil {
		return *e.logger
	}

	return log.Default()
}
