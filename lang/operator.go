package lang

import "math"

// Operator is a binary arithmetic operator.
//
// The set of operators is closed; the zero value is not a valid operator.
type Operator uint8

// Supported operators.
const (
	OpAdd Operator = iota + 1
	OpSub
	OpMul
	OpDiv
	OpPow
)

// Operators lists every valid operator in declaration order.
var Operators = [...]Operator{OpAdd, OpSub, OpMul, OpDiv, OpPow}

// LookupOperator returns the operator denoted by symbol.
func LookupOperator(symbol string) (Operator, bool) {
	switch symbol {
	case "+":
		return OpAdd, true
	case "-":
		return OpSub, true
	case "*":
		return OpMul, true
	case "/":
		return OpDiv, true
	case "^":
		return OpPow, true
	default:
		return 0, false
	}
}

// Symbol returns the operator's source symbol.
func (op Operator) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	default:
		return ""
	}
}

func (op Operator) String() string { return op.Symbol() }

// Precedence returns the binding strength of op. Higher binds tighter.
// Invalid operators have precedence 0.
func (op Operator) Precedence() int {
	switch op {
	case OpAdd, OpSub:
		return 1
	case OpMul, OpDiv:
		return 2
	case OpPow:
		return 3
	default:
		return 0
	}
}

// Apply computes a op b. Division follows IEEE 754, so dividing by zero yields
// an infinity or NaN. Invalid operators yield NaN.
func (op Operator) Apply(a, b float64) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	case OpPow:
		return math.Pow(a, b)
	default:
		return math.NaN()
	}
}
