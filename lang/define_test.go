package lang

import (
	"errors"
	"math"
	"testing"
)

func TestEnv_Define(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		def   string
		call  string
		fname string
		want  float64
	}{
		{"cube caret", "cube(x) = x^3", "cube(3)", "cube", 27},
		{"implicit product", "f(x) = 2x", "f(2)", "f", 4},
		{"implicit group product", "f(x) = 3(x+1)", "f(2)", "f", 9},
		{"left associative power", "f(x) = 2^3^x", "f(2)", "f", 64},
		{"precedence", "f(x) = 1 + 2x^2 / 4 - x", "f(2)", "f", 1},
		{"integer division", "f(x) = 7/2 + x", "f(0)", "f", 3.5},
		{"parameter shadows function", "f(sin) = sin * 2", "f(4)", "f", 8},
		{"uses builtin", "hyp(a) = sqrt(a*a + 9)", "hyp(4)", "hyp", 5},
		{"uses variable", "circ(r) = 2*pi*r", "circ(1)", "circ", 2 * Pi},
		{"spaces", "  half ( v )  =  v / 2 ", "half(5)", "half", 2.5},
		{"shadows variable", "scale(e) = e * 10", "scale(3)", "scale", 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := NewEnv()

			name, err := env.Define(tt.def)
			if err != nil {
				t.Fatalf("Define(%q) error: %v", tt.def, err)
			}

			if name != tt.fname {
				t.Errorf("Define(%q) name = %q, want %q", tt.def, name, tt.fname)
			}

			got, err := env.Eval(tt.call)
			if err != nil {
				t.Fatalf("Eval(%q) error: %v", tt.call, err)
			}

			if math.Abs(got-tt.want) > tolerance {
				t.Errorf("Eval(%q) = %v, want %v", tt.call, got, tt.want)
			}
		})
	}
}

func TestParseDefinition_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		def     string
		wantErr error
	}{
		{"no equals", "f(x)", ErrInvalidDefinition},
		{"no parameter list", "f = x", ErrInvalidDefinition},
		{"unclosed parameter list", "f(x = x", ErrInvalidDefinition},
		{"numeric name", "1f(x) = x", ErrInvalidDefinition},
		{"empty name", "(x) = x", ErrInvalidDefinition},
		{"two parameters", "f(x, y) = x", ErrInvalidDefinition},
		{"empty parameter", "f() = 1", ErrInvalidDefinition},
		{"empty body", "f(x) = ", ErrInvalidDefinition},
		{"unknown name", "f(x) = x + y", ErrCompileFunc},
		{"syntax", "f(x) = x +* 2", ErrCompileFunc},
		{"not numeric", `f(x) = "text"`, ErrCompileFunc},
		{"double star", "f(x) = x**3", ErrCompileFunc},
		{"ternary", "f(x) = x == 2 ? 1 : 0", ErrCompileFunc},
		{"unbalanced", "f(x) = (x + 1", ErrCompileFunc},
		{"malformed numeral", "f(x) = 1.2.3 * x", ErrCompileFunc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, fn, err := ParseDefinition(tt.def)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseDefinition(%q) error = %v, want %v", tt.def, err, tt.wantErr)
			}

			if fn != nil {
				t.Errorf("ParseDefinition(%q) returned a function with error", tt.def)
			}
		})
	}
}

func TestParseDefinition_CapturesSeedEnv(t *testing.T) {
	name, fn, err := ParseDefinition("deg(r) = r * 180 / pi")
	if err != nil {
		t.Fatal(err)
	}

	if name != "deg" {
		t.Errorf("name = %q, want deg", name)
	}

	if got := fn(Pi); math.Abs(got-180) > tolerance {
		t.Errorf("deg(pi) = %v, want 180", got)
	}
}

func TestEnv_CompileFunc_CausesMatchEvaluate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		body    string
		wantErr error
	}{
		{"x + y", ErrUndefinedVariable},
		{"x +* 2", ErrInsufficientOperands},
		{"x % 2", ErrUnknownOperator},
		{"(x", ErrUnbalancedParentheses},
		{"x x2", ErrUndefinedVariable},
		{"2 3", ErrInvalidExpression},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			t.Parallel()

			_, err := NewEnv().CompileFunc("x", tt.body)
			if !errors.Is(err, ErrCompileFunc) || !errors.Is(err, tt.wantErr) {
				t.Errorf("CompileFunc(%q) error = %v, want %v wrapping %v",
					tt.body, err, ErrCompileFunc, tt.wantErr)
			}
		})
	}
}

func TestEnv_CompileFunc_RightAssociativePow(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		right bool
		want  float64
	}{
		{false, 64},
		{true, 512},
	} {
		env := NewEnv(RightAssociativePow(tt.right))

		if _, err := env.Define("f(x) = 2^3^x"); err != nil {
			t.Fatal(err)
		}

		direct, err := env.Eval("2^3^2")
		if err != nil {
			t.Fatal(err)
		}

		got, err := env.Eval("f(2)")
		if err != nil {
			t.Fatal(err)
		}

		if got != tt.want || got != direct {
			t.Errorf("right=%v: f(2) = %v, 2^3^2 = %v; want %v", tt.right, got, direct, tt.want)
		}
	}
}

func TestEnv_CompileFunc_SnapshotsTables(t *testing.T) {
	env := NewEnv().BindVariable("k", 2)

	fn, err := env.CompileFunc("x", "k*x")
	if err != nil {
		t.Fatal(err)
	}

	env.BindVariable("k", 100)

	if got := fn(3); got != 6 {
		t.Errorf("fn(3) = %v, want 6", got)
	}
}

func TestParseBinding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		name    string
		value   float64
		wantErr bool
	}{
		{"x=5", "x", 5, false},
		{" y = -2.5 ", "y", -2.5, false},
		{"big=1e3", "big", 1000, false},
		{"small=2.5E-3", "small", 0.0025, false},
		{"pos=+4", "pos", 4, false},
		{"half=.5", "half", 0.5, false},
		{"x=NaN", "", 0, true},
		{"x=inf", "", 0, true},
		{"x=-Inf", "", 0, true},
		{"x=0x1p4", "", 0, true},
		{"x=1e400", "", 0, true},
		{"x=+-1", "", 0, true},
		{"x=.", "", 0, true},
		{"x", "", 0, true},
		{"5=x", "", 0, true},
		{"=5", "", 0, true},
		{"x=abc", "", 0, true},
		{"x=", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			name, value, err := ParseBinding(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidBinding) {
					t.Fatalf("ParseBinding(%q) error = %v, want ErrInvalidBinding", tt.input, err)
				}

				return
			}

			if err != nil {
				t.Fatalf("ParseBinding(%q) error: %v", tt.input, err)
			}

			if name != tt.name || value != tt.value {
				t.Errorf("ParseBinding(%q) = %q, %v; want %q, %v",
					tt.input, name, value, tt.name, tt.value)
			}
		})
	}
}

func TestEnv_Assign(t *testing.T) {
	env := NewEnv().BindVariable("x", 5)

	name, v, err := env.Assign("y = 2x + 1")
	if err != nil {
		t.Fatal(err)
	}

	if name != "y" || v != 11 {
		t.Fatalf("Assign = %q, %v; want y, 11", name, v)
	}

	if got, _ := env.Variable("y"); got != 11 {
		t.Errorf("y = %v, want 11", got)
	}

	if _, _, err := env.Assign("sin = 3"); !errors.Is(err, ErrInvalidBinding) {
		t.Errorf("assigning to a function: got %v, want ErrInvalidBinding", err)
	}

	if _, _, err := env.Assign("w = q"); !errors.Is(err, ErrUndefinedVariable) {
		t.Errorf("undefined right side: got %v, want ErrUndefinedVariable", err)
	}

	if _, ok := env.Variable("w"); ok {
		t.Error("failed assignment bound a value")
	}
}

func TestIsIdentifier(t *testing.T) {
	tests := map[string]bool{
		"x":     true,
		"x2":    true,
		"théta": true,
		"":      false,
		"2x":    false,
		"x_y":   false,
		"x y":   false,
	}

	for input, want := range tests {
		if got := IsIdentifier(input); got != want {
			t.Errorf("IsIdentifier(%q) = %v, want %v", input, got, want)
		}
	}
}
