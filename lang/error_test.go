package lang

import (
	"errors"
	"fmt"
	"log/slog"
	"testing"
)

func TestError_Is_MatchesDerived(t *testing.T) {
	derived := ErrMalformedNumeral.With(slog.String("token", "1.2.3"))

	if !errors.Is(derived, ErrMalformedNumeral) {
		t.Error("With result does not match its sentinel")
	}

	if errors.Is(derived, ErrInvalidExpression) {
		t.Error("With result matches an unrelated sentinel")
	}

	wrapped := fmt.Errorf("line 3: %w", ErrUndefinedVariable.Wrap(&NameError{Name: "q"}))

	if !errors.Is(wrapped, ErrUndefinedVariable) {
		t.Error("wrapped error does not match its sentinel")
	}
}

func TestError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"sentinel", ErrInvalidExpression, "invalid expression"},
		{"wrapped", ErrUndefinedVariable.Wrap(&NameError{Name: "z"}), "undefined variable: z"},
		{"cause only", &Error{err: errors.New("boom")}, "boom"},
		{"empty", &Error{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_With_DoesNotMutate(t *testing.T) {
	base := NewError("base")
	first := base.With(slog.Int("a", 1))
	second := first.With(slog.Int("b", 2))

	if len(base.Attrs()) != 0 {
		t.Errorf("base attrs = %v", base.Attrs())
	}

	if len(first.Attrs()) != 1 || len(second.Attrs()) != 2 {
		t.Errorf("attrs = %v, %v", first.Attrs(), second.Attrs())
	}
}

func TestError_LogValue(t *testing.T) {
	_, err := NewEnv().Eval("1 + y")

	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *Error, got %T", err)
	}

	got := map[string]string{}
	for _, a := range e.LogValue().Group() {
		got[a.Key] = a.Value.String()
	}

	want := map[string]string{
		"error": "undefined variable",
		"cause": "y",
		"token": "y",
		"kind":  "variable",
		"index": "1",
	}

	for k, v := range want {
		if got[k] != v {
			t.Errorf("attr %s = %q, want %q", k, got[k], v)
		}
	}
}
