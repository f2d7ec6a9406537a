package lang

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/goccy/go-yaml"
)

func TestEnv_Run(t *testing.T) {
	env := NewEnv()

	r := env.Run("3+4*2")
	if !r.OK() {
		t.Fatalf("Run failed: %v", r.Err())
	}

	if r.Expr != "3+4*2" {
		t.Errorf("Expr = %q", r.Expr)
	}

	if r.Postfix != "3 4 2 * +" {
		t.Errorf("Postfix = %q", r.Postfix)
	}

	if r.Value == nil || *r.Value != 11 {
		t.Errorf("Value = %v, want 11", r.Value)
	}

	if r.Error != "" {
		t.Errorf("Error = %q, want empty", r.Error)
	}
}

func TestEnv_Run_CapturesError(t *testing.T) {
	r := NewEnv().Run("z+1")

	if r.OK() {
		t.Fatal("expected failure")
	}

	if !errors.Is(r.Err(), ErrUndefinedVariable) {
		t.Errorf("Err() = %v, want ErrUndefinedVariable", r.Err())
	}

	if r.Error != "undefined variable: z" {
		t.Errorf("Error = %q", r.Error)
	}

	if r.Value != nil {
		t.Errorf("Value = %v, want nil", *r.Value)
	}

	if r.Postfix != "z 1 +" {
		t.Errorf("Postfix = %q, want %q", r.Postfix, "z 1 +")
	}
}

func TestMarshalYAML(t *testing.T) {
	env := NewEnv()

	out, err := MarshalYAML(env.Run("2^3"))
	if err != nil {
		t.Fatal(err)
	}

	var got Result
	if err := yaml.Unmarshal(out, &got); err != nil {
		t.Fatalf("unmarshal %q: %v", out, err)
	}

	if got.Expr != "2^3" || got.Value == nil || *got.Value != 8 {
		t.Errorf("decoded %+v from %q", got, out)
	}
}

func TestMarshalYAML_Sequence(t *testing.T) {
	env := NewEnv()

	out, err := MarshalYAML(env.Run("1+1"), env.Run("q"))
	if err != nil {
		t.Fatal(err)
	}

	var got []Result
	if err := yaml.Unmarshal(out, &got); err != nil {
		t.Fatalf("unmarshal %q: %v", out, err)
	}

	if len(got) != 2 {
		t.Fatalf("decoded %d results from %q", len(got), out)
	}

	if got[1].Error != "undefined variable: q" || got[1].Value != nil {
		t.Errorf("second result = %+v", got[1])
	}
}

func TestMarshalJSON(t *testing.T) {
	out, err := MarshalJSON(NewEnv().Run("sqrt(16)"))
	if err != nil {
		t.Fatal(err)
	}

	var got map[string]any
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}

	if got["expr"] != "sqrt(16)" {
		t.Errorf("expr = %v", got["expr"])
	}

	if got["value"] != float64(4) {
		t.Errorf("value = %v", got["value"])
	}

	if _, ok := got["error"]; ok {
		t.Errorf("unexpected error key in %s", out)
	}
}

func TestTokens_MarshalKindNames(t *testing.T) {
	out, err := yaml.MarshalWithOptions(NewEnv().Tokenize("2x"), yaml.JSON())
	if err != nil {
		t.Fatal(err)
	}

	var got []map[string]string
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}

	want := []map[string]string{
		{"text": "2", "kind": "number"},
		{"text": "*", "kind": "operator"},
		{"text": "x", "kind": "variable"},
	}

	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %s", len(got), len(want), out)
	}

	for i := range want {
		if got[i]["text"] != want[i]["text"] || got[i]["kind"] != want[i]["kind"] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}
