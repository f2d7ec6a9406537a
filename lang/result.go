package lang

import (
	"github.com/goccy/go-yaml"
)

// Result records one evaluation of an expression.
type Result struct {
	err error

	Expr    string   `json:"expr"              yaml:"expr"`
	Postfix string   `json:"postfix,omitempty" yaml:"postfix,omitempty"`
	Value   *float64 `json:"value,omitempty"   yaml:"value,omitempty"`
	Error   string   `json:"error,omitempty"   yaml:"error,omitempty"`
}

// Run evaluates text and records the outcome. Errors are captured in the
// returned Result rather than returned.
func (e *Env) Run(text string) Result {
	postfix, v, err := e.eval(text)

	r := Result{
		Expr:    text,
		Postfix: postfix.String(),
		err:     err,
	}

	if err != nil {
		r.Error = err.Error()
	} else {
		r.Value = &v
	}

	return r
}

// Err returns the evaluation error, if any.
func (r Result) Err() error { return r.err }

// OK reports whether the evaluation succeeded.
func (r Result) OK() bool { return r.err == nil && r.Value != nil }

// MarshalYAML encodes results as a YAML document.
// A single result is encoded as a mapping, several as a sequence.
func MarshalYAML(results ...Result) ([]byte, error) {
	return marshal(results)
}

// MarshalJSON encodes results as JSON.
// A single result is encoded as an object, several as an array.
func MarshalJSON(results ...Result) ([]byte, error) {
	return marshal(results, yaml.JSON())
}

func marshal(results []Result, opts ...yaml.EncodeOption) ([]byte, error) {
	var v any = results
	if len(results) == 1 {
		v = results[0]
	}

	return yaml.MarshalWithOptions(v, opts...)
}
