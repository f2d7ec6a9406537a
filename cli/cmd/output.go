package cmd

import (
	"bytes"
	"io"

	"github.com/goccy/go-yaml"
)

// Output formats accepted by the --output flags.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// writeEncoded encodes v as JSON or YAML and writes it to w followed by a
// newline.
func writeEncoded(w io.Writer, format string, v any) error {
	var (
		b   []byte
		err error
	)

	switch format {
	case OutputJSON:
		b, err = yaml.MarshalWithOptions(v, yaml.JSON())
		if err != nil {
			return ErrJSONMarshal.Wrap(err)
		}

	default:
		b, err = yaml.Marshal(v)
		if err != nil {
			return ErrYAMLMarshal.Wrap(err)
		}
	}

	return writeLine(w, b)
}

func writeLine(w io.Writer, b []byte) error {
	if !bytes.HasSuffix(b, []byte("\n")) {
		b = append(b, '\n')
	}

	_, err := w.Write(b)

	return err
}
