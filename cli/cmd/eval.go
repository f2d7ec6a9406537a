package cmd

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/klauspost/readahead"

	"github.com/ardnew/infix/lang"
	"github.com/ardnew/infix/log"
)

// commentPrefix starts a line ignored in expression source files.
const commentPrefix = "#"

// errorPrefix starts the text output line of a failed expression.
const errorPrefix = "error: "

// Eval evaluates infix expressions given as arguments or read one per line
// from the source files. Text output has one line per expression, in input
// order; a failed expression prints its reason after "error: ".
type Eval struct {
	Expr      []string `arg:"" help:"Expressions to evaluate. Reads stdin if none are given and no --file is set." name:"expr" optional:""`
	Postfix   bool     `       help:"Include the postfix form of each expression."`
	Output    string   `       help:"Result output format."                                                          default:"text" enum:"text,json,yaml" short:"o"`
	Precision int      `       help:"Digits after the decimal point in text output, or -1 for the shortest form."     default:"6"                          short:"P"`

	out io.Writer `kong:"-"`
	in  io.Reader `kong:"-"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	flags, env := envFrom(ctx)

	exprs, err := e.expressions(ctx)
	if err != nil {
		return err
	}

	results := make([]lang.Result, 0, len(exprs))
	failed := 0

	for _, expr := range exprs {
		r := env.Run(flags.Prepare(expr))
		if !e.Postfix {
			r.Postfix = ""
		}

		if !r.OK() {
			failed++

			log.ErrorContext(ctx, "evaluate",
				slog.String("expr", expr),
				slog.Any("error", r.Err()))
		}

		results = append(results, r)
	}

	if err := e.write(results); err != nil {
		return err
	}

	if failed > 0 {
		return ErrEvaluate.With(
			slog.Int("failed", failed),
			slog.Int("total", len(results)),
		)
	}

	return nil
}

// expressions collects the command-line expressions followed by those read
// from the source files. Standard input is read only when neither is given.
func (e *Eval) expressions(ctx context.Context) ([]string, error) {
	exprs := slices.Clone(e.Expr)

	src := sourceFilesFrom(ctx)
	if src != nil {
		defer src.Close()

		lines, err := readExpressions(src)
		if err != nil {
			return nil, err
		}

		return append(exprs, lines...), nil
	}

	if len(exprs) > 0 {
		return exprs, nil
	}

	in := e.in
	if in == nil {
		in = os.Stdin
	}

	return readExpressions(in)
}

// readExpressions returns the non-blank, non-comment lines of r.
func readExpressions(r io.Reader) ([]string, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	var exprs []string

	scanner := bufio.NewScanner(ra)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		exprs = append(exprs, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	return exprs, nil
}

func (e *Eval) write(results []lang.Result) error {
	w := e.out
	if w == nil {
		w = os.Stdout
	}

	switch e.Output {
	case OutputJSON:
		b, err := lang.MarshalJSON(results...)
		if err != nil {
			return ErrJSONMarshal.Wrap(err)
		}

		return writeLine(w, b)

	case OutputYAML:
		b, err := lang.MarshalYAML(results...)
		if err != nil {
			return ErrYAMLMarshal.Wrap(err)
		}

		return writeLine(w, b)
	}

	bw := bufio.NewWriter(w)

	for _, r := range results {
		if !r.OK() {
			bw.WriteString(errorPrefix)
			bw.WriteString(r.Error)
			bw.WriteByte('\n')

			continue
		}

		if e.Postfix {
			bw.WriteString(r.Postfix)
			bw.WriteString(" = ")
		}

		bw.WriteString(strconv.FormatFloat(*r.Value, 'f', e.Precision, 64))
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
