package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/ardnew/infix/lang"
	"github.com/ardnew/infix/log"
)

// Fmt prints the intermediate forms of an expression.
type Fmt struct {
	Tokens  FmtTokens  `cmd:"" help:"Print the token sequence of an expression."`
	Postfix FmtPostfix `cmd:"" help:"Print the postfix sequence of an expression."`
}

// FmtTokens prints the tokens of an expression in source order.
type FmtTokens struct {
	Output string `default:"text" enum:"text,json,yaml" help:"Output format." short:"o"`

	Expr string `arg:"" help:"Expression to tokenize." name:"expr"`

	out io.Writer `kong:"-"`
}

// Run executes the fmt tokens command.
func (f *FmtTokens) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	flags, env := envFrom(ctx)
	toks := env.Tokenize(flags.Prepare(f.Expr))

	log.TraceContext(ctx, "fmt tokens",
		slog.String("expr", f.Expr),
		slog.Int("count", len(toks)))

	return writeTokens(output(f.out), f.Output, toks)
}

// FmtPostfix prints the postfix (reverse Polish) form of an expression.
type FmtPostfix struct {
	Output string `default:"text" enum:"text,json,yaml" help:"Output format." short:"o"`
	Table  bool   `help:"Print one token per row with its kind, as fmt tokens does." short:"t"`

	Expr string `arg:"" help:"Expression to convert." name:"expr"`

	out io.Writer `kong:"-"`
}

// Run executes the fmt postfix command.
func (f *FmtPostfix) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	flags, env := envFrom(ctx)
	postfix := env.ToPostfix(env.Tokenize(flags.Prepare(f.Expr)))

	log.TraceContext(ctx, "fmt postfix",
		slog.String("expr", f.Expr),
		slog.String("postfix", postfix.String()))

	w := output(f.out)

	if f.Output == OutputText && !f.Table {
		_, err = fmt.Fprintln(w, postfix.String())

		return err
	}

	return writeTokens(w, f.Output, postfix)
}

func output(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}

	return w
}

// writeTokens writes toks as a table in text format, or encoded as a list of
// text/kind records otherwise.
func writeTokens(w io.Writer, format string, toks lang.Tokens) error {
	if format != OutputText {
		if toks == nil {
			toks = lang.Tokens{}
		}

		return writeEncoded(w, format, toks)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "INDEX\tKIND\tTEXT")

	for i, t := range toks {
		fmt.Fprintln(tw, strconv.Itoa(i)+"\t"+t.Kind.String()+"\t"+t.Text)
	}

	return tw.Flush()
}
