package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/infix/cli/cmd/repl"
	"github.com/ardnew/infix/log"
)

// Repl starts an interactive evaluation session.
type Repl struct {
	History   bool `default:"true" help:"Persist input history in the cache directory." negatable:""`
	Precision int  `default:"6"    help:"Digits after the decimal point, or -1 for the shortest form." short:"P"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	var cacheDir string

	if r.History {
		if ktx := kongContextFrom(ctx); ktx != nil {
			cacheDir = ktx.Model.Vars()[CacheIdentifier]
		}
	}

	flags, env := envFrom(ctx)

	logger := log.Default().With(slog.String("command", "repl"))

	return repl.Run(ctx, env, cacheDir, logger,
		repl.WithPrepare(flags.Prepare),
		repl.WithPrecision(r.Precision),
	)
}
