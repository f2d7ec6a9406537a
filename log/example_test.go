package log_test

import (
	"log/slog"
	"os"

	"github.com/ardnew/infix/log"
)

func ExampleMake() {
	logger := log.Make(os.Stdout,
		log.WithTimeLayout("none"),
		log.WithPretty(false))

	logger.Info("evaluated", slog.String("expr", "3+4*2"), slog.Float64("result", 11))

	// Output:
	// level=INFO msg=evaluated expr=3+4*2 result=11
}

func ExampleLogger_With() {
	logger := log.Make(os.Stdout,
		log.WithFormat(log.FormatJSON),
		log.WithTimeLayout("none"))

	logger.With(slog.String("stage", "postfix")).Warn("unbalanced")

	// Output:
	// {"level":"WARN","msg":"unbalanced","stage":"postfix"}
}
