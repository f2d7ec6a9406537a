// Package log provides a small leveled logging interface based on
// [log/slog].
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("evaluated", slog.Float64("result", 7))
//
// # Configuration
//
// Loggers are configured with functional options at creation time:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelTrace),
//		log.WithFormat(log.FormatText),
//		log.WithTimeLayout("kitchen"))
//
// A configured logger can be derived into another with [Logger.Wrap], and
// persistent attributes are added with [Logger.With].
//
// # Default Logger
//
// The package-level functions ([Info], [DebugContext], ...) write to a default
// logger that the command line reconfigures with [Config].
//
// # Levels
//
// Five levels are supported: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn], and [LevelError]. The expression pipeline logs each stage at
// [LevelTrace].
package log
