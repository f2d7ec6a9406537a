// Package cmd implements the infix subcommands: eval, fmt, init and repl.
//
// Commands receive their shared state through the [context.Context] passed
// to Run: the parsed [kong.Context] ([WithContext]), the evaluation
// environment ([WithEnv]) and any expression source files
// ([WithSourceFiles]).
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the configuration file.
	ConfigIdentifier = "config"
)
