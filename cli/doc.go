// Package cli contains the command line interface for infix.
//
// # Usage
//
// Expressions given as arguments are evaluated by default:
//
//	infix '3 + 4 * 2'
//	infix --var x=2 --func 'sq(v) = v^2' 'sq(x) + 1'
//	infix fmt postfix '(1 + 2) * 3'
//	infix repl
//
// Expressions may also be read one per line from the files named with
// --file ("-" is standard input), or from standard input when no
// expression and no file is given.
//
// # Commands
//
//   - eval: evaluate expressions (default)
//   - fmt tokens: print the token sequence of an expression
//   - fmt postfix: print the postfix form of an expression
//   - repl: start an interactive session
//   - init: write the current flag values to the configuration file
//
// # Configuration
//
// Flag defaults are read from the "config" mapping of config.yaml in the
// user configuration directory ($XDG_CONFIG_HOME/infix). Keys are flag names
// without the leading dashes:
//
//	config:
//	  log-level: debug
//	  var: [x=2, y=3]
//	  right-pow: true
//
// # Logging Options
//
//   - --log-level: Set minimum log level
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --[no-]log-caller: Include caller information in log output
//   - --[no-]log-pretty: Colorize text output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o infix .
//
// The profiling flags are:
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/infix/pprof)
package cli
