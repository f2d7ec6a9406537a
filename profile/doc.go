// Package profile provides optional runtime profiling for infix.
//
// Profiling is compiled in only with the "pprof" build tag:
//
//	go build -tags pprof ./...
//
// Without the tag every [Config] starts a no-op profiler and [Modes] is empty.
//
// # Modes
//
// With the tag, [Modes] lists the supported modes: allocs, block, clock, cpu,
// goroutine, heap, mem, mutex, thread, and trace. Each writes a profile named
// after the mode (for example, cpu.pprof) into the configured directory.
//
// # Command-Line Usage
//
//	infix --pprof-mode cpu eval '2^0.5'
//	infix --pprof-mode heap --pprof-dir ./profiles repl
//
// The default output directory is the pprof directory under the user cache
// directory, for example $XDG_CACHE_HOME/infix/pprof.
//
// Inspect the results with the pprof tool:
//
//	go tool pprof -http=: ./profiles/cpu.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
