package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/ardnew/infix/lang"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// Env holds the flags that shape the evaluation environment shared by every
// command.
type Env struct {
	Var       []string `help:"Bind a variable before evaluation."           placeholder:"NAME=VALUE"  sep:"none" short:"v"`
	Func      []string `help:"Register a unary function of one parameter."  placeholder:"NAME(X)=BODY" sep:"none"`
	RightPow  bool     `help:"Group exponentiation right to left."                                               negatable:""`
	FoldSigns bool     `help:"Rewrite each '--' as '+' before evaluation."                                       negatable:""`
}

// Group returns the kong group for the environment flags.
func (Env) Group() kong.Group {
	var group kong.Group

	group.Key = "env"
	group.Title = "Environment options"

	return group
}

// Build returns a new [lang.Env] with the configured variables bound and
// functions registered. Variables are bound first so that function bodies
// may refer to them.
func (e Env) Build(opts ...lang.Option) (*lang.Env, error) {
	env := lang.NewEnv(
		append([]lang.Option{lang.RightAssociativePow(e.RightPow)}, opts...)...,
	)

	for _, v := range e.Var {
		name, value, err := lang.ParseBinding(v)
		if err != nil {
			return nil, ErrBuildEnv.With(slog.String("var", v)).Wrap(err)
		}

		env.BindVariable(name, value)
	}

	for _, f := range e.Func {
		if _, err := env.Define(f); err != nil {
			return nil, ErrBuildEnv.With(slog.String("func", f)).Wrap(err)
		}
	}

	return env, nil
}

// Prepare applies the configured input rewrites to an expression.
func (e Env) Prepare(text string) string {
	if e.FoldSigns {
		text = strings.ReplaceAll(text, "--", "+")
	}

	return text
}

type (
	envKey     struct{}
	envSession struct {
		flags Env
		env   *lang.Env
	}
)

// WithEnv returns a new context.Context carrying the evaluation environment
// env and the flags it was built from.
func WithEnv(ctx context.Context, flags Env, env *lang.Env) context.Context {
	return context.WithValue(ctx, envKey{}, envSession{flags: flags, env: env})
}

// envFrom retrieves the environment stored in ctx by [WithEnv]. If none was
// stored, it returns a new seeded environment and zero flags.
func envFrom(ctx context.Context) (Env, *lang.Env) {
	s, ok := ctx.Value(envKey{}).(envSession)
	if !ok || s.env == nil {
		return Env{}, lang.NewEnv()
	}

	return s.flags, s.env
}

type (
	sourceFilesKey struct{}
	sourceFiles    struct {
		io.Reader

		files    []*os.File
		hasStdin bool
	}

	// SourceFiles reads the concatenated contents of one or more expression
	// source files.
	SourceFiles interface {
		io.ReadCloser
		IsZero() bool
	}
)

// IsZero reports whether there are no source files.
func (s *sourceFiles) IsZero() bool { return len(s.files) == 0 && !s.hasStdin }

// Close closes every opened file. Stdin is left open.
func (s *sourceFiles) Close() error {
	var errs []error

	for _, f := range s.files {
		errs = append(errs, f.Close())
	}

	s.files = nil

	return errors.Join(errs...)
}

// fileKey uniquely identifies a file by its device and inode numbers.
// This handles deduplication across symlinks, absolute/relative paths, and
// special device files.
type fileKey struct {
	dev uint64
	ino uint64
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// WithSourceFiles returns a new context.Context containing a [SourceFiles]
// that reads from the given source files.
//
// Files are deduplicated by resolving symlinks and comparing device/inode
// pairs. All occurrences of "-" are replaced with a single stdin reader placed
// last so it reads after all regular files.
func WithSourceFiles(ctx context.Context, sources []string) context.Context {
	return context.WithValue(ctx, sourceFilesKey{}, buildSourceFiles(sources))
}

// buildSourceFiles constructs a SourceFiles from the given source paths.
func buildSourceFiles(sources []string) SourceFiles {
	if len(sources) == 0 {
		return nil
	}

	var srcs sourceFiles

	seen := make(map[fileKey]struct{})

	stdinInfo, _ := os.Stdin.Stat()
	stdinKey, _ := makeFileKey(stdinInfo)

	for _, src := range sources {
		if src == stdinSource {
			seen[stdinKey] = struct{}{}

			continue
		}

		file, ok := openUniqueFile(src, seen)
		if !ok {
			continue
		}

		srcs.files = append(srcs.files, file)
	}

	// Stdin may have been included via "-" or as a named file.
	// Both of which will be represented by stdinKey in seen.
	_, srcs.hasStdin = seen[stdinKey]

	if srcs.IsZero() {
		return nil
	}

	readers := make([]io.Reader, 0, len(srcs.files)+1)
	for _, f := range srcs.files {
		readers = append(readers, f)
	}

	if srcs.hasStdin {
		readers = append(readers, os.Stdin)
	}

	srcs.Reader = io.MultiReader(readers...)

	return &srcs
}

// openUniqueFile opens the file at path if it hasn't been seen before.
// It resolves symlinks and uses device/inode to detect duplicates.
func openUniqueFile(path string, seen map[fileKey]struct{}) (*os.File, bool) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, false
	}

	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return nil, false
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return nil, false
	}

	key, ok := makeFileKey(info)
	if !ok {
		return nil, false
	}

	if _, exists := seen[key]; exists {
		return nil, false
	}

	seen[key] = struct{}{}

	file, err := os.Open(resolved)
	if err != nil {
		return nil, false
	}

	return file, true
}

// makeFileKey creates a fileKey from os.FileInfo.
// Returns false if the underlying Sys() data is not of type *syscall.Stat_t.
func makeFileKey(info os.FileInfo) (key fileKey, ok bool) {
	if info == nil {
		return key, false
	}

	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true
}

// sourceFilesFrom retrieves the SourceFiles stored in ctx by WithSourceFiles.
// Returns nil if none was stored.
func sourceFilesFrom(ctx context.Context) SourceFiles {
	r, _ := ctx.Value(sourceFilesKey{}).(SourceFiles)

	return r
}
