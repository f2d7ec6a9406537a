package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ardnew/infix/cli/cmd"
	"github.com/ardnew/infix/log"
)

// TestMain points the configuration and cache directories at a temporary
// directory before any test resolves them.
func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "infix-cli-test-*")
	if err != nil {
		panic(err)
	}

	os.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	os.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))

	log.Config(log.WithOutput(os.Stderr), log.WithLevel(log.LevelError))

	code := m.Run()

	os.RemoveAll(dir)
	os.Exit(code)
}

func noExit(int) {}

func TestRun(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "default_command", args: []string{"3+4*2"}},
		{name: "eval_command", args: []string{"eval", "--precision", "2", "sqrt(16)"}},
		{name: "bound_variable", args: []string{"--var", "x=5", "2x"}},
		{name: "registered_function", args: []string{"--func", "cube(x) = x^3", "cube(3)"}},
		{name: "fmt_postfix", args: []string{"fmt", "postfix", "3+4*2"}},
		{name: "undefined_variable", args: []string{"z+1"}, wantErr: cmd.ErrEvaluate},
		{name: "bad_binding", args: []string{"--var", "x", "1"}, wantErr: cmd.ErrBuildEnv},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Run(context.Background(), noExit, tt.args...)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Run(%q) error = %v", tt.args, err)
				}

				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Run(%q) error = %v, want %v", tt.args, err, tt.wantErr)
			}
		})
	}
}

func TestRun_ConfigFile(t *testing.T) {
	if err := mkdirAllRequired(); err != nil {
		t.Fatal(err)
	}

	path := configPath(baseConfig + extYAML)

	t.Cleanup(func() { os.Remove(path) })

	if err := Run(context.Background(), noExit, "init"); err != nil {
		t.Fatalf("Run(init) error = %v", err)
	}

	if err := Run(context.Background(), noExit, "init"); !errors.Is(err, cmd.ErrFileExists) {
		t.Fatalf("second Run(init) error = %v, want %v", err, cmd.ErrFileExists)
	}

	doc := "config:\n  var:\n    - w=4\n  func:\n    - half(x) = x/2\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := Run(context.Background(), noExit, "half(w)"); err != nil {
		t.Errorf("Run(half(w)) with config error = %v", err)
	}
}
