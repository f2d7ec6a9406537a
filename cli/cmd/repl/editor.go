package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/ardnew/infix/log"
)

const defaultEditor = "vi"

// editScriptCommand implements [tea.ExecCommand] for the session
// edit-apply-retry loop. It writes the session script to a temp file, opens
// the user's editor, and replays the result. If replay fails the user is
// prompted to re-edit.
type editScriptCommand struct {
	session *Session
	ctxFunc func() context.Context
	logger  log.Logger
	applied bool
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

// SetStdin sets the stdin reader for the command.
func (c *editScriptCommand) SetStdin(r io.Reader) { c.stdin = r }

// SetStdout sets the stdout writer for the command.
func (c *editScriptCommand) SetStdout(w io.Writer) { c.stdout = w }

// SetStderr sets the stderr writer for the command.
func (c *editScriptCommand) SetStderr(w io.Writer) { c.stderr = w }

// Run executes the edit-apply-retry loop. An emptied file cancels the edit.
// If the user declines to re-edit after an error, it returns
// [ErrEditDeclined] and the session is unchanged.
func (c *editScriptCommand) Run() error {
	ctx := c.ctxFunc()

	f, err := os.CreateTemp(os.TempDir(), "infix-repl-*.txt")
	if err != nil {
		return err
	}

	path := f.Name()

	defer os.Remove(path)

	if err := f.Close(); err != nil {
		return err
	}

	content := c.session.Script()

	for {
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			return err
		}

		data, err := runEditor(ctx, c.stdin, c.stdout, c.stderr, path)
		if err != nil {
			return err
		}

		if strings.TrimSpace(data) == "" {
			return nil
		}

		applyErr := c.session.Apply(data)

		c.logger.TraceContext(
			ctx,
			"editor apply attempt",
			slog.Int("content_length", len(data)),
			slog.Bool("success", applyErr == nil),
		)

		if applyErr == nil {
			c.applied = true

			return nil
		}

		fmt.Fprintf(c.stderr, "\nerror: %s\n", applyErr)
		fmt.Fprintf(c.stdout, "Re-edit? [Y/n] ")

		scanner := bufio.NewScanner(c.stdin)
		if !scanner.Scan() {
			return ErrEditDeclined
		}

		response := strings.TrimSpace(strings.ToLower(scanner.Text()))
		if response == "n" || response == "no" {
			return ErrEditDeclined
		}

		content = data
	}
}

// runEditor launches the user's editor on the file at path and returns the
// edited content.
func runEditor(
	ctx context.Context,
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
	path string,
) (string, error) {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = defaultEditor
	}

	cmd := exec.CommandContext(ctx, editor, path)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return string(data), nil
}
