package repl

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestHistoryPersistence(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), baseHistory)

	h := NewHistory(path)
	if err := h.Load(); err != nil {
		t.Fatalf("Load() on missing file error = %v", err)
	}

	for _, e := range []HistoryEntry{
		{Line: "1+2", Mode: modeEval},
		{Line: "vars", Mode: modeCtrl},
		{Line: "x = 3", Mode: modeEval},
		{Line: "1+2", Mode: modeEval}, // moves to the end
		{Line: "1+2", Mode: modeEval}, // repeated last entry is ignored
		{Line: "   ", Mode: modeEval}, // blank is ignored
	} {
		if err := h.Add(e.Line, e.Mode); err != nil {
			t.Fatalf("Add(%q) error = %v", e.Line, err)
		}
	}

	want := []HistoryEntry{
		{Line: "vars", Mode: modeCtrl},
		{Line: "x = 3", Mode: modeEval},
		{Line: "1+2", Mode: modeEval},
	}

	if got := h.Entries(); !slices.Equal(got, want) {
		t.Errorf("Entries() = %v, want %v", got, want)
	}

	reloaded := NewHistory(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := reloaded.Entries(); !slices.Equal(got, want) {
		t.Errorf("reloaded Entries() = %v, want %v", got, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if got, wantFile := string(data), "C:vars\nE:x = 3\nE:1+2\n"; got != wantFile {
		t.Errorf("history file = %q, want %q", got, wantFile)
	}
}

func TestHistoryUnprefixedLines(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), baseHistory)
	if err := os.WriteFile(path, []byte("2*3\nC:help\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	h := NewHistory(path)
	if err := h.Load(); err != nil {
		t.Fatal(err)
	}

	want := []HistoryEntry{{Line: "2*3", Mode: modeEval}, {Line: "help", Mode: modeCtrl}}
	if got := h.Entries(); !slices.Equal(got, want) {
		t.Errorf("Entries() = %v, want %v", got, want)
	}
}

func TestHistoryInMemory(t *testing.T) {
	t.Parallel()

	h := NewHistory("")

	if err := h.Load(); err != nil {
		t.Fatal(err)
	}

	if err := h.Add("1", modeEval); err != nil {
		t.Fatal(err)
	}

	if h.Len() != 1 {
		t.Errorf("Len() = %d, want 1", h.Len())
	}

	if _, err := h.Entry(1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Entry(1) error = %v, want %v", err, ErrOutOfBounds)
	}
}
