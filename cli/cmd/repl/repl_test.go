package repl

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/infix/lang"
	"github.com/ardnew/infix/log"
)

func newTestModel(t *testing.T) model {
	t.Helper()

	return newModel(
		context.Background(),
		NewSession(lang.NewEnv()),
		NewHistory(""),
		log.Discard(),
	)
}

func typeLine(m model, line string) model {
	m.input.SetValue(line)
	m.input.SetCursor(len(line))

	m, _ = m.executeInput()

	return m
}

func TestModelExecuteInput(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	m = typeLine(m, "r = 3")
	m = typeLine(m, "def twice(x) = 2*x")
	m = typeLine(m, "twice(r)")

	if v, ok := m.session.Env().Variable("r"); !ok || v != 3 {
		t.Errorf("variable r = %v, %v; want 3, true", v, ok)
	}

	if _, ok := m.session.Env().Function("twice"); !ok {
		t.Error("function twice not registered")
	}

	if m.input.Value() != "" {
		t.Errorf("input = %q after execute, want empty", m.input.Value())
	}

	if got := m.history.Len(); got != 3 {
		t.Errorf("history length = %d, want 3", got)
	}
}

func TestModelCommands(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = typeLine(m, "x = 1")
	m = typeLine(m, ":unset x")

	if _, ok := m.session.Env().Variable("x"); ok {
		t.Error(":unset x left x bound")
	}

	m = m.switchToMode(modeCtrl)
	m.input.SetValue("quit")

	m, cmd := m.executeInput()
	if !m.quitting || cmd == nil {
		t.Errorf("quit: quitting = %v, cmd nil = %v", m.quitting, cmd == nil)
	}

	entry, err := m.history.Entry(m.history.Len() - 1)
	if err != nil || entry.Mode != modeCtrl || entry.Line != "quit" {
		t.Errorf("last history entry = %+v, %v; want ctrl quit", entry, err)
	}
}

func TestModelHistoryNavigation(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = typeLine(m, "1+1")

	m = m.switchToMode(modeCtrl)
	m = typeLine(m, "vars")
	m = m.switchToMode(modeEval)

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyUp})
	if m.mode != modeCtrl || m.input.Value() != "vars" {
		t.Errorf("Up: mode %v input %q, want ctrl %q", m.mode, m.input.Value(), "vars")
	}

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyUp})
	if m.mode != modeEval || m.input.Value() != "1+1" {
		t.Errorf("Up: mode %v input %q, want eval %q", m.mode, m.input.Value(), "1+1")
	}

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyShiftDown})
	if m.input.Value() != "" || m.historyIdx != m.history.Len() {
		t.Errorf("Shift+Down past end: input %q index %d", m.input.Value(), m.historyIdx)
	}
}

func TestModelHistoryWithinMode(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = typeLine(m, "1+1")

	m = m.switchToMode(modeCtrl)
	m = typeLine(m, "vars")
	m = m.switchToMode(modeEval)
	m = typeLine(m, "2*3")

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyShiftUp})
	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyShiftUp})
	if m.mode != modeEval || m.input.Value() != "1+1" {
		t.Errorf("Shift+Up twice: mode %v input %q, want eval %q", m.mode, m.input.Value(), "1+1")
	}

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyShiftUp})
	if m.mode != modeEval || m.input.Value() != "1+1" {
		t.Errorf("Shift+Up past oldest: mode %v input %q, want eval %q", m.mode, m.input.Value(), "1+1")
	}

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyDown})
	if m.mode != modeCtrl || m.input.Value() != "vars" {
		t.Errorf("Down: mode %v input %q, want ctrl %q", m.mode, m.input.Value(), "vars")
	}
}

func TestModelCompletion(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.input.SetValue("1+sq")
	m.input.SetCursor(4)
	refreshMatches(&m, false)

	if len(m.matches) == 0 || m.matches[0].Str != "sqrt" {
		t.Fatalf("matches = %v, want sqrt first", m.matches)
	}

	m = m.cycle(1)
	if got := m.input.Value(); got != "1+sqrt" {
		t.Errorf("after Tab input = %q, want %q", got, "1+sqrt")
	}
}
