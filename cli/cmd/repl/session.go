package repl

import (
	"bufio"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/ardnew/infix/lang"
)

// definePrefix introduces a function definition on an input line.
const definePrefix = "def "

// statementKind classifies a line that changes the session environment.
type statementKind int

const (
	stmtAssign statementKind = iota
	stmtDefine
)

// statement is a recorded assignment or definition, kept so that the session
// can be rendered as a script and replayed.
type statement struct {
	name   string
	source string
	kind   statementKind
}

// Session is the evaluation state of an interactive session: the environment
// that lines are evaluated in and the assignments and definitions made so far.
type Session struct {
	config

	base  *lang.Env
	env   *lang.Env
	stmts []statement
}

// NewSession returns a Session evaluating in env. The state of env at the
// time of the call is the starting point that [Session.Apply] replays from.
func NewSession(env *lang.Env, opts ...Option) *Session {
	if env == nil {
		env = lang.NewEnv()
	}

	return &Session{
		config: makeConfig(opts...),
		base:   env.Clone(),
		env:    env,
	}
}

// Env returns the current evaluation environment.
func (s *Session) Env() *lang.Env { return s.env }

// Exec runs one line of input and returns the text to display.
//
// A line of the form "def name(x) = body" registers a function, a line of the
// form "name = expr" binds a variable, and any other line is evaluated as an
// expression.
func (s *Session) Exec(line string) (string, error) {
	stmt, out, err := s.exec(line)
	if err != nil {
		return "", err
	}

	if stmt != nil {
		s.record(*stmt)
	}

	return out, nil
}

func (s *Session) exec(line string) (*statement, string, error) {
	line = strings.TrimSpace(line)
	if s.prepare != nil {
		line = s.prepare(line)
	}

	if text, ok := strings.CutPrefix(line, definePrefix); ok {
		text = strings.TrimSpace(text)

		name, err := s.env.Define(text)
		if err != nil {
			return nil, "", err
		}

		return &statement{name: name, source: definePrefix + text, kind: stmtDefine},
			name + " defined", nil
	}

	if isAssignment(line) {
		name, v, err := s.env.Assign(line)
		if err != nil {
			return nil, "", err
		}

		return &statement{name: name, source: line, kind: stmtAssign},
			name + " = " + s.format(v), nil
	}

	v, err := s.env.Eval(line)
	if err != nil {
		return nil, "", err
	}

	return nil, s.format(v), nil
}

// isAssignment reports whether line has the form "name = expr".
func isAssignment(line string) bool {
	lhs, _, ok := strings.Cut(line, "=")

	return ok && lang.IsIdentifier(strings.TrimSpace(lhs))
}

// record replaces any earlier statement for the same name with stmt.
func (s *Session) record(stmt statement) {
	s.stmts = slices.DeleteFunc(s.stmts, func(o statement) bool {
		return o.name == stmt.name
	})
	s.stmts = append(s.stmts, stmt)
}

func (s *Session) format(v float64) string {
	return strconv.FormatFloat(v, 'f', s.precision, 64)
}

// Unset removes the variable name from the session.
func (s *Session) Unset(name string) error {
	if !s.env.UnbindVariable(name) {
		return fmt.Errorf("%w: %s", ErrUnboundVariable, name)
	}

	s.stmts = slices.DeleteFunc(s.stmts, func(o statement) bool {
		return o.kind == stmtAssign && o.name == name
	})

	return nil
}

// Variables returns one "name = value" line per bound variable, sorted by
// name.
func (s *Session) Variables() []string {
	names := s.env.Variables()
	lines := make([]string, 0, len(names))

	for _, name := range names {
		v, _ := s.env.Variable(name)
		lines = append(lines, name+" = "+s.format(v))
	}

	return lines
}

// Functions returns the signature of each registered function, sorted by
// name.
func (s *Session) Functions() []string {
	names := s.env.Functions()
	lines := make([]string, 0, len(names))

	for _, name := range names {
		lines = append(lines, s.signature(name))
	}

	return lines
}

// Script renders the assignments and definitions of the session, one per
// line, in the order they were last made.
func (s *Session) Script() string {
	var b strings.Builder

	b.WriteString("# One assignment (name = expr) or definition (def name(x) = body) per line.\n")

	for _, stmt := range s.stmts {
		b.WriteString(stmt.source)
		b.WriteByte('\n')
	}

	return b.String()
}

// Apply replaces the session state with the result of replaying script on
// the starting environment. Blank lines and lines beginning with '#' are
// skipped. On error the session is left unchanged.
func (s *Session) Apply(script string) error {
	env := s.base.Clone()
	replay := &Session{config: s.config, base: s.base, env: env}

	scanner := bufio.NewScanner(strings.NewReader(script))

	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		stmt, _, err := replay.exec(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}

		if stmt != nil {
			replay.record(*stmt)
		}
	}

	if err := scanner.Err(); err != nil {
		return err
	}

	s.env = env
	s.stmts = replay.stmts

	return nil
}
