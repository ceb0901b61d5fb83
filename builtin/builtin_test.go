package builtin

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"git.sr.ht/~mango/smallstep/ast"
)

func newTestSession() (*Session, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return NewSession(&stdout, &stderr), &stdout, &stderr
}

func assertEnv(t *testing.T, s *Session, want string) {
	t.Helper()
	if got := s.Env.String(); got != want {
		t.Fatalf("Expected environment %s but got %s", want, got)
	}
}

func TestInput(t *testing.T) {
	s, stdout, stderr := newTestSession()

	for _, l := range []string{"x = 1", "y = x + 2; x = x * 3"} {
		if n := s.Input(l); n != 0 {
			t.Fatalf("Expected ‘%s’ to succeed but got status %d: %s", l, n, stderr)
		}
	}
	assertEnv(t, s, "{x=3, y=3}")

	if n := s.Input("x < y"); n != 0 {
		t.Fatalf("Expected status 0 but got %d: %s", n, stderr)
	}
	if got := stdout.String(); got != "false\n" {
		t.Fatalf("Expected ‘false’ to be printed but got %q", got)
	}
}

func TestInputErrors(t *testing.T) {
	s, _, stderr := newTestSession()
	s.Input("x = 1")

	for _, l := range []string{"y = z", "if (x) { y = 1 }", "x = ", ":nope"} {
		stderr.Reset()
		if n := s.Input(l); n == 0 {
			t.Fatalf("Expected ‘%s’ to fail", l)
		}
		if stderr.Len() == 0 {
			t.Fatalf("Expected ‘%s’ to print an error", l)
		}
	}
	assertEnv(t, s, "{x=1}")
}

func TestUndo(t *testing.T) {
	s, _, _ := newTestSession()
	s.Input("x = 1")
	s.Input("x = 2; y = 3")
	s.Input("{}")
	assertEnv(t, s, "{x=2, y=3}")

	if s.History.Len() != 2 {
		t.Fatalf("Expected 2 environments in the history but got %d", s.History.Len())
	}

	if n := s.Run([]string{"undo"}); n != 0 {
		t.Fatalf("Expected status 0 but got %d", n)
	}
	assertEnv(t, s, "{x=1}")

	s.Run([]string{"undo"})
	assertEnv(t, s, "{}")

	if n := s.Run([]string{"undo"}); n != 1 {
		t.Fatalf("Expected undoing with an empty history to fail")
	}
}

func TestSetUnset(t *testing.T) {
	s, _, stderr := newTestSession()

	if n := s.Run([]string{"set", "x", "2", "*", "3"}); n != 0 {
		t.Fatalf("Expected status 0 but got %d: %s", n, stderr)
	}
	if n := s.Run([]string{"set", "b", "x < 7"}); n != 0 {
		t.Fatalf("Expected status 0 but got %d: %s", n, stderr)
	}
	assertEnv(t, s, "{b=true, x=6}")

	if n := s.Run([]string{"set", "if", "1"}); n != 1 {
		t.Fatalf("Expected a keyword to be rejected as a variable name")
	}
	if n := s.Run([]string{"set", "x"}); n != 1 {
		t.Fatalf("Expected a missing value to be a usage error")
	}

	if n := s.Run([]string{"unset", "b"}); n != 0 {
		t.Fatalf("Expected status 0 but got %d: %s", n, stderr)
	}
	assertEnv(t, s, "{x=6}")
	if n := s.Run([]string{"unset", "b"}); n != 1 {
		t.Fatalf("Expected unsetting an unbound variable to fail")
	}

	s.Run([]string{"reset"})
	assertEnv(t, s, "{}")
	s.Run([]string{"undo"})
	assertEnv(t, s, "{x=6}")
}

func TestTrace(t *testing.T) {
	s, stdout, stderr := newTestSession()

	s.Run([]string{"trace", "on"})
	if !s.Trace {
		t.Fatalf("Expected tracing to be on")
	}
	if got := stdout.String(); got != "tracing is on\n" {
		t.Fatalf("Expected ‘tracing is on’ but got %q", got)
	}

	s.Input("x = 1 + 2")
	want := "x = 1 + 2, {}\nx = 3, {}\n"
	if got := stderr.String(); got != want {
		t.Fatalf("Expected trace %q but got %q", want, got)
	}

	s.Run([]string{"trace"})
	if s.Trace {
		t.Fatalf("Expected ‘trace’ to toggle tracing off")
	}
	if n := s.Run([]string{"trace", "maybe"}); n != 1 {
		t.Fatalf("Expected a bad argument to be a usage error")
	}
}

func TestEnvAndHelp(t *testing.T) {
	s, stdout, _ := newTestSession()
	s.Input("b = 2; a = 1")

	s.Input(":env")
	if got := stdout.String(); got != "{a=1, b=2}\n" {
		t.Fatalf("Expected the environment to be printed but got %q", got)
	}

	stdout.Reset()
	s.Run([]string{"help"})
	names := strings.Fields(stdout.String())
	if len(names) != len(Commands) || names[0] != ":env" {
		t.Fatalf("Expected a sorted list of %d commands but got %v", len(Commands), names)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "prog.ss")
	yml := filepath.Join(dir, "loop.yaml")

	if err := os.WriteFile(src, []byte("x = 0;\nif (x < 1) { y = 5 } else { y = 6 }\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	loop := `env:
  lim: 3
stmt:
  while:
    cond: {lt: [x, lim]}
    do:
      assign: {name: x, value: {add: [x, 1]}}
`
	if err := os.WriteFile(yml, []byte(loop), 0o644); err != nil {
		t.Fatal(err)
	}

	s, _, stderr := newTestSession()
	if n := s.Run([]string{"load", src, yml}); n != 0 {
		t.Fatalf("Expected status 0 but got %d: %s", n, stderr)
	}
	assertEnv(t, s, "{lim=3, x=3, y=5}")

	if n := s.Run([]string{"load", filepath.Join(dir, "missing")}); n != 1 {
		t.Fatalf("Expected loading a missing file to fail")
	}
}

func TestParseSource(t *testing.T) {
	p, err := ParseSource("1 + x")
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if p.Expr != (ast.Add{ast.Number(1), ast.Variable("x")}) {
		t.Fatalf("Expected an expression but got %v", p.Term())
	}

	p, err = ParseSource("x = 1")
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if p.Stmt != (ast.Assign{"x", ast.Number(1)}) {
		t.Fatalf("Expected a statement but got %v", p.Term())
	}

	if _, err = ParseSource("x = = 1"); err == nil {
		t.Fatalf("Expected an error")
	}
}

func TestLoadFailureKeepsEnv(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yml")
	doc := "env: {a: 1}\nstmt:\n  assign: {name: b, value: {add: [a, nope]}}\n"
	if err := os.WriteFile(bad, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	s, _, _ := newTestSession()
	s.Input("x = 7")
	if err := s.Load(bad); err == nil {
		t.Fatalf("Expected loading ‘%s’ to fail", bad)
	}
	assertEnv(t, s, "{x=7}")
	if s.History.Len() != 1 {
		t.Fatalf("Expected 1 environment in the history but got %d", s.History.Len())
	}
}

func TestLoadExprKeepsBindings(t *testing.T) {
	dir := t.TempDir()
	yml := filepath.Join(dir, "sum.yaml")
	if err := os.WriteFile(yml, []byte("env: {a: 2}\nexpr: {mul: [a, 21]}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, stdout, _ := newTestSession()
	if err := s.Load(yml); err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if got := stdout.String(); got != "42\n" {
		t.Fatalf("Expected ‘42’ to be printed but got %q", got)
	}
	assertEnv(t, s, "{a=2}")
}

func TestExecEval(t *testing.T) {
	s, _, _ := newTestSession()

	if err := s.Exec(ast.Assign{"x", ast.Number(3)}); err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if err := s.Exec(ast.Assign{"y", ast.Variable("nope")}); err == nil {
		t.Fatalf("Expected an unbound variable to be an error")
	}
	assertEnv(t, s, "{x=3}")
	if s.History.Len() != 1 {
		t.Fatalf("Expected only the successful statement in the history but got %d", s.History.Len())
	}

	v, err := s.Eval(ast.Mult{ast.Variable("x"), ast.Variable("x")})
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if v != ast.Number(9) {
		t.Fatalf("Expected 9 but got %s", v)
	}
}

func TestParseSourceErrors(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1 +", "Expected expression"},
		{"(x < 2", "Expected closing parenthesis"},
		{"x = = 1", "Expected expression"},
		{"x 1", "Expected end of input"},
		{"if x", "Expected ‘(’"},
	}

	for _, tt := range tests {
		_, err := ParseSource(tt.src)
		if err == nil {
			t.Fatalf("Expected ‘%s’ to fail", tt.src)
		}
		if !strings.HasPrefix(err.Error(), tt.want) {
			t.Errorf("Expected the error for ‘%s’ to start with ‘%s’ but got ‘%s’",
				tt.src, tt.want, err)
		}
	}
}
