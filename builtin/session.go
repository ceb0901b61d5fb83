package builtin

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"git.sr.ht/~mango/smallstep/ast"
	"git.sr.ht/~mango/smallstep/lexer"
	"git.sr.ht/~mango/smallstep/parser"
	"git.sr.ht/~mango/smallstep/termfile"
)

// Exec runs stmt in the session environment.  On success the old environment
// is kept on the history stack.
func (s *Session) Exec(stmt ast.Stmt) error {
	env, err := s.machine().RunStmt(stmt, s.Env)
	if err != nil {
		return err
	}
	s.commit(env)
	return nil
}

// Eval evaluates e in the session environment, which it never changes
func (s *Session) Eval(e ast.Expr) (ast.Value, error) {
	return s.machine().RunExpr(e, s.Env)
}

// Input handles one line of REPL input.  Lines starting with a colon are
// meta-commands, anything else is run as a statement or evaluated as an
// expression.
func (s *Session) Input(line string) uint8 {
	if cmd, ok := strings.CutPrefix(strings.TrimSpace(line), ":"); ok {
		return s.Run(strings.Fields(cmd))
	}

	p, err := ParseSource(line)
	if err != nil {
		fmt.Fprintln(s.Stderr, err)
		return 1
	}
	if err = s.run(p); err != nil {
		fmt.Fprintln(s.Stderr, err)
		return 1
	}
	return 0
}

// Load runs the program in the file at path
func (s *Session) Load(path string) error {
	p, err := ReadProgram(path, false)
	if err != nil {
		return err
	}
	return s.run(p)
}

// run runs p in the session environment extended with the bindings p
// carries.  Nothing is kept unless the run succeeds.
func (s *Session) run(p termfile.Program) error {
	env := s.Env
	p.Env.Each(func(name string, v ast.Value) {
		env = env.With(name, v)
	})

	if p.Expr != nil {
		v, err := s.machine().RunExpr(p.Expr, env)
		if err != nil {
			return err
		}
		s.commit(env)
		fmt.Fprintln(s.Stdout, v)
		return nil
	}

	env, err := s.machine().RunStmt(p.Stmt, env)
	if err != nil {
		return err
	}
	s.commit(env)
	return nil
}

// ParseSource parses src as a program in the concrete syntax, or failing
// that as a lone expression.  If neither parses, the error reported is the
// one for whichever src looks more like.
func ParseSource(src string) (termfile.Program, error) {
	stmt, err := parser.String(src)
	if err == nil {
		return termfile.Program{Stmt: stmt}, nil
	}
	e, eerr := parser.ExprString(src)
	switch {
	case eerr == nil:
		return termfile.Program{Expr: e}, nil
	case !looksLikeStmt(src):
		err = eerr
	}
	return termfile.Program{}, err
}

// looksLikeStmt reports whether src starts the way a statement does: with a
// keyword or brace, or with a name followed by ‘=’
func looksLikeStmt(src string) bool {
	toks := lexer.Lex(src)
	defer func() {
		for range toks {
		}
	}()

	switch t := <-toks; t.Kind {
	case lexer.TokIdent:
		return (<-toks).Kind == lexer.TokAssign
	case lexer.TokNumber, lexer.TokTrue, lexer.TokFalse, lexer.TokPOpen:
		return false
	}
	return true
}

// IsTermFile reports whether path names a YAML term file
func IsTermFile(path string) bool {
	switch filepath.Ext(path) {
	case ".yml", ".yaml":
		return true
	}
	return false
}

// ReadProgram reads the program in the file at path.  Files are in the
// concrete syntax unless asYAML is set or the name ends in ‘.yml’ or
// ‘.yaml’.
func ReadProgram(path string, asYAML bool) (termfile.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return termfile.Program{}, err
	}

	var p termfile.Program
	if asYAML || IsTermFile(path) {
		p, err = termfile.Decode(data)
	} else {
		p, err = ParseSource(string(data))
	}
	if err != nil {
		return termfile.Program{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
