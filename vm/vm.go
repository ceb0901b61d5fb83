package vm

import (
	"fmt"

	"git.sr.ht/~mango/smallstep/ast"
	"git.sr.ht/~mango/smallstep/vm/vars"
)

// Step is a state of the machine: the term left to reduce and the
// environment it is reduced in
type Step struct {
	Term ast.Node
	Env  vars.Env
}

func (s Step) String() string {
	return fmt.Sprintf("%s, %s", s.Term, s.Env)
}

// Machine reduces terms one step at a time until they are terminal.  The
// zero Machine is ready to use.
type Machine struct {
	// Trace, if set, is called with every state right before it is reduced.
	// Terminal states are not traced.
	Trace func(Step)
}

func (m Machine) trace(t ast.Node, env vars.Env) {
	if m.Trace != nil {
		m.Trace(Step{t, env})
	}
}

// RunExpr reduces e to a value.  The environment is only read.
func (m Machine) RunExpr(e ast.Expr, env vars.Env) (ast.Value, error) {
	for Reducible(e) {
		m.trace(e, env)

		var err error
		if e, err = ReduceExpr(e, env); err != nil {
			return nil, err
		}
	}
	return e.(ast.Value), nil
}

// RunStmt reduces s to DoNothing and returns the final environment.  A loop
// whose condition never becomes false keeps RunStmt running forever; callers
// wanting a bound must drive ReduceStmt themselves.
func (m Machine) RunStmt(s ast.Stmt, env vars.Env) (vars.Env, error) {
	for ReducibleStmt(s) {
		m.trace(s, env)

		var err error
		if s, env, err = ReduceStmt(s, env); err != nil {
			return env, err
		}
	}
	return env, nil
}

// RunExpr reduces e without tracing
func RunExpr(e ast.Expr, env vars.Env) (ast.Value, error) {
	return Machine{}.RunExpr(e, env)
}

// RunStmt reduces s without tracing
func RunStmt(s ast.Stmt, env vars.Env) (vars.Env, error) {
	return Machine{}.RunStmt(s, env)
}
