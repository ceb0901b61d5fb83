// Package bigstep evaluates terms directly by structural recursion, without
// exposing any of the intermediate states the vm package steps through.  It
// shares the primitive operations and error types of the vm package so that
// both strategies fail the same way on the same programs.
package bigstep

import (
	"fmt"

	"git.sr.ht/~mango/smallstep/ast"
	"git.sr.ht/~mango/smallstep/vm"
	"git.sr.ht/~mango/smallstep/vm/vars"
)

// UnsupportedError is returned for terms this evaluator has no rule for
type UnsupportedError struct {
	Term ast.Node
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("‘%s’ can’t be evaluated in big steps", e.Term)
}

// Eval computes the value of e in env
func Eval(e ast.Expr, env vars.Env) (ast.Value, error) {
	switch e := e.(type) {
	case ast.Number:
		return e, nil
	case ast.Bool:
		return e, nil
	case ast.Variable:
		v, ok := env.Get(string(e))
		if !ok {
			return nil, &vm.UndefinedError{Name: string(e)}
		}
		return v, nil
	case ast.Add:
		return binary(e, e.Lhs, e.Rhs, env)
	case ast.Mult:
		return binary(e, e.Lhs, e.Rhs, env)
	case ast.LessThan:
		return binary(e, e.Lhs, e.Rhs, env)
	}
	panic("unreachable")
}

func binary(e, l, r ast.Expr, env vars.Env) (ast.Value, error) {
	x, err := Eval(l, env)
	if err != nil {
		return nil, err
	}
	y, err := Eval(r, env)
	if err != nil {
		return nil, err
	}
	return vm.Combine(e, x, y)
}

// Exec runs s in env and returns the resulting environment.  Like the
// machine, it never modifies env.
func Exec(s ast.Stmt, env vars.Env) (vars.Env, error) {
	switch s := s.(type) {
	case ast.DoNothing:
		return env, nil
	case ast.Assign:
		v, err := Eval(s.Expr, env)
		if err != nil {
			return env, err
		}
		return env.With(s.Name, v), nil
	case ast.Seq:
		next, err := Exec(s.First, env)
		if err != nil {
			return env, err
		}
		return Exec(s.Second, next)
	case ast.If:
		v, err := Eval(s.Cond, env)
		if err != nil {
			return env, err
		}
		ok, err := vm.Truth(v, s)
		switch {
		case err != nil:
			return env, err
		case ok:
			return Exec(s.Body, env)
		default:
			return Exec(s.Else, env)
		}
	case ast.While:
		return env, &UnsupportedError{s}
	}
	panic("unreachable")
}
