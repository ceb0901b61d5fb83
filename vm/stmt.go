package vm

import (
	"git.sr.ht/~mango/smallstep/ast"
	"git.sr.ht/~mango/smallstep/vm/vars"
)

// ReducibleStmt reports whether s can take another step.  Every statement
// except DoNothing can.
func ReducibleStmt(s ast.Stmt) bool {
	switch s.(type) {
	case ast.DoNothing:
		return false
	case ast.Assign, ast.Seq, ast.If, ast.While:
		return true
	}
	panic("unreachable")
}

// ReduceStmt takes a single step on s, returning the statement left to run
// and the environment to run it in.  The env passed in is never modified;
// assignments build a new environment instead.
func ReduceStmt(s ast.Stmt, env vars.Env) (ast.Stmt, vars.Env, error) {
	switch s := s.(type) {
	case ast.DoNothing:
		return nil, env, &IrreducibleError{s}

	case ast.Assign:
		if Reducible(s.Expr) {
			e, err := ReduceExpr(s.Expr, env)
			if err != nil {
				return nil, env, err
			}
			return ast.Assign{Name: s.Name, Expr: e}, env, nil
		}
		return ast.DoNothing{}, env.With(s.Name, s.Expr.(ast.Value)), nil

	case ast.Seq:
		if !ReducibleStmt(s.First) {
			return s.Second, env, nil
		}
		first, next, err := ReduceStmt(s.First, env)
		if err != nil {
			return nil, env, err
		}
		return ast.Seq{First: first, Second: s.Second}, next, nil

	case ast.If:
		if Reducible(s.Cond) {
			c, err := ReduceExpr(s.Cond, env)
			if err != nil {
				return nil, env, err
			}
			return ast.If{Cond: c, Body: s.Body, Else: s.Else}, env, nil
		}
		ok, err := Truth(s.Cond.(ast.Value), s)
		switch {
		case err != nil:
			return nil, env, err
		case ok:
			return s.Body, env, nil
		default:
			return s.Else, env, nil
		}

	case ast.While:
		// Unfold once into a conditional that runs the body and then this
		// very loop again.  The condition is left for the If to decide.
		return ast.If{
			Cond: s.Cond,
			Body: ast.Seq{First: s.Body, Second: s},
			Else: ast.DoNothing{},
		}, env, nil
	}
	panic("unreachable")
}
