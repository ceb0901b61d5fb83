package vm

import (
	"git.sr.ht/~mango/smallstep/ast"
	"git.sr.ht/~mango/smallstep/vm/vars"
)

// Reducible reports whether e can take another step.  Only values are
// terminal; a variable always reduces, by looking itself up.
func Reducible(e ast.Expr) bool {
	switch e.(type) {
	case ast.Number, ast.Bool:
		return false
	case ast.Variable, ast.Add, ast.Mult, ast.LessThan:
		return true
	}
	panic("unreachable")
}

// ReduceExpr takes a single step on e.  Binary operators reduce their left
// operand until it is a value, then their right operand, and only then
// combine the two.  The environment is only read.
func ReduceExpr(e ast.Expr, env vars.Env) (ast.Expr, error) {
	switch e := e.(type) {
	case ast.Number, ast.Bool:
		return nil, &IrreducibleError{e}
	case ast.Variable:
		v, ok := env.Get(string(e))
		if !ok {
			return nil, &UndefinedError{string(e)}
		}
		return v, nil
	case ast.Add:
		return reduceBinary(e, e.Lhs, e.Rhs, env, func(l, r ast.Expr) ast.Expr {
			return ast.Add{Lhs: l, Rhs: r}
		})
	case ast.Mult:
		return reduceBinary(e, e.Lhs, e.Rhs, env, func(l, r ast.Expr) ast.Expr {
			return ast.Mult{Lhs: l, Rhs: r}
		})
	case ast.LessThan:
		return reduceBinary(e, e.Lhs, e.Rhs, env, func(l, r ast.Expr) ast.Expr {
			return ast.LessThan{Lhs: l, Rhs: r}
		})
	}
	panic("unreachable")
}

func reduceBinary(e, l, r ast.Expr, env vars.Env,
	rebuild func(l, r ast.Expr) ast.Expr) (ast.Expr, error) {
	switch {
	case Reducible(l):
		l, err := ReduceExpr(l, env)
		if err != nil {
			return nil, err
		}
		return rebuild(l, r), nil
	case Reducible(r):
		r, err := ReduceExpr(r, env)
		if err != nil {
			return nil, err
		}
		return rebuild(l, r), nil
	}

	// Neither side reduces, so both are values
	return Combine(e, l.(ast.Value), r.(ast.Value))
}
