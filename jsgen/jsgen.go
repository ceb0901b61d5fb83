// Package jsgen compiles terms into JavaScript.  Every term becomes an arrow
// function of the environment, a JS Map: expressions return their value and
// statements return the new environment, leaving their argument untouched.
package jsgen

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"git.sr.ht/~mango/smallstep/ast"
	"git.sr.ht/~mango/smallstep/vm/vars"
)

// UnsupportedError is returned for terms that have no translation
type UnsupportedError struct {
	Term ast.Node
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("‘%s’ can’t be compiled to JavaScript", e.Term)
}

// Compile translates n into the source of a JS function
func Compile(n ast.Node) (string, error) {
	switch n := n.(type) {
	case ast.Expr:
		return expr(n), nil
	case ast.Stmt:
		return stmt(n)
	}
	panic("unreachable")
}

// Script returns a complete program that applies the compiled n to env and
// logs the result, ready to be run with ‘node -e’
func Script(n ast.Node, env vars.Env) (string, error) {
	code, err := Compile(n)
	if err != nil {
		return "", err
	}
	entries := lo.Map(env.Names(), func(name string, _ int) string {
		v, _ := env.Get(name)
		return fmt.Sprintf("['%s', %s]", name, v)
	})
	return fmt.Sprintf("console.log((%s)(new Map([%s])))",
		code, strings.Join(entries, ", ")), nil
}

func expr(e ast.Expr) string {
	switch e := e.(type) {
	case ast.Number, ast.Bool:
		return fmt.Sprintf("(e) => { return %s; }", e)
	case ast.Variable:
		return fmt.Sprintf("(e) => { return e.get('%s'); }", string(e))
	case ast.Add:
		return binary(e.Lhs, "+", e.Rhs)
	case ast.Mult:
		return binary(e.Lhs, "*", e.Rhs)
	case ast.LessThan:
		return binary(e.Lhs, "<", e.Rhs)
	}
	panic("unreachable")
}

func binary(l ast.Expr, op string, r ast.Expr) string {
	return fmt.Sprintf("(e) => { return ((%s)(e)) %s ((%s)(e)); }", expr(l), op, expr(r))
}

func stmt(s ast.Stmt) (string, error) {
	switch s := s.(type) {
	case ast.DoNothing:
		return "(e) => { return e; }", nil
	case ast.Assign:
		return fmt.Sprintf("(e) => { const n_e = new Map(e); n_e.set('%s', ((%s)(e))); return n_e; }",
			s.Name, expr(s.Expr)), nil
	case ast.Seq:
		first, err := stmt(s.First)
		if err != nil {
			return "", err
		}
		second, err := stmt(s.Second)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(e) => { return (%s)((%s)(e)); }", second, first), nil
	case ast.If:
		body, err := stmt(s.Body)
		if err != nil {
			return "", err
		}
		alt, err := stmt(s.Else)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(e) => { if ((%s)(e)) { return (%s)(e); } else { return (%s)(e); } }",
			expr(s.Cond), body, alt), nil
	case ast.While:
		return "", &UnsupportedError{s}
	}
	panic("unreachable")
}
