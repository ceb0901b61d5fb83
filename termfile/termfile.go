// Package termfile reads and writes terms as YAML documents.  It is the one
// way into the system for programs the concrete syntax can’t express, such
// as loops.  A document looks like this:
//
//	env:
//	  x: 0
//	stmt:
//	  while:
//	    cond: {lt: [x, 4]}
//	    do:
//	      assign: {name: x, value: {add: [x, 1]}}
//
// Expressions are integers, booleans, variable names, {var: name}, or one of
// {add: [l, r]}, {mul: [l, r]} and {lt: [l, r]}.  Statements are ‘skip’,
// {assign: {name, value}}, {seq: [s...]}, {if: {cond, then, else}} and
// {while: {cond, do}}.  A document holds either an expr or a stmt.
package termfile

import (
	"errors"
	"fmt"

	"git.sr.ht/~mango/smallstep/ast"
	"git.sr.ht/~mango/smallstep/vm/vars"
)

// Program is a term together with the environment to run it in
type Program struct {
	Env  vars.Env
	Expr ast.Expr // Set when the document holds an expression
	Stmt ast.Stmt // Set when the document holds a statement
}

// Term returns whichever of Expr and Stmt is set
func (p Program) Term() ast.Node {
	if p.Expr != nil {
		return p.Expr
	}
	return p.Stmt
}

// Error is a problem with the document at a given line
type Error struct {
	Line int
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("termfile: line %d: %s", e.Line, e.Msg)
}

var errNoTerm = errors.New("termfile: document needs exactly one of ‘expr’ and ‘stmt’")

// Keys of the top-level mapping
const (
	keyEnv  = "env"
	keyExpr = "expr"
	keyStmt = "stmt"
)

// Operators and statement kinds
const (
	opAdd = "add"
	opMul = "mul"
	opLt  = "lt"
	opVar = "var"

	stSkip   = "skip"
	stAssign = "assign"
	stSeq    = "seq"
	stIf     = "if"
	stWhile  = "while"
)
