package ast

import "github.com/samber/lo"

// Node is any term of the language, either an expression or a statement
type Node interface {
	String() string
}

// Expr is an integer or boolean expression
type Expr interface {
	Node
	isExpr()
}

// Value is an expression that cannot be reduced any further.  Only Number
// and Bool implement it.
type Value interface {
	Expr
	isValue()
}

// Stmt is a statement; running one changes the environment
type Stmt interface {
	Node
	isStmt()
}

type Number int
type Bool bool

// Variable is a reference to a name bound in the environment
type Variable string

type Add struct {
	Lhs, Rhs Expr
}

type Mult struct {
	Lhs, Rhs Expr
}

type LessThan struct {
	Lhs, Rhs Expr
}

func (_ Number) isExpr()   {}
func (_ Bool) isExpr()     {}
func (_ Variable) isExpr() {}
func (_ Add) isExpr()      {}
func (_ Mult) isExpr()     {}
func (_ LessThan) isExpr() {}

func (_ Number) isValue() {}
func (_ Bool) isValue()   {}

// DoNothing is the statement every other statement eventually reduces to
type DoNothing struct{}

// Assign binds the value of Expr to Name
type Assign struct {
	Name string
	Expr Expr
}

// Seq runs First and then Second
type Seq struct {
	First, Second Stmt
}

// If runs Body when Cond is true and Else otherwise
type If struct {
	Cond       Expr
	Body, Else Stmt
}

// While runs Body for as long as Cond is true
type While struct {
	Cond Expr
	Body Stmt
}

func (_ DoNothing) isStmt() {}
func (_ Assign) isStmt()    {}
func (_ Seq) isStmt()       {}
func (_ If) isStmt()        {}
func (_ While) isStmt()     {}

// Sequence chains xs together from the right, so that Sequence(a, b, c) is
// Seq{a, Seq{b, c}}.  An empty list is DoNothing.
func Sequence(xs ...Stmt) Stmt {
	n := len(xs)
	if n == 0 {
		return DoNothing{}
	}
	return lo.ReduceRight(xs[:n-1], func(s Stmt, x Stmt, _ int) Stmt {
		return Seq{First: x, Second: s}
	}, xs[n-1])
}
