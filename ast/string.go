package ast

import (
	"fmt"
	"strconv"
)

// Binding strength of the binary operators, used to decide where printing
// needs parentheses
const (
	precLess = iota + 1
	precAdd
	precMult
	precAtom
)

func precedence(e Expr) int {
	switch e.(type) {
	case LessThan:
		return precLess
	case Add:
		return precAdd
	case Mult:
		return precMult
	}
	return precAtom
}

// operand renders e, parenthesized if it binds looser than min
func operand(e Expr, min int) string {
	if precedence(e) < min {
		return "(" + e.String() + ")"
	}
	return e.String()
}

func (n Number) String() string   { return strconv.Itoa(int(n)) }
func (b Bool) String() string     { return strconv.FormatBool(bool(b)) }
func (v Variable) String() string { return string(v) }

func (e Add) String() string {
	return operand(e.Lhs, precAdd) + " + " + operand(e.Rhs, precAdd+1)
}

func (e Mult) String() string {
	return operand(e.Lhs, precMult) + " * " + operand(e.Rhs, precMult+1)
}

// Comparisons don’t chain, so both sides must bind tighter than ‘<’
func (e LessThan) String() string {
	return operand(e.Lhs, precLess+1) + " < " + operand(e.Rhs, precLess+1)
}

func (_ DoNothing) String() string { return "do-nothing" }

func (s Assign) String() string {
	return fmt.Sprintf("%s = %s", s.Name, s.Expr)
}

func (s Seq) String() string {
	return fmt.Sprintf("%s; %s", s.First, s.Second)
}

func (s If) String() string {
	return fmt.Sprintf("if (%s) { %s } else { %s }", s.Cond, s.Body, s.Else)
}

func (s While) String() string {
	return fmt.Sprintf("while ( %s ) { %s }", s.Cond, s.Body)
}
