package vm

import "git.sr.ht/~mango/smallstep/ast"

const (
	kindNumber = "number"
	kindBool   = "boolean"
)

func asNumber(v ast.Value, at ast.Node) (ast.Number, error) {
	n, ok := v.(ast.Number)
	if !ok {
		return 0, &MismatchError{Want: kindNumber, Got: v, Term: at}
	}
	return n, nil
}

func asBool(v ast.Value, at ast.Node) (ast.Bool, error) {
	b, ok := v.(ast.Bool)
	if !ok {
		return false, &MismatchError{Want: kindBool, Got: v, Term: at}
	}
	return b, nil
}

// Combine applies the operator of e, which must be an Add, Mult or LessThan,
// to the operand values l and r.  Errors name e as the offending term.
func Combine(e ast.Expr, l, r ast.Value) (ast.Value, error) {
	x, err := asNumber(l, e)
	if err != nil {
		return nil, err
	}
	y, err := asNumber(r, e)
	if err != nil {
		return nil, err
	}

	switch e.(type) {
	case ast.Add:
		return x + y, nil
	case ast.Mult:
		return x * y, nil
	case ast.LessThan:
		return ast.Bool(x < y), nil
	}
	panic("unreachable")
}

// Truth returns the boolean held by v, the condition of the statement at
func Truth(v ast.Value, at ast.Stmt) (bool, error) {
	b, err := asBool(v, at)
	return bool(b), err
}
