package parser

import (
	"errors"
	"testing"

	"git.sr.ht/~mango/smallstep/ast"
	"git.sr.ht/~mango/smallstep/lexer"
)

func TestNext(t *testing.T) {
	xs := []lexer.Token{
		{Kind: lexer.TokIdent, Val: "x"},
		{Kind: lexer.TokAssign, Val: "="},
		{Kind: lexer.TokEof},
	}
	c := make(chan lexer.Token, len(xs))
	p := parser{toks: c}

	for _, x := range xs {
		c <- x
	}
	close(c)

	for i := range xs {
		x := p.next()
		if x != xs[i] {
			t.Errorf("Expected %v but got %v", xs[i], x)
		}
	}
	if x := p.next(); x.Kind != lexer.TokEof {
		t.Errorf("Expected EOF from a closed channel but got %v", x)
	}
}

func TestPeek(t *testing.T) {
	xs := []lexer.Token{
		{Kind: lexer.TokNumber, Val: "1"},
		{Kind: lexer.TokSemi, Val: ";"},
		{Kind: lexer.TokEof},
	}
	c := make(chan lexer.Token, len(xs))
	p := parser{toks: c}

	for _, x := range xs {
		c <- x
	}

	f := func(x lexer.Token, i int) {
		if x != xs[i] {
			t.Errorf("Expected %v but got %v", xs[i], x)
		}
	}

	f(p.peek(), 0)
	f(p.peek(), 0)
	f(p.next(), 0)
	f(p.peek(), 1)
	f(p.peek(), 1)
	f(p.next(), 1)
}

func TestExprString(t *testing.T) {
	tests := []struct {
		in   string
		want ast.Expr
	}{
		{"42", ast.Number(42)},
		{"x", ast.Variable("x")},
		{"true", ast.Bool(true)},
		{"1 + 2 + 3", ast.Add{ast.Add{ast.Number(1), ast.Number(2)}, ast.Number(3)}},
		{"1 + 2 * 3", ast.Add{ast.Number(1), ast.Mult{ast.Number(2), ast.Number(3)}}},
		{"(1 + 2) * 3", ast.Mult{ast.Add{ast.Number(1), ast.Number(2)}, ast.Number(3)}},
		{"a+(b+c)", ast.Add{ast.Variable("a"), ast.Add{ast.Variable("b"), ast.Variable("c")}}},
		{"x < 4", ast.LessThan{ast.Variable("x"), ast.Number(4)}},
		{"2 * 0 < 2 + 0", ast.LessThan{
			ast.Mult{ast.Number(2), ast.Number(0)},
			ast.Add{ast.Number(2), ast.Number(0)},
		}},
	}

	for _, tt := range tests {
		got, err := ExprString(tt.in)
		if err != nil {
			t.Fatalf("Unexpected error parsing ‘%s’: %s", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Expected ‘%s’ to parse as ‘%s’ but got ‘%s’", tt.in, tt.want, got)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		in   string
		want ast.Stmt
	}{
		{"", ast.DoNothing{}},
		{"{}", ast.DoNothing{}},
		{"x = 1", ast.Assign{"x", ast.Number(1)}},
		{"x = 1; y = 2;", ast.Seq{ast.Assign{"x", ast.Number(1)}, ast.Assign{"y", ast.Number(2)}}},
		{
			"if (x < 1) { y = 1 } else { y = 2 }",
			ast.If{
				ast.LessThan{ast.Variable("x"), ast.Number(1)},
				ast.Assign{"y", ast.Number(1)},
				ast.Assign{"y", ast.Number(2)},
			},
		},
		{
			"if (b) { y = 1 } x = 3",
			ast.Seq{
				ast.If{ast.Variable("b"), ast.Assign{"y", ast.Number(1)}, ast.DoNothing{}},
				ast.Assign{"x", ast.Number(3)},
			},
		},
		{
			"if (a) {} else if (b) { x = 1 }",
			ast.If{
				ast.Variable("a"),
				ast.DoNothing{},
				ast.If{ast.Variable("b"), ast.Assign{"x", ast.Number(1)}, ast.DoNothing{}},
			},
		},
	}

	for _, tt := range tests {
		got, err := String(tt.in)
		if err != nil {
			t.Fatalf("Unexpected error parsing ‘%s’: %s", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Expected ‘%s’ to parse as ‘%s’ but got ‘%s’", tt.in, tt.want, got)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, in := range []string{
		"x = (1 + 2) * (3 + 4)",
		"x = 1 + (2 + 3); y = x < 4",
		"if (x < y * 2) { x = 1 } else { x = 2; y = 3 }",
	} {
		s, err := String(in)
		if err != nil {
			t.Fatalf("Unexpected error parsing ‘%s’: %s", in, err)
		}
		again, err := String(s.String())
		if err != nil {
			t.Fatalf("Unexpected error parsing ‘%s’: %s", s, err)
		}
		if again != s {
			t.Fatalf("Expected ‘%s’ to survive printing but got ‘%s’", s, again)
		}
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"x = ", errExpected{}},
		{"x = (1 + 2", errExpected{}},
		{"x = 1 y = 2", errExpected{}},
		{"1 = x", errExpected{}},
		{"if x { }", errExpected{}},
		{"while (x < 4) { x = x + 1 }", errUnsupported("")},
		{"x = 1 $", errLex("")},
		{"x = 99999999999999999999999", errRange("")},
	}

	for _, tt := range tests {
		_, err := String(tt.in)
		if err == nil {
			t.Fatalf("Expected ‘%s’ to fail", tt.in)
		}

		var ok bool
		switch tt.want.(type) {
		case errExpected:
			ok = errors.As(err, new(errExpected))
		case errUnsupported:
			ok = errors.As(err, new(errUnsupported))
		case errLex:
			ok = errors.As(err, new(errLex))
		case errRange:
			ok = errors.As(err, new(errRange))
		}
		if !ok {
			t.Errorf("Expected ‘%s’ to fail with a %T but got %T: %s", tt.in, tt.want, err, err)
		}
	}
}

func TestExprTrailingInput(t *testing.T) {
	if _, err := ExprString("1 + 2 3"); err == nil {
		t.Fatalf("Expected trailing input to be an error")
	}
}
