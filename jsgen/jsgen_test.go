package jsgen

import (
	"errors"
	"testing"

	"git.sr.ht/~mango/smallstep/ast"
	"git.sr.ht/~mango/smallstep/vm/vars"
)

func TestCompileExpr(t *testing.T) {
	tests := []struct {
		e    ast.Expr
		want string
	}{
		{ast.Number(42), "(e) => { return 42; }"},
		{ast.Bool(false), "(e) => { return false; }"},
		{ast.Variable("y"), "(e) => { return e.get('y'); }"},
		{
			ast.Add{ast.Number(1), ast.Number(3)},
			"(e) => { return (((e) => { return 1; })(e)) + (((e) => { return 3; })(e)); }",
		},
		{
			ast.LessThan{ast.Number(5), ast.Variable("x")},
			"(e) => { return (((e) => { return 5; })(e)) < (((e) => { return e.get('x'); })(e)); }",
		},
	}
	for _, tt := range tests {
		got, err := Compile(tt.e)
		if err != nil {
			t.Fatalf("Unexpected error: %s", err)
		}
		if got != tt.want {
			t.Errorf("Expected\n%s\nbut got\n%s", tt.want, got)
		}
	}
}

func TestCompileStmt(t *testing.T) {
	tests := []struct {
		s    ast.Stmt
		want string
	}{
		{ast.DoNothing{}, "(e) => { return e; }"},
		{
			ast.Assign{"x", ast.Number(1)},
			"(e) => { const n_e = new Map(e); n_e.set('x', (((e) => { return 1; })(e))); return n_e; }",
		},
		{
			ast.Seq{ast.DoNothing{}, ast.Assign{"x", ast.Number(1)}},
			"(e) => { return ((e) => { const n_e = new Map(e); n_e.set('x', (((e) => { return 1; })(e))); return n_e; })(((e) => { return e; })(e)); }",
		},
		{
			ast.If{ast.Bool(true), ast.DoNothing{}, ast.DoNothing{}},
			"(e) => { if (((e) => { return true; })(e)) { return ((e) => { return e; })(e); } else { return ((e) => { return e; })(e); } }",
		},
	}
	for _, tt := range tests {
		got, err := Compile(tt.s)
		if err != nil {
			t.Fatalf("Unexpected error: %s", err)
		}
		if got != tt.want {
			t.Errorf("Expected\n%s\nbut got\n%s", tt.want, got)
		}
	}
}

func TestCompileWhile(t *testing.T) {
	s := ast.Seq{ast.DoNothing{}, ast.While{ast.Bool(false), ast.DoNothing{}}}
	_, err := Compile(s)

	var ue *UnsupportedError
	if !errors.As(err, &ue) {
		t.Fatalf("Expected an UnsupportedError but got %v", err)
	}
}

func TestScript(t *testing.T) {
	env := vars.New(map[string]ast.Value{"y": ast.Number(15), "b": ast.Bool(true)})
	got, err := Script(ast.Variable("y"), env)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	want := "console.log(((e) => { return e.get('y'); })(new Map([['b', true], ['y', 15]])))"
	if got != want {
		t.Fatalf("Expected\n%s\nbut got\n%s", want, got)
	}

	got, _ = Script(ast.Number(1), vars.Env{})
	if want := "console.log(((e) => { return 1; })(new Map([])))"; got != want {
		t.Fatalf("Expected\n%s\nbut got\n%s", want, got)
	}
}
