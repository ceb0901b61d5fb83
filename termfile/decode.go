package termfile

import (
	"fmt"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"git.sr.ht/~mango/smallstep/ast"
	"git.sr.ht/~mango/smallstep/lexer"
	"git.sr.ht/~mango/smallstep/vm/vars"
)

const (
	tagInt  = "!!int"
	tagBool = "!!bool"
	tagStr  = "!!str"
)

func errorf(n *yaml.Node, format string, args ...any) error {
	return &Error{Line: n.Line, Msg: fmt.Sprintf(format, args...)}
}

// Decode parses a YAML document into a program
func Decode(data []byte) (Program, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Program{}, fmt.Errorf("termfile: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return Program{}, errNoTerm
	}

	root := doc.Content[0]
	m, err := fields(root, keyEnv, keyExpr, keyStmt)
	if err != nil {
		return Program{}, err
	}

	var p Program
	if n, ok := m[keyEnv]; ok {
		if p.Env, err = decodeEnv(n); err != nil {
			return Program{}, err
		}
	}
	if n, ok := m[keyExpr]; ok {
		if p.Expr, err = decodeExpr(n); err != nil {
			return Program{}, err
		}
	}
	if n, ok := m[keyStmt]; ok {
		if p.Stmt, err = decodeStmt(n); err != nil {
			return Program{}, err
		}
	}

	if (p.Expr == nil) == (p.Stmt == nil) {
		return Program{}, errNoTerm
	}
	return p, nil
}

// fields returns the entries of the mapping n by key.  Keys not in allowed
// are an error, and so are duplicates.
func fields(n *yaml.Node, allowed ...string) (map[string]*yaml.Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, errorf(n, "expected a mapping")
	}

	m := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		switch _, dup := m[k.Value]; {
		case !lo.Contains(allowed, k.Value):
			return nil, errorf(k, "unexpected key ‘%s’", k.Value)
		case dup:
			return nil, errorf(k, "duplicate key ‘%s’", k.Value)
		}
		m[k.Value] = v
	}
	return m, nil
}

// need fetches a key that must be present in a mapping returned by fields
func need(m map[string]*yaml.Node, key string, at *yaml.Node) (*yaml.Node, error) {
	v, ok := m[key]
	if !ok {
		return nil, errorf(at, "missing key ‘%s’", key)
	}
	return v, nil
}

// single returns the key and value of the one-entry mapping n
func single(n *yaml.Node) (string, *yaml.Node, error) {
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return "", nil, errorf(n, "expected a mapping with a single key")
	}
	return n.Content[0].Value, n.Content[1], nil
}

func decodeName(n *yaml.Node) (string, error) {
	if n.Kind != yaml.ScalarNode || n.ShortTag() != tagStr || !lexer.IsIdent(n.Value) {
		return "", errorf(n, "‘%s’ is not a valid variable name", n.Value)
	}
	return n.Value, nil
}

func decodeValue(n *yaml.Node) (ast.Value, error) {
	if n.Kind != yaml.ScalarNode {
		return nil, errorf(n, "expected a number or boolean")
	}

	switch n.ShortTag() {
	case tagInt:
		var i int
		if err := n.Decode(&i); err != nil {
			return nil, errorf(n, "%s", err)
		}
		return ast.Number(i), nil
	case tagBool:
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, errorf(n, "%s", err)
		}
		return ast.Bool(b), nil
	}
	return nil, errorf(n, "expected a number or boolean but got ‘%s’", n.Value)
}

func decodeEnv(n *yaml.Node) (vars.Env, error) {
	var env vars.Env
	if n.Kind != yaml.MappingNode {
		return env, errorf(n, "expected a mapping of names to values")
	}

	for i := 0; i+1 < len(n.Content); i += 2 {
		name, err := decodeName(n.Content[i])
		if err != nil {
			return env, err
		}
		if _, dup := env.Get(name); dup {
			return env, errorf(n.Content[i], "duplicate key ‘%s’", name)
		}
		v, err := decodeValue(n.Content[i+1])
		if err != nil {
			return env, err
		}
		env = env.With(name, v)
	}
	return env, nil
}

func decodeExpr(n *yaml.Node) (ast.Expr, error) {
	if n.Kind == yaml.ScalarNode {
		if n.ShortTag() == tagStr {
			name, err := decodeName(n)
			return ast.Variable(name), err
		}
		return decodeValue(n)
	}

	op, v, err := single(n)
	if err != nil {
		return nil, err
	}
	if op == opVar {
		name, err := decodeName(v)
		return ast.Variable(name), err
	}

	if v.Kind != yaml.SequenceNode || len(v.Content) != 2 {
		return nil, errorf(v, "‘%s’ takes a list of two operands", op)
	}
	l, err := decodeExpr(v.Content[0])
	if err != nil {
		return nil, err
	}
	r, err := decodeExpr(v.Content[1])
	if err != nil {
		return nil, err
	}

	switch op {
	case opAdd:
		return ast.Add{Lhs: l, Rhs: r}, nil
	case opMul:
		return ast.Mult{Lhs: l, Rhs: r}, nil
	case opLt:
		return ast.LessThan{Lhs: l, Rhs: r}, nil
	}
	return nil, errorf(n, "unknown operator ‘%s’", op)
}

func decodeStmt(n *yaml.Node) (ast.Stmt, error) {
	if n.Kind == yaml.ScalarNode && n.Value == stSkip {
		return ast.DoNothing{}, nil
	}

	kind, v, err := single(n)
	if err != nil {
		return nil, err
	}

	switch kind {
	case stAssign:
		return decodeAssign(v)
	case stSeq:
		if v.Kind != yaml.SequenceNode {
			return nil, errorf(v, "‘seq’ takes a list of statements")
		}
		xs := make([]ast.Stmt, 0, len(v.Content))
		for _, c := range v.Content {
			s, err := decodeStmt(c)
			if err != nil {
				return nil, err
			}
			xs = append(xs, s)
		}
		return ast.Sequence(xs...), nil
	case stIf:
		return decodeIf(v)
	case stWhile:
		return decodeWhile(v)
	}
	return nil, errorf(n, "unknown statement ‘%s’", kind)
}

func decodeAssign(n *yaml.Node) (ast.Stmt, error) {
	m, err := fields(n, "name", "value")
	if err != nil {
		return nil, err
	}
	nn, err := need(m, "name", n)
	if err != nil {
		return nil, err
	}
	vn, err := need(m, "value", n)
	if err != nil {
		return nil, err
	}

	name, err := decodeName(nn)
	if err != nil {
		return nil, err
	}
	e, err := decodeExpr(vn)
	if err != nil {
		return nil, err
	}
	return ast.Assign{Name: name, Expr: e}, nil
}

func decodeIf(n *yaml.Node) (ast.Stmt, error) {
	m, err := fields(n, "cond", "then", "else")
	if err != nil {
		return nil, err
	}
	cn, err := need(m, "cond", n)
	if err != nil {
		return nil, err
	}
	tn, err := need(m, "then", n)
	if err != nil {
		return nil, err
	}

	s := ast.If{Else: ast.DoNothing{}}
	if s.Cond, err = decodeExpr(cn); err != nil {
		return nil, err
	}
	if s.Body, err = decodeStmt(tn); err != nil {
		return nil, err
	}
	if en, ok := m["else"]; ok {
		if s.Else, err = decodeStmt(en); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func decodeWhile(n *yaml.Node) (ast.Stmt, error) {
	m, err := fields(n, "cond", "do")
	if err != nil {
		return nil, err
	}
	cn, err := need(m, "cond", n)
	if err != nil {
		return nil, err
	}
	dn, err := need(m, "do", n)
	if err != nil {
		return nil, err
	}

	var s ast.While
	if s.Cond, err = decodeExpr(cn); err != nil {
		return nil, err
	}
	if s.Body, err = decodeStmt(dn); err != nil {
		return nil, err
	}
	return s, nil
}
