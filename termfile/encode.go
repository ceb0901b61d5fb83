package termfile

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"git.sr.ht/~mango/smallstep/ast"
	"git.sr.ht/~mango/smallstep/vm/vars"
)

// Encode renders p as a YAML document that Decode reads back into the same
// program.  Expressions are written in flow style and statements in block
// style.
func Encode(p Program) ([]byte, error) {
	root := mapping(0)
	if p.Env.Len() > 0 {
		root.Content = append(root.Content, str(keyEnv), envNode(p.Env))
	}
	switch {
	case p.Expr != nil && p.Stmt == nil:
		root.Content = append(root.Content, str(keyExpr), exprNode(p.Expr))
	case p.Stmt != nil && p.Expr == nil:
		root.Content = append(root.Content, str(keyStmt), stmtNode(p.Stmt))
	default:
		return nil, errNoTerm
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func str(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tagStr, Value: s}
}

func mapping(style yaml.Style, kvs ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Style: style, Content: kvs}
}

func list(style yaml.Style, xs ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Style: style, Content: xs}
}

func valueNode(v ast.Value) *yaml.Node {
	switch v.(type) {
	case ast.Number:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tagInt, Value: v.String()}
	case ast.Bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tagBool, Value: v.String()}
	}
	panic("unreachable")
}

func envNode(env vars.Env) *yaml.Node {
	n := mapping(0)
	env.Each(func(name string, v ast.Value) {
		n.Content = append(n.Content, str(name), valueNode(v))
	})
	return n
}

func exprNode(e ast.Expr) *yaml.Node {
	op := func(name string, l, r ast.Expr) *yaml.Node {
		return mapping(yaml.FlowStyle, str(name),
			list(yaml.FlowStyle, exprNode(l), exprNode(r)))
	}

	switch e := e.(type) {
	case ast.Number, ast.Bool:
		return valueNode(e.(ast.Value))
	case ast.Variable:
		return str(string(e))
	case ast.Add:
		return op(opAdd, e.Lhs, e.Rhs)
	case ast.Mult:
		return op(opMul, e.Lhs, e.Rhs)
	case ast.LessThan:
		return op(opLt, e.Lhs, e.Rhs)
	}
	panic("unreachable")
}

func stmtNode(s ast.Stmt) *yaml.Node {
	switch s := s.(type) {
	case ast.DoNothing:
		return str(stSkip)
	case ast.Assign:
		return mapping(0, str(stAssign), mapping(yaml.FlowStyle,
			str("name"), str(s.Name),
			str("value"), exprNode(s.Expr)))
	case ast.Seq:
		// Flatten the right spine back into one list
		xs := list(0)
		var t ast.Stmt = s
		for seq, ok := t.(ast.Seq); ok; seq, ok = t.(ast.Seq) {
			xs.Content = append(xs.Content, stmtNode(seq.First))
			t = seq.Second
		}
		xs.Content = append(xs.Content, stmtNode(t))
		return mapping(0, str(stSeq), xs)
	case ast.If:
		body := mapping(0,
			str("cond"), exprNode(s.Cond),
			str("then"), stmtNode(s.Body))
		if s.Else != (ast.DoNothing{}) {
			body.Content = append(body.Content, str("else"), stmtNode(s.Else))
		}
		return mapping(0, str(stIf), body)
	case ast.While:
		return mapping(0, str(stWhile), mapping(0,
			str("cond"), exprNode(s.Cond),
			str("do"), stmtNode(s.Body)))
	}
	panic("unreachable")
}
