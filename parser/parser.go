package parser

import (
	"git.sr.ht/~mango/smallstep/ast"
	"git.sr.ht/~mango/smallstep/lexer"
)

type parser struct {
	toks  <-chan lexer.Token
	cache *lexer.Token
	prev  lexer.TokenType // Kind of the last token consumed
}

// Parse parses a whole program from the tokens on toks
func Parse(toks <-chan lexer.Token) (s ast.Stmt, err error) {
	p := parser{toks: toks}
	defer p.catch(&err)
	return p.parseProgram(), nil
}

// ParseExpr parses a single expression from the tokens on toks
func ParseExpr(toks <-chan lexer.Token) (e ast.Expr, err error) {
	p := parser{toks: toks}
	defer p.catch(&err)
	e = p.parseExpr()
	p.expect(lexer.TokEof, "end of input")
	return e, nil
}

// String lexes and parses the program in s
func String(s string) (ast.Stmt, error) {
	return Parse(lexer.Lex(s))
}

// ExprString lexes and parses the expression in s
func ExprString(s string) (ast.Expr, error) {
	return ParseExpr(lexer.Lex(s))
}

func (p *parser) fail(err error) {
	panic(bailout{err})
}

// catch turns a bailout into an error and drains the rest of the tokens so
// that the lexer can finish
func (p *parser) catch(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	b, ok := r.(bailout)
	if !ok {
		panic(r)
	}
	*errp = b.err
	for range p.toks {
	}
}

func (p *parser) fetch() lexer.Token {
	t, ok := <-p.toks
	switch {
	case !ok:
		return lexer.Token{Kind: lexer.TokEof}
	case t.Kind == lexer.TokError:
		p.fail(errLex(t.Val))
	}
	return t
}

func (p *parser) next() lexer.Token {
	var t lexer.Token
	if p.cache != nil {
		t, p.cache = *p.cache, nil
	} else {
		t = p.fetch()
	}
	p.prev = t.Kind
	return t
}

func (p *parser) peek() lexer.Token {
	if p.cache == nil {
		t := p.fetch()
		p.cache = &t
	}
	return *p.cache
}

func (p *parser) expect(k lexer.TokenType, desc string) lexer.Token {
	t := p.next()
	if t.Kind != k {
		p.fail(errExpected{desc, t})
	}
	return t
}
