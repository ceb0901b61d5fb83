package parser

import (
	"strconv"

	"git.sr.ht/~mango/smallstep/ast"
	"git.sr.ht/~mango/smallstep/lexer"
)

func (p *parser) parseProgram() ast.Stmt {
	s := p.parseStmts(lexer.TokEof)
	p.expect(lexer.TokEof, "end of input")
	return s
}

// parseStmts parses a list of statements up to but not including a token of
// kind end.  Statements are separated by semicolons, except that one ending
// in a closing brace needs none.
func (p *parser) parseStmts(end lexer.TokenType) ast.Stmt {
	xs := []ast.Stmt{}

	for {
		switch t := p.peek(); t.Kind {
		case end:
			return ast.Sequence(xs...)
		case lexer.TokSemi:
			p.next()
		default:
			xs = append(xs, p.parseStmt())
			switch t := p.peek(); {
			case t.Kind == end, t.Kind == lexer.TokSemi:
			case p.prev == lexer.TokBcClose:
			default:
				p.fail(errExpected{"‘;’", t})
			}
		}
	}
}

func (p *parser) parseStmt() ast.Stmt {
	switch t := p.peek(); t.Kind {
	case lexer.TokIdent:
		p.next()
		p.expect(lexer.TokAssign, "‘=’")
		return ast.Assign{Name: t.Val, Expr: p.parseExpr()}
	case lexer.TokIf:
		p.next()
		return p.parseIf()
	case lexer.TokBcOpen:
		return p.parseBlock()
	case lexer.TokWhile:
		p.fail(errUnsupported("while loops"))
	default:
		p.fail(errExpected{"statement", t})
	}
	panic("unreachable")
}

func (p *parser) parseIf() ast.If {
	p.expect(lexer.TokPOpen, "‘(’ after ‘if’")
	cond := ast.If{Cond: p.parseExpr(), Else: ast.DoNothing{}}
	p.expect(lexer.TokPClose, "‘)’")
	cond.Body = p.parseBlock()

	if p.peek().Kind != lexer.TokElse {
		return cond
	}
	p.next() // Consume ‘else’
	if p.peek().Kind == lexer.TokIf {
		p.next() // Consume ‘if’
		cond.Else = p.parseIf()
	} else {
		cond.Else = p.parseBlock()
	}
	return cond
}

func (p *parser) parseBlock() ast.Stmt {
	p.expect(lexer.TokBcOpen, "opening brace")
	s := p.parseStmts(lexer.TokBcClose)
	p.expect(lexer.TokBcClose, "closing brace")
	return s
}

func (p *parser) parseExpr() ast.Expr {
	e := p.parseSum()
	if p.peek().Kind == lexer.TokLess {
		p.next()
		e = ast.LessThan{Lhs: e, Rhs: p.parseSum()}
	}
	return e
}

func (p *parser) parseSum() ast.Expr {
	e := p.parseProduct()
	for p.peek().Kind == lexer.TokPlus {
		p.next()
		e = ast.Add{Lhs: e, Rhs: p.parseProduct()}
	}
	return e
}

func (p *parser) parseProduct() ast.Expr {
	e := p.parseAtom()
	for p.peek().Kind == lexer.TokStar {
		p.next()
		e = ast.Mult{Lhs: e, Rhs: p.parseAtom()}
	}
	return e
}

func (p *parser) parseAtom() ast.Expr {
	switch t := p.next(); t.Kind {
	case lexer.TokNumber:
		n, err := strconv.Atoi(t.Val)
		if err != nil {
			p.fail(errRange(t.Val))
		}
		return ast.Number(n)
	case lexer.TokIdent:
		return ast.Variable(t.Val)
	case lexer.TokTrue:
		return ast.Bool(true)
	case lexer.TokFalse:
		return ast.Bool(false)
	case lexer.TokPOpen:
		e := p.parseExpr()
		p.expect(lexer.TokPClose, "closing parenthesis")
		return e
	default:
		p.fail(errExpected{"expression", t})
	}
	panic("unreachable")
}
