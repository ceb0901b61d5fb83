package lexer

import "unicode"

type lexFn func(*lexer) lexFn

func lexDefault(l *lexer) lexFn {
	for {
		l.ignore()
		switch r := l.next(); {
		case r == eof:
			l.emit(TokEof)
			return nil
		case unicode.IsSpace(r):
		case r == '#':
			return lexComment
		case isDigit(r):
			l.backup()
			return lexNumber
		case IsIdentStart(r):
			l.backup()
			return lexIdent
		default:
			k, ok := symbols[r]
			if !ok {
				return l.errorf("unexpected character ‘%c’", r)
			}
			l.emit(k)
		}
	}
}

func lexComment(l *lexer) lexFn {
	for r := l.next(); r != '\n' && r != eof; r = l.next() {
	}
	return lexDefault
}

func lexNumber(l *lexer) lexFn {
	l.acceptRun(isDigit)
	if IsIdentChar(l.peek()) {
		l.next()
		return l.errorf("malformed number ‘%s’", l.pending())
	}
	l.emit(TokNumber)
	return lexDefault
}

func lexIdent(l *lexer) lexFn {
	l.acceptRun(IsIdentChar)
	if k, ok := keywords[l.pending()]; ok {
		l.emit(k)
	} else {
		l.emit(TokIdent)
	}
	return lexDefault
}
