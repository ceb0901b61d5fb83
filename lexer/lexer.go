package lexer

import (
	"fmt"
	"unicode/utf8"
)

const eof rune = -1

type lexer struct {
	src   string     // Source being tokenized
	start int        // Offset of the first byte of the pending token
	pos   int        // Offset of the next rune to read
	width int        // Byte width of the rune last read, 0 at EOF
	line  int        // Line pos is on, counting from 1
	Out   chan Token // Tokens, closed after TokEof or TokError
}

// New returns a lexer over src.  Call Run in its own goroutine and read
// the tokens from Out.
func New(src string) *lexer {
	return &lexer{
		src:  src,
		line: 1,
		Out:  make(chan Token),
	}
}

// Lex starts lexing src in the background and returns the token channel
func Lex(src string) <-chan Token {
	l := New(src)
	go l.Run()
	return l.Out
}

func (l *lexer) Run() {
	defer close(l.Out)
	for fn := lexDefault; fn != nil; fn = fn(l) {
	}
}

func (l *lexer) pending() string {
	return l.src[l.start:l.pos]
}

func (l *lexer) emit(k TokenType) {
	l.Out <- Token{Kind: k, Val: l.pending()}
	l.start = l.pos
}

func (l *lexer) ignore() {
	l.start = l.pos
}

func (l *lexer) next() rune {
	if l.pos >= len(l.src) {
		l.width = 0
		return eof
	}

	r, n := utf8.DecodeRuneInString(l.src[l.pos:])
	l.pos, l.width = l.pos+n, n
	if r == '\n' {
		l.line++
	}
	return r
}

// backup steps back over the last rune read.  It may only be called once
// per call to next.
func (l *lexer) backup() {
	l.pos -= l.width
	if l.width == 1 && l.src[l.pos] == '\n' {
		l.line--
	}
}

func (l *lexer) peek() rune {
	defer l.backup()
	return l.next()
}

// acceptRun consumes runes for as long as f reports true
func (l *lexer) acceptRun(f func(rune) bool) {
	for f(l.next()) {
	}
	l.backup()
}

// errorf emits an error token for the current line and stops the lexer
func (l *lexer) errorf(format string, args ...any) lexFn {
	msg := fmt.Sprintf(format, args...)
	l.Out <- Token{Kind: TokError, Val: fmt.Sprintf("line %d: %s", l.line, msg)}
	return nil
}
