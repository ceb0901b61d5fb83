package parser

import (
	"fmt"

	"git.sr.ht/~mango/smallstep/lexer"
)

type errExpected struct {
	want string
	got  lexer.Token
}

func (e errExpected) Error() string {
	return fmt.Sprintf("Expected %s but got %s", e.want, e.got)
}

type errUnsupported string

func (e errUnsupported) Error() string {
	return fmt.Sprintf("%s can’t be parsed; load the program from a term file instead", string(e))
}

type errLex string

func (e errLex) Error() string {
	return string(e)
}

type errRange string

func (e errRange) Error() string {
	return fmt.Sprintf("number ‘%s’ is out of range", string(e))
}

// bailout carries a parse error up the stack to the exported entry points
type bailout struct {
	err error
}
