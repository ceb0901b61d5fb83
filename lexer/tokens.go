package lexer

import "fmt"

type TokenType int

const (
	// TokError is the token emitted during a lexing error.  It signals the end
	// of lexical analysis.
	TokError TokenType = iota

	TokEof // End of file

	TokNumber // A decimal integer literal
	TokIdent  // A variable name

	// Keywords
	TokTrue
	TokFalse
	TokIf
	TokElse
	TokWhile

	TokPlus   // The ‘+’ operator
	TokStar   // The ‘*’ operator
	TokLess   // The ‘<’ operator
	TokAssign // The ‘=’ operator
	TokSemi   // The ‘;’ statement separator

	TokPOpen   // An opening parenthesis
	TokPClose  // A closing parenthesis
	TokBcOpen  // An opening brace
	TokBcClose // A closing brace
)

type Token struct {
	Kind TokenType
	Val  string
}

var keywords = map[string]TokenType{
	"true":  TokTrue,
	"false": TokFalse,
	"if":    TokIf,
	"else":  TokElse,
	"while": TokWhile,
}

var symbols = map[rune]TokenType{
	'+': TokPlus,
	'*': TokStar,
	'<': TokLess,
	'=': TokAssign,
	';': TokSemi,
	'(': TokPOpen,
	')': TokPClose,
	'{': TokBcOpen,
	'}': TokBcClose,
}

// Maximum length of a number or name before truncation in diagnostics
const maxStrLen = 20

func (t Token) String() string {
	switch t.Kind {
	case TokError:
		return "Error: " + t.Val
	case TokEof:
		return "EOF"
	case TokNumber, TokIdent:
		if len(t.Val) > maxStrLen {
			return fmt.Sprintf("‘%.*s…’", maxStrLen, t.Val)
		}
		return "‘" + t.Val + "’"
	}

	if t.Kind >= TokTrue && t.Kind <= TokBcClose {
		return "‘" + t.Val + "’"
	}
	panic("unreachable")
}
