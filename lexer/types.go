package lexer

import "unicode"

func IsIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func IsIdentChar(r rune) bool {
	return IsIdentStart(r) || unicode.IsDigit(r)
}

// IsIdent reports whether s is usable as a variable name
func IsIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !IsIdentStart(r) || !IsIdentChar(r) {
			return false
		}
	}
	_, kw := keywords[s]
	return !kw
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
