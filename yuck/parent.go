package yuck

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Depth returns the paren nesting depth at the end of sanitized text.
// Unbalanced closing parens make the result negative.
func Depth(sanitized string) int {
	return strings.Count(sanitized, "(") - strings.Count(sanitized, ")")
}

// ParentNode returns the name of the innermost list that is still open at
// the end of sanitized text. Closed lists are discarded as they are
// scanned, and open lists without a name directly after the paren are
// skipped in favour of the enclosing one.
func ParentNode(sanitized string) (string, bool) {
	var open []string
	for i := 0; i < len(sanitized); i++ {
		switch sanitized[i] {
		case '(':
			open = append(open, wordAt(sanitized[i+1:]))
		case ')':
			if len(open) > 0 {
				open = open[:len(open)-1]
			}
		}
	}
	for i := len(open) - 1; i >= 0; i-- {
		if open[i] != "" {
			return open[i], true
		}
	}
	return "", false
}

// wordAt returns the identifier at the start of s, if any.
func wordAt(s string) string {
	end := 0
	for end < len(s) {
		r, size := utf8.DecodeRuneInString(s[end:])
		if !isWordRune(r) {
			break
		}
		end += size
	}
	return s[:end]
}

func isWordRune(r rune) bool {
	return r == '_' || r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
