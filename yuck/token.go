package yuck

import "strings"

type tokenKind int

const (
	tokenOpen tokenKind = iota
	tokenClose
	tokenOpenBracket
	tokenCloseBracket
	tokenString
	tokenSymbol
)

type token struct {
	kind tokenKind
	text string
}

// tokenize splits yuck source into tokens. String tokens carry their
// unquoted content; comments are dropped. An unterminated string runs to
// the end of the input.
func tokenize(src string) []token {
	var tokens []token
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == '(':
			tokens = append(tokens, token{kind: tokenOpen, text: "("})
			i++
		case c == ')':
			tokens = append(tokens, token{kind: tokenClose, text: ")"})
			i++
		case c == '[':
			tokens = append(tokens, token{kind: tokenOpenBracket, text: "["})
			i++
		case c == ']':
			tokens = append(tokens, token{kind: tokenCloseBracket, text: "]"})
			i++
		case c == ';':
			for i < len(src) && src[i] != '\n' {
				i++
			}
		case c == '"' || c == '\'' || c == '`':
			text, next := readString(src, i)
			tokens = append(tokens, token{kind: tokenString, text: text})
			i = next
		case isSpace(c):
			i++
		default:
			start := i
			for i < len(src) && !isDelimiter(src[i]) {
				i++
			}
			tokens = append(tokens, token{kind: tokenSymbol, text: src[start:i]})
		}
	}
	return tokens
}

func readString(src string, start int) (string, int) {
	quote := src[start]
	var sb strings.Builder
	i := start + 1
	for i < len(src) {
		c := src[i]
		switch {
		case c == '\\' && i+1 < len(src):
			sb.WriteByte(src[i+1])
			i += 2
		case c == quote:
			return sb.String(), i + 1
		default:
			sb.WriteByte(c)
			i++
		}
	}
	return sb.String(), i
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDelimiter(c byte) bool {
	switch c {
	case '(', ')', '[', ']', ';', '"', '\'', '`':
		return true
	}
	return isSpace(c)
}
