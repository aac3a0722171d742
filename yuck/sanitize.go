package yuck

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var quotedSpan = regexp.MustCompile("['\"`][^'\"`]*['\"`]")

// Sanitize prepares the text before the cursor for bracket counting.
// Quoted spans and line comments are removed, and the final character
// (the trigger character) is dropped.
func Sanitize(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}
	text = stripComments(stripQuotes(text))
	_, size := utf8.DecodeLastRuneInString(text)
	return text[:len(text)-size]
}

// stripQuotes removes quoted spans until none are left. Removing a
// leftmost span leaves a quote-free prefix behind it, so no new span can
// form across the cut and one left-to-right replacement reaches the same
// fixpoint as removing spans one at a time.
func stripQuotes(text string) string {
	return quotedSpan.ReplaceAllString(text, "")
}

// stripComments truncates every line at its first semicolon.
func stripComments(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if idx := strings.IndexByte(line, ';'); idx >= 0 {
			lines[i] = line[:idx]
		}
	}
	return strings.Join(lines, "\n")
}
