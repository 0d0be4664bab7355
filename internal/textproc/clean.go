// Package textproc normalizes raw message text before vectorization.
// Training and inference both go through Clean so the model always sees
// the same token stream.
package textproc

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	urlOrEmailRe = regexp.MustCompile(`(https?://\S+)|(\w+@\w+\.\w+)`)
	digitsRe     = regexp.MustCompile(`\d+`)
	spacesRe     = regexp.MustCompile(`\s+`)
)

// Clean lowercases the input, replaces URLs, email addresses and digit runs
// with spaces, strips punctuation, and collapses whitespace. It never fails;
// the worst case is an empty string.
func Clean(s string) string {
	s = strings.ToLower(s)
	s = urlOrEmailRe.ReplaceAllString(s, " ")
	s = digitsRe.ReplaceAllString(s, " ")
	s = strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return -1
		}
		return r
	}, s)
	s = spacesRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
