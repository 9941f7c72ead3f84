package match

import (
	"unicode"

	"github.com/zostay/combo/parser"
)

// Rune classes backed by the unicode package.
var (
	Digit  Predicate[rune] = unicode.IsDigit
	Letter Predicate[rune] = unicode.IsLetter
	Space  Predicate[rune] = unicode.IsSpace
	Upper  Predicate[rune] = unicode.IsUpper
	Lower  Predicate[rune] = unicode.IsLower
)

// RuneSlice returns a Matcher that succeeds when the given rune slice matches
// the next runes in the input.
func RuneSlice(rs []rune) parser.MatcherFunc[rune, []rune] {
	return Literal(rs)
}

// String returns a Matcher that succeeds when the runes of s match the next
// runes in the input.
func String(s string) parser.MatcherFunc[rune, []rune] {
	return Literal([]rune(s))
}
