// Package patterns provides ready-made grammars for common kinds of text, built
// from the matchers of the match package.
package patterns

import (
	"github.com/zostay/go-std/slices"

	"github.com/zostay/combo/match"
	"github.com/zostay/combo/parser"
)

// Pattern is a named grammar. Its Matcher captures the text it matched.
type Pattern struct {
	Name        string
	Description string
	Matcher     parser.Matcher[rune, []rune]
}

var registry = []Pattern{
	pattern("integer", "optionally signed decimal integer", Integer()),
	pattern("decimal", "number with optional fraction and exponent", Decimal()),
	pattern("identifier", "letter or underscore, then letters, digits and underscores", Identifier()),
	pattern("hex-color", "#rgb or #rrggbb color", match.Span(HexColor())),
	pattern("phone", "ten digit phone number, 555-555-5555", Phone()),
	pattern("email", "dot-atom e-mail address", Email()),
	pattern("parens", "balanced parentheses", BalancedParens()),
}

// pattern names the matcher so that traces show which pattern ran.
func pattern(name, desc string, m parser.Matcher[rune, []rune]) Pattern {
	return Pattern{
		Name:        name,
		Description: desc,
		Matcher:     match.Named(name, m),
	}
}

// All returns every built-in pattern in a stable order.
func All() []Pattern {
	return append([]Pattern(nil), registry...)
}

// Names returns the names of the built-in patterns.
func Names() []string {
	return slices.Map(registry, func(p Pattern) string { return p.Name })
}

// Lookup finds a built-in pattern by name.
func Lookup(name string) (Pattern, bool) {
	for _, p := range registry {
		if p.Name == name {
			return p, true
		}
	}
	return Pattern{}, false
}
