package patterns

import (
	"github.com/zostay/combo/match"
	"github.com/zostay/combo/parser"
)

// Identifier matches a letter or underscore followed by any number of letters,
// digits and underscores.
func Identifier() parser.MatcherFunc[rune, []rune] {
	underscore := match.InSet('_')
	return match.SeqSpan[rune, []rune](
		match.One(match.Letter, underscore),
		match.N(0, match.Unbounded, match.Letter, match.Digit, underscore),
	)
}

// Phone matches a ten digit phone number grouped 3-3-4, with or without
// hyphens between the groups.
func Phone() parser.MatcherFunc[rune, []rune] {
	hyphen := match.Span(match.Optional(match.String("-")))
	return match.SeqSpan[rune, []rune](
		match.N(3, 3, match.Digit),
		hyphen,
		match.N(3, 3, match.Digit),
		hyphen,
		match.N(4, 4, match.Digit),
	)
}

// Email matches the common dot-atom form of an e-mail address, such as
// someone@example.com. Quoted local parts and address literals are not
// recognized.
func Email() parser.MatcherFunc[rune, []rune] {
	atext := match.N(1, match.Unbounded,
		match.Letter,
		match.Digit,
		match.InSet(
			'!', '#', '$', '%', '&', '\'', '*', '+', '-', '/',
			'=', '?', '^', '_', '`', '{', '|', '}', '~',
		),
	)

	dotAtom := match.Span(match.ManyWithSep(1, atext, match.String(".")))
	return match.SeqSpan[rune, []rune](dotAtom, match.String("@"), dotAtom)
}

// BalancedParens matches any run of properly nested parentheses, including
// the empty run. Nesting depth is limited by the depth limit of the match.
func BalancedParens() parser.MatcherFunc[rune, []rune] {
	var balanced parser.MatcherFunc[rune, []rune]
	group := match.Between(
		match.String("("),
		match.Lazy(func() parser.Matcher[rune, []rune] { return balanced }),
		match.String(")"),
	)
	balanced = match.Span(match.Many(group, 0))
	return balanced
}
