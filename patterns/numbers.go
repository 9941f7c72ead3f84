package patterns

import (
	"github.com/zostay/combo/match"
	"github.com/zostay/combo/parser"
)

var (
	sign   = match.N(0, 1, match.InSet('+', '-'))
	digits = match.N(1, match.Unbounded, match.Digit)

	fraction = match.Right(match.String("."), digits)
	exponent = match.SeqSpan[rune, []rune](match.One(match.InSet('e', 'E')), sign, digits)
)

// Integer matches an optionally signed run of decimal digits.
func Integer() parser.MatcherFunc[rune, []rune] {
	return match.SeqSpan[rune, []rune](sign, digits)
}

// Decimal matches an optionally signed number with an optional fraction and
// exponent, such as 42, -3.25 or 6.02e23. A point with no digits after it is
// not part of the number.
func Decimal() parser.MatcherFunc[rune, []rune] {
	return match.SeqSpan[rune, []rune](
		sign,
		digits,
		match.Span(match.Optional(fraction)),
		match.Span(match.Optional(exponent)),
	)
}

// NumberKind tells integers and decimals apart.
type NumberKind int

const (
	KindInteger NumberKind = iota
	KindDecimal
)

func (k NumberKind) String() string {
	if k == KindDecimal {
		return "decimal"
	}
	return "integer"
}

// Number is the capture of Numeric.
type Number struct {
	Kind NumberKind
	Text string
}

// Numeric matches what Integer matches, plus an optional fraction, and reports
// which of the two it found.
func Numeric() parser.MatcherFunc[rune, Number] {
	return match.Map(
		match.Seq3(sign, digits, match.Optional(fraction)),
		func(p match.Triple[[]rune, []rune, match.Option[[]rune]]) Number {
			n := Number{Kind: KindInteger, Text: string(p.First) + string(p.Second)}
			if p.Third.Valid {
				n.Kind = KindDecimal
				n.Text += "." + string(p.Third.Value)
			}
			return n
		},
	)
}
