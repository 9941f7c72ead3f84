package patterns

import (
	"fmt"

	"github.com/zostay/combo/match"
	"github.com/zostay/combo/parser"
)

var hexRune = match.AnyOf(
	match.InRange('0', '9'),
	match.InRange('a', 'f'),
	match.InRange('A', 'F'),
)

// Color is the capture of HexColor.
type Color struct {
	R, G, B uint8
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// HexColor matches a CSS style color: a hash followed by exactly three or six
// hex digits. The short form doubles every digit, so #fa0 is #ffaa00.
func HexColor() parser.MatcherFunc[rune, Color] {
	triple := match.N(3, 3, hexRune)
	return match.Map(
		match.Left(
			match.Right(match.String("#"), match.Seq2(triple, match.Optional(triple))),
			match.Not(match.One(hexRune)),
		),
		toColor,
	)
}

func toColor(p match.Pair[[]rune, match.Option[[]rune]]) Color {
	var hex [6]rune
	if p.Second.Valid {
		copy(hex[:3], p.First)
		copy(hex[3:], p.Second.Value)
	} else {
		for i, r := range p.First {
			hex[2*i], hex[2*i+1] = r, r
		}
	}

	return Color{
		R: nibble(hex[0])<<4 | nibble(hex[1]),
		G: nibble(hex[2])<<4 | nibble(hex[3]),
		B: nibble(hex[4])<<4 | nibble(hex[5]),
	}
}

func nibble(r rune) uint8 {
	switch {
	case r >= 'a':
		return uint8(r-'a') + 10
	case r >= 'A':
		return uint8(r-'A') + 10
	default:
		return uint8(r - '0')
	}
}
