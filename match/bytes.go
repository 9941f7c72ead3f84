package match

import "github.com/zostay/combo/parser"

// Byte classes for matching ASCII text held as bytes.
var (
	ASCIIDigit Predicate[byte] = InRange[byte]('0', '9')
	ASCIIAlpha                 = AnyOf(InRange[byte]('a', 'z'), InRange[byte]('A', 'Z'))
	ASCIISpace                 = InSet[byte](' ', '\t', '\n', '\r', '\f', '\v')
	HexDigit                   = AnyOf(ASCIIDigit, InRange[byte]('a', 'f'), InRange[byte]('A', 'F'))
)

// ByteSlice returns a Matcher that succeeds when the given byte slice matches
// the next bytes in the input.
func ByteSlice(bs []byte) parser.MatcherFunc[byte, []byte] {
	return Literal(bs)
}

// Bytes returns a Matcher that succeeds when the bytes of s match the next
// bytes in the input.
func Bytes(s string) parser.MatcherFunc[byte, []byte] {
	return Literal([]byte(s))
}
