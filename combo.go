// Package combo runs matcher trees built with the match package against whole
// inputs. Matchers are built once and may be used by any number of goroutines.
//
//	digits := match.N(1, match.Unbounded, match.Digit)
//	o := combo.MatchString(digits, "42 apples")
//	// o.Matched == true, o.Consumed == 2
package combo

import (
	"fmt"
	"io"

	"github.com/zostay/combo/match"
	"github.com/zostay/combo/parser"
)

// DefaultMaxDepth is the combinator nesting the entry points allow unless told
// otherwise.
const DefaultMaxDepth = 4096

// Config controls a match attempt.
type Config struct {
	// MaxDepth limits how deeply combinators may nest during the attempt. A
	// zero value disables the limit.
	MaxDepth int

	// Trace, if set, receives the trace lines of match.Named matchers.
	Trace parser.Tracer
}

// DefaultConfig is the Config used by Match and friends.
var DefaultConfig = Config{MaxDepth: DefaultMaxDepth}

func (cfg Config) options() parser.Options {
	return parser.Options{
		MaxDepth: cfg.MaxDepth,
		Trace:    cfg.Trace,
	}
}

// Match attempts m at the start of input using DefaultConfig.
func Match[E, V any](m parser.Matcher[E, V], input []E) parser.Outcome[V] {
	return MatchWith(DefaultConfig, m, input)
}

// MatchWith attempts m at the start of input using the given Config.
func MatchWith[E, V any](cfg Config, m parser.Matcher[E, V], input []E) parser.Outcome[V] {
	return m.Attempt(parser.NewCursorWith(input, cfg.options()))
}

// MatchString attempts a rune matcher against the runes of s. Offsets in the
// outcome count runes, not bytes.
func MatchString[V any](m parser.Matcher[rune, V], s string) parser.Outcome[V] {
	return Match(m, []rune(s))
}

// MatchBytes attempts a byte matcher against bs.
func MatchBytes[V any](m parser.Matcher[byte, V], bs []byte) parser.Outcome[V] {
	return Match(m, bs)
}

// MatchReader reads all of r as runes and then attempts m against them. The
// error is only set when reading fails.
func MatchReader[V any](m parser.Matcher[rune, V], r io.Reader) (parser.Outcome[V], error) {
	rs, err := parser.ReadRunes(r)
	if err != nil {
		return parser.Outcome[V]{}, fmt.Errorf("reading input: %w", err)
	}
	return Match(m, rs), nil
}

// Full returns a Matcher that succeeds only when m matches and leaves nothing
// of the input behind.
func Full[E, V any](m parser.Matcher[E, V]) parser.MatcherFunc[E, V] {
	return match.Left(m, match.EndOfInput[E]())
}

// Prefix attempts m at the start of input and returns the part of input it
// consumed.
func Prefix[E, V any](m parser.Matcher[E, V], input []E) ([]E, bool) {
	o := Match(m, input)
	if !o.Matched {
		return nil, false
	}
	return input[:o.Consumed], true
}
