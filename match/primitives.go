package match

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/zostay/combo/parser"
)

// Indexed is the capture of a matcher that chose among several candidates. It
// records which candidate matched along with that candidate's capture.
type Indexed[V any] struct {
	Index int
	Value V
}

// Literal returns a Matcher that succeeds when the input at the cursor equals
// lit element by element. The capture is the matched part of the input, which
// equals lit. The failure points at the first element that differs, or at
// end-of-input if the input is too short.
//
// An empty literal always matches without consuming anything.
func Literal[E comparable](lit []E) parser.MatcherFunc[E, []E] {
	lit = slices.Clone(lit)
	return func(c parser.Cursor[E]) parser.Outcome[[]E] {
		for i, want := range lit {
			got, ok := c.At(i)
			if !ok || got != want {
				return parser.FailAt[[]E](c.Offset()+i, parser.ExpectedLiteral)
			}
		}
		return parser.Success(len(lit), c.Slice(len(lit)))
	}
}

// LiteralSet returns a Matcher that tries each literal in order and keeps the
// first that matches. The capture records the index of that literal. When none
// match, the failure of the literal that got furthest is reported.
func LiteralSet[E comparable](lits ...[]E) parser.MatcherFunc[E, Indexed[[]E]] {
	if len(lits) == 0 {
		panic(parser.Violate(0, "match.LiteralSet", "no literals given"))
	}

	mtchs := make([]parser.MatcherFunc[E, []E], len(lits))
	for i, lit := range lits {
		mtchs[i] = Literal(lit)
	}

	return func(c parser.Cursor[E]) parser.Outcome[Indexed[[]E]] {
		var best parser.Failure
		for i, mtch := range mtchs {
			o := mtch(c)
			if o.Matched {
				return parser.Success(o.Consumed, Indexed[[]E]{Index: i, Value: o.Value})
			}

			if i == 0 || o.Failure.Offset > best.Offset {
				best = o.Failure
			}
		}
		return parser.Fail[Indexed[[]E]](best)
	}
}

// OneFunc returns a Matcher that matches exactly one element if it satisfies
// pred. The capture is that element.
func OneFunc[E any](pred Predicate[E]) parser.MatcherFunc[E, E] {
	if pred == nil {
		panic(parser.Violate(0, "match.OneFunc", "nil predicate"))
	}

	return func(c parser.Cursor[E]) parser.Outcome[E] {
		e, ok := c.Peek()
		if !ok {
			return parser.FailAt[E](c.Offset(), parser.ExpectedElement)
		}

		if !pred(e) {
			return parser.FailAt[E](c.Offset(), parser.ExpectedPredicate)
		}

		return parser.Success(1, e)
	}
}

// Any returns a Matcher that matches any single element.
func Any[E any]() parser.MatcherFunc[E, E] {
	return OneFunc(func(E) bool { return true })
}

// Range returns a Matcher that matches one element between lo and hi
// inclusive. It panics if lo is greater than hi.
func Range[E constraints.Ordered](lo, hi E) parser.MatcherFunc[E, E] {
	if lo > hi {
		panic(parser.Violate(0, "match.Range", "empty range %v..%v", lo, hi))
	}

	return func(c parser.Cursor[E]) parser.Outcome[E] {
		e, ok := c.Peek()
		if !ok {
			return parser.FailAt[E](c.Offset(), parser.ExpectedElement)
		}

		if e < lo || e > hi {
			return parser.FailAt[E](c.Offset(), parser.ExpectedRange)
		}

		return parser.Success(1, e)
	}
}

// EndOfInput returns a Matcher that succeeds without consuming anything when
// the cursor is at end-of-input.
func EndOfInput[E any]() parser.MatcherFunc[E, struct{}] {
	return func(c parser.Cursor[E]) parser.Outcome[struct{}] {
		if !c.AtEnd() {
			return parser.FailAt[struct{}](c.Offset(), parser.ExpectedEndOfInput)
		}
		return parser.Success(0, struct{}{})
	}
}
