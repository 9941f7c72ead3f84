package match

import (
	"github.com/zostay/go-std/slices"

	"github.com/zostay/combo/parser"
)

// Elements is the Matcher returned by One and N. It matches a run of elements
// that each satisfy its predicate, and provides a number of tools that allow
// it to be combined with other Elements Matchers.
type Elements[E any] struct {
	from, to int
	pred     Predicate[E]
}

// One returns a Matcher that matches exactly one element if the next element
// in the input matches any of the given predicates. The capture is a
// one-element slice of the input.
func One[E any](preds ...Predicate[E]) *Elements[E] {
	return &Elements[E]{
		from: 1,
		to:   1,
		pred: AnyOf(preds...),
	}
}

// N returns an Elements Matcher that matches as many of the next elements as
// it can, up to to, provided each matches one of the given predicates. It fails
// if fewer than from elements match. to may be Unbounded.
func N[E any](from, to int, preds ...Predicate[E]) *Elements[E] {
	checkBounds("match.N", from, to)
	return &Elements[E]{
		from: from,
		to:   to,
		pred: AnyOf(preds...),
	}
}

// Attempt implements parser.Matcher. The capture is the matched run of the
// input.
func (x *Elements[E]) Attempt(c parser.Cursor[E]) parser.Outcome[[]E] {
	n := 0
	for x.to == Unbounded || n < x.to {
		e, ok := c.At(n)
		if !ok || !x.pred(e) {
			break
		}
		n++
	}

	if n < x.from {
		if _, ok := c.At(n); !ok {
			return parser.FailAt[[]E](c.Offset()+n, parser.ExpectedElement)
		}
		return parser.FailAt[[]E](c.Offset()+n, parser.ExpectedPredicate)
	}

	return parser.Success(n, c.Slice(n))
}

func (x *Elements[E]) predicate() Predicate[E] {
	return x.pred
}

// AndAlso creates a new Elements Matcher which combines the predicate of this
// Matcher with predicates of the given Matchers such that an element matches
// if it matches any of those predicates. The run length bounds are those of
// this Matcher.
func (x *Elements[E]) AndAlso(xs ...*Elements[E]) *Elements[E] {
	preds := slices.Map(xs, (*Elements[E]).predicate)
	return &Elements[E]{
		from: x.from,
		to:   x.to,
		pred: AnyOf(append([]Predicate[E]{x.pred}, preds...)...),
	}
}

// ButNot creates a new Elements Matcher which combines the predicate of this
// Matcher with predicates of the given Matchers such that an element matches
// if it matches this Matcher, but none of those.
func (x *Elements[E]) ButNot(xs ...*Elements[E]) *Elements[E] {
	preds := slices.Map(xs, (*Elements[E]).predicate)
	return &Elements[E]{
		from: x.from,
		to:   x.to,
		pred: ThisButNotThat(x.pred, AnyOf(preds...)),
	}
}
