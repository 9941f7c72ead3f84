package match

import (
	"sync"

	"github.com/zostay/combo/parser"
	"github.com/zostay/combo/token"
)

// Pair is the capture of Seq2.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is the capture of Seq3.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// descend moves the cursor one combinator level down. When the depth limit is
// reached it returns the failure the combinator must report instead of
// invoking its children.
func descend[E, V any](c parser.Cursor[E]) (parser.Cursor[E], parser.Outcome[V], bool) {
	inner, ok := c.Descend()
	if !ok {
		return c, parser.Fail[V](c.DepthFailure()), false
	}
	return inner, parser.Outcome[V]{}, true
}

// First returns a matcher that will try each match against the same input and
// immediately returns on the first one that succeeds, even if a later one
// would consume more.
//
// When every alternative fails, the failure reported is the one found furthest
// into the input. If several got equally far, the earliest of them wins.
func First[E, V any](mtchs ...parser.Matcher[E, V]) parser.MatcherFunc[E, V] {
	if len(mtchs) == 0 {
		panic(parser.Violate(0, "match.First", "no alternatives given"))
	}

	return func(c parser.Cursor[E]) parser.Outcome[V] {
		inner, fail, ok := descend[E, V](c)
		if !ok {
			return fail
		}

		var best parser.Failure
		for i, mtch := range mtchs {
			o := mtch.Attempt(inner)
			if o.Matched || o.Failure.Aborts() {
				return o
			}

			if i == 0 || o.Failure.Offset > best.Offset {
				best = o.Failure
			}
		}

		return parser.Fail[V](best)
	}
}

// Longest returns a Matcher that tries all the given matchers against the
// current input. It will keep the longest match found and discard the rest. On
// a tie the earliest matcher wins. Failures are reported as with First.
func Longest[E, V any](mtchs ...parser.Matcher[E, V]) parser.MatcherFunc[E, V] {
	if len(mtchs) == 0 {
		panic(parser.Violate(0, "match.Longest", "no alternatives given"))
	}

	return func(c parser.Cursor[E]) parser.Outcome[V] {
		inner, fail, ok := descend[E, V](c)
		if !ok {
			return fail
		}

		var (
			won  parser.Outcome[V]
			best parser.Failure
		)
		for i, mtch := range mtchs {
			o := mtch.Attempt(inner)
			switch {
			case o.Matched:
				if !won.Matched || o.Consumed > won.Consumed {
					won = o
				}
			case o.Failure.Aborts():
				return o
			case i == 0 || o.Failure.Offset > best.Offset:
				best = o.Failure
			}
		}

		if won.Matched {
			return won
		}
		return parser.Fail[V](best)
	}
}

// Seq2 returns a Matcher that matches a and then b right after it. The capture
// holds both captures. If either fails, the sequence fails where it did.
func Seq2[E, A, B any](
	a parser.Matcher[E, A],
	b parser.Matcher[E, B],
) parser.MatcherFunc[E, Pair[A, B]] {
	return func(c parser.Cursor[E]) parser.Outcome[Pair[A, B]] {
		inner, fail, ok := descend[E, Pair[A, B]](c)
		if !ok {
			return fail
		}

		oa := a.Attempt(inner)
		if !oa.Matched {
			return parser.Fail[Pair[A, B]](oa.Failure)
		}

		ob := b.Attempt(inner.Advance(oa.Consumed))
		if !ob.Matched {
			return parser.Fail[Pair[A, B]](ob.Failure)
		}

		return parser.Success(
			oa.Consumed+ob.Consumed,
			Pair[A, B]{First: oa.Value, Second: ob.Value},
		)
	}
}

// Seq3 is Seq2 for three matchers.
func Seq3[E, A, B, C any](
	a parser.Matcher[E, A],
	b parser.Matcher[E, B],
	d parser.Matcher[E, C],
) parser.MatcherFunc[E, Triple[A, B, C]] {
	return func(c parser.Cursor[E]) parser.Outcome[Triple[A, B, C]] {
		inner, fail, ok := descend[E, Triple[A, B, C]](c)
		if !ok {
			return fail
		}

		oa := a.Attempt(inner)
		if !oa.Matched {
			return parser.Fail[Triple[A, B, C]](oa.Failure)
		}

		cur := inner.Advance(oa.Consumed)
		ob := b.Attempt(cur)
		if !ob.Matched {
			return parser.Fail[Triple[A, B, C]](ob.Failure)
		}

		od := d.Attempt(cur.Advance(ob.Consumed))
		if !od.Matched {
			return parser.Fail[Triple[A, B, C]](od.Failure)
		}

		return parser.Success(
			oa.Consumed+ob.Consumed+od.Consumed,
			Triple[A, B, C]{First: oa.Value, Second: ob.Value, Third: od.Value},
		)
	}
}

// SeqSpan returns a Matcher that applies each passed Matcher in turn against
// the input. Returns with no match immediately if any Matcher in the sequence
// fails. The capture is the whole span of input matched by the sequence, so
// the children's own captures are dropped. Use Span to mix matchers with
// different capture types.
func SeqSpan[E, V any](mtchs ...parser.Matcher[E, V]) parser.MatcherFunc[E, []E] {
	return func(c parser.Cursor[E]) parser.Outcome[[]E] {
		inner, fail, ok := descend[E, []E](c)
		if !ok {
			return fail
		}

		cur := inner
		for _, mtch := range mtchs {
			o := mtch.Attempt(cur)
			if !o.Matched {
				return parser.Fail[[]E](o.Failure)
			}
			cur = cur.Advance(o.Consumed)
		}

		n := cur.Offset() - inner.Offset()
		return parser.Success(n, inner.Slice(n))
	}
}

// Span returns a Matcher that runs mtch and captures the input it consumed in
// place of its capture.
func Span[E, V any](mtch parser.Matcher[E, V]) parser.MatcherFunc[E, []E] {
	return func(c parser.Cursor[E]) parser.Outcome[[]E] {
		inner, fail, ok := descend[E, []E](c)
		if !ok {
			return fail
		}

		o := mtch.Attempt(inner)
		if !o.Matched {
			return parser.Fail[[]E](o.Failure)
		}
		return parser.Success(o.Consumed, inner.Slice(o.Consumed))
	}
}

// Left returns a Matcher that matches a then b, keeping only the capture of a.
func Left[E, A, B any](a parser.Matcher[E, A], b parser.Matcher[E, B]) parser.MatcherFunc[E, A] {
	both := Seq2(a, b)
	return func(c parser.Cursor[E]) parser.Outcome[A] {
		o := both(c)
		if !o.Matched {
			return parser.Fail[A](o.Failure)
		}
		return parser.Success(o.Consumed, o.Value.First)
	}
}

// Right returns a Matcher that matches a then b, keeping only the capture of b.
func Right[E, A, B any](a parser.Matcher[E, A], b parser.Matcher[E, B]) parser.MatcherFunc[E, B] {
	both := Seq2(a, b)
	return func(c parser.Cursor[E]) parser.Outcome[B] {
		o := both(c)
		if !o.Matched {
			return parser.Fail[B](o.Failure)
		}
		return parser.Success(o.Consumed, o.Value.Second)
	}
}

// Between returns a Matcher for mtch surrounded by open and close, keeping only
// the capture of mtch.
func Between[E, O, V, C any](
	open parser.Matcher[E, O],
	mtch parser.Matcher[E, V],
	close parser.Matcher[E, C],
) parser.MatcherFunc[E, V] {
	all := Seq3(open, mtch, close)
	return func(c parser.Cursor[E]) parser.Outcome[V] {
		o := all(c)
		if !o.Matched {
			return parser.Fail[V](o.Failure)
		}
		return parser.Success(o.Consumed, o.Value.Second)
	}
}

// Not returns a Matcher that succeeds without consuming anything when mtch
// fails at the cursor, and fails with "unexpected match" when it succeeds.
func Not[E, V any](mtch parser.Matcher[E, V]) parser.MatcherFunc[E, struct{}] {
	return func(c parser.Cursor[E]) parser.Outcome[struct{}] {
		inner, fail, ok := descend[E, struct{}](c)
		if !ok {
			return fail
		}

		o := mtch.Attempt(inner)
		switch {
		case o.Matched:
			return parser.FailAt[struct{}](c.Offset(), parser.ExpectedNoMatch)
		case o.Failure.Aborts():
			return parser.Fail[struct{}](o.Failure)
		}
		return parser.Success(0, struct{}{})
	}
}

// Peek returns a Matcher that succeeds without consuming anything when mtch
// succeeds, keeping its capture. Failures are passed through.
func Peek[E, V any](mtch parser.Matcher[E, V]) parser.MatcherFunc[E, V] {
	return func(c parser.Cursor[E]) parser.Outcome[V] {
		inner, fail, ok := descend[E, V](c)
		if !ok {
			return fail
		}

		o := mtch.Attempt(inner)
		if !o.Matched {
			return o
		}
		return parser.Success(0, o.Value)
	}
}

// Map returns a Matcher that replaces the capture of mtch with f applied to
// it. Failures are passed through.
//
// f must be pure and total. It is the caller's code: if it panics the panic
// reaches the caller of Attempt and is never reported as a failed match.
func Map[E, V, W any](mtch parser.Matcher[E, V], f func(V) W) parser.MatcherFunc[E, W] {
	if f == nil {
		panic(parser.Violate(0, "match.Map", "nil function"))
	}

	return func(c parser.Cursor[E]) parser.Outcome[W] {
		inner, fail, ok := descend[E, W](c)
		if !ok {
			return fail
		}

		o := mtch.Attempt(inner)
		if !o.Matched {
			return parser.Fail[W](o.Failure)
		}
		return parser.Success(o.Consumed, f(o.Value))
	}
}

// Value returns a Matcher that replaces the capture of mtch with v.
func Value[E, V, W any](mtch parser.Matcher[E, V], v W) parser.MatcherFunc[E, W] {
	return Map(mtch, func(V) W { return v })
}

// Filter returns a Matcher that succeeds only when mtch succeeds and pred
// accepts its capture. A rejection is an ordinary failure at the offset mtch
// started from, so enclosing combinators may backtrack over it.
func Filter[E, V any](mtch parser.Matcher[E, V], pred func(V) bool) parser.MatcherFunc[E, V] {
	if pred == nil {
		panic(parser.Violate(0, "match.Filter", "nil predicate"))
	}

	return func(c parser.Cursor[E]) parser.Outcome[V] {
		inner, fail, ok := descend[E, V](c)
		if !ok {
			return fail
		}

		o := mtch.Attempt(inner)
		if !o.Matched {
			return o
		}

		if !pred(o.Value) {
			return parser.FailAt[V](c.Offset(), parser.ExpectedFilter)
		}
		return o
	}
}

// Expect returns a Matcher that reports expected in place of the expectation
// of mtch when it fails. The failure offset is kept.
func Expect[E, V any](mtch parser.Matcher[E, V], expected string) parser.MatcherFunc[E, V] {
	return func(c parser.Cursor[E]) parser.Outcome[V] {
		inner, fail, ok := descend[E, V](c)
		if !ok {
			return fail
		}

		o := mtch.Attempt(inner)
		if !o.Matched && !o.Failure.Aborts() {
			o.Failure.Expected = expected
		}
		return o
	}
}

// Named returns a Matcher that behaves like mtch but writes TRY, GOT and ERR
// trace lines under name when the cursor carries a parser.Tracer.
func Named[E, V any](name string, mtch parser.Matcher[E, V]) parser.MatcherFunc[E, V] {
	return func(c parser.Cursor[E]) parser.Outcome[V] {
		inner, fail, ok := descend[E, V](c)
		if !ok {
			c.Trace(parser.StageFail, name, fail.Failure)
			return fail
		}

		if !c.Tracing() {
			return mtch.Attempt(inner)
		}

		c.Trace(parser.StageTry, name)
		o := mtch.Attempt(inner)
		if o.Matched {
			c.Trace(parser.StageGot, name, o.Consumed)
		} else {
			c.Trace(parser.StageFail, name, o.Failure)
		}
		return o
	}
}

// Tagged returns a Matcher that wraps the capture of mtch in a token.Token
// carrying t and the span of input matched.
func Tagged[E, V any](t token.Tag, mtch parser.Matcher[E, V]) parser.MatcherFunc[E, token.Token[V]] {
	return func(c parser.Cursor[E]) parser.Outcome[token.Token[V]] {
		inner, fail, ok := descend[E, token.Token[V]](c)
		if !ok {
			return fail
		}

		o := mtch.Attempt(inner)
		if !o.Matched {
			return parser.Fail[token.Token[V]](o.Failure)
		}

		return parser.Success(o.Consumed, token.Token[V]{
			Tag:   t,
			Start: c.Offset(),
			End:   c.Offset() + o.Consumed,
			Value: o.Value,
		})
	}
}

// Lazy returns a Matcher that calls build the first time it is attempted and
// delegates to the result from then on. It lets a matcher refer to itself for
// recursive structures. build runs at most once, even under concurrent use.
//
// Recursion through Lazy is bounded only by the cursor's depth limit.
func Lazy[E, V any](build func() parser.Matcher[E, V]) parser.MatcherFunc[E, V] {
	if build == nil {
		panic(parser.Violate(0, "match.Lazy", "nil builder"))
	}

	get := sync.OnceValue(build)
	return func(c parser.Cursor[E]) parser.Outcome[V] {
		inner, fail, ok := descend[E, V](c)
		if !ok {
			return fail
		}
		return get().Attempt(inner)
	}
}
