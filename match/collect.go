//go:build !combo_minimal

package match

import "github.com/zostay/combo/parser"

// Collect returns a Matcher that repeats mtch exactly as Repeat does, but
// captures every repetition's capture, in order, in a new slice.
func Collect[E, V any](mtch parser.Matcher[E, V], min, max int) parser.MatcherFunc[E, []V] {
	checkBounds("match.Collect", min, max)
	return func(c parser.Cursor[E]) parser.Outcome[[]V] {
		inner, fail, ok := descend[E, []V](c)
		if !ok {
			return fail
		}

		var vs []V
		st, ok := loop(mtch, inner, max, func(_ int, v V) { vs = append(vs, v) })
		return finishLoop(st, ok, min, vs)
	}
}

// Seq returns a Matcher that applies each passed Matcher in turn against the
// input. Returns with no match immediately if any Matcher in the sequence
// fails. The capture holds every Matcher's capture in order.
func Seq[E, V any](mtchs ...parser.Matcher[E, V]) parser.MatcherFunc[E, []V] {
	return func(c parser.Cursor[E]) parser.Outcome[[]V] {
		inner, fail, ok := descend[E, []V](c)
		if !ok {
			return fail
		}

		vs := make([]V, len(mtchs))
		cur := inner
		for i, mtch := range mtchs {
			o := mtch.Attempt(cur)
			if !o.Matched {
				return parser.Fail[[]V](o.Failure)
			}

			vs[i] = o.Value
			cur = cur.Advance(o.Consumed)
		}

		return parser.Success(cur.Offset()-inner.Offset(), vs)
	}
}

// CollectWithSep is ManyWithSep capturing every item in a new slice.
func CollectWithSep[E, V, S any](
	min int,
	item parser.Matcher[E, V],
	sep parser.Matcher[E, S],
) parser.MatcherFunc[E, []V] {
	checkBounds("match.CollectWithSep", min, Unbounded)
	tail := Right(sep, item)
	return func(c parser.Cursor[E]) parser.Outcome[[]V] {
		inner, fail, ok := descend[E, []V](c)
		if !ok {
			return fail
		}

		var vs []V
		st, ok := sepLoop[E, V](item, tail, inner, func(_ int, v V) { vs = append(vs, v) })
		return finishLoop(st, ok, min, vs)
	}
}
