package match

import "github.com/zostay/combo/parser"

// Unbounded may be given as the maximum of a repetition to leave it unlimited.
const Unbounded = -1

// Repetition is the capture of Repeat: how many times the matcher repeated and
// the capture of the last repetition.
type Repetition[V any] struct {
	Count int
	Last  V
}

// Option is the capture of Optional. Valid is false when the matcher was
// absent.
type Option[V any] struct {
	Value V
	Valid bool
}

func checkBounds(op string, min, max int) {
	switch {
	case min < 0:
		panic(parser.Violate(1, op, "negative minimum %d", min))
	case max != Unbounded && max < min:
		panic(parser.Violate(1, op, "maximum %d is less than minimum %d", max, min))
	}
}

// loopState is what the repetition loop learned about the input.
type loopState[V any] struct {
	count     int
	consumed  int
	last      V
	zeroWidth bool           // stopped on a repetition that consumed nothing
	stop      parser.Failure // the failure that ended the loop, or where it stopped
}

// satisfies reports whether the loop matched at least min times.
func (st loopState[V]) satisfies(min int) bool {
	return st.count >= min
}

// loop is the repetition core shared by every repeating matcher, whether it
// collects captures or not. It attempts mtch until mtch fails, max repetitions
// were made, or a repetition consumed nothing. each, if not nil, receives the
// capture of every repetition in order.
//
// The boolean is false when mtch failed with an aborting failure, which is
// then held in stop.
func loop[E, V any](
	mtch parser.Matcher[E, V],
	c parser.Cursor[E],
	max int,
	each func(int, V),
) (loopState[V], bool) {
	var st loopState[V]
	for max == Unbounded || st.count < max {
		o := mtch.Attempt(c)
		if !o.Matched {
			st.stop = o.Failure
			return st, !o.Failure.Aborts()
		}

		if each != nil {
			each(st.count, o.Value)
		}
		st.count++
		st.consumed += o.Consumed
		st.last = o.Value

		if o.Consumed == 0 {
			st.zeroWidth = true
			st.stop = parser.Failure{Offset: c.Offset(), Expected: parser.ExpectedRepetitions}
			break
		}
		c = c.Advance(o.Consumed)
	}
	return st, true
}

// sepLoop runs item once and then tail, which must match a separator followed
// by an item, as a loop. each sees the item captures with consistent indexes.
func sepLoop[E, V any](
	item parser.Matcher[E, V],
	tail parser.Matcher[E, V],
	c parser.Cursor[E],
	each func(int, V),
) (loopState[V], bool) {
	first, ok := loop(item, c, 1, each)
	if !ok || first.count == 0 || first.zeroWidth {
		return first, ok
	}

	var shifted func(int, V)
	if each != nil {
		shifted = func(i int, v V) { each(i+1, v) }
	}

	rest, ok := loop(tail, c.Advance(first.consumed), Unbounded, shifted)
	rest.count += first.count
	rest.consumed += first.consumed
	if rest.count == first.count {
		rest.last = first.last
	}
	return rest, ok
}

// finishLoop turns a loop result into the outcome of a repetition that
// required min repetitions and captures r.
func finishLoop[V, R any](st loopState[V], ok bool, min int, r R) parser.Outcome[R] {
	if !ok {
		return parser.Fail[R](st.stop)
	}

	if !st.satisfies(min) {
		return parser.FailAt[R](st.stop.Offset, parser.ExpectedRepetitions)
	}

	return parser.Success(st.consumed, r)
}

// Repeat returns a Matcher that matches mtch as many times as possible, up to
// max, one after another on the input. It fails if there are fewer than min
// matches, reporting the offset of the failure that ended the repetition.
//
// A repetition that consumes nothing ends the loop at once, since repeating it
// would consume nothing forever. It counts once; if that leaves fewer than min
// repetitions the match fails at the offset where the loop stopped.
//
// The capture holds the number of repetitions and the last capture. Use
// Collect or RepeatInto to keep every capture.
func Repeat[E, V any](mtch parser.Matcher[E, V], min, max int) parser.MatcherFunc[E, Repetition[V]] {
	checkBounds("match.Repeat", min, max)
	return func(c parser.Cursor[E]) parser.Outcome[Repetition[V]] {
		inner, fail, ok := descend[E, Repetition[V]](c)
		if !ok {
			return fail
		}

		st, ok := loop(mtch, inner, max, nil)
		return finishLoop(st, ok, min, Repetition[V]{Count: st.count, Last: st.last})
	}
}

// Many returns a Matcher that matches the given matcher as many times as
// possible one after another on the input. If the number of matches is fewer
// than min, it fails.
func Many[E, V any](mtch parser.Matcher[E, V], min int) parser.MatcherFunc[E, Repetition[V]] {
	checkBounds("match.Many", min, Unbounded)
	return Repeat(mtch, min, Unbounded)
}

// Optional returns a Matcher that always succeeds: with the capture of mtch
// when it matches, and consuming nothing with an invalid Option when it does
// not. It is a repetition of zero or one.
func Optional[E, V any](mtch parser.Matcher[E, V]) parser.MatcherFunc[E, Option[V]] {
	return func(c parser.Cursor[E]) parser.Outcome[Option[V]] {
		inner, fail, ok := descend[E, Option[V]](c)
		if !ok {
			return fail
		}

		st, ok := loop(mtch, inner, 1, nil)
		return finishLoop(st, ok, 0, Option[V]{Value: st.last, Valid: st.count == 1})
	}
}

// RepeatInto attempts a repetition of mtch at c exactly as Repeat would, but
// also writes every capture into dst, so a history can be kept without the
// matcher allocating. On success dst[:Count] holds the captures.
//
// max must be bounded and no larger than len(dst). Only dst[:Count] of a
// successful outcome is meaningful: a failed attempt may have overwritten any
// of dst[:max], and dst[max:] is never touched.
func RepeatInto[E, V any](
	mtch parser.Matcher[E, V],
	min, max int,
	c parser.Cursor[E],
	dst []V,
) parser.Outcome[Repetition[V]] {
	checkBounds("match.RepeatInto", min, max)
	if max == Unbounded || max > len(dst) {
		panic(parser.Violate(0, "match.RepeatInto", "maximum %d does not fit a buffer of %d", max, len(dst)))
	}

	inner, fail, ok := descend[E, Repetition[V]](c)
	if !ok {
		return fail
	}

	st, ok := loop(mtch, inner, max, func(i int, v V) { dst[i] = v })
	return finishLoop(st, ok, min, Repetition[V]{Count: st.count, Last: st.last})
}

// ManyWithSep returns a matcher that matches the given matcher against the
// input provided that the separator matcher matches in between. A separator
// that is not followed by an item is left unconsumed. If fewer than min items
// are present, the match fails.
func ManyWithSep[E, V, S any](
	min int,
	item parser.Matcher[E, V],
	sep parser.Matcher[E, S],
) parser.MatcherFunc[E, Repetition[V]] {
	checkBounds("match.ManyWithSep", min, Unbounded)
	tail := Right(sep, item)
	return func(c parser.Cursor[E]) parser.Outcome[Repetition[V]] {
		inner, fail, ok := descend[E, Repetition[V]](c)
		if !ok {
			return fail
		}

		st, ok := sepLoop[E, V](item, tail, inner, nil)
		return finishLoop(st, ok, min, Repetition[V]{Count: st.count, Last: st.last})
	}
}
