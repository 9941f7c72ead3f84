package parser

// Matcher is implemented by every primitive and combinator. Attempt tries to
// match at the given cursor and reports how much input was consumed and what
// was captured, or where and why the match failed.
//
// Implementations must not keep any state between calls. The same Matcher may
// be attempted at many offsets, many times, and from several goroutines at
// once.
type Matcher[E, V any] interface {
	Attempt(c Cursor[E]) Outcome[V]
}

// MatcherFunc adapts an ordinary function to the Matcher interface. The
// function must follow the same rules as Attempt: no retained state, and no
// consumption reported on failure.
type MatcherFunc[E, V any] func(c Cursor[E]) Outcome[V]

// Attempt calls mfun.
func (mfun MatcherFunc[E, V]) Attempt(c Cursor[E]) Outcome[V] {
	return mfun(c)
}
