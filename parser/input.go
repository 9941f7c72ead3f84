package parser

// Options configures the cursors handed to a matcher tree for a single match
// attempt.
type Options struct {
	// MaxDepth is the maximum nesting of combinators the attempt may descend
	// through. Zero or negative means unlimited.
	MaxDepth int

	// Trace receives trace lines from matchers that emit them. Nil disables
	// tracing.
	Trace Tracer
}

// Cursor is an immutable position within an input sequence. It is a small
// value: copying it is cheap and the underlying sequence is never modified.
//
// A Cursor whose offset equals the sequence length is at end-of-input. That is
// a valid position that matchers such as match.EndOfInput expect to see.
type Cursor[E any] struct {
	seq   []E
	off   int
	depth int
	limit int
	trace Tracer
}

// NewCursor returns a Cursor at the start of seq with no depth limit and no
// tracing.
func NewCursor[E any](seq []E) Cursor[E] {
	return Cursor[E]{seq: seq}
}

// NewCursorWith returns a Cursor at the start of seq configured with the given
// Options.
func NewCursorWith[E any](seq []E, opts Options) Cursor[E] {
	return Cursor[E]{
		seq:   seq,
		limit: opts.MaxDepth,
		trace: opts.Trace,
	}
}

// Offset returns the position of the cursor in the sequence.
func (c Cursor[E]) Offset() int { return c.off }

// Len returns the length of the whole sequence.
func (c Cursor[E]) Len() int { return len(c.seq) }

// Remaining returns the number of elements between the cursor and
// end-of-input.
func (c Cursor[E]) Remaining() int { return len(c.seq) - c.off }

// AtEnd reports whether the cursor is at end-of-input.
func (c Cursor[E]) AtEnd() bool { return c.off >= len(c.seq) }

// Peek returns the element at the cursor. The boolean is false at
// end-of-input.
func (c Cursor[E]) Peek() (E, bool) {
	return c.At(0)
}

// At returns the element i positions past the cursor. The boolean is false if
// that position is at or past end-of-input.
func (c Cursor[E]) At(i int) (E, bool) {
	if i < 0 || i >= c.Remaining() {
		var zero E
		return zero, false
	}
	return c.seq[c.off+i], true
}

// Advance returns a new Cursor moved n elements forward. It panics with a
// *Violation if n is negative or would move past end-of-input. Matchers only
// advance by amounts that a successful match has already validated.
func (c Cursor[E]) Advance(n int) Cursor[E] {
	if n < 0 || n > c.Remaining() {
		panic(violate("Cursor.Advance", "advance by %d with %d remaining", n, c.Remaining()))
	}
	c.off += n
	return c
}

// Slice returns the next n elements of the sequence without copying them. It
// panics like Advance when fewer than n elements remain.
func (c Cursor[E]) Slice(n int) []E {
	if n < 0 || n > c.Remaining() {
		panic(violate("Cursor.Slice", "slice of %d with %d remaining", n, c.Remaining()))
	}
	return c.seq[c.off : c.off+n : c.off+n]
}

// Depth returns how many combinators were descended through to reach this
// cursor.
func (c Cursor[E]) Depth() int { return c.depth }

// Descend returns a Cursor one combinator level deeper. The boolean is false
// when that would exceed the configured depth limit, in which case the caller
// must report DepthFailure instead of invoking its children.
func (c Cursor[E]) Descend() (Cursor[E], bool) {
	if c.limit > 0 && c.depth >= c.limit {
		return c, false
	}
	c.depth++
	return c, true
}

// DepthFailure returns the failure reported when Descend refuses to go deeper.
func (c Cursor[E]) DepthFailure() Failure {
	return Failure{
		Offset:   c.off,
		Expected: ExpectedDepth,
		Kind:     DepthExceeded,
	}
}
