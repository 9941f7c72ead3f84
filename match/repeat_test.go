package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/combo/match"
	"github.com/zostay/combo/parser"
)

func TestRepeatBounds(t *testing.T) {
	m := match.Repeat(match.OneFunc(match.Digit), 2, 4)

	o := attempt(m, "123456")
	require.True(t, o.Matched)
	assert.Equal(t, 4, o.Consumed)
	assert.Equal(t, 4, o.Value.Count)
	assert.Equal(t, '4', o.Value.Last)

	o = attempt(m, "1x")
	require.False(t, o.Matched)
	assert.Equal(t, 1, o.Failure.Offset)
	assert.Equal(t, parser.ExpectedRepetitions, o.Failure.Expected)
	assert.EqualError(t, o.Err(), "expected at least min repetitions at offset 1")

	o = attempt(m, "12")
	require.True(t, o.Matched)
	assert.Equal(t, 2, o.Consumed)
}

func TestRepeatZeroMax(t *testing.T) {
	o := attempt(match.Repeat(match.String("a"), 0, 0), "aaa")
	require.True(t, o.Matched)
	assert.Zero(t, o.Consumed)
	assert.Zero(t, o.Value.Count)
}

func TestRepeatZeroWidthTerminates(t *testing.T) {
	m := match.Repeat(match.Optional(match.String("")), 0, match.Unbounded)

	for _, in := range []string{"", "a", "abc"} {
		o := attempt(m, in)
		require.True(t, o.Matched, in)
		assert.Zero(t, o.Consumed, in)
		assert.Equal(t, 1, o.Value.Count, in)
	}

	// an optional that is absent is a zero-width success too
	o := attempt(match.Many(match.Optional(match.String("x")), 3), "xxy")
	require.True(t, o.Matched)
	assert.Equal(t, 2, o.Consumed)
	assert.Equal(t, 3, o.Value.Count)
	assert.False(t, o.Value.Last.Valid)

	// a zero-width repetition ends the loop but still counts only once
	o2 := attempt(match.Repeat(match.Peek(match.String("a")), 5, 10), "a")
	require.False(t, o2.Matched)
	assert.Equal(t, 0, o2.Failure.Offset)
	assert.Equal(t, parser.ExpectedRepetitions, o2.Failure.Expected)

	o3 := attempt(match.Repeat(match.EndOfInput[rune](), 2, 5), "")
	require.False(t, o3.Matched)
	assert.Equal(t, 0, o3.Failure.Offset)
	assert.Equal(t, parser.ExpectedRepetitions, o3.Failure.Expected)

	// the failure is reported where the loop stopped, past what was consumed
	o4 := attempt(match.Many(match.Span(match.Optional(match.String("x"))), 4), "xxy")
	require.False(t, o4.Matched)
	assert.Equal(t, 2, o4.Failure.Offset)
	assert.Equal(t, parser.ExpectedRepetitions, o4.Failure.Expected)

	o5 := attempt(match.Repeat(match.EndOfInput[rune](), 1, 5), "")
	require.True(t, o5.Matched)
	assert.Equal(t, 1, o5.Value.Count)
}

func TestRepeatViolations(t *testing.T) {
	digit := match.OneFunc(match.Digit)

	tests := []struct {
		name string
		op   string
		f    func()
	}{
		{"min above max", "match.Repeat", func() { match.Repeat(digit, 3, 2) }},
		{"negative min", "match.Repeat", func() { match.Repeat(digit, -1, 2) }},
		{"many negative", "match.Many", func() { match.Many(digit, -1) }},
		{"sep negative", "match.ManyWithSep", func() { match.ManyWithSep(-2, digit, match.String(",")) }},
		{"elements", "match.N", func() { match.N(3, 2, match.Digit) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				v, ok := recover().(*parser.Violation)
				require.True(t, ok, "panics with a *parser.Violation")
				assert.Equal(t, tt.op, v.Op)
				assert.Contains(t, v.Location, "repeat_test.go")
			}()
			tt.f()
		})
	}

	assert.NotPanics(t, func() { match.Repeat(digit, 2, match.Unbounded) })
	assert.NotPanics(t, func() { match.Repeat(digit, 0, 0) })
}

func TestOptional(t *testing.T) {
	m := match.Optional(match.String("x"))

	o := attempt(m, "xy")
	require.True(t, o.Matched)
	assert.Equal(t, 1, o.Consumed)
	assert.True(t, o.Value.Valid)
	assert.Equal(t, []rune("x"), o.Value.Value)

	o = attempt(m, "y")
	require.True(t, o.Matched)
	assert.Zero(t, o.Consumed)
	assert.False(t, o.Value.Valid)
}

func TestOptionalAgreesWithRepeat(t *testing.T) {
	inner := match.Span(match.Seq2(match.String("a"), match.Optional(match.String("b"))))
	opt := match.Optional(inner)
	rep := match.Repeat(inner, 0, 1)

	for _, in := range []string{"", "a", "ab", "abab", "b"} {
		o := attempt(opt, in)
		r := attempt(rep, in)
		assert.Equal(t, r.Matched, o.Matched, in)
		assert.Equal(t, r.Consumed, o.Consumed, in)
		assert.Equal(t, r.Value.Count == 1, o.Value.Valid, in)
	}
}

func TestRepeatInto(t *testing.T) {
	m := match.N(1, 2, match.Digit)
	var buf [4][]rune

	o := match.RepeatInto[rune, []rune](m, 1, 4, parser.NewCursor([]rune("12345678x")), buf[:])
	require.True(t, o.Matched)
	assert.Equal(t, 8, o.Consumed)
	assert.Equal(t, 4, o.Value.Count)
	assert.Equal(t, [4][]rune{[]rune("12"), []rune("34"), []rune("56"), []rune("78")}, buf)

	o = match.RepeatInto[rune, []rune](m, 2, 2, parser.NewCursor([]rune("1x")), buf[:])
	require.False(t, o.Matched)
	assert.Equal(t, 1, o.Failure.Offset)

	// nothing past max is written
	keep := []rune("keep")
	big := [4][]rune{nil, nil, keep, keep}
	o = match.RepeatInto[rune, []rune](m, 0, 2, parser.NewCursor([]rune("123456")), big[:])
	require.True(t, o.Matched)
	assert.Equal(t, 2, o.Value.Count)
	assert.Equal(t, [4][]rune{[]rune("12"), []rune("34"), keep, keep}, big)

	assert.Panics(t, func() {
		match.RepeatInto[rune, []rune](m, 0, match.Unbounded, parser.NewCursor([]rune("1")), buf[:])
	})
	assert.Panics(t, func() {
		match.RepeatInto[rune, []rune](m, 0, 5, parser.NewCursor([]rune("1")), buf[:])
	})
}

func TestManyWithSep(t *testing.T) {
	num := match.N(1, match.Unbounded, match.ASCIIDigit)
	m := match.ManyWithSep(1, num, match.Bytes(","))

	o := attemptBytes(m, "1,22,333,")
	require.True(t, o.Matched)
	assert.Equal(t, 8, o.Consumed, "trailing separator is left alone")
	assert.Equal(t, 3, o.Value.Count)
	assert.Equal(t, []byte("333"), o.Value.Last)

	o = attemptBytes(m, "7")
	require.True(t, o.Matched)
	assert.Equal(t, 1, o.Consumed)
	assert.Equal(t, 1, o.Value.Count)
	assert.Equal(t, []byte("7"), o.Value.Last)

	o = attemptBytes(m, "")
	require.False(t, o.Matched)
	assert.Equal(t, 0, o.Failure.Offset)
	assert.Equal(t, parser.ExpectedRepetitions, o.Failure.Expected)

	o = attemptBytes(match.ManyWithSep(0, num, match.Bytes(",")), "x")
	require.True(t, o.Matched)
	assert.Zero(t, o.Consumed)

	o = attemptBytes(match.ManyWithSep(3, num, match.Bytes(",")), "1,2,x")
	require.False(t, o.Matched)
	assert.Equal(t, 4, o.Failure.Offset)
}

func TestManyWithSepZeroWidth(t *testing.T) {
	m := match.ManyWithSep(0, match.Optional(match.Bytes("a")), match.Optional(match.Bytes(",")))

	o := attemptBytes(m, "a,a,,b")
	require.True(t, o.Matched)
	assert.Equal(t, 5, o.Consumed)

	item := match.Optional(match.Bytes("a"))
	sep := match.Optional(match.Bytes(","))

	o = attemptBytes(match.ManyWithSep(2, item, sep), "b")
	require.False(t, o.Matched)
	assert.Equal(t, 0, o.Failure.Offset)
	assert.Equal(t, parser.ExpectedRepetitions, o.Failure.Expected)

	o = attemptBytes(match.ManyWithSep(3, item, sep), "a")
	require.False(t, o.Matched)
	assert.Equal(t, 1, o.Failure.Offset)
	assert.Equal(t, parser.ExpectedRepetitions, o.Failure.Expected)

	o = attemptBytes(match.ManyWithSep(2, item, sep), "a")
	require.True(t, o.Matched)
	assert.Equal(t, 1, o.Consumed)
	assert.Equal(t, 2, o.Value.Count)
}
