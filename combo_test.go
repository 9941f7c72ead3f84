package combo_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/combo"
	"github.com/zostay/combo/match"
	"github.com/zostay/combo/parser"
)

func ExampleMatchString() {
	greeting := match.Seq2(match.String("hello"), match.Optional(match.String(", world")))

	for _, s := range []string{"hello, world!", "hello", "help"} {
		o := combo.MatchString(greeting, s)
		fmt.Println(o.Matched, o.Consumed, o.Err())
	}

	// Output:
	// true 12 <nil>
	// true 5 <nil>
	// false 0 expected literal at offset 3
}

func TestMatch(t *testing.T) {
	num := match.N(1, match.Unbounded, match.ASCIIDigit)

	o := combo.MatchBytes(num, []byte("2024-10"))
	require.True(t, o.Matched)
	assert.Equal(t, 4, o.Consumed)
	assert.Equal(t, []byte("2024"), o.Value)

	o = combo.Match[byte, []byte](num, []byte("x"))
	require.False(t, o.Matched)
	assert.True(t, errors.Is(o.Err(), parser.ErrNoMatch))
}

func TestMatchStringCountsRunes(t *testing.T) {
	o := combo.MatchString(match.String("héllo"), "héllo wörld")
	require.True(t, o.Matched)
	assert.Equal(t, 5, o.Consumed)
}

func TestMatchReader(t *testing.T) {
	o, err := combo.MatchReader(match.N(1, match.Unbounded, match.Letter), strings.NewReader("abc123"))
	require.NoError(t, err)
	require.True(t, o.Matched)
	assert.Equal(t, 3, o.Consumed)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestMatchReaderError(t *testing.T) {
	_, err := combo.MatchReader(match.Any[rune](), failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading input")
	assert.Contains(t, err.Error(), "boom")
}

func TestFull(t *testing.T) {
	m := combo.Full(match.N(1, match.Unbounded, match.Digit))

	o := combo.MatchString(m, "123")
	require.True(t, o.Matched)
	assert.Equal(t, []rune("123"), o.Value)

	o = combo.MatchString(m, "123a")
	require.False(t, o.Matched)
	assert.Equal(t, 3, o.Failure.Offset)
	assert.Equal(t, parser.ExpectedEndOfInput, o.Failure.Expected)
}

func TestPrefix(t *testing.T) {
	input := []rune("abc123")

	p, ok := combo.Prefix(match.N(1, match.Unbounded, match.Letter), input)
	require.True(t, ok)
	assert.Equal(t, "abc", string(p))

	_, ok = combo.Prefix(match.OneFunc(match.Digit), input)
	assert.False(t, ok)
}

func nested(depth int) parser.Matcher[rune, []rune] {
	var m parser.Matcher[rune, []rune] = match.String("x")
	for i := 0; i < depth; i++ {
		m = match.Span(m)
	}
	return m
}

func TestMatchWithDepth(t *testing.T) {
	deep := nested(100)

	o := combo.MatchWith(combo.Config{MaxDepth: 50}, deep, []rune("x"))
	require.False(t, o.Matched)
	assert.Equal(t, parser.DepthExceeded, o.Failure.Kind)
	assert.True(t, errors.Is(o.Err(), parser.ErrDepthExceeded))

	o = combo.MatchWith(combo.Config{}, deep, []rune("x"))
	assert.True(t, o.Matched)

	o = combo.Match(deep, []rune("x"))
	assert.True(t, o.Matched)

	o = combo.Match(nested(combo.DefaultMaxDepth+1), []rune("x"))
	require.False(t, o.Matched)
	assert.Equal(t, parser.DepthExceeded, o.Failure.Kind)
}

func TestMatchWithTrace(t *testing.T) {
	var lines []string
	cfg := combo.Config{
		Trace: func(v ...any) { lines = append(lines, fmt.Sprint(v...)) },
	}

	o := combo.MatchWith(cfg, match.Named("word", match.N(1, match.Unbounded, match.Letter)), []rune("go!"))
	require.True(t, o.Matched)
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "TRY word"))
	assert.True(t, strings.HasPrefix(lines[1], "GOT word"))
}
