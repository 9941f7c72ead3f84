package token

import (
	"fmt"
	"sync/atomic"
)

// Tag is the abstract tag identifier used to label captures by type, so that a
// caller walking the results of a match can tell what each piece represents.
type Tag int

// A few standard tags for matches.
const (
	// None is the tag to use for captures that aren't actual matches, such as
	// an absent match.Optional.
	None Tag = iota

	// Literal is the most generic tag.
	Literal

	// Last identifies the first non-built-in tag. No guarantee is made that
	// this will never change.
	Last
)

var prevTag atomic.Int64

func init() {
	prevTag.Store(int64(Last))
}

// NextTag provides an interface for assigning tags serial numbers at runtime to
// avoid conflicts between tags when matchers from different modules are mixed
// and matched. This returns the next available tag and should be called during
// init.
func NextTag() Tag {
	return Tag(prevTag.Add(1))
}

func (t Tag) String() string {
	switch t {
	case None:
		return "None"
	case Literal:
		return "Literal"
	default:
		return fmt.Sprintf("Tag(%d)", int(t))
	}
}

// Token is a tagged capture together with the span of input it was matched
// from. Start and End are offsets into the input sequence, End exclusive.
type Token[V any] struct {
	Tag   Tag
	Start int
	End   int
	Value V
}

// Len returns the number of input elements the token covers.
func (t Token[V]) Len() int {
	return t.End - t.Start
}
