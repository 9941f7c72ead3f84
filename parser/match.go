package parser

import (
	"errors"
	"fmt"
)

// Expectations reported by the matchers in this module. They are constants so
// reporting a failure never has to build a string.
const (
	ExpectedLiteral     = "expected literal"
	ExpectedElement     = "expected element, found end-of-input"
	ExpectedPredicate   = "expected element matching predicate"
	ExpectedRange       = "expected element in range"
	ExpectedEndOfInput  = "expected end-of-input"
	ExpectedNoMatch     = "unexpected match"
	ExpectedFilter      = "filter rejected match"
	ExpectedRepetitions = "expected at least min repetitions"
	ExpectedDepth       = "maximum matcher depth exceeded"
)

var (
	// ErrNoMatch is matched by every ordinary Failure via errors.Is.
	ErrNoMatch = errors.New("no match")

	// ErrDepthExceeded is matched by failures produced when a match attempt
	// descends past its configured depth limit.
	ErrDepthExceeded = errors.New("maximum matcher depth exceeded")
)

// FailureKind separates ordinary mismatches from failures that signal a
// broken contract.
type FailureKind int

const (
	// Mismatch means the input does not conform to the matcher. Combinators
	// backtrack on it.
	Mismatch FailureKind = iota

	// DepthExceeded means the attempt hit the configured depth limit.
	// Combinators propagate it unchanged and never backtrack over it.
	DepthExceeded
)

// Failure describes where and why a match failed.
type Failure struct {
	Offset   int
	Expected string
	Kind     FailureKind
}

// Aborts reports whether the failure must be propagated as-is rather than
// being retried or turned into a success by an enclosing combinator.
func (f Failure) Aborts() bool {
	return f.Kind != Mismatch
}

// Error implements error.
func (f Failure) Error() string {
	return fmt.Sprintf("%s at offset %d", f.Expected, f.Offset)
}

// Is makes Failure match ErrNoMatch or ErrDepthExceeded according to its Kind.
func (f Failure) Is(target error) bool {
	switch f.Kind {
	case DepthExceeded:
		return target == ErrDepthExceeded
	default:
		return target == ErrNoMatch
	}
}

// Outcome is the result of a single Attempt. Either Matched is true and
// Consumed and Value describe the success, or Matched is false and Failure
// describes the failure. A failed Outcome never reports consumption.
type Outcome[V any] struct {
	Matched  bool
	Consumed int
	Value    V
	Failure  Failure
}

// Success builds a successful Outcome that consumed n elements and captured v.
func Success[V any](n int, v V) Outcome[V] {
	return Outcome[V]{Matched: true, Consumed: n, Value: v}
}

// Fail builds a failed Outcome carrying f.
func Fail[V any](f Failure) Outcome[V] {
	return Outcome[V]{Failure: f}
}

// FailAt builds a failed Outcome for an ordinary mismatch.
func FailAt[V any](off int, expected string) Outcome[V] {
	return Outcome[V]{Failure: Failure{Offset: off, Expected: expected}}
}

// Err returns nil on success and the Failure otherwise.
func (o Outcome[V]) Err() error {
	if o.Matched {
		return nil
	}
	return o.Failure
}

func (o Outcome[V]) String() string {
	if o.Matched {
		return fmt.Sprintf("matched %d: %v", o.Consumed, o.Value)
	}
	return "failed: " + o.Failure.Error()
}
