// Package match provides the primitive matchers and the combinators that
// compose them into matcher trees.
//
// By default the collecting layer (Collect, Seq and CollectWithSep) is
// compiled in. Building with the combo_minimal tag leaves it out; repetition
// then reports only a count and the last capture, and RepeatInto keeps a
// history in a buffer supplied by the caller. Every other matcher, and every
// test outside collect_test.go, is the same in both builds:
//
//	go test ./...
//	go test -tags combo_minimal ./...
package match
