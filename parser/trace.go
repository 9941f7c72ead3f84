package parser

import (
	"fmt"
	"strings"
)

// Tracer is a function that is used to log or report parser traces. This
// function signature was chosen because it is commonly available, such as
// fmt.Print or log.Println, etc.
type Tracer func(v ...any)

// Stage identifies what a trace line reports about a matcher.
type Stage int

const (
	StageTry  Stage = iota // the matcher is about to be attempted
	StageGot               // the matcher succeeded
	StageFail              // the matcher failed
)

// String returns the label trace lines print for the stage.
func (s Stage) String() string {
	switch s {
	case StageGot:
		return "GOT"
	case StageFail:
		return "ERR"
	default:
		return "TRY"
	}
}

// traceWindow is how many elements of upcoming input a trace line shows.
const traceWindow = 10

// Tracing reports whether the cursor carries a Tracer.
func (c Cursor[E]) Tracing() bool { return c.trace != nil }

// Trace may be called to help track the progress through a match for help in
// debugging. It writes nothing unless the cursor was created with a Tracer.
func (c Cursor[E]) Trace(stage Stage, name string, args ...any) {
	if c.trace == nil {
		return
	}

	out := &strings.Builder{}
	fmt.Fprint(out, stage, " ", name, "(@", c.off, " ")
	writeWindow(out, c.seq[c.off:min(c.off+traceWindow, len(c.seq))])
	if c.Remaining() > traceWindow {
		fmt.Fprint(out, "…")
	}

	for _, arg := range args {
		fmt.Fprint(out, ", ", arg)
	}
	fmt.Fprint(out, ")")

	c.trace(out.String())
}

// writeWindow prints bytes and runes as quoted text and anything else with %v.
func writeWindow[E any](out *strings.Builder, window []E) {
	switch w := any(window).(type) {
	case []byte:
		fmt.Fprintf(out, "%q", string(w))
	case []rune:
		fmt.Fprintf(out, "%q", string(w))
	default:
		fmt.Fprintf(out, "%v", w)
	}
}
