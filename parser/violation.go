package parser

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// Violation is the panic value used when the matching API is misused: a
// matcher built with impossible bounds, or a cursor moved past the end of its
// sequence. It never describes bad input; bad input is always a Failure.
type Violation struct {
	Op       string // the constructor or operation that was misused
	Msg      string
	Location string // file:line of the offending caller, when known
}

// Error implements error.
func (v *Violation) Error() string {
	if v.Location == "" {
		return fmt.Sprintf("%s: %s", v.Op, v.Msg)
	}
	return fmt.Sprintf("%s: %s (%s)", v.Op, v.Msg, v.Location)
}

// Violate builds a *Violation for op. The location recorded is that of the
// caller of the function calling Violate, moved skip frames further up the
// stack. It is meant to be passed to panic.
func Violate(skip int, op, format string, args ...any) *Violation {
	v := &Violation{Op: op, Msg: fmt.Sprintf(format, args...)}
	if _, file, line, ok := runtime.Caller(skip + 2); ok {
		v.Location = fmt.Sprintf("%s:%d", filepath.Base(file), line)
	}
	return v
}

func violate(op, format string, args ...any) *Violation {
	return Violate(1, op, format, args...)
}
