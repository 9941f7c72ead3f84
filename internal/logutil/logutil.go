package logutil

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"time"

	"github.com/zostay/combo/parser"
)

const LevelTrace slog.Level = -8

func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.LevelKey:
				switch attr.Value.Any().(slog.Level) {
				case LevelTrace:
					attr.Value = slog.StringValue("TRACE")
				}
			case slog.SourceKey:
				source := attr.Value.Any().(*slog.Source)
				source.File = filepath.Base(source.File)
			}
			return attr
		},
	}))
}

// Level picks the logger level for the command line switches. Trace wins over
// verbose, and verbose over quiet.
func Level(verbose, trace, quiet bool) slog.Level {
	switch {
	case trace:
		return LevelTrace
	case verbose:
		return slog.LevelDebug
	case quiet:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Tracer returns a parser.Tracer that logs every trace line to logger at
// LevelTrace. It returns nil when logger would discard those lines, so that
// matching does not pay for building them.
func Tracer(logger *slog.Logger) parser.Tracer {
	if !logger.Enabled(context.Background(), LevelTrace) {
		return nil
	}

	return func(v ...any) {
		// skip the closure and parser.Cursor.Trace
		pc, _, _, _ := runtime.Caller(2)
		record := slog.NewRecord(time.Now(), LevelTrace, fmt.Sprint(v...), pc)
		_ = logger.Handler().Handle(context.Background(), record)
	}
}
