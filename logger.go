package snowflakedriver

import (
	"io"

	"github.com/rs/zerolog"
)

type Logger interface {
	Printf(format string, v ...any)
}

var debugLogger = NewLogger(io.Discard)

// NewLogger returns a Logger writing JSON lines to w.
func NewLogger(w io.Writer) Logger {
	l := zerolog.New(w).With().
		Timestamp().
		Str("driver", "snowflake").
		Logger()
	return &l
}

func SetDebugLogger(l Logger) error {
	if l == nil {
		return ErrNilLogger
	}
	debugLogger = l
	return nil
}
