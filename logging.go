package mytar

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// newLogger returns the diagnostics logger. Every line is prefixed with the
// tool name, without timestamp or level, the way tar reports problems.
func newLogger(w io.Writer, debug bool) zerolog.Logger {
	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		PartsOrder: []string{zerolog.MessageFieldName},
		FormatMessage: func(i interface{}) string {
			if i == nil {
				return toolName + ":"
			}
			return fmt.Sprintf("%s: %s", toolName, i)
		},
	}
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(out).Level(level)
}
