package util

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

/*
NewLogger builds the process-wide structured logger used for ambient,
operator-facing logging (VM lifecycle, REPL session events, file runs) -
distinct from the caret-aligned diagnostic text the format package renders
for a lifp program's own errors.

level is one of "debug", "info", "error" (case-insensitive); anything else
falls back to "info". out defaults to os.Stderr when nil, keeping stdout
free for REPL/program output.
*/
func NewLogger(out io.Writer, level string) zerolog.Logger {
	if out == nil {
		out = os.Stderr
	}

	zlevel := zerolog.InfoLevel
	switch strings.ToLower(level) {
	case "debug":
		zlevel = zerolog.DebugLevel
	case "error":
		zlevel = zerolog.ErrorLevel
	}

	writer := zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	return zerolog.New(writer).Level(zlevel).With().Timestamp().Logger()
}
