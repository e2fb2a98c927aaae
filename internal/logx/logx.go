// Package logx provides the zerolog setup shared by the engine and
// its command-line front ends, adapted from
// freeeve-chessgraph/api/internal/logx/logx.go.
package logx

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns a zerolog logger configured for console output,
// with the caller field trimmed to a filename:line pair so search
// traces don't wrap in a terminal.
func NewLogger() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		short := file
		for i := len(file) - 1; i > 0; i-- {
			if file[i] == '/' {
				short = file[i+1:]
				break
			}
		}
		return fmt.Sprintf("%-28s", fmt.Sprintf("%s:%d", short, line))
	}
	return zerolog.New(output).With().Timestamp().Caller().Logger()
}

// Nop returns a logger that discards everything, for callers (tests,
// library embedders) that don't want console noise.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
