// ABOUTME: Diagnostic logger construction on top of zerolog.
// ABOUTME: Human-readable console output on the given writer, usually stderr.
package logging

import (
	"fmt"
	"io"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// TimeFormat is used for console log timestamps.
const TimeFormat = "2006-01-02 15:04:05"

// New creates a console logger at the named level ("debug", "info", ...).
func New(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parse log level: %w", err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	console := zerolog.ConsoleWriter{Out: w, TimeFormat: TimeFormat, NoColor: !isTerminal(w)}
	return zerolog.New(console).Level(lvl).With().Timestamp().Logger(), nil
}

type fdWriter interface {
	Fd() uintptr
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
