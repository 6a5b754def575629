package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

const service = "fakejson"

// NewRunID returns an identifier that tags every log line of one run.
func NewRunID() string {
	return uuid.New().String()
}

// New builds the process logger. Logs never go to stdout, which carries the
// generated document. Terminals get the console format, everything else JSON.
func New(w io.Writer, level, runID string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}

	out := w
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		out = zerolog.ConsoleWriter{Out: f, TimeFormat: time.TimeOnly}
	}

	return zerolog.New(out).
		Level(lvl).
		With().Timestamp().
		Str("service", service).Str("run_id", runID).
		Logger(), nil
}
