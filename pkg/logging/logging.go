package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ParseLevel maps a config level name to a zerolog level. Unknown names
// fall back to info.
func ParseLevel(name string) zerolog.Level {
	switch strings.ToUpper(name) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	}
	return zerolog.InfoLevel
}

// New builds a timestamped logger writing to w. The console format is
// human readable; anything else writes raw JSON lines.
func New(w io.Writer, level, format string) zerolog.Logger {
	if format == FormatConsole {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// Open is New with an optional log file. The file gets the console format
// without colours whatever the stdout format is. Close the returned closer
// on exit.
func Open(stdout io.Writer, level, format, file string) (zerolog.Logger, io.Closer, error) {
	if file == "" {
		return New(stdout, level, format), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("opening log file: %w", err)
	}

	var out io.Writer = stdout
	if format == FormatConsole {
		out = zerolog.ConsoleWriter{Out: stdout, TimeFormat: time.RFC3339}
	}
	mlw := zerolog.MultiLevelWriter(
		out,
		zerolog.ConsoleWriter{Out: f, TimeFormat: time.RFC3339, NoColor: true},
	)
	logger := zerolog.New(mlw).Level(ParseLevel(level)).With().Timestamp().Logger()
	return logger, f, nil
}
