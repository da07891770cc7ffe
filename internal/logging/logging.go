package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var logLevelMatches = map[string]zerolog.Level{
	"NONE":  zerolog.NoLevel,
	"TRACE": zerolog.TraceLevel,
	"DEBUG": zerolog.DebugLevel,
	"INFO":  zerolog.InfoLevel,
	"WARN":  zerolog.WarnLevel,
	"ERROR": zerolog.ErrorLevel,
	"FATAL": zerolog.FatalLevel,
}

// Level returns the zerolog level named by str, info when the name is not
// known.
func Level(str string) zerolog.Level {
	if l, ok := logLevelMatches[strings.ToUpper(str)]; ok {
		return l
	}
	return zerolog.InfoLevel
}

// Setup configures the global logger. Output is human readable when stderr
// is a terminal and JSON otherwise.
func Setup(level string) {
	var w io.Writer = os.Stderr
	if isatty.IsTerminal(os.Stderr.Fd()) {
		w = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
	}
	zerolog.SetGlobalLevel(Level(level))
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}
