package logging

import (
	"os"
	"strings"

	"github.com/phuslu/log"
)

// Setup installs the console logger as the package default.
func Setup(level string) {
	log.DefaultLogger = log.Logger{
		Level:      ParseLevel(level),
		Caller:     1,
		TimeFormat: "2006-01-02 15:04:05",
		Writer: &log.ConsoleWriter{
			ColorOutput:    log.IsTerminal(os.Stderr.Fd()),
			EndWithMessage: true,
			Writer:         os.Stderr,
		},
	}
}

// ParseLevel converts debug|info|warn|error to a log level. Unknown -> info.
func ParseLevel(s string) log.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
