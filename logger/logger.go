// Package logger provides the module-wide logging facility.
//
// Every component obtains its own named logger via NewLogger; the log level
// is parsed from a string so it can be wired straight from CLI flags.
package logger

import (
	"os"

	"github.com/op/go-logging"
)

// defaultLogFormat renders time, level and module name before the message.
var defaultLogFormat = logging.MustStringFormatter(
	`%{time:2006/01/02 15:04:05} %{color}%{level:-8s}%{color:reset} %{module}: %{message}`,
)

// NewLogger returns a named logger emitting to stderr at the given level.
// An unrecognized level string falls back to INFO rather than failing:
// logging must never abort a run.
func NewLogger(level string, module string) *logging.Logger {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.INFO
	}

	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, defaultLogFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(lvl, module)

	log := logging.MustGetLogger(module)
	log.SetBackend(leveled)

	return log
}
