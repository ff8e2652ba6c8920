// Package logging configures the process-wide structured logger.
package logging

import (
	"os"

	charmlog "github.com/charmbracelet/log"
)

var defaultLogger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: true,
	TimeFormat:      "15:04:05",
	Level:           charmlog.InfoLevel,
})

// Init sets the global log level. Call once at startup, before any
// logging happens.
func Init(verbose bool) {
	if verbose {
		defaultLogger.SetLevel(charmlog.DebugLevel)
	}
}

func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// With returns a logger carrying the given key/value pairs.
func With(args ...any) *charmlog.Logger {
	return defaultLogger.With(args...)
}
