package sheetfill

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log = newLogger()

// newLogger builds the package logger. The level comes from the
// SHEETFILL_LOG environment variable, falling back to LOGLEVEL, defaulting
// to error so library consumers see nothing unless they ask.
func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	raw := os.Getenv("SHEETFILL_LOG")
	if raw == "" {
		raw = os.Getenv("LOGLEVEL")
	}
	level, err := logrus.ParseLevel(raw)
	if err != nil {
		level = logrus.ErrorLevel
	}
	logger.SetLevel(level)
	return logger
}

// SetLogger replaces the package logger, for callers that want the engine's
// debug output routed through their own logrus instance.
func SetLogger(l *logrus.Logger) {
	if l != nil {
		log = l
	}
}
