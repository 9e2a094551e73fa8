package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New builds the application logger with JSON output and the given level.
func New(logLevel string) *logrus.Logger {
	log := logrus.New()

	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		// fall back to info on a bad level string
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}
