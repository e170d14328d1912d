package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging builds the JSON logger used by the server. An unknown level
// falls back to info.
func SetupLogging(level string) *logrus.Logger {
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	return newLogger(os.Stdout, logLevel)
}

func newLogger(out io.Writer, level logrus.Level) *logrus.Logger {
	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Hooks: make(logrus.LevelHooks),
		Out:   out,
		Level: level,
	}

	return &logger
}
