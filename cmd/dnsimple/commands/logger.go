package commands

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/fivetwenty-io/dnsimple-client/pkg/dnsimple"
)

// logrusLogger adapts a logrus logger to dnsimple.Logger.
type logrusLogger struct {
	entry *logrus.Logger
}

var _ dnsimple.Logger = (*logrusLogger)(nil)

func newLogger(out io.Writer, verbose bool) *logrusLogger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	return &logrusLogger{entry: logger}
}

func (l *logrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Debug(msg)
}

func (l *logrusLogger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Info(msg)
}

func (l *logrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Warn(msg)
}

func (l *logrusLogger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Error(msg)
}
