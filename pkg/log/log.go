package log

import (
	"github.com/sirupsen/logrus"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

type logger struct {
	log *logrus.Logger
}

// New returns a Logger backed by the standard logrus logger.
func New() Logger {
	return &logger{log: logrus.StandardLogger()}
}

// NewWith returns a Logger backed by the provided logrus instance,
// so that callers control level and output.
func NewWith(l *logrus.Logger) Logger {
	return &logger{log: l}
}

func (l *logger) Infof(format string, args ...interface{}) {
	l.log.Infof(format, args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	l.log.Errorf(format, args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	l.log.Debugf(format, args...)
}
