// Package logging holds the logrus helpers shared by the library packages.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Discard returns an entry whose output is thrown away. Library components
// fall back to it when the caller does not supply a logger.
func Discard() *logrus.Entry {
	logger := logrus.New()
	logger.Out = io.Discard
	logger.Level = logrus.PanicLevel
	return logrus.NewEntry(logger)
}

// Component tags log with the prefix of a component. A nil log yields a
// discarding entry.
func Component(log *logrus.Entry, prefix string) *logrus.Entry {
	if log == nil {
		return Discard()
	}
	return log.WithField("prefix", prefix)
}
