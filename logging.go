package calc

import (
	"github.com/sirupsen/logrus"
)

var (
	// package logger instance
	log = logrus.New()

	TAG = "calc"
)

func init() {
	log.Level = logrus.WarnLevel
}

// SetLogLevel changes package log level.
func SetLogLevel(level string) error {
	ll, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}

	log.Level = ll
	return nil // OK
}

// GetLogLevel gets current package log level.
func GetLogLevel() logrus.Level {
	return log.Level
}
