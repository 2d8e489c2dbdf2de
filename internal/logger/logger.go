// Package logger holds the process-wide diagnostic logger. Diagnostics go to
// stderr so stdout carries only results.
package logger

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var L = &logrus.Logger{
	Out:   os.Stderr,
	Hooks: make(logrus.LevelHooks),
	Level: logrus.WarnLevel,
	Formatter: &prefixed.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
		ForceFormatting: true,
	},
}

// SetLevel changes the level of L by name ("debug", "info", "warn", ...).
func SetLevel(name string) error {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", name)
	}
	L.SetLevel(level)
	return nil
}
