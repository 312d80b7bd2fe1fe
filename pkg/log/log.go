// Package log creates the logger of wfdiag.
// Logs are written to stderr so that they never mix with the report written to stdout.
package log

import (
	"os"

	"github.com/sirupsen/logrus"
)

func New(version string) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	return logger.WithFields(logrus.Fields{
		"version": version,
		"program": "wfdiag",
	})
}

// SetLevel sets the log level. An empty level keeps the current level.
// An invalid level is reported and ignored.
func SetLevel(level string, logE *logrus.Entry) {
	if level == "" {
		return
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logE.WithField("log_level", level).WithError(err).Error("the log level is invalid")
		return
	}
	logE.Logger.SetLevel(lvl)
}
