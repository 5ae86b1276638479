package main

import (
	"github.com/sirupsen/logrus"
)

// newLogger returns an entry of the standard logger tagged with its
// domain, so output and level are configured in a single place.
func newLogger(domain string) *logrus.Entry {
	return logrus.WithField("domain", domain)
}

func setVerbosity(verbosity int) {
	switch {
	case verbosity >= 2:
		logrus.SetLevel(logrus.DebugLevel)
	case verbosity == 1:
		logrus.SetLevel(logrus.InfoLevel)
	default:
		logrus.SetLevel(logrus.WarnLevel)
	}
}
