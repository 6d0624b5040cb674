// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"io"

	"github.com/sirupsen/logrus"
)

// newLogger builds the process logger writing text lines to out.
func newLogger(out io.Writer, level logrus.Level, colors bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:    !colors,
		DisableTimestamp: true,
	})
	logger.SetLevel(level)
	return logger
}

// levelFor resolves the log level. --verbose and --quiet take precedence
// over the configured level; an unparseable level means warn.
func levelFor(configured string, verbose, quiet bool) logrus.Level {
	switch {
	case verbose:
		return logrus.DebugLevel
	case quiet:
		return logrus.ErrorLevel
	}
	lvl, err := logrus.ParseLevel(configured)
	if err != nil {
		return logrus.WarnLevel
	}
	return lvl
}
