package logging

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	EnvLogLevel  = "SDP_LOG_LEVEL"
	EnvLogFormat = "SDP_LOG_FORMAT"
)

// Configure sets up the standard logrus logger. Environment variables win
// over the given values.
func Configure(level, format string) error {
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		level = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		format = v
	}

	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}

	var formatter logrus.Formatter
	switch strings.ToLower(format) {
	case "", "text":
		formatter = &logrus.TextFormatter{FullTimestamp: true}
	case "json":
		formatter = &logrus.JSONFormatter{}
	default:
		return fmt.Errorf("configure logging: unknown format %q", format)
	}

	logrus.SetLevel(lvl)
	logrus.SetFormatter(formatter)
	logrus.SetOutput(os.Stderr)
	return nil
}
