// Package logger holds the process-wide logger.
package logger

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

func init() {
	Log.SetOutput(os.Stderr)
	Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// Setup sets the level ("debug", "info", ...) and the output format, which
// is either "text" or "json".
func Setup(level, format string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	Log.SetLevel(lvl)

	switch format {
	case "", "text":
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		Log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("logger: unknown format %q", format)
	}
	return nil
}
