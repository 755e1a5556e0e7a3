// Package csv2xlsx assembles CSV files into a single xlsx workbook.
package csv2xlsx

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Mode represents how much progress output a conversion emits.
type Mode string

const (
	// ModeQuiet reports warnings only.
	ModeQuiet Mode = "quiet"
	// ModeStandard reports per-sheet progress, limit warnings and the saved path.
	ModeStandard Mode = "standard"
	// ModeVerbose adds per-sheet summaries.
	ModeVerbose Mode = "verbose"
)

// Options configures conversion behavior.
type Options struct {
	// Mode selects the log level of the default logger.
	Mode Mode
	// Logger receives progress and warning messages.
	// If nil, a text logger writing to stdout at the Mode's level is used.
	Logger logrus.FieldLogger
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		Mode: ModeStandard,
	}
}

// Level returns the log level implied by the mode.
func (o Options) Level() logrus.Level {
	switch o.Mode {
	case ModeQuiet:
		return logrus.WarnLevel
	case ModeVerbose:
		return logrus.DebugLevel
	default:
		return logrus.InfoLevel
	}
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	return NewLogger(os.Stdout, o.Level())
}

// NewLogger returns a text logger with full timestamps.
func NewLogger(out io.Writer, level logrus.Level) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return log
}
