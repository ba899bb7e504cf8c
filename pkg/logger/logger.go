package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	apperrors "github.com/vibejam-co/jam-sub001/pkg/errors"
)

const timestampFormat = "2006-01-02 15:04:05"

// Log is usable before Init, which reconfigures it in place.
var Log = logrus.New()

// Init applies logging.level, logging.format and logging.output. An unknown
// level falls back to info and is reported once the logger is ready.
func Init(level, format, output string) error {
	w, err := openOutput(output)
	if err != nil {
		return err
	}
	SetOutput(w)
	Log.SetFormatter(newFormatter(format))

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		Log.SetLevel(logrus.InfoLevel)
		Log.WithField("configured_level", level).Warn("Unknown logging.level, using info")
		return nil
	}
	Log.SetLevel(lvl)
	return nil
}

func newFormatter(format string) logrus.Formatter {
	if strings.EqualFold(format, "json") {
		return &logrus.JSONFormatter{TimestampFormat: timestampFormat}
	}
	return &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: timestampFormat,
	}
}

// openOutput resolves stdout, stderr or a file path; the file's directory is
// created when missing.
func openOutput(output string) (io.Writer, error) {
	switch output {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	}

	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return nil, apperrors.Configuration("failed to create log directory", err)
	}
	file, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, apperrors.Configuration("failed to open log output", err)
	}
	return file, nil
}

func SetOutput(w io.Writer) {
	Log.SetOutput(w)
}

func WithFields(fields logrus.Fields) *logrus.Entry {
	return Log.WithFields(fields)
}

func Info(args ...interface{}) {
	Log.Info(args...)
}

func Error(args ...interface{}) {
	Log.Error(args...)
}

func Fatal(args ...interface{}) {
	Log.Fatal(args...)
}
