package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Level is the minimum severity written.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	ErrorLevel
)

// ParseLevel maps LOG_LEVEL values; unknown values mean info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Logger is the logging surface handed to services.
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// DefaultLogger implements Logger on top of logrus.
type DefaultLogger struct {
	entry *logrus.Entry
}

// NewDefaultLogger writes text logs to stdout.
func NewDefaultLogger(level Level) *DefaultLogger {
	return NewLogger(level, os.Stdout)
}

// NewLogger writes text logs to out.
func NewLogger(level Level, out io.Writer) *DefaultLogger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.DateTime,
	})
	l.SetLevel(toLogrus(level))
	return &DefaultLogger{entry: logrus.NewEntry(l)}
}

// NewFileLogger also appends to <dir>/app-YYYY-MM-DD.log.
func NewFileLogger(level Level, dir string) (*DefaultLogger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	name := filepath.Join(dir, fmt.Sprintf("app-%s.log", time.Now().Format("2006-01-02")))
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return NewLogger(level, io.MultiWriter(os.Stdout, f)), nil
}

// Nop discards everything; used in tests.
func Nop() *DefaultLogger {
	return NewLogger(ErrorLevel, io.Discard)
}

// Info logs at info level
func (l *DefaultLogger) Info(format string, v ...interface{}) {
	l.entry.Infof(format, v...)
}

// Error logs at error level
func (l *DefaultLogger) Error(format string, v ...interface{}) {
	l.entry.Errorf(format, v...)
}

// Debug logs at debug level
func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	l.entry.Debugf(format, v...)
}

func toLogrus(level Level) logrus.Level {
	switch level {
	case DebugLevel:
		return logrus.DebugLevel
	case ErrorLevel:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
