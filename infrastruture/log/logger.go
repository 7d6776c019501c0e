// Package logger provides named, colored component loggers backed by logrus.
package logger

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var ErrInvalidLoggerConfig = errors.New("logger needs a prefix and an output")

// Logger writes "[PREFIX] [LEVEL] time message key=value" lines, with the prefix colored.
type Logger struct {
	entry *logrus.Entry
}

// New creates a logger for the component named prefix.
// color is an ANSI escape sequence such as ColorGreen; it may be empty.
func New(prefix, color string, out io.Writer) (*Logger, error) {
	if strings.TrimSpace(prefix) == "" || out == nil {
		return nil, ErrInvalidLoggerConfig
	}

	base := logrus.New()
	base.SetOutput(out)
	base.SetLevel(logrus.DebugLevel)
	base.SetFormatter(&prefixFormatter{prefix: prefix, color: color})

	return &Logger{entry: logrus.NewEntry(base)}, nil
}

// WithField returns a logger that appends key=value to every line.
func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string) {
	l.entry.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.entry.Info(msg)
}

// Warning logs a warning.
func (l *Logger) Warning(msg string) {
	l.entry.Warn(msg)
}

// Error logs an error.
func (l *Logger) Error(msg string) {
	l.entry.Error(msg)
}

// prefixFormatter renders entries in the component log format.
type prefixFormatter struct {
	prefix string
	color  string
}

// Format implements logrus.Formatter.
func (f *prefixFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	if f.color != "" {
		fmt.Fprintf(&b, "%s[%s]%s", f.color, f.prefix, ColorReset)
	} else {
		fmt.Fprintf(&b, "[%s]", f.prefix)
	}
	fmt.Fprintf(&b, " [%s] %s %s", strings.ToUpper(e.Level.String()), e.Time.Format(time.RFC3339), e.Message)

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.Data[k])
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}
