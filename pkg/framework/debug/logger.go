// Package debug provides logging and diagnostics for plugins running inside
// FL Studio, where there is no console to print to.
package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// LogLevel represents the severity of a log message.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
	LogLevelFatal
	// LogLevelOff disables all logging.
	LogLevelOff
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	case LogLevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name ("debug", "info", ...) to a LogLevel.
func ParseLevel(name string) (LogLevel, error) {
	if name == "off" {
		return LogLevelOff, nil
	}
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		return LogLevelInfo, fmt.Errorf("parse log level: %w", err)
	}
	switch lvl {
	case logrus.TraceLevel, logrus.DebugLevel:
		return LogLevelDebug, nil
	case logrus.InfoLevel:
		return LogLevelInfo, nil
	case logrus.WarnLevel:
		return LogLevelWarn, nil
	case logrus.ErrorLevel:
		return LogLevelError, nil
	default:
		return LogLevelFatal, nil
	}
}

func (l LogLevel) logrus() logrus.Level {
	switch l {
	case LogLevelDebug:
		return logrus.DebugLevel
	case LogLevelInfo:
		return logrus.InfoLevel
	case LogLevelWarn:
		return logrus.WarnLevel
	case LogLevelError:
		return logrus.ErrorLevel
	default:
		return logrus.FatalLevel
	}
}

// Fields carries structured context for a log entry.
type Fields = logrus.Fields

// Logger is a leveled logger backed by logrus.
type Logger struct {
	mu      sync.Mutex
	base    *logrus.Logger
	level   LogLevel
	prefix  string
	flags   int
	enabled bool
	closer  io.Closer
}

// Flags for logger output formatting.
const (
	FlagTime      = 1 << iota // Include timestamp
	FlagShortFile             // Include short file name and line number
	FlagLongFile              // Include full file path and line number
	FlagLevel                 // Include log level
	FlagPrefix                // Include prefix
)

// DefaultFlags are the default formatting flags.
const DefaultFlags = FlagTime | FlagShortFile | FlagLevel | FlagPrefix

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(New(os.Stderr, "", DefaultFlags))
}

// New creates a new logger instance.
func New(output io.Writer, prefix string, flags int) *Logger {
	base := logrus.New()
	base.SetOutput(output)
	l := &Logger{
		base:    base,
		prefix:  prefix,
		enabled: true,
	}
	l.applyFlags(flags)
	l.applyLevel(LogLevelInfo)
	return l
}

// NewFileLogger creates a logger that appends to filename.
func NewFileLogger(filename, prefix string, flags int) (*Logger, error) {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	l := New(file, prefix, flags)
	l.closer = file
	return l, nil
}

// Close releases the log file of a file logger.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}

func (l *Logger) applyFlags(flags int) {
	l.flags = flags
	l.base.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: flags&FlagTime == 0,
		FullTimestamp:    true,
		TimestampFormat:  "2006-01-02 15:04:05.000",
		DisableQuote:     true,
	})
}

func (l *Logger) applyLevel(level LogLevel) {
	l.level = level
	l.base.SetLevel(level.logrus())
}

// SetOutput sets the output destination for the logger.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.base.SetOutput(w)
}

// SetLevel sets the minimum log level.
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.applyLevel(level)
}

// Level returns the minimum log level.
func (l *Logger) Level() LogLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// SetPrefix sets the logger prefix.
func (l *Logger) SetPrefix(prefix string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.prefix = prefix
}

// SetFlags sets the output formatting flags.
func (l *Logger) SetFlags(flags int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.applyFlags(flags)
}

// SetEnabled enables or disables the logger.
func (l *Logger) SetEnabled(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}

// IsEnabled returns whether the logger is enabled.
func (l *Logger) IsEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}

// Entry is a log entry with structured context attached.
type Entry struct {
	l      *Logger
	fields Fields
}

// WithFields returns an entry that logs fields alongside every message.
func (l *Logger) WithFields(fields Fields) *Entry {
	return &Entry{l: l, fields: fields}
}

// WithError is WithFields with the error under "error".
func (l *Logger) WithError(err error) *Entry {
	return l.WithFields(Fields{logrus.ErrorKey: err})
}

// WithFields returns an entry carrying e's fields and fields.
func (e *Entry) WithFields(fields Fields) *Entry {
	merged := make(Fields, len(e.fields)+len(fields))
	for k, v := range e.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &Entry{l: e.l, fields: merged}
}

// WithError adds err under "error".
func (e *Entry) WithError(err error) *Entry {
	return e.WithFields(Fields{logrus.ErrorKey: err})
}

func (e *Entry) Debug(format string, args ...interface{}) {
	e.l.log(LogLevelDebug, e.fields, format, args...)
}

func (e *Entry) Info(format string, args ...interface{}) {
	e.l.log(LogLevelInfo, e.fields, format, args...)
}

func (e *Entry) Warn(format string, args ...interface{}) {
	e.l.log(LogLevelWarn, e.fields, format, args...)
}

func (e *Entry) Error(format string, args ...interface{}) {
	e.l.log(LogLevelError, e.fields, format, args...)
}

// log writes a log message at the specified level. Callers are exactly two
// frames above it. The logger lock is not held while logrus writes.
func (l *Logger) log(level LogLevel, fields Fields, format string, args ...interface{}) {
	l.mu.Lock()
	if !l.enabled || level < l.level || l.level == LogLevelOff {
		l.mu.Unlock()
		return
	}
	base, prefix, flags := l.base, l.prefix, l.flags
	l.mu.Unlock()

	entry := logrus.NewEntry(base)
	if len(fields) > 0 {
		entry = entry.WithFields(fields)
	}
	if flags&FlagPrefix != 0 && prefix != "" {
		entry = entry.WithField("plugin", prefix)
	}
	if flags&(FlagShortFile|FlagLongFile) != 0 {
		if _, file, line, ok := runtime.Caller(2); ok {
			if flags&FlagShortFile != 0 {
				file = filepath.Base(file)
			}
			entry = entry.WithField("caller", fmt.Sprintf("%s:%d", file, line))
		}
	}

	msg := fmt.Sprintf(format, args...)
	switch level {
	case LogLevelDebug:
		entry.Debug(msg)
	case LogLevelInfo:
		entry.Info(msg)
	case LogLevelWarn:
		entry.Warn(msg)
	default:
		// Fatal is reported at error level: logrus' Fatal would exit the host.
		entry.Error(msg)
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(LogLevelDebug, nil, format, args...)
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(LogLevelInfo, nil, format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(LogLevelWarn, nil, format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(LogLevelError, nil, format, args...)
}

// Fatal logs a fatal error message and panics.
func (l *Logger) Fatal(format string, args ...interface{}) {
	l.log(LogLevelFatal, nil, format, args...)
	panic(fmt.Sprintf(format, args...))
}

// Global logger functions

// Default returns the default logger instance.
func Default() *Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the default logger.
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger.Store(l)
	}
}

// SetOutput sets the output destination for the default logger.
func SetOutput(w io.Writer) {
	Default().SetOutput(w)
}

// SetLevel sets the minimum log level for the default logger.
func SetLevel(level LogLevel) {
	Default().SetLevel(level)
}

// SetPrefix sets the prefix for the default logger.
func SetPrefix(prefix string) {
	Default().SetPrefix(prefix)
}

// SetFlags sets the output formatting flags for the default logger.
func SetFlags(flags int) {
	Default().SetFlags(flags)
}

// SetEnabled enables or disables the default logger.
func SetEnabled(enabled bool) {
	Default().SetEnabled(enabled)
}

// WithFields returns an entry of the default logger.
func WithFields(fields Fields) *Entry {
	return Default().WithFields(fields)
}

// Debug logs a debug message using the default logger.
func Debug(format string, args ...interface{}) {
	Default().log(LogLevelDebug, nil, format, args...)
}

// Info logs an informational message using the default logger.
func Info(format string, args ...interface{}) {
	Default().log(LogLevelInfo, nil, format, args...)
}

// Warn logs a warning message using the default logger.
func Warn(format string, args ...interface{}) {
	Default().log(LogLevelWarn, nil, format, args...)
}

// Error logs an error message using the default logger.
func Error(format string, args ...interface{}) {
	Default().log(LogLevelError, nil, format, args...)
}

// DebugIf logs a debug message if the condition is true.
func DebugIf(condition bool, format string, args ...interface{}) {
	if condition {
		Default().log(LogLevelDebug, nil, format, args...)
	}
}

// WarnIf logs a warning message if the condition is true.
func WarnIf(condition bool, format string, args ...interface{}) {
	if condition {
		Default().log(LogLevelWarn, nil, format, args...)
	}
}
