// Package logger provides leveled diagnostic logging for hop.
//
// Diagnostics go to stderr, separate from the user-facing output package
// that writes to stdout. The config core logs through named component
// loggers so reload, watch and hotkey activity can be told apart:
//
//	log := logger.Named("watcher")
//	log.Debug("watching %s", dir)
//	log.WarnFields("registration failed", map[string]any{"binding": name})
//
// # Log Levels
//
// Debug, Info, Warn and Error, in order of severity. The default level is
// Warn; Init(true) (the --verbose flag) enables Debug.
//
// # Output Format
//
//	[LEVEL] YYYY-MM-DD HH:MM:SS [component] message key=value ...
//	[DEBUG] 2026-02-03 10:30:45 [store] config loaded categories=2 links=4
package logger

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level represents a logging severity level.
type Level int

// Log levels from least to most severe.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// sink is the shared level and destination behind every Logger.
type sink struct {
	level  Level
	output io.Writer
	mu     sync.Mutex
}

// Logger writes leveled messages, optionally tagged with a component name.
type Logger struct {
	name string
	sink *sink
}

// Global sink and root logger.
var (
	std  = &sink{level: LevelWarn, output: os.Stderr}
	root = &Logger{sink: std}
)

// Init sets the verbosity. When verbose is true, Debug and Info are enabled;
// otherwise only Warn and Error are shown.
func Init(verbose bool) {
	if verbose {
		SetLevel(LevelDebug)
	} else {
		SetLevel(LevelWarn)
	}
}

// SetLevel sets the minimum log level.
func SetLevel(level Level) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.level = level
}

// SetOutput sets the output destination. A nil writer restores os.Stderr.
func SetOutput(w io.Writer) {
	std.mu.Lock()
	defer std.mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	std.output = w
}

// GetLevel returns the current log level.
func GetLevel() Level {
	std.mu.Lock()
	defer std.mu.Unlock()
	return std.level
}

// Named returns a logger whose messages are tagged with [name].
func Named(name string) *Logger {
	return &Logger{name: name, sink: std}
}

func (l *Logger) write(level Level, msg string, fields map[string]any) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	if level < l.sink.level {
		return
	}

	var b strings.Builder
	b.WriteString(msg)
	if len(fields) > 0 {
		// Sort field keys for consistent output
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%v", k, fields[k])
		}
	}

	prefix := ""
	if l.name != "" {
		prefix = "[" + l.name + "] "
	}
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	_, _ = fmt.Fprintf(l.sink.output, "[%s] %s %s%s\n", level.String(), timestamp, prefix, b.String())
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...any) {
	l.write(LevelDebug, fmt.Sprintf(format, args...), nil)
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...any) {
	l.write(LevelInfo, fmt.Sprintf(format, args...), nil)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...any) {
	l.write(LevelWarn, fmt.Sprintf(format, args...), nil)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...any) {
	l.write(LevelError, fmt.Sprintf(format, args...), nil)
}

// DebugFields logs a debug message with structured fields.
func (l *Logger) DebugFields(msg string, fields map[string]any) {
	l.write(LevelDebug, msg, fields)
}

// InfoFields logs an informational message with structured fields.
func (l *Logger) InfoFields(msg string, fields map[string]any) {
	l.write(LevelInfo, msg, fields)
}

// WarnFields logs a warning message with structured fields.
func (l *Logger) WarnFields(msg string, fields map[string]any) {
	l.write(LevelWarn, msg, fields)
}

// ErrorFields logs an error message with structured fields.
func (l *Logger) ErrorFields(msg string, fields map[string]any) {
	l.write(LevelError, msg, fields)
}

// Debug logs a debug message on the root logger.
func Debug(format string, args ...any) { root.Debug(format, args...) }

// Info logs an informational message on the root logger.
func Info(format string, args ...any) { root.Info(format, args...) }

// Warn logs a warning message on the root logger.
func Warn(format string, args ...any) { root.Warn(format, args...) }

// Error logs an error message on the root logger.
func Error(format string, args ...any) { root.Error(format, args...) }

// LogError logs err with a context message. Nil errors are ignored.
func LogError(err error, msg string) {
	if err == nil {
		return
	}
	root.Error("%s: %v", msg, err)
}
