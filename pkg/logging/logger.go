package logging

import (
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Logger is the main logger type. It has the novel property that it still
// functions if nil, but it doesn't log anything. It is safe for concurrent
// usage, and all subloggers derived from a logger share its output stream.
type Logger struct {
	// level is the maximum level that the logger will emit.
	level Level
	// prefix is any prefix specified for the logger.
	prefix string
	// output is the shared underlying writer.
	output *output
}

// output serializes writes from a logger and all of its subloggers.
type output struct {
	// lock serializes access to writer.
	lock sync.Mutex
	// writer is the underlying writer.
	writer io.Writer
}

// NewLogger creates a new root logger that emits messages at or below the
// specified level to the specified writer.
func NewLogger(level Level, writer io.Writer) *Logger {
	return &Logger{
		level:  level,
		output: &output{writer: writer},
	}
}

// Level returns the logger's level. A nil logger reports LevelDisabled.
func (l *Logger) Level() Level {
	if l == nil {
		return LevelDisabled
	}
	return l.level
}

// Sublogger creates a new sublogger with the specified name.
func (l *Logger) Sublogger(name string) *Logger {
	// If the logger is nil, then the sublogger will be as well.
	if l == nil {
		return nil
	}

	// Compute the new prefix.
	prefix := name
	if l.prefix != "" {
		prefix = l.prefix + "." + name
	}

	// Create the new logger.
	return &Logger{
		level:  l.level,
		prefix: prefix,
		output: l.output,
	}
}

// enabled returns whether or not messages at the specified level should be
// emitted.
func (l *Logger) enabled(level Level) bool {
	return l != nil && level <= l.level
}

// write is the internal logging method.
func (l *Logger) write(level Level, line string) {
	// Add a prefix if necessary.
	if l.prefix != "" {
		line = fmt.Sprintf("[%s] %s", l.prefix, line)
	}

	// Format the line with a timestamp in the same format as the standard
	// logger.
	line = time.Now().Format("2006/01/02 15:04:05.000000") + " " + line + "\n"

	// Write the line.
	l.output.lock.Lock()
	_, _ = io.WriteString(l.output.writer, line)
	l.output.lock.Unlock()
}

// Error logs error information with an error prefix and red color.
func (l *Logger) Error(err error) {
	if l.enabled(LevelError) {
		l.write(LevelError, color.RedString("Error: %v", err))
	}
}

// Errorf logs error information with semantics equivalent to fmt.Printf.
func (l *Logger) Errorf(format string, v ...any) {
	if l.enabled(LevelError) {
		l.write(LevelError, color.RedString("Error: "+format, v...))
	}
}

// Warn logs error information with a warning prefix and yellow color.
func (l *Logger) Warn(err error) {
	if l.enabled(LevelWarn) {
		l.write(LevelWarn, color.YellowString("Warning: %v", err))
	}
}

// Warnf logs warning information with semantics equivalent to fmt.Printf.
func (l *Logger) Warnf(format string, v ...any) {
	if l.enabled(LevelWarn) {
		l.write(LevelWarn, color.YellowString("Warning: "+format, v...))
	}
}

// Info logs information with semantics equivalent to fmt.Print.
func (l *Logger) Info(v ...any) {
	if l.enabled(LevelInfo) {
		l.write(LevelInfo, fmt.Sprint(v...))
	}
}

// Infof logs information with semantics equivalent to fmt.Printf.
func (l *Logger) Infof(format string, v ...any) {
	if l.enabled(LevelInfo) {
		l.write(LevelInfo, fmt.Sprintf(format, v...))
	}
}

// Debug logs information with semantics equivalent to fmt.Print, but only if
// the logger level is at least LevelDebug.
func (l *Logger) Debug(v ...any) {
	if l.enabled(LevelDebug) {
		l.write(LevelDebug, fmt.Sprint(v...))
	}
}

// Debugf logs information with semantics equivalent to fmt.Printf, but only if
// the logger level is at least LevelDebug.
func (l *Logger) Debugf(format string, v ...any) {
	if l.enabled(LevelDebug) {
		l.write(LevelDebug, fmt.Sprintf(format, v...))
	}
}

// Tracef logs information with semantics equivalent to fmt.Printf, but only if
// the logger level is LevelTrace.
func (l *Logger) Tracef(format string, v ...any) {
	if l.enabled(LevelTrace) {
		l.write(LevelTrace, fmt.Sprintf(format, v...))
	}
}

// StandardLogger returns a standard library logger that writes through the
// logger at the info level. It returns a logger that discards output if the
// logger is nil.
func (l *Logger) StandardLogger() *log.Logger {
	if l == nil {
		return log.New(io.Discard, "", 0)
	}
	return log.New(&writer{callback: func(s string) { l.Info(s) }}, "", 0)
}
