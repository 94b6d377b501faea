// Package logging provides the leveled logger of the fpelaws command.
package logging

import (
	"fmt"
	"io"
	"log"
	"strings"
)

// Level orders log messages by verbosity.
type Level int

const (
	// ErrorLevel is the least verbose level: only errors are logged.
	ErrorLevel Level = iota + 1
	WarnLevel
	// InfoLevel logs the law results.
	InfoLevel
	// DebugLevel logs every sample checked.
	DebugLevel
	TraceLevel
)

var levelNames = map[string]Level{
	"error": ErrorLevel,
	"warn":  WarnLevel,
	"info":  InfoLevel,
	"debug": DebugLevel,
	"trace": TraceLevel,
}

// ParseLevel returns the level named s, ignoring case.
func ParseLevel(s string) (Level, error) {
	if l, ok := levelNames[strings.ToLower(s)]; ok {
		return l, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

func (l Level) String() string {
	for name, level := range levelNames {
		if level == l {
			return name
		}
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// Logger writes messages at or below its level. Each level has its own
// prefixed log.Logger.
type Logger struct {
	level Level
	trace *log.Logger
	debug *log.Logger
	info  *log.Logger
	warn  *log.Logger
	err   *log.Logger
}

// New returns a Logger writing to w with the given stdlib log flags.
func New(w io.Writer, level Level, flags int) *Logger {
	return &Logger{
		level: level,
		trace: log.New(w, "[TRACE] ", flags),
		debug: log.New(w, "[DEBUG] ", flags),
		info:  log.New(w, "[INFO] ", flags),
		warn:  log.New(w, "[WARN] ", flags),
		err:   log.New(w, "[ERROR] ", flags),
	}
}

// Discard returns a Logger that writes nothing.
func Discard() *Logger {
	return New(io.Discard, ErrorLevel, 0)
}

// Level returns the level of l.
func (l *Logger) Level() Level { return l.level }

// Enabled reports whether messages at level are written.
func (l *Logger) Enabled(level Level) bool { return l.level >= level }

// SetOutput sets the writer of every level.
func (l *Logger) SetOutput(w io.Writer) {
	for _, lg := range []*log.Logger{l.trace, l.debug, l.info, l.warn, l.err} {
		lg.SetOutput(w)
	}
}

// SetError sets the writer of the error level only.
func (l *Logger) SetError(w io.Writer) {
	l.err.SetOutput(w)
}

func (l *Logger) Tracef(format string, v ...any) {
	if l.Enabled(TraceLevel) {
		l.trace.Printf(format, v...)
	}
}

func (l *Logger) Debugf(format string, v ...any) {
	if l.Enabled(DebugLevel) {
		l.debug.Printf(format, v...)
	}
}

func (l *Logger) Infof(format string, v ...any) {
	if l.Enabled(InfoLevel) {
		l.info.Printf(format, v...)
	}
}

func (l *Logger) Warnf(format string, v ...any) {
	if l.Enabled(WarnLevel) {
		l.warn.Printf(format, v...)
	}
}

// Errorf is always written.
func (l *Logger) Errorf(format string, v ...any) {
	l.err.Printf(format, v...)
}
