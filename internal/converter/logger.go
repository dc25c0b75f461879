package converter

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Logger is an interface for logging.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// Level is a logging threshold.
type Level int

// Levels, from most to least verbose.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel converts a config value into a Level. Unknown values map to
// LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// NewLogger returns a Logger writing "[LEVEL] message" lines to w, dropping
// messages below level.
func NewLogger(w io.Writer, level Level) Logger {
	return &defaultLogger{out: w, level: level}
}

// defaultLogger is a simple line logger. It is safe for concurrent use.
type defaultLogger struct {
	mu    sync.Mutex
	out   io.Writer
	level Level
}

func (l *defaultLogger) log(level Level, tag, msg string, args ...interface{}) {
	if level < l.level {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "["+tag+"] "+msg+"\n", args...)
}

func (l *defaultLogger) Debug(msg string, args ...interface{}) {
	l.log(LevelDebug, "DEBUG", msg, args...)
}

func (l *defaultLogger) Info(msg string, args ...interface{}) {
	l.log(LevelInfo, "INFO", msg, args...)
}

func (l *defaultLogger) Warn(msg string, args ...interface{}) {
	l.log(LevelWarn, "WARN", msg, args...)
}

func (l *defaultLogger) Error(msg string, args ...interface{}) {
	l.log(LevelError, "ERROR", msg, args...)
}
