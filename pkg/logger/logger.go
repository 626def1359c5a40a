package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// Logger is a small leveled logger. Output goes to stderr so stdout stays
// usable for piped scrape results.
type Logger struct {
	level  Level
	logger *log.Logger
}

func New(levelStr string) *Logger {
	return &Logger{
		level:  parseLevel(levelStr),
		logger: log.New(os.Stderr, "", 0),
	}
}

func parseLevel(levelStr string) Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

func (l *Logger) log(level Level, prefix, msg string) {
	if level >= l.level {
		timestamp := time.Now().Format("2006-01-02 15:04:05")
		l.logger.Printf("[%s] %s %s", timestamp, prefix, msg)
	}
}

func (l *Logger) Debug(v ...interface{}) {
	l.log(DebugLevel, "[DEBUG]", fmt.Sprint(v...))
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	l.log(DebugLevel, "[DEBUG]", fmt.Sprintf(format, v...))
}

func (l *Logger) Info(v ...interface{}) {
	l.log(InfoLevel, "[INFO]", fmt.Sprint(v...))
}

func (l *Logger) Infof(format string, v ...interface{}) {
	l.log(InfoLevel, "[INFO]", fmt.Sprintf(format, v...))
}

func (l *Logger) Warn(v ...interface{}) {
	l.log(WarnLevel, "[WARN]", fmt.Sprint(v...))
}

func (l *Logger) Warnf(format string, v ...interface{}) {
	l.log(WarnLevel, "[WARN]", fmt.Sprintf(format, v...))
}

func (l *Logger) Error(v ...interface{}) {
	l.log(ErrorLevel, "[ERROR]", fmt.Sprint(v...))
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	l.log(ErrorLevel, "[ERROR]", fmt.Sprintf(format, v...))
}

func (l *Logger) Fatal(v ...interface{}) {
	l.log(ErrorLevel, "[FATAL]", fmt.Sprint(v...))
	os.Exit(1)
}
