package logger

import (
	"log"
	"os"
)

const (
	DEBUG int = iota
	INFO
	WARNING
	ERROR
	SILENCE
)

type Logger interface {
	Debugf(msg string, a ...any)
	Infof(msg string, a ...any)
	Warnf(msg string, a ...any)
	Errorf(msg string, a ...any)
}

type defaultLogger struct {
	level int
	out   *log.Logger
}

func NewLogger(level int) *defaultLogger {
	return &defaultLogger{level: level, out: log.New(os.Stderr, "", log.LstdFlags)}
}

func (l *defaultLogger) logf(level int, tag, msg string, a ...any) {
	if l.level <= level {
		l.out.Printf(tag+" "+msg, a...)
	}
}

func (l *defaultLogger) Debugf(msg string, a ...any) {
	l.logf(DEBUG, "DEBUG", msg, a...)
}

func (l *defaultLogger) Infof(msg string, a ...any) {
	l.logf(INFO, "INFO", msg, a...)
}

func (l *defaultLogger) Warnf(msg string, a ...any) {
	l.logf(WARNING, "WARN", msg, a...)
}

func (l *defaultLogger) Errorf(msg string, a ...any) {
	l.logf(ERROR, "ERROR", msg, a...)
}
