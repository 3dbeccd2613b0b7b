// Package logger provides the prefixed, colour-coded levelled logger used across
// the application.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/beka-birhanu/vinom-painter/service/i"
)

const (
	errorColor   = "\033[31m"
	warningColor = "\033[33m"
	infoColor    = "\033[32m"
	colorReset   = "\033[0m"
)

var (
	ErrEmptyPrefix = errors.New("logger prefix is empty")
	ErrNilWriter   = errors.New("logger writer is nil")
)

var _ i.Logger = &Logger{}

// Logger writes lines of the form "[PREFIX] [LEVEL] message".
// The prefix is painted in the logger's colour when one is given.
type Logger struct {
	prefix string      // Rendered prefix, colour included
	out    *log.Logger // Safe for concurrent use
}

// New creates a logger writing to w. color may be empty for plain output.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}
	if w == nil {
		return nil, ErrNilWriter
	}

	rendered := fmt.Sprintf("[%s]", prefix)
	if color != "" {
		rendered = color + rendered + colorReset
	}

	return &Logger{
		prefix: rendered,
		out:    log.New(w, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.print(infoColor, "INFO", msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.print(warningColor, "WARNING", msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.print(errorColor, "ERROR", msg)
}

func (l *Logger) print(color, level, msg string) {
	l.out.Printf("%s %s[%s]%s %s", l.prefix, color, level, colorReset, msg)
}
