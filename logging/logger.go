// Package logging provides the colored, prefix-tagged logger consumed
// throughout the application behind the service Logger interface.
package logging

import (
	"errors"
	"io"
	"log"

	"github.com/beka-birhanu/labyrinth-api/config"
)

// Logger writes leveled, color-tagged log lines for one subsystem.
type Logger struct {
	prefix string
	color  string
	logger *log.Logger
}

// New creates a logger that tags every line with the given prefix and
// ANSI color.
func New(prefix, color string, out io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, errors.New("logger prefix must not be empty")
	}
	if out == nil {
		return nil, errors.New("logger output must not be nil")
	}

	return &Logger{
		prefix: prefix,
		color:  color,
		logger: log.New(out, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.print("INFO", msg)
}

// Warning logs a warning message.
func (l *Logger) Warning(msg string) {
	l.print("WARNING", msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string) {
	l.print("ERROR", msg)
}

func (l *Logger) print(level, msg string) {
	l.logger.Printf("%s[%s] [%s]%s %s", l.color, l.prefix, level, config.ColorReset, msg)
}
