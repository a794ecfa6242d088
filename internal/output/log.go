// Package output provides terminal output utilities for the rcg CLI.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// logger is the global logger instance.
var logger *log.Logger

// stdout receives plain, non-log output. Tests may redirect it.
var stdout io.Writer = os.Stdout

func init() {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
}

// LogConfig controls logger setup.
type LogConfig struct {
	// Verbose enables debug level, caller reporting and timestamps.
	Verbose bool

	// Timestamps toggles timestamps. Nil means the default (on).
	Timestamps *bool
}

// SetupLogging configures the global logger.
func SetupLogging(cfg LogConfig) {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	timestamps := true
	if cfg.Timestamps != nil {
		timestamps = *cfg.Timestamps
	}
	if cfg.Verbose {
		timestamps = true
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: timestamps,
		ReportCaller:    cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

// ComponentLogger returns a child logger prefixed with the component name.
func ComponentLogger(name string) *log.Logger {
	return logger.WithPrefix(StyleNoun.Render(name))
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	logger.Error(msg, keyvals...)
}

// Print prints a message to stdout without any formatting.
func Print(msg string) {
	fmt.Fprint(stdout, msg)
}

// Println prints a message to stdout with a newline.
func Println(msg string) {
	fmt.Fprintln(stdout, msg)
}

// SetOutput redirects Print and Println. It returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := stdout
	stdout = w
	return prev
}
