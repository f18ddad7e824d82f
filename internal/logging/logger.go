// Package logging provides leveled diagnostics for the disassembler front
// end. It is configured through environment variables:
//
//	X86DIS_LOG_LEVEL   debug, info, warn or error (default info)
//	X86DIS_LOG_PREFIX  message prefix (default "x86dis ")
//	X86DIS_LOG_TO_FILE "1" logs to x86dis-<timestamp>-debug.log
//	X86DIS_LOG_FILE    logs to the named file, appending
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

const (
	envLevel  = "X86DIS_LOG_LEVEL"
	envPrefix = "X86DIS_LOG_PREFIX"
	envToFile = "X86DIS_LOG_TO_FILE"
	envFile   = "X86DIS_LOG_FILE"
)

// LoggerCloser is a logger that may own its output file.
type LoggerCloser struct {
	*log.Logger
	closer io.Closer
}

// Close closes the log file, if the logger opened one.
func (lc *LoggerCloser) Close() error {
	if lc.closer == nil {
		return nil
	}
	err := lc.closer.Close()
	lc.closer = nil
	return err
}

// level falls back to info for empty or unknown values.
func level() log.Level {
	lvl, err := log.ParseLevel(strings.TrimSpace(os.Getenv(envLevel)))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// NewLoggerWithWriter returns a logger writing to w. The returned logger
// closes w only if w is a file other than stdout or stderr.
func NewLoggerWithWriter(w io.Writer) *LoggerCloser {
	prefix := os.Getenv(envPrefix)
	if prefix == "" {
		prefix = "x86dis "
	}
	lg := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Level:           level(),
		Prefix:          prefix,
	})

	lc := &LoggerCloser{Logger: lg}
	if f, ok := w.(*os.File); ok && f != os.Stderr && f != os.Stdout {
		lc.closer = f
	}
	return lc
}

func logFileName() string {
	if name := os.Getenv(envFile); name != "" {
		return name
	}
	if os.Getenv(envToFile) == "1" {
		return fmt.Sprintf("x86dis-%s-debug.log", time.Now().Format("20060102-150405"))
	}
	return ""
}

// NewLogger returns a logger configured from the environment. It writes to
// stderr unless a log file is requested and can be opened.
func NewLogger() *LoggerCloser {
	if name := logFileName(); name != "" {
		f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err == nil {
			return NewLoggerWithWriter(f)
		}
	}
	return NewLoggerWithWriter(os.Stderr)
}

// IsDebug reports whether debug logging is enabled.
func IsDebug() bool {
	return level() == log.DebugLevel
}
