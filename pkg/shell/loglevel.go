// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"errors"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// TraceLevel sits below log.DebugLevel, for per-keystroke and per-line noise.
const TraceLevel = log.DebugLevel - 4

// offLevel is above every level the logger emits.
const offLevel = log.Level(math.MaxInt32)

// ErrInvalidLogLevel is returned by ParseLogLevel for unknown names.
var ErrInvalidLogLevel = errors.New("invalid log level")

// LogLevel is the verbosity the shell's logger is filtered at.
type LogLevel int

const (
	LevelOff LogLevel = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

var logLevelNames = [...]string{
	LevelOff:   "OFF",
	LevelError: "ERROR",
	LevelWarn:  "WARN",
	LevelInfo:  "INFO",
	LevelDebug: "DEBUG",
	LevelTrace: "TRACE",
}

// String returns the upper-case level name.
func (l LogLevel) String() string {
	if l < LevelOff || l > LevelTrace {
		return "UNKNOWN"
	}
	return logLevelNames[l]
}

// Level returns the logger threshold for l.
func (l LogLevel) Level() log.Level {
	switch l {
	case LevelError:
		return log.ErrorLevel
	case LevelWarn:
		return log.WarnLevel
	case LevelInfo:
		return log.InfoLevel
	case LevelDebug:
		return log.DebugLevel
	case LevelTrace:
		return TraceLevel
	default:
		return offLevel
	}
}

// ParseLogLevel parses a level name, ignoring case.
func ParseLogLevel(s string) (LogLevel, error) {
	for i, name := range logLevelNames {
		if strings.EqualFold(s, name) {
			return LogLevel(i), nil
		}
	}
	return LevelOff, ErrInvalidLogLevel
}

// newLogger builds the shell's default logger, with a style for TraceLevel
// so trace lines are labelled like the built-in levels.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: prefix,
	})
	styles := log.DefaultStyles()
	styles.Levels[TraceLevel] = lipgloss.NewStyle().
		SetString("TRAC").
		Bold(true).
		MaxWidth(4).
		Foreground(lipgloss.Color("61"))
	logger.SetStyles(styles)
	return logger
}
