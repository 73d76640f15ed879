// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log"
)

var _ Logger = (*logger)(nil)

// Logger specifies logging API.
type Logger interface {
	// Debug logs a message on debug level.
	Debug(string)
	// Info logs a message on info level.
	Info(string)
	// Warn logs a message on warn level.
	Warn(string)
	// Error logs a message on error level.
	Error(string)
	// Fatal logs a message and terminates the process.
	Fatal(string)
}

type logger struct {
	kitLogger log.Logger
	level     Level
}

// New returns a JSON logger writing to out, filtered to the given
// level name.
func New(out io.Writer, levelText string) (Logger, error) {
	var level Level
	if err := level.UnmarshalText(levelText); err != nil {
		return nil, fmt.Errorf("%s: %w", levelText, err)
	}

	l := log.NewJSONLogger(log.NewSyncWriter(out))
	l = log.With(l, "ts", log.DefaultTimestampUTC)
	return &logger{l, level}, nil
}

func (l logger) Debug(msg string) {
	if Debug.isAllowed(l.level) {
		if err := l.kitLogger.Log("level", Debug.String(), "message", msg); err != nil {
			fmt.Fprintf(os.Stderr, "log write failed: %s", err)
		}
	}
}

func (l logger) Info(msg string) {
	if Info.isAllowed(l.level) {
		if err := l.kitLogger.Log("level", Info.String(), "message", msg); err != nil {
			fmt.Fprintf(os.Stderr, "log write failed: %s", err)
		}
	}
}

func (l logger) Warn(msg string) {
	if Warn.isAllowed(l.level) {
		if err := l.kitLogger.Log("level", Warn.String(), "message", msg); err != nil {
			fmt.Fprintf(os.Stderr, "log write failed: %s", err)
		}
	}
}

func (l logger) Error(msg string) {
	if Error.isAllowed(l.level) {
		if err := l.kitLogger.Log("level", Error.String(), "message", msg); err != nil {
			fmt.Fprintf(os.Stderr, "log write failed: %s", err)
		}
	}
}

func (l logger) Fatal(msg string) {
	if err := l.kitLogger.Log("level", "fatal", "message", msg); err != nil {
		fmt.Fprintf(os.Stderr, "log write failed: %s", err)
	}
	os.Exit(1)
}
