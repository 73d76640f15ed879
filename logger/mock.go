// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package logger

var _ Logger = (*nopLogger)(nil)

type nopLogger struct{}

// NewMock returns a logger that discards everything. Tests use it where
// a Logger is required but output is irrelevant.
func NewMock() Logger {
	return &nopLogger{}
}

func (l nopLogger) Debug(msg string) {}

func (l nopLogger) Info(msg string) {}

func (l nopLogger) Warn(msg string) {}

func (l nopLogger) Error(msg string) {}

func (l nopLogger) Fatal(msg string) {}
