// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/absmach/errcheck/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logMsg struct {
	Level   string `json:"level"`
	Message string `json:"message"`
	Ts      string `json:"ts"`
}

func TestNew(t *testing.T) {
	cases := []struct {
		desc  string
		level string
		err   error
	}{
		{
			desc:  "debug level",
			level: "debug",
			err:   nil,
		},
		{
			desc:  "mixed case level",
			level: "Info",
			err:   nil,
		},
		{
			desc:  "unknown level",
			level: "verbose",
			err:   logger.ErrInvalidLogLevel,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := logger.New(&bytes.Buffer{}, tc.level)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	cases := []struct {
		desc    string
		level   string
		log     func(logger.Logger)
		written bool
		want    logMsg
	}{
		{
			desc:    "info passes at info level",
			level:   "info",
			log:     func(l logger.Logger) { l.Info("sensor ready") },
			written: true,
			want:    logMsg{Level: "info", Message: "sensor ready"},
		},
		{
			desc:    "debug suppressed at info level",
			level:   "info",
			log:     func(l logger.Logger) { l.Debug("probe detail") },
			written: false,
		},
		{
			desc:    "warn passes at info level",
			level:   "info",
			log:     func(l logger.Logger) { l.Warn("bus retry") },
			written: true,
			want:    logMsg{Level: "warn", Message: "bus retry"},
		},
		{
			desc:    "info suppressed at error level",
			level:   "error",
			log:     func(l logger.Logger) { l.Info("hidden") },
			written: false,
		},
		{
			desc:    "error passes at error level",
			level:   "error",
			log:     func(l logger.Logger) { l.Error("power fault") },
			written: true,
			want:    logMsg{Level: "error", Message: "power fault"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := logger.New(&buf, tc.level)
			require.NoError(t, err)

			tc.log(l)

			if !tc.written {
				assert.Zero(t, buf.Len())
				return
			}
			var got logMsg
			require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
			assert.Equal(t, tc.want.Level, got.Level)
			assert.Equal(t, tc.want.Message, got.Message)
			assert.NotEmpty(t, got.Ts)
		})
	}
}
