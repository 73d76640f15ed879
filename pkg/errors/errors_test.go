// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package errors_test

import (
	"bytes"
	"io"
	"net/http"
	"testing"

	"github.com/absmach/errcheck/pkg/errors"
	"github.com/stretchr/testify/assert"
)

var (
	err0 = errors.New("0")
	err1 = errors.New("1")
	err2 = errors.New("2")
)

func TestWrap(t *testing.T) {
	cases := []struct {
		desc    string
		wrapper error
		wrapped error
		want    string
	}{
		{
			desc:    "wrap error with error",
			wrapper: err1,
			wrapped: err0,
			want:    "1 : 0",
		},
		{
			desc:    "wrap nil with error",
			wrapper: nil,
			wrapped: err0,
			want:    "",
		},
		{
			desc:    "wrap error with nil",
			wrapper: err1,
			wrapped: nil,
			want:    "1",
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			err := errors.Wrap(tc.wrapper, tc.wrapped)
			if tc.wrapper == nil {
				assert.Nil(t, err)
				return
			}
			assert.Equal(t, tc.want, err.Error())
		})
	}
}

func TestContains(t *testing.T) {
	cases := []struct {
		desc      string
		container error
		contained error
		want      bool
	}{
		{
			desc:      "nil contains nil",
			container: nil,
			contained: nil,
			want:      true,
		},
		{
			desc:      "wrapped chain contains wrapper",
			container: errors.Wrap(err2, errors.Wrap(err1, err0)),
			contained: err1,
			want:      true,
		},
		{
			desc:      "wrapped chain contains innermost",
			container: errors.Wrap(err2, errors.Wrap(err1, err0)),
			contained: err0,
			want:      true,
		},
		{
			desc:      "chain does not contain foreign error",
			container: errors.Wrap(err1, err0),
			contained: err2,
			want:      false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			assert.Equal(t, tc.want, errors.Contains(tc.container, tc.contained))
		})
	}
}

func TestUnwrap(t *testing.T) {
	wrapper, wrapped := errors.Unwrap(errors.Wrap(err1, err0))
	assert.Equal(t, err1.Error(), wrapper.Error())
	assert.Equal(t, err0.Error(), wrapped.Error())

	wrapper, wrapped = errors.Unwrap(err0)
	assert.Nil(t, wrapper)
	assert.Equal(t, err0.Error(), wrapped.Error())
}

func TestSDKError(t *testing.T) {
	sdkErr := errors.NewSDKErrorWithStatus(errors.Wrap(err1, err0), http.StatusConflict)
	assert.Equal(t, http.StatusConflict, sdkErr.StatusCode())
	assert.Contains(t, sdkErr.Error(), http.StatusText(http.StatusConflict))
	assert.Contains(t, sdkErr.Error(), "1 : 0")

	assert.Nil(t, errors.NewSDKError(nil))
}

func TestCheckError(t *testing.T) {
	cases := []struct {
		desc       string
		status     int
		body       string
		expected   []int
		wantNil    bool
		wantErrStr string
	}{
		{
			desc:     "expected status",
			status:   http.StatusOK,
			body:     "",
			expected: []int{http.StatusOK},
			wantNil:  true,
		},
		{
			desc:       "error response with message",
			status:     http.StatusNotFound,
			body:       `{"error": "code not registered", "message": "code not found"}`,
			expected:   []int{http.StatusOK},
			wantErrStr: "code not found",
		},
		{
			desc:       "error response without error field",
			status:     http.StatusBadRequest,
			body:       `{"message": "malformed request"}`,
			expected:   []int{http.StatusCreated},
			wantErrStr: "malformed request",
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			resp := &http.Response{
				StatusCode: tc.status,
				Body:       io.NopCloser(bytes.NewBufferString(tc.body)),
			}
			err := errors.CheckError(resp, tc.expected...)
			if tc.wantNil {
				assert.Nil(t, err)
				return
			}
			assert.Equal(t, tc.status, err.StatusCode())
			assert.Contains(t, err.Error(), tc.wantErrStr)
		})
	}
}
