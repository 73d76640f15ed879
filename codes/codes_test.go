// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package codes_test

import (
	"testing"

	"github.com/absmach/errcheck/codes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	require.NoError(t, codes.Register(0xA0, "flash"))

	cases := []struct {
		desc string
		code codes.Code
		name string
		err  error
	}{
		{
			desc: "register new code",
			code: 0xA1,
			name: "eeprom",
			err:  nil,
		},
		{
			desc: "register reserved none",
			code: codes.None,
			name: "zero",
			err:  codes.ErrReservedCode,
		},
		{
			desc: "register reserved unspecified",
			code: codes.Unspecified,
			name: "max",
			err:  codes.ErrReservedCode,
		},
		{
			desc: "register duplicate code",
			code: 0xA0,
			name: "other",
			err:  codes.ErrDuplicateCode,
		},
		{
			desc: "register duplicate name",
			code: 0xA2,
			name: "FLASH",
			err:  codes.ErrDuplicateName,
		},
		{
			desc: "register empty name",
			code: 0xA3,
			name: "   ",
			err:  codes.ErrEmptyName,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			err := codes.Register(tc.code, tc.name)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestString(t *testing.T) {
	codes.MustRegister(0xB0, "watchdog")

	cases := []struct {
		desc string
		code codes.Code
		want string
	}{
		{
			desc: "registered code",
			code: 0xB0,
			want: "watchdog",
		},
		{
			desc: "unregistered code",
			code: 0x2A,
			want: "code(0x2A)",
		},
		{
			desc: "none",
			code: codes.None,
			want: "none",
		},
		{
			desc: "unspecified",
			code: codes.Unspecified,
			want: "unspecified",
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.code.String())
		})
	}
}

func TestParse(t *testing.T) {
	codes.MustRegister(0xB1, "rtc")

	cases := []struct {
		desc string
		in   string
		want codes.Code
		err  bool
	}{
		{
			desc: "parse registered name",
			in:   "rtc",
			want: 0xB1,
		},
		{
			desc: "parse name with surrounding space",
			in:   "  RTC ",
			want: 0xB1,
		},
		{
			desc: "parse hex literal",
			in:   "0x7F",
			want: 0x7F,
		},
		{
			desc: "parse decimal literal",
			in:   "42",
			want: 0x2A,
		},
		{
			desc: "parse unknown name",
			in:   "bogus",
			err:  true,
		},
		{
			desc: "parse out of range literal",
			in:   "300",
			err:  true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			got, err := codes.Parse(tc.in)
			if tc.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRegisteredOrder(t *testing.T) {
	codes.MustRegister(0xC2, "spi2")
	codes.MustRegister(0xC0, "spi0")
	codes.MustRegister(0xC1, "spi1")

	got := codes.Registered()
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1], got[i])
	}
}

func TestLookup(t *testing.T) {
	codes.MustRegister(0xD0, "modem")

	c, ok := codes.Lookup("modem")
	assert.True(t, ok)
	assert.Equal(t, codes.Code(0xD0), c)

	_, ok = codes.Lookup("missing")
	assert.False(t, ok)
}

func TestReservedPredicates(t *testing.T) {
	assert.True(t, codes.None.IsReserved())
	assert.True(t, codes.Unspecified.IsReserved())
	assert.True(t, codes.Code(0x01).Valid())
	assert.False(t, codes.Code(0xFE).IsReserved())
}
