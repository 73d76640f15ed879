// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package codes defines the diagnostic code space used by check constructs.
// A code is a single byte. Two values are reserved: None marks the neutral
// "no error" state and Unspecified marks a failure recorded without a
// specific code. Applications own the range in between and register their
// codes at startup, typically from an init function.
package codes

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Code is a single-byte diagnostic code.
type Code uint8

const (
	// None is the neutral value. It never denotes a failure and can be
	// stored in the last-error and group slots to mean "nothing recorded".
	None Code = 0x00

	// Unspecified is recorded when a failure carries no usable code.
	Unspecified Code = 0xFF
)

// Registration errors.
var (
	ErrReservedCode  = errors.New("code value is reserved")
	ErrDuplicateCode = errors.New("code already registered")
	ErrDuplicateName = errors.New("name already registered")
	ErrEmptyName     = errors.New("name is empty")
)

// IsReserved returns true for None and Unspecified.
func (c Code) IsReserved() bool {
	return c == None || c == Unspecified
}

// Valid returns true if the code belongs to the application range.
func (c Code) Valid() bool {
	return !c.IsReserved()
}

// String returns the registered name of the code, or its hex form when
// the code is unregistered.
func (c Code) String() string {
	switch c {
	case None:
		return "none"
	case Unspecified:
		return "unspecified"
	}
	mu.RLock()
	name, ok := names[c]
	mu.RUnlock()
	if !ok {
		return fmt.Sprintf("code(0x%02X)", uint8(c))
	}
	return name
}

var (
	mu     sync.RWMutex
	names  = map[Code]string{}
	byName = map[string]Code{}
)

// Register binds a name to an application code. Reserved values and
// duplicates are rejected. Names are case-insensitive.
func Register(c Code, name string) error {
	if c.IsReserved() {
		return ErrReservedCode
	}
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ErrEmptyName
	}

	mu.Lock()
	defer mu.Unlock()
	if _, ok := names[c]; ok {
		return ErrDuplicateCode
	}
	if _, ok := byName[name]; ok {
		return ErrDuplicateName
	}
	names[c] = name
	byName[name] = c

	return nil
}

// MustRegister is Register that panics on error. It returns the code so
// registrations can double as variable initializers.
func MustRegister(c Code, name string) Code {
	if err := Register(c, name); err != nil {
		panic(fmt.Sprintf("codes: register 0x%02X %q: %s", uint8(c), name, err))
	}
	return c
}

// Name returns the registered name of the code, or an empty string.
func Name(c Code) string {
	mu.RLock()
	defer mu.RUnlock()
	return names[c]
}

// Lookup resolves a registered name back to its code.
func Lookup(name string) (Code, bool) {
	mu.RLock()
	defer mu.RUnlock()
	c, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// Registered returns all registered codes in ascending order.
func Registered() []Code {
	mu.RLock()
	defer mu.RUnlock()
	ret := make([]Code, 0, len(names))
	for c := range names {
		ret = append(ret, c)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i] < ret[j] })
	return ret
}

// Parse resolves a code from a registered name or a numeric literal.
// Numeric forms accept decimal and 0x-prefixed hex.
func Parse(s string) (Code, error) {
	if c, ok := Lookup(s); ok {
		return c, nil
	}
	n, err := strconv.ParseUint(strings.TrimSpace(s), 0, 8)
	if err != nil {
		return None, fmt.Errorf("unknown code %q", s)
	}
	return Code(n), nil
}
