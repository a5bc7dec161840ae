// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package dotconf

import (
	"strconv"
	"strings"
)

// Value is a snapshot of one environment variable lookup. It is either
// found or not; each conversion method reads the snapshot independently,
// so converting does not consume it. Conversions never fail loudly: a
// missing variable or unparseable text simply reports ok as false.
//
// In Go an environment value, when present, is always a string, so there
// is no third "present but not text" state.
type Value struct {
	raw   string
	found bool
}

// Var looks up key in the process environment.
func Var(key string) Value {
	return VarFrom(osEnv{}, key)
}

// VarFrom looks up key in env.
func VarFrom(env Environment, key string) Value {
	raw, found := env.LookupEnv(key)
	return Value{raw: raw, found: found}
}

// String implements the [fmt.Stringer] interface. A missing variable
// renders as the empty string.
func (v Value) String() string {
	return v.raw
}

// AsString returns the raw value.
func (v Value) AsString() (string, bool) {
	return v.raw, v.found
}

// AsInt64 parses the value as a base 10 signed integer. A leading '+' or
// '-' is allowed.
func (v Value) AsInt64() (int64, bool) {
	if !v.found {
		return 0, false
	}
	n, err := strconv.ParseInt(v.raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// AsUint64 parses the value as a base 10 unsigned integer. Signs are
// rejected, so negative values report ok as false.
func (v Value) AsUint64() (uint64, bool) {
	if !v.found {
		return 0, false
	}
	n, err := strconv.ParseUint(v.raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// AsFloat64 parses the value as a 64 bit float, accepting the usual
// decimal and scientific notations.
func (v Value) AsFloat64() (float64, bool) {
	if !v.found {
		return 0, false
	}
	f, err := strconv.ParseFloat(v.raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// AsBool matches the value case insensitively against "true" and "false"
// only. "1", "yes" and friends report ok as false.
func (v Value) AsBool() (bool, bool) {
	if !v.found {
		return false, false
	}
	switch strings.ToLower(v.raw) {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}
