// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package dotconf

import (
	"fmt"
	"os"
	"sort"
)

// Environment represents a mutable string to string variable table. The
// default implementation is backed by the process environment; tests and
// dry runs can substitute a [MapEnv] to avoid mutating process wide state.
type Environment interface {
	// Environ returns all variables as "key=value" strings.
	Environ() []string

	// LookupEnv returns the value for key and whether it is set.
	LookupEnv(key string) (string, bool)

	// Setenv sets the value for key, overwriting any prior value.
	Setenv(key, value string) error
}

// osEnv is the process environment.
type osEnv struct{}

func (osEnv) Environ() []string {
	return os.Environ()
}

func (osEnv) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (osEnv) Setenv(key, value string) error {
	return os.Setenv(key, value)
}

// MapEnv is an in-memory [Environment]. The zero value is not usable;
// initialize it like any map.
type MapEnv map[string]string

// Environ implements the [Environment] interface. Variables are returned
// in lexical key order.
func (m MapEnv) Environ() []string {
	environ := make([]string, 0, len(m))
	for k, v := range m {
		environ = append(environ, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(environ)
	return environ
}

// LookupEnv implements the [Environment] interface.
func (m MapEnv) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Setenv implements the [Environment] interface.
func (m MapEnv) Setenv(key, value string) error {
	m[key] = value
	return nil
}
