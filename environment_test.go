// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package dotconf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapEnv(t *testing.T) {
	t.Run("Setenv overwrites prior values", func(t *testing.T) {
		env := make(MapEnv)

		require.NoError(t, env.Setenv("a", "1"))
		require.NoError(t, env.Setenv("a", "2"))

		v, ok := env.LookupEnv("a")
		require.True(t, ok)
		require.Equal(t, "2", v)
	})

	t.Run("LookupEnv misses on unset keys", func(t *testing.T) {
		env := MapEnv{"a": "1"}

		_, ok := env.LookupEnv("b")
		require.False(t, ok)
	})

	t.Run("Environ lists variables in key order", func(t *testing.T) {
		env := MapEnv{"b": "2", "a": "1", "c": "3"}

		require.Equal(t, []string{"a=1", "b=2", "c=3"}, env.Environ())
	})
}
