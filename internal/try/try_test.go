// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package try

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type closeFunc func() error

func (f closeFunc) Close() error {
	return f()
}

func TestClose(t *testing.T) {
	t.Run("will leave err untouched", func(t *testing.T) {
		t.Run("if the closer succeeds", func(t *testing.T) {
			var err error
			Close(&err, closeFunc(func() error {
				return nil
			}))
			require.Nil(t, err)
		})
	})

	t.Run("will set err", func(t *testing.T) {
		t.Run("if the closer fails and err is nil", func(t *testing.T) {
			closeErr := errors.New("failed to close")

			var err error
			Close(&err, closeFunc(func() error {
				return closeErr
			}))

			require.ErrorIs(t, err, closeErr)

			var cerr CloseError
			require.ErrorAs(t, err, &cerr)
		})

		t.Run("if the closer fails and err is already set", func(t *testing.T) {
			readErr := errors.New("failed to read")
			closeErr := errors.New("failed to close")

			err := readErr
			Close(&err, closeFunc(func() error {
				return closeErr
			}))

			require.ErrorIs(t, err, readErr)
			require.ErrorIs(t, err, closeErr)
		})
	})
}
