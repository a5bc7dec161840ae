// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package try provides small helpers for deferred error capture.
package try

import (
	"errors"
	"io"
)

// CloseError occurs when closing a resource fails.
type CloseError struct {
	Cause error
}

// Error implements the error interface.
func (e CloseError) Error() string {
	return "failed to close: " + e.Cause.Error()
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e CloseError) Unwrap() error {
	return e.Cause
}

// Close closes c and records a failure in err. An error already present
// in err is kept and joined with the close failure rather than clobbered.
//
//	func readAll(fsys fs.FS, path string) (b []byte, err error) {
//		f, err := fsys.Open(path)
//		if err != nil {
//			return nil, err
//		}
//		defer try.Close(&err, f)
//		return io.ReadAll(f)
//	}
func Close(err *error, c io.Closer) {
	cerr := c.Close()
	if cerr == nil {
		return
	}

	cerr = CloseError{Cause: cerr}
	if *err == nil {
		*err = cerr
		return
	}
	*err = errors.Join(*err, cerr)
}
