// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package dotconf

import (
	"bufio"
	"io"
	"io/fs"
	"strings"

	"github.com/z5labs/dotconf/internal/try"
)

// Entry is a single key value pair parsed from a dotenv file.
type Entry struct {
	Key   string
	Value string
}

// FileError occurs when a dotenv file cannot be opened or read.
type FileError struct {
	Path  string
	Cause error
}

// Error implements the error interface. The underlying message is
// returned verbatim so callers can display it directly.
func (e FileError) Error() string {
	return e.Cause.Error()
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e FileError) Unwrap() error {
	return e.Cause
}

// Parse reads dotenv entries from r.
//
// Per line, everything from the first '#' is discarded, the remainder is
// split at the first '=' and both sides are trimmed of whitespace. Lines
// with no '=' produce no entry and no error. Entries are returned in file
// order and duplicate keys are preserved.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line, _, _ := strings.Cut(sc.Text(), "#")
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		entries = append(entries, Entry{
			Key:   strings.TrimSpace(k),
			Value: strings.TrimSpace(v),
		})
	}
	return entries, sc.Err()
}

// ParseFile reads dotenv entries from the file at path without touching
// the environment. See [Parse] for the line grammar.
func ParseFile(path string, opts ...Option) ([]Entry, error) {
	return parseFile(newOptions(opts...).fs, path)
}

func parseFile(fsys fs.FS, path string) (entries []Entry, err error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, FileError{Path: path, Cause: err}
	}
	defer try.Close(&err, f)

	entries, err = Parse(f)
	if err != nil {
		return nil, FileError{Path: path, Cause: err}
	}
	return entries, nil
}
