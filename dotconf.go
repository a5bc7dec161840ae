// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package dotconf

import (
	"io/fs"
	"os"

	"go.uber.org/zap"
)

// DefaultPath is the conventional dotenv file name, resolved relative to
// the current working directory.
const DefaultPath = ".env"

type options struct {
	fs  fs.FS
	env Environment
	log *zap.Logger
}

// Option configures how files are opened and where entries are applied.
type Option func(*options)

// FS sets the filesystem files are opened from. The default opens paths
// through [os.Open], so absolute paths work.
func FS(fsys fs.FS) Option {
	return func(o *options) {
		o.fs = fsys
	}
}

// Env sets the variable table entries are applied to and read from.
// The default is the process environment.
func Env(env Environment) Option {
	return func(o *options) {
		o.env = env
	}
}

// Logger sets a logger for debug level notes, such as how many entries a
// file produced. The default logger discards everything.
func Logger(logger *zap.Logger) Option {
	return func(o *options) {
		o.log = logger
	}
}

func newOptions(opts ...Option) options {
	o := options{
		fs:  osFS{},
		env: osEnv{},
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// osFS opens paths with os.Open instead of fs.ValidPath rules so callers
// can pass absolute and relative paths alike.
type osFS struct{}

func (osFS) Open(path string) (fs.File, error) {
	return os.Open(path)
}

// Load parses the [DefaultPath] file and applies every entry to the
// environment. It is shorthand for [LoadFile] with [DefaultPath].
func Load(opts ...Option) error {
	return LoadFile(DefaultPath, opts...)
}

// LoadFile parses the file at path and applies every entry to the
// environment, overwriting variables that are already set. Duplicate keys
// in the file are applied in order, so the last occurrence wins. The only
// failure is a [FileError] from opening or reading the file; malformed
// lines are skipped, not reported.
func LoadFile(path string, opts ...Option) error {
	o := newOptions(opts...)

	entries, err := parseFile(o.fs, path)
	if err != nil {
		return err
	}
	o.log.Debug("parsed dotenv file", zap.String("path", path), zap.Int("entries", len(entries)))

	return apply(o, entries)
}

// Apply writes entries into the environment in order, overwriting any
// prior values. It is the entry point for callers that obtained entries
// from [ParseFile] or built them directly.
func Apply(entries []Entry, opts ...Option) error {
	return apply(newOptions(opts...), entries)
}

func apply(o options, entries []Entry) error {
	for _, e := range entries {
		err := o.env.Setenv(e.Key, e.Value)
		if err != nil {
			return err
		}
		o.log.Debug("set environment variable", zap.String("key", e.Key))
	}
	return nil
}
