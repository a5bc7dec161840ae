// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package dotconf loads dotenv style configuration files into the process environment.
//
// A dotenv file is plain text with one assignment per line. Everything from the
// first '#' on a line is a comment. The first '=' separates key from value, so
// values may themselves contain '='. Whitespace around key and value is trimmed.
// Lines without a '=' are skipped. There is no quoting, no multi-line values and
// no variable expansion.
//
//	# server settings
//	url = https://example.com  # trailing comments are fine
//	port = 8080
//	debug = true
//
// [Load] reads ".env" from the current working directory and applies every entry
// to the process environment, overwriting existing variables. [LoadFile] does the
// same for an explicit path. [Var] reads a variable back and offers lossless
// string access plus best effort numeric and boolean conversions.
//
//	err := dotconf.Load()
//	if err != nil {
//		log.Fatal(err)
//	}
//	port, ok := dotconf.Var("port").AsInt64()
//
// The process environment is global mutable state without synchronization.
// Call [Load] once, early, before starting goroutines that read configuration;
// a concurrent reader may otherwise observe a partially applied file.
package dotconf
