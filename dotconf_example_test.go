// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package dotconf

import (
	"fmt"
	"testing/fstest"
)

func ExampleLoadFile() {
	fsys := fstest.MapFS{
		".env": &fstest.MapFile{
			Data: []byte("url = https://x.com  # server address\nretries = 3\n"),
		},
	}
	env := make(MapEnv)

	err := LoadFile(".env", FS(fsys), Env(env))
	if err != nil {
		fmt.Println(err)
		return
	}

	url, _ := VarFrom(env, "url").AsString()
	retries, _ := VarFrom(env, "retries").AsInt64()

	fmt.Println(url)
	fmt.Println(retries)
	// Output:
	// https://x.com
	// 3
}

func ExampleParseFile() {
	fsys := fstest.MapFS{
		".env": &fstest.MapFile{
			Data: []byte("a = hi\n\n# comment only\nb = -123\n"),
		},
	}

	entries, err := ParseFile(".env", FS(fsys))
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, e := range entries {
		fmt.Printf("%s=%s\n", e.Key, e.Value)
	}
	// Output:
	// a=hi
	// b=-123
}

func ExampleValue_AsBool() {
	env := MapEnv{"debug": "TRUE"}

	debug, ok := VarFrom(env, "debug").AsBool()
	fmt.Println(debug, ok)

	_, ok = VarFrom(env, "verbose").AsBool()
	fmt.Println(ok)
	// Output:
	// true true
	// false
}

func ExampleUnmarshal() {
	env := MapEnv{
		"url":  "https://x.com",
		"port": "8080",
	}

	var cfg struct {
		Url  string `env:"url"`
		Port int64  `env:"port"`
	}
	err := Unmarshal(&cfg, Env(env))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(cfg.Url, cfg.Port)
	// Output:
	// https://x.com 8080
}
