// Package env captures the process environment that toolchain resolution
// and build-directory inspection read from.
package env

import (
	"os"
	"strings"
)

// Variables read by buildprobe.
const (
	CMakeCommand        = "CMAKE_COMMAND"
	CTestCommand        = "CTEST_COMMAND"
	VisualStudioVersion = "VisualStudioVersion"
)

// Env is the read side of a set of environment variables.
type Env interface {
	Lookup(key string) (string, bool)
}

// Get returns the value of key in e, or "" if it is unset.
func Get(e Env, key string) string {
	v, _ := e.Lookup(key)
	return v
}

// OS reads the live process environment.
type OS struct{}

func (OS) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Map is a fixed set of environment variables.
type Map map[string]string

// Get returns the value of key, or "" if it is unset.
func (m Map) Get(key string) string {
	return m[key]
}

// Lookup reports the value of key and whether it is set.
func (m Map) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// FromList builds a Map from "KEY=VALUE" pairs as returned by os.Environ.
// Later entries override earlier ones; entries without "=" are ignored.
func FromList(list []string) Map {
	m := make(Map, len(list))
	for _, kv := range list {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			m[k] = v
		}
	}
	return m
}

// Snapshot copies the current process environment.
func Snapshot() Map {
	return FromList(os.Environ())
}
