// Package buildsys names the native build backends a CMake build directory
// can be configured for.
package buildsys

import "github.com/goplus/buildprobe/pkgs/toolchain"

// Backend is a native build tool that CMake generates input for.
type Backend int

const (
	Unknown Backend = iota
	Make
	Ninja
	MSBuild
	Xcode
)

func (b Backend) String() string {
	switch b {
	case Make:
		return "make"
	case Ninja:
		return "ninja"
	case MSBuild:
		return "msbuild"
	case Xcode:
		return "xcodebuild"
	}
	return "unknown"
}

func (b Backend) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// Tool returns the executable that drives b. ok is false for Unknown.
func (b Backend) Tool() (kind toolchain.Kind, ok bool) {
	switch b {
	case Make:
		return toolchain.Make, true
	case Ninja:
		return toolchain.Ninja, true
	case MSBuild:
		return toolchain.MSBuild, true
	case Xcode:
		return toolchain.XcodeBuild, true
	}
	return 0, false
}

// Markers reports which generated files exist in a build directory.
type Markers struct {
	CMakeCache bool `json:"cmake_cache"`
	Makefile   bool `json:"makefile"`
	NinjaBuild bool `json:"ninja_build"`
}

// Configured reports whether CMake has run in the directory.
func (m Markers) Configured() bool {
	return m.CMakeCache
}

// Detect picks the backend a directory was generated for. Visual Studio
// and Xcode project files only exist after configuring, so they are never
// inferred here; callers that configured for them know the backend already.
func Detect(m Markers) Backend {
	switch {
	case m.NinjaBuild:
		return Ninja
	case m.Makefile:
		return Make
	}
	return Unknown
}
