package builddir

import (
	"os"
	"path/filepath"
	"strings"
)

// Build types reported by ResolveBuildType.
const (
	Debug   = "Debug"
	Release = "Release"
)

const (
	buildTypeArg   = "-DCMAKE_BUILD_TYPE="
	buildTypeEntry = "CMAKE_BUILD_TYPE:"
)

// BuildTypeSource records where a build type came from.
type BuildTypeSource int

const (
	// Default means neither the arguments nor the cache named a build type.
	Default BuildTypeSource = iota
	FromArgs
	FromCache
)

func (s BuildTypeSource) String() string {
	switch s {
	case FromArgs:
		return "args"
	case FromCache:
		return "cache"
	}
	return "default"
}

func (s BuildTypeSource) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// BuildTypeResult is a normalized build type with its provenance.
type BuildTypeResult struct {
	// Value is Debug or Release, never empty.
	Value string `json:"value"`
	// Raw is the value as written in the arguments or cache.
	Raw    string          `json:"raw"`
	Source BuildTypeSource `json:"source"`
}

// ResolveBuildType finds the configured build type. The first
// -DCMAKE_BUILD_TYPE= argument in cmakeArgs wins. Without one, the first
// CMAKE_BUILD_TYPE entry of buildSpace/CMakeCache.txt is used. Only an exact
// "Debug" yields Debug; anything else, including nothing, yields Release.
func ResolveBuildType(cmakeArgs []string, buildSpace string) BuildTypeResult {
	res := BuildTypeResult{Source: Default}
	if raw, ok := buildTypeFromArgs(cmakeArgs); ok {
		res.Raw, res.Source = raw, FromArgs
	} else if raw, ok := buildTypeFromCache(filepath.Join(buildSpace, CMakeCacheFile)); ok {
		res.Raw, res.Source = raw, FromCache
	}
	res.Value = normalizeBuildType(res.Raw)
	return res
}

// BuildType is ResolveBuildType without the provenance.
func BuildType(cmakeArgs []string, buildSpace string) string {
	return ResolveBuildType(cmakeArgs, buildSpace).Value
}

func buildTypeFromArgs(args []string) (string, bool) {
	for _, arg := range args {
		if v, ok := strings.CutPrefix(arg, buildTypeArg); ok {
			return v, true
		}
	}
	return "", false
}

// buildTypeFromCache scans a CMake cache for the build type entry. A missing
// or unreadable cache, and entries without "=", are not matches.
func buildTypeFromCache(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	for line := range splitLines(string(data)) {
		if !strings.HasPrefix(line, buildTypeEntry) {
			continue
		}
		if _, v, ok := strings.Cut(line, "="); ok {
			return v, true
		}
	}
	return "", false
}

func normalizeBuildType(raw string) string {
	if raw == Debug {
		return Debug
	}
	return Release
}
