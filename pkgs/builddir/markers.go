// Package builddir inspects an out-of-source CMake build directory: which
// generated files are present, which build type was configured, and which
// Make targets exist.
package builddir

import (
	"os"
	"path/filepath"

	"github.com/goplus/buildprobe/pkgs/buildsys"
)

// Files CMake generates in a configured build directory.
const (
	CMakeCacheFile = "CMakeCache.txt"
	MakefileFile   = "Makefile"
	NinjaBuildFile = "build.ninja"
)

// DetectMarkers checks dir for each marker file. A missing directory
// reports every marker absent.
func DetectMarkers(dir string) buildsys.Markers {
	return buildsys.Markers{
		CMakeCache: CMakeCacheExists(dir),
		Makefile:   MakefileExists(dir),
		NinjaBuild: NinjaBuildExists(dir),
	}
}

// CMakeCacheExists reports whether dir/CMakeCache.txt is a regular file.
func CMakeCacheExists(dir string) bool {
	return isFile(filepath.Join(dir, CMakeCacheFile))
}

// MakefileExists reports whether dir/Makefile is a regular file.
func MakefileExists(dir string) bool {
	return isFile(filepath.Join(dir, MakefileFile))
}

// NinjaBuildExists reports whether dir/build.ninja is a regular file.
func NinjaBuildExists(dir string) bool {
	return isFile(filepath.Join(dir, NinjaBuildFile))
}

// SolutionPath returns where CMake's Visual Studio generator writes the
// solution for pkg. The file is not checked: it only exists once CMake has
// run, so callers verify it after configuring.
func SolutionPath(dir, pkg string) string {
	return filepath.Join(dir, pkg+".sln")
}

// ProjectPath returns where the Visual Studio generator writes the project
// for target. Like SolutionPath, existence is the caller's concern.
func ProjectPath(dir, target string) string {
	return filepath.Join(dir, target+".vcxproj")
}

func isFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
